package clash

import (
	"net/url"
	"strings"
)

// FormatClanTag normalizes a clan tag to upper case with a leading '#'
func FormatClanTag(tag string) string {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return ""
	}
	if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}
	return tag
}

// escapeClanTag formats a tag and escapes it for use as a path segment
func escapeClanTag(tag string) string {
	return url.PathEscape(FormatClanTag(tag))
}
