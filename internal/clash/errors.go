package clash

import (
	"errors"
	"fmt"
	"net/http"

	"clashberry/internal/app"
)

// ErrorKind classifies why a fetch did not produce war data
type ErrorKind int

const (
	// KindTransport means no usable response was received
	KindTransport ErrorKind = iota + 1

	// KindAccessDenied means the clan's war log is private
	KindAccessDenied

	// KindNotFound means the clan or war does not exist
	KindNotFound

	// KindNoWar means the clan is not currently in a war
	KindNoWar

	// KindServer covers 5xx and unrecognized 4xx responses
	KindServer

	// KindParse means the body did not match the expected schema
	KindParse
)

// Reasons sent by the backend in error bodies
const (
	ReasonAccessDenied   = "accessDenied"
	ReasonPrivateWarLog  = "private_war_log"
	ReasonNotInWar       = "notInWar"
	ReasonNotInWarLegacy = "not_in_war"
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "TransportError"
	case KindAccessDenied:
		return "AccessDenied"
	case KindNotFound:
		return "NotFound"
	case KindNoWar:
		return "NoWar"
	case KindServer:
		return "ServerError"
	case KindParse:
		return "ParseError"
	default:
		return "Unknown"
	}
}

// MessageKey returns the stable display message key for the kind
func (k ErrorKind) MessageKey() string {
	switch k {
	case KindTransport:
		return "network_error"
	case KindAccessDenied:
		return "private_war_log"
	case KindNotFound:
		return "clan_not_found"
	case KindNoWar:
		return "not_in_war"
	case KindServer:
		return "server_error"
	case KindParse:
		return "parse_error"
	default:
		return "unknown_error"
	}
}

// FetchError describes a failed War Data API call
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Reason     string
	Message    string
	Clan       *app.ClanInfo
	Err        error
}

func (e *FetchError) Error() string {
	msg := e.Kind.String()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a *FetchError anywhere in err's chain, or 0
func KindOf(err error) ErrorKind {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return 0
}

// classifyStatus maps a non-2xx status and error body reason to a kind
// Pure function: No I/O, deterministic output from input
func classifyStatus(status int, reason string) ErrorKind {
	switch {
	case status == http.StatusForbidden && (reason == ReasonAccessDenied || reason == ReasonPrivateWarLog):
		return KindAccessDenied
	case reason == ReasonNotInWar || reason == ReasonNotInWarLegacy:
		return KindNoWar
	case status == http.StatusNotFound:
		return KindNotFound
	default:
		return KindServer
	}
}
