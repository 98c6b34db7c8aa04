package war

import (
	"fmt"
	"strings"
)

// Town hall levels known to the game
const (
	MinTownhallLevel = 1
	MaxTownhallLevel = 17
)

// MaxStars returns the stars available to each side
func (d *Data) MaxStars() int {
	return d.TeamSize * maxStarsPerAttack
}

// MaxAttacks returns the attacks available to each side
func (d *Data) MaxAttacks() int {
	return d.TeamSize * d.AttacksExpected()
}

// StateLabel returns the human readable phase name
func (d *Data) StateLabel() string {
	switch d.State {
	case Preparation:
		return "Preparation"
	case InWar:
		return "Battle Day"
	case WarEnded:
		return "War Ended"
	default:
		return "Unknown"
	}
}

// StatusLine combines the phase, the remaining time and the CWL round,
// e.g. "Battle Day • 3h 20m remaining • CWL Round 3".
func (d *Data) StatusLine() string {
	parts := []string{d.StateLabel()}
	if d.TimeRemaining != nil && d.TimeLabel != nil {
		parts = append(parts, *d.TimeRemaining+" "+*d.TimeLabel)
	}
	if d.Type == CWL && d.CWLRound != nil {
		parts = append(parts, fmt.Sprintf("CWL Round %d", *d.CWLRound))
	}
	return strings.Join(parts, " • ")
}

// StarsDisplay renders stars as filled and empty glyphs
func StarsDisplay(stars int) string {
	stars = min(max(stars, 0), maxStarsPerAttack)
	return strings.Repeat("★", stars) + strings.Repeat("☆", maxStarsPerAttack-stars)
}

// ClampTownhallLevel keeps a level within the known town hall range
func ClampTownhallLevel(level int) int {
	return min(max(level, MinTownhallLevel), MaxTownhallLevel)
}
