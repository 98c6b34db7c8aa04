package activity

// SubTab selects which bucket of the roster is shown
type SubTab int

const (
	// Attacks lists members who have attacked at least once
	Attacks SubTab = iota

	// Defenses lists every member with their defense data
	Defenses

	// RemainingOrMissed lists members with unused attacks
	RemainingOrMissed
)

// Valid reports whether the sub-tab is one of the known values
func (t SubTab) Valid() bool {
	return t >= Attacks && t <= RemainingOrMissed
}

func (t SubTab) String() string {
	switch t {
	case Attacks:
		return "attacks"
	case Defenses:
		return "defenses"
	case RemainingOrMissed:
		return "remaining"
	default:
		return "unknown"
	}
}

// ParseSubTab converts a name as accepted on the command line
func ParseSubTab(s string) (SubTab, bool) {
	switch s {
	case "attacks":
		return Attacks, true
	case "defenses", "defences":
		return Defenses, true
	case "remaining", "missed":
		return RemainingOrMissed, true
	default:
		return 0, false
	}
}

// ClanSide selects which roster of the war is shown
type ClanSide int

const (
	// Own is the clan the war was fetched for
	Own ClanSide = iota

	// Opponent is the clan it is fighting
	Opponent
)

// Valid reports whether the side is one of the known values
func (s ClanSide) Valid() bool {
	return s == Own || s == Opponent
}

func (s ClanSide) String() string {
	switch s {
	case Own:
		return "own"
	case Opponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// ParseClanSide converts a name as accepted on the command line
func ParseClanSide(s string) (ClanSide, bool) {
	switch s {
	case "own", "clan":
		return Own, true
	case "opponent", "enemy":
		return Opponent, true
	default:
		return 0, false
	}
}
