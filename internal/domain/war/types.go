package war

import "fmt"

// State represents the phase of a war as reported by the backend
type State int

const (
	// Preparation indicates the war has been matched but attacks are not open yet
	Preparation State = iota

	// InWar indicates battle day is in progress
	InWar

	// WarEnded indicates the war is over and attacks are final
	WarEnded

	// NotInWar indicates the clan has no current war
	NotInWar
)

// String returns the wire representation of a war state
func (s State) String() string {
	switch s {
	case Preparation:
		return "preparation"
	case InWar:
		return "inWar"
	case WarEnded:
		return "warEnded"
	case NotInWar:
		return "notInWar"
	default:
		return "unknown"
	}
}

// ParseState converts a wire state string into a State
func ParseState(s string) (State, error) {
	switch s {
	case "preparation":
		return Preparation, nil
	case "inWar":
		return InWar, nil
	case "warEnded":
		return WarEnded, nil
	case "notInWar":
		return NotInWar, nil
	default:
		return 0, fmt.Errorf("%w: unknown war state %q", ErrInvalidWar, s)
	}
}

// Type distinguishes regular wars from Clan War League wars
type Type int

const (
	// Regular wars grant each member two attacks
	Regular Type = iota

	// CWL (Clan War League) wars grant each member a single attack
	CWL
)

// String returns the wire representation of a war type
func (t Type) String() string {
	if t == CWL {
		return "cwl"
	}
	return "regular"
}

// ParseType converts a wire war type into a Type
func ParseType(s string) (Type, error) {
	switch s {
	case "regular":
		return Regular, nil
	case "cwl":
		return CWL, nil
	default:
		return 0, fmt.Errorf("%w: unknown war type %q", ErrInvalidWar, s)
	}
}

// AttacksExpected returns how many attacks each member may make
func (t Type) AttacksExpected() int {
	if t == CWL {
		return 1
	}
	return 2
}

// Attack is one offensive action by a member
type Attack struct {
	DefenderTag           string
	Stars                 int
	DestructionPercentage float64
}

// Member is a roster entry of one clan in a war
type Member struct {
	Tag                     string
	Name                    string
	TownhallLevel           int
	MapPosition             int
	Attacks                 []Attack
	OpponentAttacksReceived int
}

// AttackCount returns the number of attacks the member has used
func (m Member) AttackCount() int {
	return len(m.Attacks)
}

// Clan is one side of a war
type Clan struct {
	Tag                   string
	Name                  string
	BadgeURL              string
	StarsTotal            int
	AttacksUsed           int
	DestructionPercentage float64
	Members               []Member
}

// Data is an immutable snapshot of a fetched war. A refresh produces a new
// Data; existing values are never modified.
type Data struct {
	State         State
	TeamSize      int
	Type          Type
	CWLRound      *int
	TimeRemaining *string
	TimeLabel     *string
	Own           Clan
	Opponent      Clan
}

// AttacksExpected returns the per-member attack allowance for this war
func (d *Data) AttacksExpected() int {
	return d.Type.AttacksExpected()
}
