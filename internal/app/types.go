package app

// WarResponse represents the response from /api/war/{clanTag}.
// Clan and Opponent are nil when the backend reports no ongoing war.
type WarResponse struct {
	State         string    `json:"state"`
	TeamSize      int       `json:"teamSize"`
	WarType       string    `json:"warType"`
	CWLRound      *int      `json:"cwlRound"`
	TimeRemaining *string   `json:"timeRemaining"`
	TimeLabel     *string   `json:"timeLabel"`
	Clan          *ClanData `json:"clan"`
	Opponent      *ClanData `json:"opponent"`
}

// ClanData represents one side of a war
type ClanData struct {
	Tag                   string       `json:"tag"`
	Name                  string       `json:"name"`
	Badge                 string       `json:"badge"`
	Stars                 int          `json:"stars"`
	Attacks               int          `json:"attacks"`
	DestructionPercentage float64      `json:"destructionPercentage"`
	Members               []MemberData `json:"members"`
}

// MemberData represents a roster entry
type MemberData struct {
	Tag             string       `json:"tag"`
	Name            string       `json:"name"`
	TownhallLevel   int          `json:"townhallLevel"`
	MapPosition     int          `json:"mapPosition"`
	Attacks         []AttackData `json:"attacks"`
	AttacksUsed     int          `json:"attacksUsed"`
	OpponentAttacks int          `json:"opponentAttacks"`
}

// AttackData represents a single attack made by a member
type AttackData struct {
	DefenderTag           string  `json:"defenderTag"`
	Stars                 int     `json:"stars"`
	DestructionPercentage float64 `json:"destructionPercentage"`
}

// ErrorResponse is the body of a non-2xx response.
// Older backends send the reason under "error" instead of "reason".
type ErrorResponse struct {
	Reason  string    `json:"reason"`
	Error   string    `json:"error"`
	Message string    `json:"message"`
	Clan    *ClanInfo `json:"clan"`
}

// EffectiveReason returns Reason, falling back to Error
func (e *ErrorResponse) EffectiveReason() string {
	if e.Reason != "" {
		return e.Reason
	}
	return e.Error
}

// ClanInfo identifies a clan in an error body
type ClanInfo struct {
	Tag   string `json:"tag"`
	Name  string `json:"name"`
	Badge string `json:"badge"`
}

// ClanBasicInfo represents the response from /api/clan/{clanTag}
type ClanBasicInfo struct {
	Tag            string `json:"tag"`
	Name           string `json:"name"`
	Badge          string `json:"badge"`
	Level          int    `json:"level"`
	MemberCount    int    `json:"members"`
	IsWarLogPublic bool   `json:"isWarLogPublic"`
}
