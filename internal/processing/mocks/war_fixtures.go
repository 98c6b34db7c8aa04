package mocks

import (
	"fmt"

	"clashberry/internal/app"
)

// NewRegularWarResponse returns an in-progress regular war between #ABC123
// and #XYZ789 with teamSize 15. Position 1 of our clan attacked twice
// (3 and 2 stars), position 2 has not attacked; the remaining roster slots
// have one attack each.
func NewRegularWarResponse() *app.WarResponse {
	remaining := "3h 20m"
	label := "remaining"

	own := newClan("#ABC123", "Berry Pickers", 15)
	own.Members[0].Attacks = []app.AttackData{
		{DefenderTag: "#OPP1", Stars: 3, DestructionPercentage: 100},
		{DefenderTag: "#OPP2", Stars: 2, DestructionPercentage: 81},
	}
	own.Members[1].Attacks = nil
	for i := 2; i < len(own.Members); i++ {
		own.Members[i].Attacks = []app.AttackData{
			{DefenderTag: fmt.Sprintf("#OPP%d", i+1), Stars: 1, DestructionPercentage: 55},
		}
	}
	own.Stars = 3 + 2 + 13
	own.Attacks = 2 + 13

	return &app.WarResponse{
		State:         "inWar",
		TeamSize:      15,
		WarType:       "regular",
		TimeRemaining: &remaining,
		TimeLabel:     &label,
		Clan:          own,
		Opponent:      newClan("#XYZ789", "Lemon Squad", 15),
	}
}

// NewCWLWarResponse returns a CWL war in round 3 between #ABC123 and #XYZ789
// where position 1 of our clan used its single attack
func NewCWLWarResponse() *app.WarResponse {
	round := 3

	own := newClan("#ABC123", "Berry Pickers", 15)
	own.Members[0].Attacks = []app.AttackData{
		{DefenderTag: "#OPP1", Stars: 3, DestructionPercentage: 100},
	}
	own.Stars = 3
	own.Attacks = 1

	return &app.WarResponse{
		State:    "inWar",
		TeamSize: 15,
		WarType:  "cwl",
		CWLRound: &round,
		Clan:     own,
		Opponent: newClan("#XYZ789", "Lemon Squad", 15),
	}
}

// NewNotInWarResponse returns the body sent for a clan without a war
func NewNotInWarResponse() *app.WarResponse {
	return &app.WarResponse{State: "notInWar"}
}

func newClan(tag, name string, size int) *app.ClanData {
	clan := &app.ClanData{
		Tag:   tag,
		Name:  name,
		Badge: "https://api-assets.clashofclans.com/badges/200/" + tag[1:] + ".png",
	}
	for i := 1; i <= size; i++ {
		clan.Members = append(clan.Members, app.MemberData{
			Tag:           fmt.Sprintf("#%s%d", tag[1:4], i),
			Name:          fmt.Sprintf("%s %d", name, i),
			TownhallLevel: 17 - (i-1)/3,
			MapPosition:   i,
		})
	}
	return clan
}
