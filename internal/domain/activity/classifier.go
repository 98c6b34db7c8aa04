package activity

import "clashberry/internal/domain/war"

// Classify returns the members of clan that belong to the given sub-tab,
// in roster order.
// Pure function: No I/O, returns new members that share no memory with the clan
func Classify(clan *war.Clan, warType war.Type, warState war.State, tab SubTab) []war.Member {
	if clan == nil {
		return []war.Member{}
	}

	switch tab {
	case Attacks:
		return filterMembers(clan.Members, HasAttacked)
	case Defenses:
		// Every member is listed; defense counts are informational only.
		return filterMembers(clan.Members, func(war.Member) bool { return true })
	case RemainingOrMissed:
		expected := warType.AttacksExpected()
		return filterMembers(clan.Members, func(m war.Member) bool {
			return HasAttacksLeft(m, expected)
		})
	default:
		return []war.Member{}
	}
}

// HasAttacked reports whether the member used at least one attack
func HasAttacked(m war.Member) bool {
	return len(m.Attacks) > 0
}

// HasAttacksLeft reports whether the member used fewer than expected attacks
func HasAttacksLeft(m war.Member, attacksExpected int) bool {
	return len(m.Attacks) < attacksExpected
}

// Label returns the display name of a sub-tab. The remaining bucket reads
// "Missed" once the war is over.
func Label(tab SubTab, warState war.State) string {
	switch tab {
	case Attacks:
		return "Attacks"
	case Defenses:
		return "Defenses"
	case RemainingOrMissed:
		if warState == war.WarEnded {
			return "Missed"
		}
		return "Remaining"
	default:
		return ""
	}
}

// SideOf returns the roster for a clan side, or nil for an unknown side
func SideOf(data *war.Data, side ClanSide) *war.Clan {
	if data == nil {
		return nil
	}
	switch side {
	case Own:
		return &data.Own
	case Opponent:
		return &data.Opponent
	default:
		return nil
	}
}

func filterMembers(members []war.Member, keep func(war.Member) bool) []war.Member {
	result := make([]war.Member, 0, len(members))
	for _, m := range members {
		if keep(m) {
			m.Attacks = append([]war.Attack(nil), m.Attacks...)
			result = append(result, m)
		}
	}
	return result
}
