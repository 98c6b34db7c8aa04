package war

import (
	"errors"
	"fmt"
	"sort"

	"clashberry/internal/app"
)

var (
	// ErrInvalidWar is wrapped by every validation failure in NewData
	ErrInvalidWar = errors.New("invalid war data")

	// ErrNotInWar is returned when the payload describes no ongoing war
	ErrNotInWar = errors.New("clan is not in war")
)

const (
	maxStarsPerAttack = 3
	maxPercentage     = 100.0
)

// NewData builds a validated Data from a decoded API response.
// Members are ordered by map position and every slice is copied, so the
// result shares no memory with resp.
func NewData(resp *app.WarResponse) (*Data, error) {
	if resp == nil {
		return nil, ErrNotInWar
	}

	if resp.Clan == nil || resp.Opponent == nil {
		return nil, ErrNotInWar
	}

	state, err := ParseState(resp.State)
	if err != nil {
		return nil, err
	}
	if state == NotInWar {
		return nil, ErrNotInWar
	}

	warType, err := ParseType(resp.WarType)
	if err != nil {
		return nil, err
	}

	if resp.TeamSize <= 0 {
		return nil, fmt.Errorf("%w: team size must be positive, got %d", ErrInvalidWar, resp.TeamSize)
	}

	if err := validateCWLRound(warType, resp.CWLRound); err != nil {
		return nil, err
	}

	data := &Data{
		State:         state,
		TeamSize:      resp.TeamSize,
		Type:          warType,
		CWLRound:      copyInt(resp.CWLRound),
		TimeRemaining: copyString(resp.TimeRemaining),
		TimeLabel:     copyString(resp.TimeLabel),
	}

	if data.Own, err = buildClan(resp.Clan, data.TeamSize, warType.AttacksExpected()); err != nil {
		return nil, fmt.Errorf("clan %s: %w", resp.Clan.Tag, err)
	}
	if data.Opponent, err = buildClan(resp.Opponent, data.TeamSize, warType.AttacksExpected()); err != nil {
		return nil, fmt.Errorf("opponent %s: %w", resp.Opponent.Tag, err)
	}

	if data.Own.Tag == data.Opponent.Tag {
		return nil, fmt.Errorf("%w: clan and opponent share tag %s", ErrInvalidWar, data.Own.Tag)
	}

	return data, nil
}

func validateCWLRound(warType Type, round *int) error {
	if warType == CWL {
		if round == nil {
			return fmt.Errorf("%w: cwl war without round", ErrInvalidWar)
		}
		if *round <= 0 {
			return fmt.Errorf("%w: cwl round must be positive, got %d", ErrInvalidWar, *round)
		}
		return nil
	}
	if round != nil {
		return fmt.Errorf("%w: regular war with cwl round %d", ErrInvalidWar, *round)
	}
	return nil
}

func buildClan(raw *app.ClanData, teamSize, attacksExpected int) (Clan, error) {
	if raw.Tag == "" {
		return Clan{}, fmt.Errorf("%w: missing clan tag", ErrInvalidWar)
	}
	if raw.Stars < 0 || raw.Stars > teamSize*maxStarsPerAttack {
		return Clan{}, fmt.Errorf("%w: stars %d out of range 0..%d", ErrInvalidWar, raw.Stars, teamSize*maxStarsPerAttack)
	}
	if raw.Attacks < 0 || raw.Attacks > teamSize*attacksExpected {
		return Clan{}, fmt.Errorf("%w: attacks %d out of range 0..%d", ErrInvalidWar, raw.Attacks, teamSize*attacksExpected)
	}
	if !validPercentage(raw.DestructionPercentage) {
		return Clan{}, fmt.Errorf("%w: destruction %.2f out of range", ErrInvalidWar, raw.DestructionPercentage)
	}

	members := make([]Member, 0, len(raw.Members))
	positions := make(map[int]bool, len(raw.Members))
	for _, rm := range raw.Members {
		member, err := buildMember(rm, teamSize, attacksExpected)
		if err != nil {
			return Clan{}, err
		}
		if positions[member.MapPosition] {
			return Clan{}, fmt.Errorf("%w: duplicate map position %d", ErrInvalidWar, member.MapPosition)
		}
		positions[member.MapPosition] = true
		members = append(members, member)
	}

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].MapPosition < members[j].MapPosition
	})

	return Clan{
		Tag:                   raw.Tag,
		Name:                  raw.Name,
		BadgeURL:              raw.Badge,
		StarsTotal:            raw.Stars,
		AttacksUsed:           raw.Attacks,
		DestructionPercentage: raw.DestructionPercentage,
		Members:               members,
	}, nil
}

func buildMember(raw app.MemberData, teamSize, attacksExpected int) (Member, error) {
	if raw.MapPosition < 1 || raw.MapPosition > teamSize {
		return Member{}, fmt.Errorf("%w: member %s map position %d out of range 1..%d", ErrInvalidWar, raw.Tag, raw.MapPosition, teamSize)
	}
	if len(raw.Attacks) > attacksExpected {
		return Member{}, fmt.Errorf("%w: member %s has %d attacks, at most %d allowed", ErrInvalidWar, raw.Tag, len(raw.Attacks), attacksExpected)
	}
	if raw.OpponentAttacks < 0 {
		return Member{}, fmt.Errorf("%w: member %s has negative defenses %d", ErrInvalidWar, raw.Tag, raw.OpponentAttacks)
	}

	var attacks []Attack
	for _, ra := range raw.Attacks {
		if ra.Stars < 0 || ra.Stars > maxStarsPerAttack {
			return Member{}, fmt.Errorf("%w: member %s attack stars %d out of range", ErrInvalidWar, raw.Tag, ra.Stars)
		}
		if !validPercentage(ra.DestructionPercentage) {
			return Member{}, fmt.Errorf("%w: member %s attack destruction %.2f out of range", ErrInvalidWar, raw.Tag, ra.DestructionPercentage)
		}
		attacks = append(attacks, Attack{
			DefenderTag:           ra.DefenderTag,
			Stars:                 ra.Stars,
			DestructionPercentage: ra.DestructionPercentage,
		})
	}

	return Member{
		Tag:                     raw.Tag,
		Name:                    raw.Name,
		TownhallLevel:           raw.TownhallLevel,
		MapPosition:             raw.MapPosition,
		Attacks:                 attacks,
		OpponentAttacksReceived: raw.OpponentAttacks,
	}, nil
}

func validPercentage(p float64) bool {
	return p >= 0 && p <= maxPercentage
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
