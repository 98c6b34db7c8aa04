package selection

import (
	"testing"

	"clashberry/internal/domain/activity"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestMachineProperties checks notification and restore invariants over
// random transition sequences
func TestMachineProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// ops 0..2 select a sub-tab, ops 3..4 select a clan side
	properties.Property("one notification per changed transition", prop.ForAll(
		func(ops []int) bool {
			m := NewMachine()
			notifications := 0
			m.Subscribe(func(State) { notifications++ })

			changes := 0
			for _, op := range ops {
				before := m.State()
				if op < 3 {
					m.SelectSubTab(activity.SubTab(op))
				} else {
					m.SelectClanSide(activity.ClanSide(op - 3))
				}
				if m.State() != before {
					changes++
				}
			}
			return notifications == changes
		},
		gen.SliceOf(gen.IntRange(0, 4)),
	))

	properties.Property("restore always yields a valid state", prop.ForAll(
		func(subTab, clanSide int) bool {
			m := NewMachine()
			restored := m.Restore(State{SubTab: activity.SubTab(subTab), ClanSide: activity.ClanSide(clanSide)})
			return restored.SubTab.Valid() && restored.ClanSide.Valid() && restored == m.State()
		},
		gen.IntRange(-100, 100),
		gen.IntRange(-100, 100),
	))

	properties.Property("every state is reachable in one transition per axis", prop.ForAll(
		func(fromTab, fromSide, toTab, toSide int) bool {
			m := NewMachine()
			m.Restore(State{SubTab: activity.SubTab(fromTab), ClanSide: activity.ClanSide(fromSide)})
			m.SelectSubTab(activity.SubTab(toTab))
			m.SelectClanSide(activity.ClanSide(toSide))
			return m.State() == State{SubTab: activity.SubTab(toTab), ClanSide: activity.ClanSide(toSide)}
		},
		gen.IntRange(0, 2),
		gen.IntRange(0, 1),
		gen.IntRange(0, 2),
		gen.IntRange(0, 1),
	))

	properties.TestingRun(t)
}
