package selection

import (
	"errors"
	"fmt"
	"sync"

	"clashberry/internal/domain/activity"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidSubTab is returned when selecting an unknown sub-tab
	ErrInvalidSubTab = errors.New("invalid sub-tab")

	// ErrInvalidClanSide is returned when selecting an unknown clan side
	ErrInvalidClanSide = errors.New("invalid clan side")
)

// State is the current selection. It serializes to the same integer keys the
// activity view persists across suspension.
type State struct {
	SubTab   activity.SubTab   `json:"subTab"`
	ClanSide activity.ClanSide `json:"clanSide"`
}

// Default returns the selection shown on first display
func Default() State {
	return State{SubTab: activity.Attacks, ClanSide: activity.Own}
}

// Normalize clamps each out-of-range axis back to its default
func (s State) Normalize() State {
	def := Default()
	if !s.SubTab.Valid() {
		s.SubTab = def.SubTab
	}
	if !s.ClanSide.Valid() {
		s.ClanSide = def.ClanSide
	}
	return s
}

// Listener receives the new state after each selection change
type Listener func(State)

type subscription struct {
	id       int
	listener Listener
}

// Machine tracks the sub-tab and clan side selections. Every transition that
// changes the state notifies each subscriber once; no-op transitions notify
// nobody. Listeners run outside the machine's lock, so they may read the
// machine or trigger further transitions.
type Machine struct {
	mu            sync.Mutex
	state         State
	subscriptions []subscription
	nextID        int
}

// NewMachine creates a machine in the default state
func NewMachine() *Machine {
	return &Machine{state: Default()}
}

// State returns the current selection
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SelectSubTab switches the sub-tab, keeping the clan side
func (m *Machine) SelectSubTab(tab activity.SubTab) (State, error) {
	if !tab.Valid() {
		return m.State(), fmt.Errorf("%w: %d", ErrInvalidSubTab, tab)
	}
	return m.transition(func(s State) State {
		s.SubTab = tab
		return s
	}), nil
}

// SelectClanSide switches the clan side, keeping the sub-tab
func (m *Machine) SelectClanSide(side activity.ClanSide) (State, error) {
	if !side.Valid() {
		return m.State(), fmt.Errorf("%w: %d", ErrInvalidClanSide, side)
	}
	return m.transition(func(s State) State {
		s.ClanSide = side
		return s
	}), nil
}

// Snapshot returns the state to persist across suspension
func (m *Machine) Snapshot() State {
	return m.State()
}

// Restore installs a persisted state. Out-of-range values are clamped to
// their defaults rather than rejected.
func (m *Machine) Restore(s State) State {
	restored := s.Normalize()
	if restored != s {
		log.Debug().
			Int("sub_tab", int(s.SubTab)).
			Int("clan_side", int(s.ClanSide)).
			Msg("Clamped out-of-range selection during restore")
	}
	return m.transition(func(State) State { return restored })
}

// Subscribe registers a listener and returns a function that removes it
func (m *Machine) Subscribe(l Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subscriptions = append(m.subscriptions, subscription{id: id, listener: l})

	var once sync.Once
	return func() {
		once.Do(func() { m.unsubscribe(id) })
	}
}

func (m *Machine) unsubscribe(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscriptions {
		if sub.id == id {
			m.subscriptions = append(m.subscriptions[:i:i], m.subscriptions[i+1:]...)
			return
		}
	}
}

// transition applies next to the current state and notifies subscribers if
// the state changed
func (m *Machine) transition(next func(State) State) State {
	m.mu.Lock()
	updated := next(m.state)
	if updated == m.state {
		m.mu.Unlock()
		return updated
	}
	m.state = updated
	listeners := make([]Listener, len(m.subscriptions))
	for i, sub := range m.subscriptions {
		listeners[i] = sub.listener
	}
	m.mu.Unlock()

	for _, l := range listeners {
		l(updated)
	}
	return updated
}
