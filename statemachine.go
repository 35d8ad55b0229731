package stylegen

import (
	"fmt"
	"sort"
)

// RawExpression is a verbatim JavaScript source fragment supplied by the
// machine author. The compiler embeds it into the generated script without
// validation or sandboxing; malformed fragments surface only when the script
// runs. Keep fragments free of unescaped backticks and newlines.
type RawExpression string

// EventDefinition declares one outgoing transition from a state.
type EventDefinition struct {
	Name   string
	Target string
	// Guard is an optional JS expression over the transition's data payload.
	// A falsy result aborts the transition.
	Guard RawExpression
	// Action is an optional JS statement run after the state change.
	Action RawExpression
}

// StateDefinition declares a state, its static data payload, and its events.
type StateDefinition struct {
	Name string
	// Data is serialized as a JS object literal on the state entry. Values
	// are raw fragments, so both literals and expressions work.
	Data   map[string]RawExpression
	Events []EventDefinition
}

// TransitionDefinition is a resolved (from, event) -> target edge.
type TransitionDefinition struct {
	From   string
	Event  string
	Target string
	Guard  RawExpression
	Action RawExpression
}

// StateMachine is a validated finite-state-machine definition ready for JS
// emission.
type StateMachine struct {
	initial     string
	states      []StateDefinition
	transitions map[string]map[string]TransitionDefinition
}

// NewStateMachine validates a definition: state names must be unique, event
// names must be unique within each state, every transition target and the
// initial state must name a defined state.
func NewStateMachine(initial string, states ...StateDefinition) (*StateMachine, error) {
	if initial == "" {
		return nil, fmt.Errorf("initial state is required")
	}

	byName := make(map[string]struct{}, len(states))
	for _, s := range states {
		if s.Name == "" {
			return nil, fmt.Errorf("state with empty name")
		}
		if _, dup := byName[s.Name]; dup {
			return nil, fmt.Errorf("duplicate state %q", s.Name)
		}
		byName[s.Name] = struct{}{}
	}

	if _, ok := byName[initial]; !ok {
		return nil, fmt.Errorf("initial state %q is not defined", initial)
	}

	transitions := make(map[string]map[string]TransitionDefinition, len(states))
	for _, s := range states {
		events := make(map[string]TransitionDefinition, len(s.Events))
		for _, e := range s.Events {
			if e.Name == "" {
				return nil, fmt.Errorf("state %q: event with empty name", s.Name)
			}
			if _, dup := events[e.Name]; dup {
				return nil, fmt.Errorf("state %q: duplicate event %q", s.Name, e.Name)
			}
			if _, ok := byName[e.Target]; !ok {
				return nil, fmt.Errorf("state %q event %q: target %q is not defined", s.Name, e.Name, e.Target)
			}
			events[e.Name] = TransitionDefinition{
				From:   s.Name,
				Event:  e.Name,
				Target: e.Target,
				Guard:  e.Guard,
				Action: e.Action,
			}
		}
		transitions[s.Name] = events
	}

	return &StateMachine{
		initial:     initial,
		states:      states,
		transitions: transitions,
	}, nil
}

// InitialState returns the machine's initial state name.
func (m *StateMachine) InitialState() string {
	return m.initial
}

// States returns the state definitions in declaration order.
func (m *StateMachine) States() []StateDefinition {
	return m.states
}

// Transition resolves the edge for (from, event).
func (m *StateMachine) Transition(from, event string) (TransitionDefinition, bool) {
	t, ok := m.transitions[from][event]
	return t, ok
}

// eventNames returns the sorted event names defined on a state, for
// deterministic emission.
func (m *StateMachine) eventNames(state string) []string {
	events := m.transitions[state]
	names := make([]string, 0, len(events))
	for name := range events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
