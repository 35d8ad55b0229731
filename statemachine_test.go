package stylegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateMachine(t *testing.T) {
	machine, err := NewStateMachine("idle",
		StateDefinition{
			Name: "idle",
			Events: []EventDefinition{
				{Name: "start", Target: "running"},
			},
		},
		StateDefinition{
			Name: "running",
			Events: []EventDefinition{
				{Name: "stop", Target: "idle", Action: "console.log(data)"},
			},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "idle", machine.InitialState())
	assert.Len(t, machine.States(), 2)

	edge, ok := machine.Transition("idle", "start")
	require.True(t, ok)
	assert.Equal(t, "running", edge.Target)

	_, ok = machine.Transition("idle", "stop")
	assert.False(t, ok)
}

func TestNewStateMachineValidation(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		states  []StateDefinition
		wantErr string
	}{
		{
			name:    "missing initial",
			initial: "",
			states:  []StateDefinition{{Name: "a"}},
			wantErr: "initial state is required",
		},
		{
			name:    "undefined initial",
			initial: "ghost",
			states:  []StateDefinition{{Name: "a"}},
			wantErr: `initial state "ghost" is not defined`,
		},
		{
			name:    "duplicate state",
			initial: "a",
			states: []StateDefinition{
				{Name: "a"},
				{Name: "a"},
			},
			wantErr: `duplicate state "a"`,
		},
		{
			name:    "duplicate event in one state",
			initial: "a",
			states: []StateDefinition{
				{Name: "a", Events: []EventDefinition{
					{Name: "go", Target: "b"},
					{Name: "go", Target: "a"},
				}},
				{Name: "b"},
			},
			wantErr: `duplicate event "go"`,
		},
		{
			name:    "undefined target",
			initial: "a",
			states: []StateDefinition{
				{Name: "a", Events: []EventDefinition{
					{Name: "go", Target: "nowhere"},
				}},
			},
			wantErr: `target "nowhere" is not defined`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStateMachine(tt.initial, tt.states...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStateMachineSameEventNameAcrossStates(t *testing.T) {
	// The same event name on different states is fine; only duplicates
	// within one state are authoring mistakes.
	_, err := NewStateMachine("a",
		StateDefinition{Name: "a", Events: []EventDefinition{{Name: "toggle", Target: "b"}}},
		StateDefinition{Name: "b", Events: []EventDefinition{{Name: "toggle", Target: "a"}}},
	)
	assert.NoError(t, err)
}

func TestStateMachineSelfTransition(t *testing.T) {
	machine, err := NewStateMachine("a",
		StateDefinition{Name: "a", Events: []EventDefinition{{Name: "ping", Target: "a"}}},
	)
	require.NoError(t, err)

	edge, ok := machine.Transition("a", "ping")
	require.True(t, ok)
	assert.Equal(t, "a", edge.Target)
}
