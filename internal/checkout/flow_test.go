package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlow_NextAndBack(t *testing.T) {
	f := NewFlow(nil)

	state := f.State()
	assert.Equal(t, 0, state.Step)
	assert.Equal(t, "Product Selection", state.StepName)
	assert.False(t, state.Completed)

	state = f.Next()
	assert.Equal(t, "Details", state.StepName)

	state = f.Back()
	assert.Equal(t, "Product Selection", state.StepName)

	// Back at the first step is clamped.
	state = f.Back()
	assert.Equal(t, 0, state.Step)
}

func TestFlow_Completion(t *testing.T) {
	completions := 0
	f := NewFlow(func() { completions++ })

	// Walk to the last step.
	for i := 0; i < len(Steps)-1; i++ {
		f.Next()
	}
	state := f.State()
	assert.Equal(t, "Confirmation", state.StepName)
	assert.False(t, state.Completed)

	// Advancing from the last step completes the order.
	state = f.Next()
	assert.True(t, state.Completed)
	assert.Equal(t, 1, completions)

	// Completion fires exactly once; the flow is frozen afterwards.
	state = f.Next()
	assert.True(t, state.Completed)
	assert.Equal(t, 1, completions)

	state = f.Back()
	assert.Equal(t, len(Steps)-1, state.Step)
}

func TestFlow_Forms(t *testing.T) {
	f := NewFlow(nil)

	assert.Nil(t, f.Details())
	assert.Nil(t, f.Shipping())

	f.SetDetails(Details{FullName: "Jo Doe", Email: "jo@example.com"})
	f.SetShipping(Shipping{Address: "1 Main St", City: "Metz", PostalCode: "57000", Country: "FR"})

	d := f.Details()
	require.NotNil(t, d)
	assert.Equal(t, "Jo Doe", d.FullName)

	// Returned copies must not alias internal state.
	d.FullName = "mutated"
	assert.Equal(t, "Jo Doe", f.Details().FullName)

	s := f.Shipping()
	require.NotNil(t, s)
	assert.Equal(t, "Metz", s.City)
}

func TestStore_Get(t *testing.T) {
	hooks := make(map[string]int)
	s := NewStore(func(sessionID string) func() {
		return func() { hooks[sessionID]++ }
	})

	a := s.Get("sess-1")
	assert.Same(t, a, s.Get("sess-1"))
	assert.NotSame(t, a, s.Get("sess-2"))

	// Completing one session's flow only fires that session's hook.
	f := s.Get("sess-1")
	for i := 0; i <= len(Steps); i++ {
		f.Next()
	}
	assert.Equal(t, 1, hooks["sess-1"])
	assert.Zero(t, hooks["sess-2"])
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(nil)

	f := s.Get("sess-1")
	f.Next()

	s.Reset("sess-1")

	assert.Equal(t, 0, s.Get("sess-1").State().Step)
}
