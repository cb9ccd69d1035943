package testutil

import (
	"github.com/akyairhashvil/roshtimer/internal/models"
	"github.com/akyairhashvil/roshtimer/internal/session"
	"github.com/akyairhashvil/roshtimer/internal/timecalc"
)

// StateBuilder provides fluent API for creating test session states.
type StateBuilder struct {
	state session.State
}

func NewState() *StateBuilder {
	return &StateBuilder{state: session.New(timecalc.DefaultOptions())}
}

func (b *StateBuilder) Strict() *StateBuilder {
	b.state.Options.Strict = true
	return b
}

func (b *StateBuilder) WithTab(tab models.Tab) *StateBuilder {
	b.state = session.ApplySwitchTab(b.state, tab)
	return b
}

func (b *StateBuilder) WithInput(tab models.Tab, raw string) *StateBuilder {
	b.state = session.ApplyInputChange(b.state, tab, raw)
	return b
}

// Calculated enters raw on tab and runs the calculation. Invalid input
// leaves the field error set, as in the UI.
func (b *StateBuilder) Calculated(tab models.Tab, raw string) *StateBuilder {
	b.state = session.ApplyInputChange(b.state, tab, raw)
	b.state, _ = session.ApplyCalculate(b.state, tab)
	return b
}

func (b *StateBuilder) Copied(text string) *StateBuilder {
	b.state, _ = session.ApplyCopy(b.state, text)
	return b
}

func (b *StateBuilder) Build() session.State {
	return b.state
}
