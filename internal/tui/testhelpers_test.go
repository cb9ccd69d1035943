package tui

import (
	"context"
	"testing"

	"github.com/akyairhashvil/roshtimer/internal/clipboard"
	"github.com/akyairhashvil/roshtimer/internal/feedback"
	"github.com/akyairhashvil/roshtimer/internal/timecalc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

func setupTestModel(t *testing.T, w clipboard.Writer) (Model, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	resets := feedback.NewScheduler(clock)
	t.Cleanup(resets.Stop)
	m := NewModel(context.Background(), Options{
		Calc:      timecalc.DefaultOptions(),
		Clipboard: w,
		Resets:    resets,
	})
	m.width = 80
	return m, clock
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return updated, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func pressKey(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: k})
	return m
}

func pressRune(t *testing.T, m Model, r rune) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}
