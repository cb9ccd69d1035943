package tui

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/roshtimer/internal/clipboard/mocks"
	"github.com/akyairhashvil/roshtimer/internal/config"
	"github.com/akyairhashvil/roshtimer/internal/feedback"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

func calculatedModel(t *testing.T, w *mocks.MockWriter) (Model, func()) {
	t.Helper()
	m, clock := setupTestModel(t, w)
	m = typeText(t, m, "4412")
	m = pressKey(t, m, tea.KeyEnter)
	m = pressKey(t, m, tea.KeyDown)
	return m, func() { clock.Advance(config.CopyFeedbackDuration) }
}

func TestCopyMarksSelectionAndResets(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWriter(ctrl)
	w.EXPECT().Write(gomock.Any(), "Early time: 52:12").Return(nil)

	m, advance := calculatedModel(t, w)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected copy cmd")
	}
	m, resetCmd := send(t, m, cmd())
	if m.state.Selection.Text != "Early time: 52:12" {
		t.Fatalf("expected selection set, got %+v", m.state.Selection)
	}
	if resetCmd == nil {
		t.Fatalf("expected reset cmd")
	}

	advance()
	msg := resetCmd()
	if _, ok := msg.(feedback.ResetMsg); !ok {
		t.Fatalf("expected ResetMsg, got %T", msg)
	}
	m, _ = send(t, m, msg)
	if m.state.Selection.Active() {
		t.Fatalf("expected selection cleared after reset")
	}
}

func TestCopyRangeRowWithY(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWriter(ctrl)
	w.EXPECT().Write(gomock.Any(), "Rosh respawn: 52:12-55:12").Return(nil)

	m, _ := calculatedModel(t, w)
	m = pressKey(t, m, tea.KeyDown)
	m = pressKey(t, m, tea.KeyDown)
	m, cmd := pressRune(t, m, 'y')
	if cmd == nil {
		t.Fatalf("expected copy cmd")
	}
	m, _ = send(t, m, cmd())
	if m.state.Selection.Text != "Rosh respawn: 52:12-55:12" {
		t.Fatalf("unexpected selection %+v", m.state.Selection)
	}
}

func TestCopyFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWriter(ctrl)
	w.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("no clipboard"))

	m, _ := calculatedModel(t, w)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, next := send(t, m, cmd())
	if next != nil {
		t.Fatalf("failed copy should not schedule a reset")
	}
	if m.state.Selection.Active() {
		t.Fatalf("failed copy should not mark a selection")
	}
}

func TestNewerCopySupersedesPendingReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWriter(ctrl)
	w.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	m, advance := calculatedModel(t, w)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, firstReset := send(t, m, cmd())

	m = pressKey(t, m, tea.KeyDown)
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, secondReset := send(t, m, cmd())

	if msg := firstReset(); msg != nil {
		t.Fatalf("superseded reset should yield nil, got %#v", msg)
	}
	if m.state.Selection.Text != "Latest time: 55:12" {
		t.Fatalf("expected latest row selected, got %+v", m.state.Selection)
	}

	advance()
	m, _ = send(t, m, secondReset())
	if m.state.Selection.Active() {
		t.Fatalf("expected selection cleared")
	}
}

func TestStaleResetIgnored(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	m, _ = send(t, m, copyResultMsg{text: "Glyph time: 49:12"})
	token := m.state.Selection.Token
	m, _ = send(t, m, feedback.ResetMsg{Token: token - 1})
	if !m.state.Selection.Active() {
		t.Fatalf("stale reset cleared selection")
	}
}
