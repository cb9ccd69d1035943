package tui

import (
	"context"
	"errors"
	"time"

	"github.com/akyairhashvil/roshtimer/internal/clipboard"
	"github.com/akyairhashvil/roshtimer/internal/config"
	"github.com/akyairhashvil/roshtimer/internal/feedback"
	"github.com/akyairhashvil/roshtimer/internal/models"
	"github.com/akyairhashvil/roshtimer/internal/session"
	"github.com/akyairhashvil/roshtimer/internal/timecalc"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Focus is the part of a tab that receives key presses.
type Focus int

const (
	FocusInput Focus = iota
	FocusResults
)

// Options wires the model to its collaborators.
type Options struct {
	Calc         timecalc.Options
	CopyFeedback time.Duration
	Clipboard    clipboard.Writer
	Resets       *feedback.Scheduler
}

// Model is the root bubbletea model: a tab per calculator sharing one
// result bag.
type Model struct {
	ctx          context.Context
	state        session.State
	inputs       [2]textinput.Model
	focus        Focus
	clipboard    clipboard.Writer
	resets       *feedback.Scheduler
	copyFeedback time.Duration
	keys         keyMap
	help         help.Model
	theme        Theme
	width        int
	height       int
}

func NewModel(ctx context.Context, opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.Discard{}
	}
	if opts.Resets == nil {
		opts.Resets = feedback.NewScheduler(nil)
	}
	if opts.CopyFeedback <= 0 {
		opts.CopyFeedback = config.CopyFeedbackDuration
	}
	m := Model{
		ctx:          ctx,
		state:        session.New(opts.Calc),
		clipboard:    opts.Clipboard,
		resets:       opts.Resets,
		copyFeedback: opts.CopyFeedback,
		keys:         newKeyMap(),
		help:         help.New(),
		theme:        DefaultTheme,
	}
	for _, tab := range models.Tabs {
		ti := textinput.New()
		ti.Placeholder = config.InputPlaceholder
		ti.CharLimit = config.MaxInputLength
		ti.Width = config.InputWidth
		ti.Prompt = ""
		m.inputs[tab] = ti
	}
	m.inputs[m.state.Tab].Focus()
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// State exposes the current session state.
func (m Model) State() session.State { return m.state }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = contentWidth(m.width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case copyResultMsg:
		return m.handleCopyResult(msg)
	case feedback.ResetMsg:
		m.state = session.ApplyCopyReset(m.state, msg.Token)
		return m, nil
	}
	return m.updateInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab(-1)
	}
	if m.focus == FocusResults {
		return m.handleResultsKey(msg)
	}
	return m.handleInputKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	tab := m.state.Tab
	switch {
	case key.Matches(msg, m.keys.Calculate):
		var err error
		m.state, err = session.ApplyCalculate(m.state, tab)
		if err != nil {
			log.Debug().Err(err).Str("tab", tab.String()).Msg("calculation rejected")
		}
		return m, nil
	case msg.Type == tea.KeyDown:
		if len(m.state.Rows(tab)) == 0 {
			return m, nil
		}
		return m.setFocus(FocusResults)
	}
	return m.updateInput(msg)
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	tab := m.state.Tab
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		return m.setFocus(FocusInput)
	case key.Matches(msg, m.keys.Up):
		if m.state.Field(tab).Cursor == 0 {
			return m.setFocus(FocusInput)
		}
		m.state = session.ApplyMoveCursor(m.state, tab, -1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.state = session.ApplyMoveCursor(m.state, tab, 1)
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		return m, copyCmd(m.ctx, m.clipboard, row.CopyText)
	}
	return m, nil
}

func (m Model) handleCopyResult(msg copyResultMsg) (Model, tea.Cmd) {
	if errors.Is(msg.err, clipboard.ErrDisabled) {
		log.Debug().Str("text", msg.text).Msg("clipboard disabled, copy skipped")
		return m, nil
	}
	if msg.err != nil {
		log.Warn().Err(msg.err).Str("text", msg.text).Msg("clipboard write failed")
		return m, nil
	}
	var token uint64
	m.state, token = session.ApplyCopy(m.state, msg.text)
	return m, m.resets.Schedule(token, m.copyFeedback)
}

// updateInput forwards msg to the active text field and records any change
// to its value.
func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	tab := m.state.Tab
	var cmd tea.Cmd
	m.inputs[tab], cmd = m.inputs[tab].Update(msg)
	if v := m.inputs[tab].Value(); v != m.state.Field(tab).Raw {
		m.state = session.ApplyInputChange(m.state, tab, v)
	}
	return m, cmd
}

func (m Model) switchTab(delta int) (Model, tea.Cmd) {
	m.inputs[m.state.Tab].Blur()
	m.state = session.ApplyNextTab(m.state, delta)
	m.focus = FocusInput
	return m, m.inputs[m.state.Tab].Focus()
}

func (m Model) setFocus(f Focus) (Model, tea.Cmd) {
	m.focus = f
	if f == FocusInput {
		return m, m.inputs[m.state.Tab].Focus()
	}
	m.inputs[m.state.Tab].Blur()
	m.state = session.ApplyMoveCursor(m.state, m.state.Tab, 0)
	return m, nil
}

func (m Model) currentRow() (models.ResultRow, bool) {
	rows := m.state.Rows(m.state.Tab)
	cursor := m.state.Field(m.state.Tab).Cursor
	if cursor < 0 || cursor >= len(rows) {
		return models.ResultRow{}, false
	}
	return rows[cursor], true
}

func (m Model) quit() (Model, tea.Cmd) {
	m.resets.Stop()
	return m, tea.Quit
}
