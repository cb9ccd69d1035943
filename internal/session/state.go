// Package session holds the calculator's UI state as a single value with
// pure transitions. The TUI applies them in response to messages.
package session

import (
	"errors"

	"github.com/akyairhashvil/roshtimer/internal/config"
	"github.com/akyairhashvil/roshtimer/internal/models"
	"github.com/akyairhashvil/roshtimer/internal/timecalc"
	"github.com/akyairhashvil/roshtimer/internal/util"
)

// Field is the per-tab input state.
type Field struct {
	Raw    string
	Err    error
	Cursor int
}

// State is everything the display surface needs to render a frame.
type State struct {
	Tab       models.Tab
	Fields    map[models.Tab]Field
	Results   models.CalculatedTimes
	Selection models.Selection
	Options   timecalc.Options

	lastToken uint64
}

func New(opts timecalc.Options) State {
	return State{
		Tab: models.TabRoshan,
		Fields: map[models.Tab]Field{
			models.TabRoshan: {},
			models.TabGlyph:  {},
		},
		Options: opts,
	}
}

// Field returns the input state for tab.
func (s State) Field(tab models.Tab) Field {
	return s.Fields[tab]
}

// Rows returns the copyable rows for tab.
func (s State) Rows(tab models.Tab) []models.ResultRow {
	return models.RowsFor(tab, s.Results)
}

// IsSelected reports whether row is the most recently copied one.
func (s State) IsSelected(row models.ResultRow) bool {
	return s.Selection.Active() && s.Selection.Text == row.CopyText
}

func (s State) withField(tab models.Tab, f Field) State {
	fields := make(map[models.Tab]Field, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}
	fields[tab] = f
	s.Fields = fields
	return s
}

// ApplyInputChange stores a new raw value for tab and clears its error.
func ApplyInputChange(s State, tab models.Tab, raw string) State {
	f := s.Field(tab)
	f.Raw = raw
	f.Err = nil
	return s.withField(tab, f)
}

// ApplyCalculate parses tab's input and updates that tab's results. On
// failure only the field error changes.
func ApplyCalculate(s State, tab models.Tab) (State, error) {
	f := s.Field(tab)
	parsed, err := timecalc.Parse(f.Raw, s.Options)
	if err != nil {
		f.Err = err
		return s.withField(tab, f), err
	}
	f.Err = nil
	s = s.withField(tab, f)
	switch tab {
	case models.TabRoshan:
		s.Results = s.Results.WithRoshan(timecalc.RoshanWindow(parsed, s.Options))
	case models.TabGlyph:
		s.Results = s.Results.WithGlyph(timecalc.GlyphTime(parsed, s.Options))
	}
	return s, nil
}

// ApplyCopy marks text as copied and returns the token its reset must carry.
func ApplyCopy(s State, text string) (State, uint64) {
	s.lastToken++
	s.Selection = models.Selection{Text: text, Token: s.lastToken}
	return s, s.lastToken
}

// ApplyCopyReset clears the selection if token still identifies it.
func ApplyCopyReset(s State, token uint64) State {
	if s.Selection.Token == token {
		s.Selection = models.Selection{}
	}
	return s
}

func ApplySwitchTab(s State, tab models.Tab) State {
	if _, ok := s.Fields[tab]; ok {
		s.Tab = tab
	}
	return s
}

// ApplyNextTab cycles through the tabs by delta.
func ApplyNextTab(s State, delta int) State {
	n := len(models.Tabs)
	idx := 0
	for i, t := range models.Tabs {
		if t == s.Tab {
			idx = i
		}
	}
	idx = ((idx+delta)%n + n) % n
	return ApplySwitchTab(s, models.Tabs[idx])
}

// ApplyMoveCursor moves tab's row cursor by delta within the visible rows.
func ApplyMoveCursor(s State, tab models.Tab, delta int) State {
	f := s.Field(tab)
	rows := len(s.Rows(tab))
	if rows == 0 {
		f.Cursor = 0
		return s.withField(tab, f)
	}
	f.Cursor = util.Clamp(f.Cursor+delta, 0, rows-1)
	return s.withField(tab, f)
}

// HelperCaption is the line shown under the input: the field error if any,
// otherwise the format hint.
func HelperCaption(s State, tab models.Tab) string {
	err := s.Field(tab).Err
	switch {
	case err == nil:
		return config.HelperCaption
	case errors.Is(err, timecalc.ErrEmptyInput):
		return "Field cannot be empty."
	case s.Options.Strict:
		return "Enter a valid time (MMSS)."
	default:
		return "Enter a valid time (MMSS, MM:SS, MM.SS or MM SS)."
	}
}
