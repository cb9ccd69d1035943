package models

import "fmt"

// Tab identifies which calculator is shown.
type Tab int

const (
	TabRoshan Tab = iota
	TabGlyph
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabRoshan, TabGlyph}

func (t Tab) String() string {
	switch t {
	case TabRoshan:
		return "Roshan"
	case TabGlyph:
		return "Glyph"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// ParsedTime is a normalized in-game timer value.
type ParsedTime struct {
	Minutes int
	Seconds int
}

// RoshanWindow is the earliest and latest respawn timestamp.
type RoshanWindow struct {
	Early  string
	Latest string
}

// CalculatedTimes is the display bag shared by both tabs. An empty field
// has not been calculated yet.
type CalculatedTimes struct {
	Early  string
	Latest string
	Glyph  string
}

func (c CalculatedTimes) HasEarly() bool  { return c.Early != "" }
func (c CalculatedTimes) HasLatest() bool { return c.Latest != "" }
func (c CalculatedTimes) HasGlyph() bool  { return c.Glyph != "" }

// HasRange reports whether the combined respawn range can be shown.
func (c CalculatedTimes) HasRange() bool { return c.HasEarly() && c.HasLatest() }

// WithRoshan replaces the respawn fields and keeps the glyph field.
func (c CalculatedTimes) WithRoshan(w RoshanWindow) CalculatedTimes {
	c.Early = w.Early
	c.Latest = w.Latest
	return c
}

// WithGlyph replaces the glyph field and keeps the respawn fields.
func (c CalculatedTimes) WithGlyph(glyph string) CalculatedTimes {
	c.Glyph = glyph
	return c
}

// Selection marks the most recently copied row text. Token identifies the
// copy that set it so a stale reset cannot clear a newer selection.
type Selection struct {
	Text  string
	Token uint64
}

func (s Selection) Active() bool { return s.Text != "" }
