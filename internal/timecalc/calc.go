package timecalc

import (
	"fmt"

	"github.com/akyairhashvil/roshtimer/internal/models"
)

// FormatClock renders elapsed game time as M:SS. Minutes are never padded
// and never roll over into hours.
func FormatClock(minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func offset(p models.ParsedTime, minutes int) string {
	return FormatClock(p.Minutes+minutes, p.Seconds)
}

// RoshanWindow returns the earliest and latest respawn times for a kill at p.
func RoshanWindow(p models.ParsedTime, opts Options) models.RoshanWindow {
	return models.RoshanWindow{
		Early:  offset(p, opts.RoshanEarly),
		Latest: offset(p, opts.RoshanLatest),
	}
}

// GlyphTime returns when a glyph used at p is available again.
func GlyphTime(p models.ParsedTime, opts Options) string {
	return offset(p, opts.GlyphCooldown)
}
