package tui

import (
	"github.com/akyairhashvil/roshtimer/internal/config"
	"github.com/akyairhashvil/roshtimer/internal/util"
	"github.com/charmbracelet/x/ansi"
)

func truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// contentWidth is the panel width for a terminal of the given width. A zero
// width means no size has been reported yet.
func contentWidth(termWidth int) int {
	if termWidth <= 0 {
		return config.MaxContentWidth
	}
	return util.Clamp(termWidth-4, config.MinContentWidth, config.MaxContentWidth)
}
