package tui

import (
	"context"

	"github.com/akyairhashvil/roshtimer/internal/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct {
	text string
	err  error
}

func copyCmd(ctx context.Context, w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{text: text, err: w.Write(ctx, text)}
	}
}
