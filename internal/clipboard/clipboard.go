// Package clipboard writes result lines to the system clipboard.
package clipboard

//go:generate mockgen -source=clipboard.go -destination=mocks/mock_writer.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/rs/zerolog/log"
)

var (
	ErrUnavailable = errors.New("no clipboard available")
	ErrDisabled    = errors.New("clipboard disabled")
)

// Writer is the clipboard sink used by the UI.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// System writes through the platform clipboard and falls back to an OSC 52
// escape sequence on the controlling terminal, which also works over SSH.
type System struct {
	native      func(string) error
	unsupported bool
	openTTY     func() (io.WriteCloser, error)
	getenv      func(string) string
}

func NewSystem() *System {
	return &System{
		native:      clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
		openTTY:     openControllingTTY,
		getenv:      os.Getenv,
	}
}

func (s *System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.unsupported && s.native != nil {
		err := s.native(text)
		if err == nil {
			return nil
		}
		log.Debug().Err(err).Msg("native clipboard failed, trying OSC 52")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.writeOSC52(text)
}

func (s *System) writeOSC52(text string) error {
	if s.openTTY == nil {
		return ErrUnavailable
	}
	tty, err := s.openTTY()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer tty.Close()

	seq := osc52.New(text)
	term := s.getenv("TERM")
	switch {
	case s.getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(tty); err != nil {
		return fmt.Errorf("write osc52: %w", err)
	}
	return nil
}

func openControllingTTY() (io.WriteCloser, error) {
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

// Discard stores nothing and reports ErrDisabled so callers never claim a
// copy happened. Used with --no-clipboard.
type Discard struct{}

func (Discard) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrDisabled
}
