package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/akyairhashvil/roshtimer/internal/config"
	"github.com/akyairhashvil/roshtimer/internal/models"
	"github.com/akyairhashvil/roshtimer/internal/session"
	"github.com/akyairhashvil/roshtimer/internal/timecalc"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ExitCodeError carries a process exit status out of a command.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string { return e.Err.Error() }

func (e *ExitCodeError) Unwrap() error { return e.Err }

func newCalcCmd(flags *rootFlags) *cobra.Command {
	var only string
	cmd := &cobra.Command{
		Use:   "calc <timer>",
		Short: "Print the respawn window and glyph time for a timer value",
		Example: `  roshtimer calc 4412
  roshtimer calc 44:12 --only roshan`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, closer, err := prepare(cmd, flags)
			if err != nil {
				return err
			}
			defer closer.Close()
			tabs, err := tabsFor(only)
			if err != nil {
				return err
			}
			return runCalc(cmd.OutOrStdout(), args[0], timecalc.OptionsFrom(settings), tabs)
		},
	}
	cmd.Flags().StringVar(&only, "only", "", "print only one calculator (roshan or glyph)")
	return cmd
}

func tabsFor(only string) ([]models.Tab, error) {
	switch strings.ToLower(strings.TrimSpace(only)) {
	case "":
		return models.Tabs, nil
	case "roshan", "rosh":
		return []models.Tab{models.TabRoshan}, nil
	case "glyph":
		return []models.Tab{models.TabGlyph}, nil
	default:
		return nil, fmt.Errorf("unknown calculator %q (want roshan or glyph)", only)
	}
}

// runCalc applies the same transitions as the UI and prints each row's
// copy text on its own line.
func runCalc(w io.Writer, raw string, opts timecalc.Options, tabs []models.Tab) error {
	s := session.New(opts)
	for _, tab := range tabs {
		s = session.ApplyInputChange(s, tab, raw)
		var err error
		s, err = session.ApplyCalculate(s, tab)
		if err != nil {
			log.Debug().Err(err).Str("input", raw).Msg("calc rejected input")
			return &ExitCodeError{Code: 2, Err: errors.New(session.HelperCaption(s, tab))}
		}
	}
	for _, tab := range tabs {
		for _, row := range s.Rows(tab) {
			if _, err := fmt.Fprintln(w, row.CopyText); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseFeedback(value string) (time.Duration, error) {
	d, err := config.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid --copy-feedback %q (want a duration such as %s)", value, config.CopyFeedbackDuration)
	}
	return d, nil
}
