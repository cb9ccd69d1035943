// Package commands wires settings, logging and the UI into cobra commands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/roshtimer/internal/clipboard"
	"github.com/akyairhashvil/roshtimer/internal/config"
	"github.com/akyairhashvil/roshtimer/internal/feedback"
	"github.com/akyairhashvil/roshtimer/internal/timecalc"
	"github.com/akyairhashvil/roshtimer/internal/tui"
	"github.com/akyairhashvil/roshtimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("stdout is not a terminal; use the calc command")

type rootFlags struct {
	configPath   string
	strict       bool
	maxMinutes   int
	copyFeedback string
	noClipboard  bool
	logFile      string
	logLevel     string
}

// NewRootCmd builds the roshtimer command tree. The root command runs the
// interactive calculator.
func NewRootCmd(version string) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Roshan respawn and glyph cooldown calculator for Dota 2",
		Long: `roshtimer turns the current game timer into the Roshan respawn window
(8 to 11 minutes later) and the glyph cooldown (5 minutes later), and
copies a ready-to-paste line to the clipboard.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, closer, err := prepare(cmd, flags)
			if err != nil {
				return err
			}
			defer closer.Close()
			return runTUI(cmd.Context(), settings)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/roshtimer/config.yaml)")
	pf.BoolVar(&flags.strict, "strict", false, "accept only the compact MMSS form")
	pf.IntVar(&flags.maxMinutes, "max-minutes", config.MaxTimerMinutes, "largest minutes value accepted in strict mode")
	pf.StringVar(&flags.copyFeedback, "copy-feedback", "", "how long a copied row stays highlighted (e.g. 1s, 1500ms)")
	pf.BoolVar(&flags.noClipboard, "no-clipboard", false, "do not touch the system clipboard")
	pf.StringVar(&flags.logFile, "log-file", "", "log file (default $XDG_DATA_HOME/roshtimer/roshtimer.log)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newCalcCmd(flags))
	return root
}

// prepare layers defaults, config file, environment and flags, then sets up
// logging. The returned closer must be closed when the command finishes.
func prepare(cmd *cobra.Command, flags *rootFlags) (config.Settings, io.Closer, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not load .env file: %v\n", err)
	}

	path := flags.configPath
	if path == "" {
		path = filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
	}
	settings, err := config.LoadFile(config.Defaults(), path)
	if err != nil {
		return settings, nil, err
	}
	settings = config.ApplyEnv(settings, os.Getenv)
	settings, err = applyFlags(cmd, flags, settings)
	if err != nil {
		return settings, nil, err
	}
	if err := settings.Validate(); err != nil {
		return settings, nil, fmt.Errorf("invalid settings: %w", err)
	}

	if settings.LogFile == "" {
		settings.LogFile = filepath.Join(util.DataDir(config.AppName), config.LogFileName)
	}
	closer, err := util.SetupLogging(settings.LogFile, settings.LogLevel)
	if err != nil {
		return settings, nil, fmt.Errorf("setting up logging: %w", err)
	}
	log.Info().
		Bool("strict", settings.Strict).
		Int("max_minutes", settings.MaxMinutes).
		Dur("copy_feedback", settings.CopyFeedback).
		Bool("clipboard", settings.Clipboard).
		Msg("settings loaded")
	return settings, closer, nil
}

// applyFlags overrides settings only with flags the user actually set.
func applyFlags(cmd *cobra.Command, flags *rootFlags, s config.Settings) (config.Settings, error) {
	changed := cmd.Flags().Changed
	if changed("strict") {
		s.Strict = flags.strict
	}
	if changed("max-minutes") {
		s.MaxMinutes = flags.maxMinutes
	}
	if changed("copy-feedback") {
		d, err := parseFeedback(flags.copyFeedback)
		if err != nil {
			return s, err
		}
		s.CopyFeedback = d
	}
	if changed("no-clipboard") {
		s.Clipboard = !flags.noClipboard
	}
	if changed("log-file") {
		s.LogFile = flags.logFile
	}
	if changed("log-level") {
		s.LogLevel = flags.logLevel
	}
	return s, nil
}

func runTUI(ctx context.Context, settings config.Settings) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var writer clipboard.Writer = clipboard.Discard{}
	if settings.Clipboard {
		writer = clipboard.NewSystem()
	}
	resets := feedback.NewScheduler(nil)
	defer resets.Stop()

	model := tui.NewModel(ctx, tui.Options{
		Calc:         timecalc.OptionsFrom(settings),
		CopyFeedback: settings.CopyFeedback,
		Clipboard:    writer,
		Resets:       resets,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		util.LogError("program exited with error", err)
		return err
	}
	return nil
}
