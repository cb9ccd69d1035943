// Package timecalc parses in-game timer input and derives the Roshan
// respawn window and glyph cooldown from it.
package timecalc

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/akyairhashvil/roshtimer/internal/config"
	"github.com/akyairhashvil/roshtimer/internal/models"
)

var (
	compactRegex = regexp.MustCompile(`^(\d+)(\d{2})$`)
	dottedRegex  = regexp.MustCompile(`(\d+)\.(\d+)`)
	spaceRegex   = regexp.MustCompile(`\s`)
	digitsRegex  = regexp.MustCompile(`^\d+$`)
	strictRegex  = regexp.MustCompile(`^([1-9]\d*|\d{1,2})([0-5]\d)$`)
)

// Options controls validation strictness and the game offsets.
type Options struct {
	Strict        bool
	MaxMinutes    int
	RoshanEarly   int
	RoshanLatest  int
	GlyphCooldown int
}

func DefaultOptions() Options {
	return Options{
		MaxMinutes:    config.MaxTimerMinutes,
		RoshanEarly:   config.RoshanEarlyOffset,
		RoshanLatest:  config.RoshanLatestOffset,
		GlyphCooldown: config.GlyphCooldown,
	}
}

// OptionsFrom maps runtime settings onto calculator options.
func OptionsFrom(s config.Settings) Options {
	return Options{
		Strict:        s.Strict,
		MaxMinutes:    s.MaxMinutes,
		RoshanEarly:   s.RoshanEarly,
		RoshanLatest:  s.RoshanLatest,
		GlyphCooldown: s.GlyphCooldown,
	}
}

// largestOffset is the biggest number of minutes any result adds to the
// parsed time.
func (o Options) largestOffset() int {
	return max(o.RoshanEarly, o.RoshanLatest, o.GlyphCooldown, 0)
}

// rewrite applies the separator rewrites in order. Each step works on the
// output of the previous one.
func rewrite(raw string) string {
	s := compactRegex.ReplaceAllString(raw, "$1:$2")
	if loc := dottedRegex.FindStringSubmatchIndex(s); loc != nil {
		s = s[:loc[0]] + s[loc[2]:loc[3]] + ":" + s[loc[4]:loc[5]] + s[loc[1]:]
	}
	if loc := spaceRegex.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + ":" + s[loc[1]:]
	}
	return s
}

// Normalize converts any accepted timer shape ("4412", "44:12", "44.12",
// "44 12") into minutes and seconds.
func Normalize(raw string) (models.ParsedTime, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.ParsedTime{}, ErrEmptyInput
	}
	parts := strings.Split(rewrite(trimmed), ":")
	if len(parts) != 2 {
		return models.ParsedTime{}, ErrInvalidFormat
	}
	if !digitsRegex.MatchString(parts[0]) || !digitsRegex.MatchString(parts[1]) {
		return models.ParsedTime{}, ErrInvalidFormat
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return models.ParsedTime{}, ErrInvalidFormat
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil || seconds > config.MaxSeconds {
		return models.ParsedTime{}, ErrInvalidFormat
	}
	return models.ParsedTime{Minutes: minutes, Seconds: seconds}, nil
}

// Validate runs the pre-normalization checks. Strict mode only accepts the
// compact MMSS shape with minutes up to opts.MaxMinutes.
func Validate(raw string, opts Options) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyInput
	}
	if !opts.Strict {
		return nil
	}
	match := strictRegex.FindStringSubmatch(raw)
	if match == nil {
		return ErrInvalidFormat
	}
	minutes, err := strconv.Atoi(match[1])
	if err != nil || minutes > opts.MaxMinutes {
		return ErrInvalidFormat
	}
	return nil
}

// Parse validates and normalizes raw. Errors wrap ErrEmptyInput or
// ErrInvalidFormat. Minutes too large to take every offset without
// overflowing int are rejected.
func Parse(raw string, opts Options) (models.ParsedTime, error) {
	if err := Validate(raw, opts); err != nil {
		return models.ParsedTime{}, wrapInputErr("validate", raw, err)
	}
	p, err := Normalize(raw)
	if err != nil {
		return models.ParsedTime{}, wrapInputErr("normalize", raw, err)
	}
	if p.Minutes > math.MaxInt-opts.largestOffset() {
		return models.ParsedTime{}, wrapInputErr("normalize", raw, ErrInvalidFormat)
	}
	return p, nil
}
