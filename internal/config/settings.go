package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings are the runtime knobs layered from defaults, the YAML config
// file, the environment and finally command-line flags.
type Settings struct {
	Strict        bool          `yaml:"strict"`
	MaxMinutes    int           `yaml:"max_minutes"`
	RoshanEarly   int           `yaml:"roshan_early"`
	RoshanLatest  int           `yaml:"roshan_latest"`
	GlyphCooldown int           `yaml:"glyph_cooldown"`
	CopyFeedback  time.Duration `yaml:"copy_feedback"`
	Clipboard     bool          `yaml:"clipboard"`
	LogFile       string        `yaml:"log_file"`
	LogLevel      string        `yaml:"log_level"`
}

func Defaults() Settings {
	return Settings{
		MaxMinutes:    MaxTimerMinutes,
		RoshanEarly:   RoshanEarlyOffset,
		RoshanLatest:  RoshanLatestOffset,
		GlyphCooldown: GlyphCooldown,
		CopyFeedback:  CopyFeedbackDuration,
		Clipboard:     true,
		LogLevel:      "info",
	}
}

// LoadFile overlays the YAML file at path onto s. A missing file is not an
// error; keys absent from the file keep their current values.
func LoadFile(s Settings, path string) (Settings, error) {
	if strings.TrimSpace(path) == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse config: %w", err)
	}
	return s, nil
}

// ApplyEnv overlays ROSHTIMER_* variables. Malformed values are ignored.
func ApplyEnv(s Settings, getenv func(string) string) Settings {
	if getenv == nil {
		getenv = os.Getenv
	}
	s.Strict = getEnvAsBool(getenv, "STRICT", s.Strict)
	s.MaxMinutes = getEnvAsInt(getenv, "MAX_MINUTES", s.MaxMinutes)
	s.RoshanEarly = getEnvAsInt(getenv, "ROSHAN_EARLY", s.RoshanEarly)
	s.RoshanLatest = getEnvAsInt(getenv, "ROSHAN_LATEST", s.RoshanLatest)
	s.GlyphCooldown = getEnvAsInt(getenv, "GLYPH_COOLDOWN", s.GlyphCooldown)
	s.CopyFeedback = getEnvAsDuration(getenv, "COPY_FEEDBACK", s.CopyFeedback)
	s.Clipboard = getEnvAsBool(getenv, "CLIPBOARD", s.Clipboard)
	s.LogFile = getEnv(getenv, "LOG_FILE", s.LogFile)
	s.LogLevel = getEnv(getenv, "LOG_LEVEL", s.LogLevel)
	return s
}

// Validate rejects settings that would make the calculator misbehave.
func (s Settings) Validate() error {
	if s.MaxMinutes <= 0 {
		return fmt.Errorf("max_minutes must be positive, got %d", s.MaxMinutes)
	}
	if s.RoshanEarly < 0 || s.RoshanLatest < 0 || s.GlyphCooldown < 0 {
		return fmt.Errorf("offsets must not be negative")
	}
	if s.RoshanEarly > s.RoshanLatest {
		return fmt.Errorf("roshan_early (%d) must not exceed roshan_latest (%d)", s.RoshanEarly, s.RoshanLatest)
	}
	if s.CopyFeedback < MinCopyFeedback {
		return fmt.Errorf("copy_feedback must be at least %s, got %s", MinCopyFeedback, s.CopyFeedback)
	}
	return nil
}

func getEnv(getenv func(string) string, key, defaultValue string) string {
	if value := strings.TrimSpace(getenv(EnvPrefix + key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(getenv func(string) string, key string, defaultValue int) int {
	if value := strings.TrimSpace(getenv(EnvPrefix + key)); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(getenv func(string) string, key string, defaultValue bool) bool {
	if value := strings.TrimSpace(getenv(EnvPrefix + key)); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(getenv func(string) string, key string, defaultValue time.Duration) time.Duration {
	if value := strings.TrimSpace(getenv(EnvPrefix + key)); value != "" {
		if d, err := ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// ParseDuration accepts Go durations ("1500ms", "2s") or bare milliseconds.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}
	ms, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
