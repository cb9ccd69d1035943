package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsValidate(t *testing.T) {
	s := Defaults()
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if s.Strict {
		t.Fatalf("strict validation should be off by default")
	}
	if s.CopyFeedback != CopyFeedbackDuration {
		t.Fatalf("CopyFeedback = %s, want %s", s.CopyFeedback, CopyFeedbackDuration)
	}
}

func TestLoadFileMissingKeepsDefaults(t *testing.T) {
	s, err := LoadFile(Defaults(), filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	body := "strict: true\nmax_minutes: 150\ncopy_feedback: 2s\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	s, err := LoadFile(Defaults(), path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !s.Strict || s.MaxMinutes != 150 || s.CopyFeedback != 2*time.Second {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if s.RoshanLatest != RoshanLatestOffset {
		t.Fatalf("absent key should keep default, got %d", s.RoshanLatest)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("strict: [oops"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadFile(Defaults(), path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"ROSHTIMER_STRICT":         "true",
		"ROSHTIMER_MAX_MINUTES":    "90",
		"ROSHTIMER_COPY_FEEDBACK":  "2000",
		"ROSHTIMER_CLIPBOARD":      "false",
		"ROSHTIMER_GLYPH_COOLDOWN": "nope",
	}
	s := ApplyEnv(Defaults(), func(k string) string { return env[k] })
	if !s.Strict {
		t.Fatalf("expected strict from env")
	}
	if s.MaxMinutes != 90 {
		t.Fatalf("MaxMinutes = %d, want 90", s.MaxMinutes)
	}
	if s.CopyFeedback != 2*time.Second {
		t.Fatalf("CopyFeedback = %s, want 2s", s.CopyFeedback)
	}
	if s.Clipboard {
		t.Fatalf("expected clipboard disabled from env")
	}
	if s.GlyphCooldown != GlyphCooldown {
		t.Fatalf("malformed value should be ignored, got %d", s.GlyphCooldown)
	}
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero max minutes", func(s *Settings) { s.MaxMinutes = 0 }},
		{"negative glyph", func(s *Settings) { s.GlyphCooldown = -1 }},
		{"early after latest", func(s *Settings) { s.RoshanEarly = 12 }},
		{"feedback too short", func(s *Settings) { s.CopyFeedback = time.Millisecond }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := Defaults()
			tc.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"2s", 2 * time.Second, true},
		{"1500ms", 1500 * time.Millisecond, true},
		{" 1500 ", 1500 * time.Millisecond, true},
		{"soon", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDuration(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseDuration(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDuration(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
