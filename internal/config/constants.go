package config

import "time"

// Game offsets, in minutes after the entered timer value.
const (
	RoshanEarlyOffset  = 8
	RoshanLatestOffset = 11
	GlyphCooldown      = 5
)

// Timer input limits.
const (
	// MaxTimerMinutes caps the minutes accepted by strict validation.
	// Matches look short of two hours; longer games can raise it.
	MaxTimerMinutes = 119

	// MaxSeconds is the largest seconds component accepted in any mode.
	MaxSeconds = 59
)

// Copy feedback.
const (
	CopyFeedbackDuration = 1000 * time.Millisecond
	MinCopyFeedback      = 100 * time.Millisecond
)

// Application settings.
const (
	AppName        = "roshtimer"
	ConfigFileName = "config.yaml"
	LogFileName    = "roshtimer.log"
	EnvPrefix      = "ROSHTIMER_"
)
