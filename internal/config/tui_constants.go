package config

// Layout constants.
const (
	// MinContentWidth is the narrowest width the panel is rendered at.
	MinContentWidth = 24

	// MaxContentWidth keeps the panel readable on wide terminals.
	MaxContentWidth = 64

	// InputWidth is the visible width of the timer text field.
	InputWidth = 20

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxInputLength is the character limit of the timer text field.
	MaxInputLength = 8
)

// Captions.
const (
	HelperCaption    = "Format: MMSS | Example: 4412"
	InputPlaceholder = "4412"
	InputLabel       = "Current timer"
	CopiedNotice     = "Text copied to clipboard!"
)
