package ui

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Window sizing
const (
	WindowMinWidth  float32 = 600
	WindowMinHeight float32 = 450
)

// Dialog sizing
const (
	DialogWidth  float32 = 640
	DialogHeight float32 = 480

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 320
)

// Progress bar range
const (
	ProgressMin = 0
	ProgressMax = 100
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)
