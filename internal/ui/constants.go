package ui

// Window sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 420

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 380
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconMusic    = "🎵"
	IconVideo    = "🎬"
	IconLanguage = "🌐"
)

// Progress bar range, in percent
const (
	ProgressBarMin = 0.0
	ProgressBarMax = 100.0
)

// NotificationContentMax bounds the body of a desktop notification
const NotificationContentMax = 120
