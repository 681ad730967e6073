package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconMoon      = "☾"
	IconSun       = "☀"
	IconHeart     = "♥"
	IconHeartOpen = "♡"
	IconCamera    = "📷"
	IconBuilding  = "🏛"
	IconPin       = "📍"
	IconMail      = "✉"
	IconPhone     = "☎"
	IconSend      = "➤"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	CountFormat        = "%d"
)

// Layout sizing
const (
	CardMinWidth  float32 = 160
	CardMinHeight float32 = 96

	// Share of the canvas the photo viewer covers
	ViewerSizeRatio float32 = 0.8

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	// Gallery columns
	DesktopColumns         = 3
	MobilePortraitColumns  = 1
	MobileLandscapeColumns = 2
)

// Notification behavior
const (
	NotificationAutoHide = 2 * time.Second
)

// Tab indexes
const (
	TabHome = iota
	TabProfile
	TabContact
)
