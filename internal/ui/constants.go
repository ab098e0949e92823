package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconClose    = "×"
	IconLibrary  = "☰"
	IconReveal   = "📂"
	IconExternal = "↗"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	WindowTitleFormat  = "%s" + MiddleDotSeparator + "%s"
)

// Layout sizing
const (
	RowMinWidth  float32 = 220
	RowMinHeight float32 = 48

	LibrarySplit           = 0.28
	PageEntryWidth float32 = 56

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Page view behavior
const (
	// WheelPanStep scales wheel deltas into pan distance
	WheelPanStep float32 = 1.0
)

// Debounce durations
const (
	LibrarySearchDebounce = 300 * time.Millisecond
)
