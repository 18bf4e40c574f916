package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconRefresh  = "↻"
	IconCopy     = "📋"
	IconClose    = "×"
	IconError    = "❌"
	IconSuccess  = "✅"
	IconSearch   = "🔍"
	IconSave     = "💾"
	IconSaved    = "✓"
	IconExplore  = "🧭"
	IconSafe     = "🛡"
	IconUnsafe   = "⚠"
	IconExpand   = "▾"
	IconCollapse = "▴"
	IconDelete   = "🗑️"
	IconRobot    = "🤖"
	IconPush     = "⬆"
	IconFire     = "🔥"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	SidebarWidth float32 = 180

	ScrapePanelMinWidth  float32 = 360
	ScrapePanelMinHeight float32 = 64

	TrendRowMinWidth  float32 = 420
	TrendRowMinHeight float32 = 72
)

// Toast notification sizing and behavior. The long duration is the default
// from config; errors and confirmations of quick actions use the short one.
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 64
	ToastMargin   float32 = 20
	ToastShort            = 2200 * time.Millisecond
)

// Variation count requested from the generator
const DefaultVariationCount = 3
