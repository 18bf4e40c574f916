package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/novraux/novraux-desk/internal/model"
)

// Brand colors
var (
	BrandGold    = color.RGBA{R: 212, G: 175, B: 55, A: 255}
	BrandInk     = color.RGBA{R: 17, G: 17, B: 17, A: 255}
	BrandPaper   = color.RGBA{R: 250, G: 248, B: 243, A: 255}
	ScoreHigh    = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	ScoreMid     = color.RGBA{R: 230, G: 162, B: 25, A: 255}
	ScoreLow     = color.RGBA{R: 183, G: 28, B: 28, A: 255}
	ScoreNeutral = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// palette is the brand palette resolved for one theme variant
type palette struct {
	background color.RGBA
	foreground color.RGBA
	surface    color.RGBA // cards, inputs, menus
	line       color.RGBA
}

var (
	lightPalette = palette{
		background: BrandPaper,
		foreground: color.RGBA{R: 33, G: 33, B: 33, A: 255},
		surface:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		line:       color.RGBA{R: 226, G: 220, B: 205, A: 255},
	}
	darkPalette = palette{
		background: BrandInk,
		foreground: color.RGBA{R: 245, G: 245, B: 245, A: 255},
		surface:    color.RGBA{R: 32, G: 30, B: 27, A: 255},
		line:       color.RGBA{R: 58, G: 53, B: 44, A: 255},
	}
)

func paletteFor(variant fyne.ThemeVariant) palette {
	if variant == theme.VariantDark {
		return darkPalette
	}
	return lightPalette
}

// withAlpha returns c at the given opacity
func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// CompactTheme is the gold-on-paper dashboard theme with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color maps theme colors onto the brand and score palettes
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	p := paletteFor(variant)
	switch name {
	case theme.ColorNameSuccess:
		return scoreColor(model.BandHigh)
	case theme.ColorNameWarning:
		return scoreColor(model.BandMid)
	case theme.ColorNameError:
		return scoreColor(model.BandLow)
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHyperlink:
		return BrandGold
	case theme.ColorNameSelection:
		return withAlpha(BrandGold, 0x55)
	case theme.ColorNameHover:
		return withAlpha(BrandGold, 0x22)
	case theme.ColorNamePressed:
		return withAlpha(BrandGold, 0x44)
	case theme.ColorNameBackground:
		return p.background
	case theme.ColorNameForeground:
		return p.foreground
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground,
		theme.ColorNameOverlayBackground, theme.ColorNameHeaderBackground:
		return p.surface
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return p.line
	case theme.ColorNameDisabled, theme.ColorNamePlaceHolder:
		return ScoreNeutral
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

// scoreColor returns the color of a score band
func scoreColor(band model.ScoreBand) color.Color {
	switch band {
	case model.BandHigh:
		return ScoreHigh
	case model.BandMid:
		return ScoreMid
	case model.BandLow:
		return ScoreLow
	default:
		return ScoreNeutral
	}
}
