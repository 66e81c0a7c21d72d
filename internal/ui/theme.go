package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AppTheme is the default theme with a red accent and tighter spacing
type AppTheme struct{}

// NewAppTheme creates the application theme
func NewAppTheme() fyne.Theme {
	return &AppTheme{}
}

var (
	accentRed    = color.NRGBA{R: 204, G: 0, B: 0, A: 255}
	successGrn   = color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	errorRed     = color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	lightSurface = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	darkSurface  = color.NRGBA{R: 24, G: 24, B: 24, A: 255}
)

// Color returns theme colors
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return accentRed
	case theme.ColorNameSuccess:
		return successGrn
	case theme.ColorNameError:
		return errorRed
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return darkSurface
		}
		return lightSurface
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; the progress bar and inputs are slightly tighter
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 5
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameHeadingText:
		return 22
	}

	return theme.DefaultTheme().Size(name)
}
