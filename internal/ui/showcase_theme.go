package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	apptheme "github.com/kleyver/kleyver-app/internal/theme"
)

// ShowcaseTheme is the application theme pinned to one variant, so the
// light/dark choice comes from the theme controller rather than the OS
type ShowcaseTheme struct {
	variant fyne.ThemeVariant
}

// NewShowcaseTheme returns the Fyne theme for t
func NewShowcaseTheme(t apptheme.Theme) fyne.Theme {
	if t.IsDark() {
		return &ShowcaseTheme{variant: theme.VariantDark}
	}
	return &ShowcaseTheme{variant: theme.VariantLight}
}

// Variant returns the pinned variant
func (t *ShowcaseTheme) Variant() fyne.ThemeVariant {
	return t.variant
}

// Color returns theme colors; the requested variant is ignored
func (t *ShowcaseTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 56, G: 128, B: 255, A: 255} // Accent blue
	case theme.ColorNameError:
		return color.RGBA{R: 235, G: 68, B: 90, A: 255} // Favorites and form errors
	case theme.ColorNameSuccess:
		return color.RGBA{R: 45, G: 211, B: 111, A: 255}
	case theme.ColorNameBackground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 240, G: 240, B: 240, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *ShowcaseTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ShowcaseTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with roomier touch padding
func (t *ShowcaseTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}

// FyneApplier switches the app-wide Fyne theme when the controller changes
type FyneApplier struct {
	app fyne.App
}

// NewFyneApplier returns an applier for app
func NewFyneApplier(app fyne.App) *FyneApplier {
	return &FyneApplier{app: app}
}

// ApplyTheme installs the showcase theme variant for t
func (a *FyneApplier) ApplyTheme(t apptheme.Theme) {
	fyne.Do(func() {
		a.app.Settings().SetTheme(NewShowcaseTheme(t))
	})
}
