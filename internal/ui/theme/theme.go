package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Stillpoint pins the theme variant so the in-app light/dark toggle is
// authoritative regardless of the OS setting, and swaps in a calmer palette.
type Stillpoint struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// Light returns the light variant.
func Light() *Stillpoint {
	return &Stillpoint{base: fynetheme.DefaultTheme(), variant: fynetheme.VariantLight}
}

// Dark returns the dark variant.
func Dark() *Stillpoint {
	return &Stillpoint{base: fynetheme.DefaultTheme(), variant: fynetheme.VariantDark}
}

// Color implements fyne.Theme.
func (st *Stillpoint) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNamePrimary:
		if st.variant == fynetheme.VariantDark {
			return color.NRGBA{R: 94, G: 190, B: 170, A: 255}
		}
		return color.NRGBA{R: 38, G: 138, B: 120, A: 255}
	case fynetheme.ColorNameBackground:
		if st.variant == fynetheme.VariantDark {
			return color.NRGBA{R: 18, G: 24, B: 28, A: 255}
		}
		return color.NRGBA{R: 247, G: 249, B: 247, A: 255}
	}
	return st.base.Color(name, st.variant)
}

// Font implements fyne.Theme.
func (st *Stillpoint) Font(style fyne.TextStyle) fyne.Resource {
	return st.base.Font(style)
}

// Icon implements fyne.Theme.
func (st *Stillpoint) Icon(name fyne.ThemeIconName) fyne.Resource {
	return st.base.Icon(name)
}

// Size implements fyne.Theme.
func (st *Stillpoint) Size(name fyne.ThemeSizeName) float32 {
	return st.base.Size(name)
}
