package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// luminaTheme is the greeter's dark theme.
type luminaTheme struct{}

func (t *luminaTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x7B, G: 0x5C, B: 0xFF, A: 0xFF} // Lumina violet
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x2A, G: 0x24, B: 0x45, A: 0xFF}
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x12, G: 0x0F, B: 0x22, A: 0xFF}
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	case theme.ColorNameError:
		return color.NRGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}
	case theme.ColorNameWarning:
		return color.NRGBA{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF}
	default:
		// The greeter is always dark regardless of the desktop variant
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *luminaTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *luminaTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *luminaTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	default:
		return theme.DefaultTheme().Size(name)
	}
}
