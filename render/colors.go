package render

import "github.com/gdamore/tcell/v2"

// Four-shade handheld palette, darkest to lightest
var (
	RgbShade0 = tcell.NewRGBColor(15, 56, 15)   // Darkest green
	RgbShade1 = tcell.NewRGBColor(48, 98, 48)   // Dark green
	RgbShade2 = tcell.NewRGBColor(139, 172, 15) // Light green
	RgbShade3 = tcell.NewRGBColor(155, 188, 15) // Lightest green
)

// Styles used by the presenter
var (
	StyleScreen  = tcell.StyleDefault.Background(RgbShade3).Foreground(RgbShade0)
	StyleBorder  = tcell.StyleDefault.Background(RgbShade3).Foreground(RgbShade1)
	StyleTitle   = StyleScreen.Bold(true)
	StyleDim     = tcell.StyleDefault.Background(RgbShade3).Foreground(RgbShade1)
	StyleAction  = tcell.StyleDefault.Background(RgbShade2).Foreground(RgbShade0).Bold(true)
	StyleMessage = tcell.StyleDefault.Background(RgbShade0).Foreground(RgbShade3).Bold(true)
	StyleOutside = tcell.StyleDefault.Background(RgbShade0)
)
