package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/simon-says/constants"
)

// frame draws in coordinates relative to the play area origin
type frame struct {
	screen tcell.Screen
	ox, oy int
}

// box fills the play area and draws its border
func (f frame) box() {
	w, h := constants.ScreenWidth, constants.ScreenHeight
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.screen.SetContent(f.ox+x, f.oy+y, ' ', nil, StyleScreen)
		}
	}
	for x := 1; x < w-1; x++ {
		f.screen.SetContent(f.ox+x, f.oy, '─', nil, StyleBorder)
		f.screen.SetContent(f.ox+x, f.oy+h-1, '─', nil, StyleBorder)
	}
	for y := 1; y < h-1; y++ {
		f.screen.SetContent(f.ox, f.oy+y, '│', nil, StyleBorder)
		f.screen.SetContent(f.ox+w-1, f.oy+y, '│', nil, StyleBorder)
	}
	f.screen.SetContent(f.ox, f.oy, '┌', nil, StyleBorder)
	f.screen.SetContent(f.ox+w-1, f.oy, '┐', nil, StyleBorder)
	f.screen.SetContent(f.ox, f.oy+h-1, '└', nil, StyleBorder)
	f.screen.SetContent(f.ox+w-1, f.oy+h-1, '┘', nil, StyleBorder)
}

// text writes s starting at column x of row y
func (f frame) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.screen.SetContent(f.ox+x, f.oy+y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// center writes s horizontally centered on row y
func (f frame) center(y int, s string, style tcell.Style) {
	x := (constants.ScreenWidth - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	f.text(x, y, s, style)
}
