package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/simon-says/constants"
	"github.com/lixenwraith/simon-says/game"
)

// Row layout inside the bordered play area
const (
	rowHeader  = 1
	rowTitle   = 3
	rowLegend  = 6
	rowAction  = 6
	rowLabel   = 8
	rowPrompt  = 9
	rowMessage = 11
	rowHigh    = 11
)

// TerminalPresenter draws the game views on a tcell screen
// Every call redraws the whole frame and is safe from any goroutine
type TerminalPresenter struct {
	mu     sync.Mutex
	screen tcell.Screen

	view  game.View
	round int
	score int

	action        game.Action
	actionVisible bool

	message        string
	messageVisible bool

	finalScore int
	highScore  int
}

// NewTerminalPresenter wraps an initialized screen
func NewTerminalPresenter(screen tcell.Screen) *TerminalPresenter {
	return &TerminalPresenter{
		screen: screen,
		view:   game.ViewTitle,
		round:  1,
	}
}

// ShowView switches views, hiding any action or message
func (p *TerminalPresenter) ShowView(v game.View) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = v
	p.actionVisible = false
	p.messageVisible = false
	p.draw()
}

func (p *TerminalPresenter) UpdateRoundScore(round, score int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.round, p.score = round, score
	p.draw()
}

func (p *TerminalPresenter) EmitAction(a game.Action) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.action = a
	p.actionVisible = true
	p.draw()
}

func (p *TerminalPresenter) HideAction() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.actionVisible = false
	p.draw()
}

func (p *TerminalPresenter) ShowMessage(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = text
	p.messageVisible = true
	p.draw()
}

func (p *TerminalPresenter) HideMessage() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messageVisible = false
	p.draw()
}

// ShowGameOver records the final values for the game-over view
func (p *TerminalPresenter) ShowGameOver(score, high int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finalScore = score
	p.highScore = high
	p.draw()
}

// SetHighScore sets the value shown on the title view
func (p *TerminalPresenter) SetHighScore(high int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.highScore = high
	p.draw()
}

// Redraw repaints after a resize
func (p *TerminalPresenter) Redraw() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.screen.Sync()
	p.draw()
}

// draw renders the current view, caller holds mu
func (p *TerminalPresenter) draw() {
	p.screen.Fill(' ', StyleOutside)

	w, h := p.screen.Size()
	ox := (w - constants.ScreenWidth) / 2
	oy := (h - constants.ScreenHeight) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}
	f := frame{screen: p.screen, ox: ox, oy: oy}
	f.box()

	switch p.view {
	case game.ViewTitle:
		p.drawTitle(f)
	case game.ViewPlay:
		p.drawPlay(f)
	case game.ViewGameOver:
		p.drawGameOver(f)
	}

	p.screen.Show()
}

func (p *TerminalPresenter) drawTitle(f frame) {
	f.center(rowTitle, "SIMON SAYS", StyleTitle)
	f.center(rowLegend, "▲ UP   ▼ DOWN", StyleScreen)
	f.center(rowLegend+1, "● BUTTON   ✱ SHAKE", StyleScreen)
	f.center(rowPrompt, "PRESS ● TO START", StyleTitle)
	f.center(rowHigh, fmt.Sprintf("HIGH: %d", p.highScore), StyleDim)
}

func (p *TerminalPresenter) drawPlay(f frame) {
	f.text(2, rowHeader, fmt.Sprintf("ROUND %d", p.round), StyleScreen)
	score := fmt.Sprintf("SCORE: %d", p.score)
	f.text(constants.ScreenWidth-2-runewidth.StringWidth(score), rowHeader, score, StyleScreen)

	if p.actionVisible {
		f.center(rowAction, fmt.Sprintf(" %c ", p.action.Symbol()), StyleAction)
		f.center(rowLabel, labelFor(p.action), StyleDim)
	}
	if p.messageVisible && p.message != "" {
		f.center(rowMessage, " "+p.message+" ", StyleMessage)
	}
}

func (p *TerminalPresenter) drawGameOver(f frame) {
	f.center(rowTitle, "GAME OVER", StyleTitle)
	f.center(rowLegend, fmt.Sprintf("SCORE: %d", p.finalScore), StyleScreen)
	f.center(rowLegend+1, fmt.Sprintf("HIGH: %d", p.highScore), StyleScreen)
	f.center(rowPrompt+1, "PRESS ● TO RESTART", StyleDim)
}

func labelFor(a game.Action) string {
	switch a {
	case game.ActionUp:
		return "UP"
	case game.ActionDown:
		return "DOWN"
	case game.ActionButton:
		return "BUTTON"
	case game.ActionShake:
		return "SHAKE"
	default:
		return ""
	}
}

var _ game.Presenter = (*TerminalPresenter)(nil)
