package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon-says/game"
)

// KeyMap translates tcell events to intents
type KeyMap struct {
	keys  map[tcell.Key]Intent
	runes map[rune]Intent
}

func action(a game.Action) Intent {
	return Intent{Type: IntentAction, Action: a}
}

// DefaultKeyMap returns the standard bindings
// Arrows for up/down, Space or Enter for the button, s for shake
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		keys: map[tcell.Key]Intent{
			tcell.KeyUp:     action(game.ActionUp),
			tcell.KeyDown:   action(game.ActionDown),
			tcell.KeyEnter:  action(game.ActionButton),
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
		},
		runes: map[rune]Intent{
			' ': action(game.ActionButton),
			's': action(game.ActionShake),
		},
	}
}

// Bind maps a printable rune to an action, letter case is ignored
func (m *KeyMap) Bind(r rune, a game.Action) {
	m.runes[unicode.ToLower(r)] = action(a)
}

// Translate classifies one tcell event
func (m *KeyMap) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if ev.Modifiers()&tcell.ModCtrl != 0 {
				switch unicode.ToLower(ev.Rune()) {
				case 'c', 'q':
					return Intent{Type: IntentQuit}
				}
				return Intent{}
			}
			if in, ok := m.runes[unicode.ToLower(ev.Rune())]; ok {
				return in
			}
			return Intent{}
		}
		if in, ok := m.keys[ev.Key()]; ok {
			return in
		}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
