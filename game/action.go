package game

import "strings"

// Action is one of the four inputs the player can perform
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionButton
	ActionShake

	actionCount
)

// Actions lists every action in draw order
var Actions = [actionCount]Action{ActionUp, ActionDown, ActionButton, ActionShake}

var actionNames = [actionCount]string{"up", "down", "button", "shake"}

var actionSymbols = [actionCount]rune{'▲', '▼', '●', '✱'}

// String returns the lowercase action name
func (a Action) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return actionNames[a]
}

// Symbol returns the glyph used to display the action
func (a Action) Symbol() rune {
	if !a.Valid() {
		return '?'
	}
	return actionSymbols[a]
}

// Valid reports whether a is a member of the action set
func (a Action) Valid() bool {
	return a < actionCount
}

// ParseAction maps a case-insensitive action name to its Action
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}
