package viewer

import "github.com/gdamore/tcell/v2"

// Action is a viewer command.
type Action uint8

const (
	ActionNone Action = iota
	ActionPanN
	ActionPanS
	ActionPanE
	ActionPanW
	ActionHome
	ActionNextLevel
	ActionPrevLevel
	ActionNextBranch
	ActionPrevBranch
	ActionReseed
	ActionToggleMode
	ActionToggleSight
	ActionQuit
)

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionPanN
	case tcell.KeyDown:
		return ActionPanS
	case tcell.KeyRight:
		return ActionPanE
	case tcell.KeyLeft:
		return ActionPanW
	case tcell.KeyHome:
		return ActionHome
	case tcell.KeyPgDn:
		return ActionNextLevel
	case tcell.KeyPgUp:
		return ActionPrevLevel
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k':
		return ActionPanN
	case 'j':
		return ActionPanS
	case 'l':
		return ActionPanE
	case 'h':
		return ActionPanW
	case 'g':
		return ActionHome
	case 'n', '>':
		return ActionNextLevel
	case 'p', '<':
		return ActionPrevLevel
	case 'N':
		return ActionNextBranch
	case 'P':
		return ActionPrevBranch
	case 'r', 'R':
		return ActionReseed
	case 'm', 'M':
		return ActionToggleMode
	case 'v', 'V':
		return ActionToggleSight
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a pan action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionPanN:
		return 0, -1
	case ActionPanS:
		return 0, 1
	case ActionPanE:
		return 1, 0
	case ActionPanW:
		return -1, 0
	}
	return 0, 0
}
