package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nanoswarm/render"
)

// ActionType is the host-level command derived from a terminal event
type ActionType int

const (
	ActionNone ActionType = iota
	ActionQuit
	ActionTogglePause
	ActionStep
	ActionSetTarget
	ActionClearTarget
	ActionReset
	ActionToggleMute
	ActionResize
)

func (a ActionType) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionTogglePause:
		return "TogglePause"
	case ActionStep:
		return "Step"
	case ActionSetTarget:
		return "SetTarget"
	case ActionClearTarget:
		return "ClearTarget"
	case ActionReset:
		return "Reset"
	case ActionToggleMute:
		return "ToggleMute"
	case ActionResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Action carries arena coordinates for ActionSetTarget
type Action struct {
	Type ActionType
	X, Y float64
}

// runeActions binds printable keys
var runeActions = map[rune]ActionType{
	'q': ActionQuit,
	' ': ActionTogglePause,
	'p': ActionTogglePause,
	's': ActionStep,
	'c': ActionClearTarget,
	'r': ActionReset,
	'm': ActionToggleMute,
}

// Translate maps a terminal event to an Action
// Mouse positions are converted to arena space through vp; clicks outside the arena are ignored
func Translate(ev tcell.Event, vp render.Viewport) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		return translateMouse(ev, vp)
	case *tcell.EventResize:
		return Action{Type: ActionResize}
	}
	return Action{}
}

func translateKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Type: ActionQuit}
	case tcell.KeyRune:
		if t, ok := runeActions[ev.Rune()]; ok {
			return Action{Type: t}
		}
	}
	return Action{}
}

func translateMouse(ev *tcell.EventMouse, vp render.Viewport) Action {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.Button1 != 0:
		cx, cy := ev.Position()
		x, y, ok := vp.ToArena(cx, cy)
		if !ok {
			return Action{}
		}
		return Action{Type: ActionSetTarget, X: x, Y: y}
	case buttons&tcell.Button2 != 0:
		return Action{Type: ActionClearTarget}
	}
	return Action{}
}
