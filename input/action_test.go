package input

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/render"
)

var testViewport = render.NewViewport(82, 45, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{800, 600}})

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionType
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionTogglePause},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionTogglePause},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionStep},
		{"c", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), ActionClearTarget},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionReset},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), ActionToggleMute},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.ev, testViewport); got.Type != tt.want {
				t.Errorf("Translate = %v, want %v", got.Type, tt.want)
			}
		})
	}
}

func TestTranslateLeftClickSetsTarget(t *testing.T) {
	// Centre cell of an 80x40 arena box
	ev := tcell.NewEventMouse(41, 22, tcell.Button1, tcell.ModNone)
	got := Translate(ev, testViewport)
	if got.Type != ActionSetTarget {
		t.Fatalf("Translate = %v, want SetTarget", got.Type)
	}
	if math.Abs(got.X-405) > 1e-9 || math.Abs(got.Y-307.5) > 1e-9 {
		t.Errorf("target = (%v, %v), want (405, 307.5)", got.X, got.Y)
	}
}

func TestTranslateClickOutsideArena(t *testing.T) {
	ev := tcell.NewEventMouse(5, 0, tcell.Button1, tcell.ModNone)
	if got := Translate(ev, testViewport); got.Type != ActionNone {
		t.Errorf("click on header produced %v", got.Type)
	}
}

func TestTranslateRightClickClears(t *testing.T) {
	ev := tcell.NewEventMouse(10, 10, tcell.Button2, tcell.ModNone)
	if got := Translate(ev, testViewport); got.Type != ActionClearTarget {
		t.Errorf("right click = %v, want ClearTarget", got.Type)
	}
}

func TestTranslateMouseMotion(t *testing.T) {
	ev := tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone)
	if got := Translate(ev, testViewport); got.Type != ActionNone {
		t.Errorf("bare motion = %v, want None", got.Type)
	}
}

func TestTranslateResize(t *testing.T) {
	ev := tcell.NewEventResize(100, 40)
	if got := Translate(ev, testViewport); got.Type != ActionResize {
		t.Errorf("resize = %v, want Resize", got.Type)
	}
}

func TestActionTypeString(t *testing.T) {
	if ActionSetTarget.String() != "SetTarget" || ActionType(99).String() != "Unknown" {
		t.Error("unexpected ActionType names")
	}
}
