package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nanoswarm/core"
	"github.com/lixenwraith/nanoswarm/swarm"
	"github.com/lixenwraith/nanoswarm/vmath"
)

// Glyphs
const (
	GlyphActive   = '●'
	GlyphInactive = '·'
	GlyphTarget   = '◎'
	GlyphGrid     = '┼'
)

// gridSpacing is the arena distance between background grid marks
const gridSpacing = 40.0

// HUD carries driver-side state that is not part of the simulation frame
type HUD struct {
	Paused  bool
	Muted   bool
	Message string
}

// ArenaRenderer draws a swarm frame into a tcell screen
type ArenaRenderer struct {
	screen tcell.Screen
}

func NewArenaRenderer(screen tcell.Screen) *ArenaRenderer {
	return &ArenaRenderer{screen: screen}
}

// Viewport returns the current mapping for the screen size and arena
func (r *ArenaRenderer) Viewport(f *swarm.Frame) Viewport {
	w, h := r.screen.Size()
	return NewViewport(w, h, f.Bound)
}

// Draw renders badges, arena, agents, target and status; caller calls Show
func (r *ArenaRenderer) Draw(f swarm.Frame, hud HUD) {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(base)
	r.screen.Clear()

	vp := r.Viewport(&f)
	r.drawBadges(f.Counts, base)
	r.drawBorder(vp, base.Foreground(RgbBorder))
	r.drawGrid(vp, base.Foreground(RgbGrid))

	// Inactive first so active agents win shared cells
	for pass := 0; pass < 2; pass++ {
		wantActive := pass == 1
		for i := range f.Agents {
			a := &f.Agents[i]
			if a.Active != wantActive {
				continue
			}
			cx, cy := vp.ToCell(a.Pos)
			if a.Active {
				r.screen.SetContent(cx, cy, GlyphActive, nil, base.Foreground(KindColor(a.Kind)))
			} else {
				r.screen.SetContent(cx, cy, GlyphInactive, nil, base.Foreground(dimmed(KindColor(a.Kind))))
			}
		}
	}

	if f.HasTarget {
		cx, cy := vp.ToCell(vmath.Vec2{X: f.Target.X(), Y: f.Target.Y()})
		r.screen.SetContent(cx, cy, GlyphTarget, nil, base.Foreground(RgbTarget).Bold(true))
	}

	r.drawStatus(vp, f, hud, base)
}

func (r *ArenaRenderer) drawBadges(c swarm.KindCounts, base tcell.Style) {
	x := 0
	for k := core.Kind(0); k < core.KindCount; k++ {
		r.screen.SetContent(x, 0, GlyphActive, nil, base.Foreground(KindColor(k)))
		x = r.drawText(x+1, 0, fmt.Sprintf("%s: %d  ", k, c.Get(k)), base)
	}
	r.drawText(x, 0, fmt.Sprintf("Total Active: %d", c.Total), base.Bold(true))
}

func (r *ArenaRenderer) drawBorder(vp Viewport, style tcell.Style) {
	left, top := vp.X-1, vp.Y-1
	right, bottom := vp.X+vp.Width, vp.Y+vp.Height

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (r *ArenaRenderer) drawGrid(vp Viewport, style tcell.Style) {
	b := vp.Bound
	for gy := b.Min.Y() + gridSpacing; gy < b.Max.Y(); gy += gridSpacing {
		for gx := b.Min.X() + gridSpacing; gx < b.Max.X(); gx += gridSpacing {
			cx, cy := vp.ToCell(vmath.Vec2{X: gx, Y: gy})
			r.screen.SetContent(cx, cy, GlyphGrid, nil, style)
		}
	}
}

func (r *ArenaRenderer) drawStatus(vp Viewport, f swarm.Frame, hud HUD, base tcell.Style) {
	y := vp.Y + vp.Height + 1

	state, stateStyle := "running", base
	if hud.Paused {
		state, stateStyle = "paused", base.Foreground(RgbPaused).Bold(true)
	}
	x := r.drawText(0, y, strings.ToUpper(state), stateStyle)

	target := "none"
	if f.HasTarget {
		target = fmt.Sprintf("(%.0f, %.0f)", f.Target.X(), f.Target.Y())
	}
	epoch := f.Epoch.String()[:8]
	x = r.drawText(x, y, fmt.Sprintf("  tick %d  target %s  agents %d  epoch %s", f.Tick, target, len(f.Agents), epoch), base)
	if hud.Muted {
		x = r.drawText(x, y, "  muted", base.Foreground(RgbMuted))
	}
	if hud.Message != "" {
		r.drawText(x, y, "  "+hud.Message, base.Foreground(RgbPaused))
	}

	r.drawText(0, y+1, "click: target  space: pause  s: step  c: clear  r: reset  m: mute  q: quit", base.Foreground(RgbMuted))
}

// drawText writes s from (x, y) and returns the column after it
func (r *ArenaRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
