package render

import (
	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/vmath"
)

// Layout rows reserved outside the arena box
const (
	HeaderRows = 1
	FooterRows = 2
)

// Viewport maps arena space onto the terminal cells inside the border
type Viewport struct {
	X, Y          int // top-left inner cell
	Width, Height int // inner cell count
	Bound         orb.Bound
}

// NewViewport fits bound into a screen of the given size
func NewViewport(screenW, screenH int, bound orb.Bound) Viewport {
	return Viewport{
		X:      1,
		Y:      HeaderRows + 1,
		Width:  max(screenW-2, 1),
		Height: max(screenH-HeaderRows-FooterRows-2, 1),
		Bound:  bound,
	}
}

// ToCell returns the screen cell covering arena point p
func (v Viewport) ToCell(p vmath.Vec2) (cx, cy int) {
	bw := v.Bound.Max.X() - v.Bound.Min.X()
	bh := v.Bound.Max.Y() - v.Bound.Min.Y()
	fx := (p.X - v.Bound.Min.X()) / bw * float64(v.Width)
	fy := (p.Y - v.Bound.Min.Y()) / bh * float64(v.Height)
	cx = min(max(int(fx), 0), v.Width-1)
	cy = min(max(int(fy), 0), v.Height-1)
	return v.X + cx, v.Y + cy
}

// ToArena returns the arena point at the centre of a screen cell
// ok is false when the cell lies outside the arena box
func (v Viewport) ToArena(cx, cy int) (x, y float64, ok bool) {
	lx, ly := cx-v.X, cy-v.Y
	if lx < 0 || ly < 0 || lx >= v.Width || ly >= v.Height {
		return 0, 0, false
	}
	bw := v.Bound.Max.X() - v.Bound.Min.X()
	bh := v.Bound.Max.Y() - v.Bound.Min.Y()
	x = v.Bound.Min.X() + (float64(lx)+0.5)/float64(v.Width)*bw
	y = v.Bound.Min.Y() + (float64(ly)+0.5)/float64(v.Height)*bh
	return vmath.Clamp(x, v.Bound.Min.X(), v.Bound.Max.X()), vmath.Clamp(y, v.Bound.Min.Y(), v.Bound.Max.Y()), true
}
