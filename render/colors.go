package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nanoswarm/core"
)

// Kind palette
var kindColors = [core.KindCount]tcell.Color{
	core.KindMedical:       tcell.NewHexColor(0x22c55e),
	core.KindEnvironmental: tcell.NewHexColor(0x10b981),
	core.KindManufacturing: tcell.NewHexColor(0x8b5cf6),
	core.KindMonitoring:    tcell.NewHexColor(0x3b82f6),
	core.KindSurgical:      tcell.NewHexColor(0xef4444),
}

// UI colors
var (
	RgbBackground = tcell.NewHexColor(0x0f1117)
	RgbBorder     = tcell.NewHexColor(0x3a3f4b)
	RgbGrid       = tcell.NewHexColor(0x22262e)
	RgbTarget     = tcell.NewHexColor(0xf5f5f5)
	RgbText       = tcell.NewHexColor(0xc8ccd4)
	RgbMuted      = tcell.NewHexColor(0x6b7280)
	RgbPaused     = tcell.NewHexColor(0xf59e0b)
)

// KindColor returns the display color for k
func KindColor(k core.Kind) tcell.Color {
	if !k.Valid() {
		return RgbMuted
	}
	return kindColors[k]
}

// dimmed blends c halfway toward the background for inactive agents
func dimmed(c tcell.Color) tcell.Color {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := RgbBackground.RGB()
	return tcell.NewRGBColor((r1+r2)/2, (g1+g2)/2, (b1+b2)/2)
}
