// Package gui drives a sandbox session in an ebiten window.
//
// The window is only compiled with the ebiten build tag. Pixel conversion
// and pointer mapping live in untagged files so they are tested headless.
package gui

import (
	"image/color"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/core"
	sand "github.com/vovakirdan/tui-sand/internal/sand/core"
)

// DefaultScale is the window size of one grid cell in pixels.
const DefaultScale = 12

var rgba = map[core.Color]color.RGBA{
	core.ColorDefault:       {0x10, 0x10, 0x14, 0xff},
	core.ColorRed:           {0xc0, 0x30, 0x30, 0xff},
	core.ColorGreen:         {0x30, 0xa0, 0x40, 0xff},
	core.ColorYellow:        {0xd8, 0xb8, 0x50, 0xff},
	core.ColorBlue:          {0x30, 0x50, 0xc0, 0xff},
	core.ColorMagenta:       {0xa0, 0x40, 0xa0, 0xff},
	core.ColorCyan:          {0x40, 0xb0, 0xc0, 0xff},
	core.ColorWhite:         {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorBrightRed:     {0xff, 0x50, 0x50, 0xff},
	core.ColorBrightGreen:   {0x60, 0xff, 0x60, 0xff},
	core.ColorBrightYellow:  {0xff, 0xe0, 0x60, 0xff},
	core.ColorBrightBlue:    {0x50, 0x80, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x60, 0xff, 0xff},
	core.ColorBrightCyan:    {0x60, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x90, 0x30, 0xff},
	core.ColorGray:          {0x70, 0x70, 0x70, 0xff},
}

// RGBA returns the window color for a palette color.
func RGBA(c core.Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[core.ColorDefault]
}

// Palette resolves the configured color of every storable material.
func Palette(cfg config.Config) map[sand.Material]color.RGBA {
	p := make(map[sand.Material]color.RGBA, len(sand.Materials()))
	for _, m := range sand.Materials() {
		_, c := cfg.Swatch(m)
		p[m] = RGBA(c)
	}
	return p
}

// FillRGBA writes one pixel per cell into buf, top row first. buf must hold
// size*size*4 bytes.
func FillRGBA(buf []byte, g *sand.Grid, palette map[sand.Material]color.RGBA) {
	n := g.Size()
	for row := range n {
		y := n - 1 - row
		for x := range n {
			col := palette[g.Get(sand.P(x, y))]
			base := (row*n + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// CellAt maps a window pixel to the grid cell under it.
func CellAt(px, py, scale, size int) (sand.Point, bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return sand.Point{}, false
	}
	x, row := px/scale, py/scale
	if x >= size || row >= size {
		return sand.Point{}, false
	}
	return sand.P(x, size-1-row), true
}
