package sandbox

import (
	"fmt"

	"github.com/vovakirdan/tui-sand/internal/core"
	sand "github.com/vovakirdan/tui-sand/internal/sand/core"
)

// CellWidth is the number of screen columns per grid cell. Two columns
// make cells roughly square in a terminal.
const CellWidth = 2

// HUDRows is the number of status lines drawn under the grid.
const HUDRows = 2

// ScreenSize returns the screen dimensions needed to show a grid of size n.
func ScreenSize(n int) (w, h int) {
	return n * CellWidth, n + HUDRows
}

// Render draws the grid with logical y up, followed by the HUD.
// Screen row r shows grid row y = size-1-r.
func (s *Session) Render(dst *core.Screen) {
	n := s.grid.Size()

	for r := 0; r < n; r++ {
		y := n - 1 - r
		for x := 0; x < n; x++ {
			glyph, color := s.cfg.Swatch(s.grid.Get(sand.P(x, y)))
			for i := 0; i < CellWidth; i++ {
				dst.SetColored(x*CellWidth+i, r, glyph, color)
			}
		}
	}

	if s.grid.InBounds(s.cursor) {
		cx, cy := s.gridToScreen(s.cursor)
		dst.SetColored(cx, cy, '[', core.ColorBrightWhite)
		dst.SetColored(cx+1, cy, ']', core.ColorBrightWhite)
	}

	s.renderHUD(dst, n)
}

func (s *Session) renderHUD(dst *core.Screen, top int) {
	_, color := s.cfg.Swatch(s.material)
	_, density := s.cfg.BrushFor(s.material)

	status := fmt.Sprintf("tick %-6d %-6s r=%.1f d=%d%%", s.engine.Ticks(), s.material, s.radius, density)
	dst.DrawTextColored(0, top, status, color)

	counts := s.grid.Counts()
	detail := fmt.Sprintf("sand %d  water %d  solid %d  cursor %v",
		counts[sand.Sand], counts[sand.Water], counts[sand.Solid], s.cursor)
	switch {
	case s.stopped && s.err != nil:
		detail += "  ABORTED"
	case s.paused:
		detail += "  PAUSED"
	}
	dst.DrawTextColored(0, top+1, detail, core.ColorGray)
}

// gridToScreen returns the screen cell of the left column of p.
func (s *Session) gridToScreen(p sand.Point) (int, int) {
	return p.X * CellWidth, s.grid.Size() - 1 - p.Y
}

// ScreenToGrid maps a screen cell back to grid coordinates.
// Returns false for cells outside the grid area.
func (s *Session) ScreenToGrid(x, y int) (sand.Point, bool) {
	n := s.grid.Size()
	if x < 0 || y < 0 || x >= n*CellWidth || y >= n {
		return sand.Point{}, false
	}
	return sand.P(x/CellWidth, n-1-y), true
}
