package core

import (
	"fmt"
	"strings"
)

// String renders the grid as ASCII glyphs, top row first.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size*g.size + g.size)

	for y := g.size - 1; y >= 0; y-- {
		for x := 0; x < g.size; x++ {
			sb.WriteRune(g.Get(P(x, y)).Glyph())
		}
		if y > 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from ASCII rows written top row first.
// The number of rows sets the size; every row must be exactly that long.
//
//	'.' or ' ' Air, '#' Solid, 's' Sand, '~' Water
func ParseGrid(rows []string) (*Grid, error) {
	size := len(rows)
	g := NewGrid(size)

	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != size {
			return nil, fmt.Errorf("grid: row %d has %d cells, expected %d", r, len(runes), size)
		}
		y := size - 1 - r
		for x, ch := range runes {
			m, ok := materialForGlyph(ch)
			if !ok {
				return nil, fmt.Errorf("grid: unknown glyph %q at row %d column %d", ch, r, x)
			}
			// In range by construction
			_ = g.Set(P(x, y), m)
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid that panics on malformed input.
// Intended for fixed scene tables and tests.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}
