// Package core provides the falling-sand simulation: the cell grid, neighbor
// resolution, the per-tick physics sweep and the circular brush.
// This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"strings"
)

// Material is the type tag stored in every grid cell.
// The zero value is Air so a freshly allocated grid is empty.
type Material uint8

const (
	Air Material = iota
	Solid
	Sand
	Water
	// OutOfBounds is returned for coordinates outside the grid. It is never stored.
	OutOfBounds
)

// Materials returns the storable materials in display order.
func Materials() []Material {
	return []Material{Solid, Sand, Water, Air}
}

// String returns the lowercase name of a material.
func (m Material) String() string {
	switch m {
	case Air:
		return "air"
	case Solid:
		return "solid"
	case Sand:
		return "sand"
	case Water:
		return "water"
	case OutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Glyph returns the ASCII character used by String dumps and ParseGrid.
func (m Material) Glyph() rune {
	switch m {
	case Air:
		return '.'
	case Solid:
		return '#'
	case Sand:
		return 's'
	case Water:
		return '~'
	default:
		return '?'
	}
}

// Storable reports whether the material may live in a grid cell.
func (m Material) Storable() bool {
	return m <= Water
}

// ParseMaterial converts a name (case-insensitive) into a storable material.
func ParseMaterial(name string) (Material, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "air", "empty":
		return Air, nil
	case "solid", "stone", "wall":
		return Solid, nil
	case "sand":
		return Sand, nil
	case "water":
		return Water, nil
	default:
		return Air, fmt.Errorf("unknown material %q", name)
	}
}

// materialForGlyph is the inverse of Glyph for storable materials.
func materialForGlyph(r rune) (Material, bool) {
	switch r {
	case '.', ' ':
		return Air, true
	case '#':
		return Solid, true
	case 's':
		return Sand, true
	case '~':
		return Water, true
	default:
		return Air, false
	}
}

// UnmarshalText lets materials be used as YAML map keys and values.
func (m *Material) UnmarshalText(text []byte) error {
	parsed, err := ParseMaterial(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText encodes the material by name.
func (m Material) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Adjacency names one of the eight neighbors of a cell.
type Adjacency uint8

const (
	Above Adjacency = iota
	AboveLeft
	AboveRight
	Left
	Right
	Below
	BelowLeft
	BelowRight
)

// Adjacencies returns all eight directions.
func Adjacencies() []Adjacency {
	return []Adjacency{Above, AboveLeft, AboveRight, Left, Right, Below, BelowLeft, BelowRight}
}

// String returns the string representation of a direction.
func (a Adjacency) String() string {
	switch a {
	case Above:
		return "Above"
	case AboveLeft:
		return "AboveLeft"
	case AboveRight:
		return "AboveRight"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Below:
		return "Below"
	case BelowLeft:
		return "BelowLeft"
	case BelowRight:
		return "BelowRight"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset in logical coordinates.
// Above increases Y, Below decreases Y.
func (a Adjacency) Delta() (dx, dy int) {
	switch a {
	case Above:
		return 0, 1
	case AboveLeft:
		return -1, 1
	case AboveRight:
		return 1, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Below:
		return 0, -1
	case BelowLeft:
		return -1, -1
	case BelowRight:
		return 1, -1
	default:
		return 0, 0
	}
}
