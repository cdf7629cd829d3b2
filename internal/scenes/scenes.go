// Package scenes provides the built-in starting worlds. Each scene registers
// itself with the registry on import and scales its layout to the grid size.
package scenes

import (
	"github.com/vovakirdan/tui-sand/internal/registry"
	sand "github.com/vovakirdan/tui-sand/internal/sand/core"
)

// scene is a registry.Scene backed by a populate function.
type scene struct {
	id, title, desc string
	populate        func(g *sand.Grid) error
}

func (s scene) ID() string                  { return s.id }
func (s scene) Title() string               { return s.title }
func (s scene) Description() string         { return s.desc }
func (s scene) Populate(g *sand.Grid) error { return s.populate(g) }

func register(s scene) {
	registry.Register(s.id, func() registry.Scene { return s })
}

func init() {
	register(scene{
		id:       "empty",
		title:    "Empty",
		desc:     "All air, paint your own world",
		populate: func(*sand.Grid) error { return nil },
	})
	register(scene{id: "hourglass", title: "Hourglass", desc: "Sand heap draining through a one-cell neck", populate: hourglass})
	register(scene{id: "basin", title: "Basin", desc: "Water pool spilling into a solid bowl", populate: basin})
	register(scene{id: "dam", title: "Dam", desc: "Reservoir leaking through a gap at the floor", populate: dam})
	register(scene{id: "mixed", title: "Mixed", desc: "Sand and water layers over pillars", populate: mixed})
}

// put writes m at (x, y), dropping cells outside the grid.
func put(g *sand.Grid, x, y int, m sand.Material) error {
	p := sand.P(x, y)
	if !g.InBounds(p) {
		return nil
	}
	return g.Set(p, m)
}

// rect fills the inclusive box [x0, x1] x [y0, y1], clipped to the grid.
func rect(g *sand.Grid, x0, y0, x1, y1 int, m sand.Material) error {
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			if err := put(g, x, y, m); err != nil {
				return err
			}
		}
	}
	return nil
}
