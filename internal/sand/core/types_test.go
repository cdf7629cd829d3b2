package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-sand/internal/sand/core"
)

func TestAdjacencyDelta(t *testing.T) {
	testCases := []struct {
		dir    core.Adjacency
		dx, dy int
	}{
		{core.Above, 0, 1},
		{core.AboveLeft, -1, 1},
		{core.AboveRight, 1, 1},
		{core.Left, -1, 0},
		{core.Right, 1, 0},
		{core.Below, 0, -1},
		{core.BelowLeft, -1, -1},
		{core.BelowRight, 1, -1},
	}

	if len(testCases) != len(core.Adjacencies()) {
		t.Fatalf("expected %d directions, got %d", len(testCases), len(core.Adjacencies()))
	}
	for _, tc := range testCases {
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d,%d), expected (%d,%d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
		if got := core.P(5, 5).Step(tc.dir); got != core.P(5+tc.dx, 5+tc.dy) {
			t.Errorf("Step(%v) = %v", tc.dir, got)
		}
	}
}

func TestParseMaterial(t *testing.T) {
	testCases := []struct {
		input   string
		want    core.Material
		wantErr bool
	}{
		{"sand", core.Sand, false},
		{"Water", core.Water, false},
		{" solid ", core.Solid, false},
		{"stone", core.Solid, false},
		{"air", core.Air, false},
		{"lava", core.Air, true},
		{"out_of_bounds", core.Air, true},
	}

	for _, tc := range testCases {
		got, err := core.ParseMaterial(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMaterial(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMaterial(%q) = %v, expected %v", tc.input, got, tc.want)
		}
	}
}

func TestMaterialNamesRoundTrip(t *testing.T) {
	for _, m := range core.Materials() {
		got, err := core.ParseMaterial(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMaterial(%q) = %v, %v", m.String(), got, err)
		}
		if !m.Storable() {
			t.Errorf("%v should be storable", m)
		}
	}
	if core.OutOfBounds.Storable() {
		t.Error("out_of_bounds must not be storable")
	}
}

func TestPointDistance(t *testing.T) {
	if d := core.P(0, 0).Distance(core.P(3, 4)); d != 5 {
		t.Errorf("Distance = %f, expected 5", d)
	}
	if s := core.P(-1, 2).String(); s != "(-1,2)" {
		t.Errorf("String() = %q", s)
	}
}
