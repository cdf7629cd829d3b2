package registry

import (
	"errors"
	"testing"

	sand "github.com/vovakirdan/tui-sand/internal/sand/core"
)

type floorScene struct{}

func (floorScene) ID() string          { return "test-floor" }
func (floorScene) Title() string       { return "Test Floor" }
func (floorScene) Description() string { return "solid bottom row" }
func (floorScene) Populate(g *sand.Grid) error {
	for x := 0; x < g.Size(); x++ {
		if err := g.Set(sand.P(x, 0), sand.Solid); err != nil {
			return err
		}
	}
	return nil
}

func TestRegisterAndBuild(t *testing.T) {
	Register("test-floor", func() Scene { return floorScene{} })

	if !Exists("test-floor") {
		t.Fatal("registered scene should exist")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-floor" {
			found = true
			if info.Title != "Test Floor" || info.Description != "solid bottom row" {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered scene")
	}

	g, err := Build("test-floor", 5)
	if err != nil {
		t.Fatal(err)
	}
	if g.Count(sand.Solid) != 5 || g.Get(sand.P(2, 0)) != sand.Solid {
		t.Errorf("unexpected grid:\n%s", g)
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	Register("test-dup", func() Scene { return floorScene{} })

	defer func() {
		if recover() == nil {
			t.Error("second Register with the same ID should panic")
		}
	}()
	Register("test-dup", func() Scene { return floorScene{} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-scene"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
	if _, err := Build("no-such-scene", 4); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Build: expected ErrUnknownScene, got %v", err)
	}
}
