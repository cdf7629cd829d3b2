//go:build !ebiten

package gui

import (
	"testing"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/core"
)

func TestStubRequiresEbitenTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New should panic without the ebiten tag")
		}
	}()

	var g Game
	if err := g.Update(); err == nil {
		t.Error("Update should report the missing build tag")
	}
	if w, h := g.Layout(640, 480); w != 0 || h != 0 {
		t.Errorf("Layout = %dx%d, expected 0x0", w, h)
	}
	New(config.DefaultConfig(), nil, core.DefaultConfig(), DefaultScale)
}
