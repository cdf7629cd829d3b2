package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionPause)
	f.Set(ActionBrushGrow)
	if !f.Has(ActionPause) || !f.Has(ActionBrushGrow) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear should drop actions")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	f.SetPointer(4, 2, PointerSecondary)
	f.Set(ActionPaint)

	clone := f.Clone()
	f.Pointer.X = 9
	if clone.Pointer == nil || clone.Pointer.X != 4 || clone.Pointer.Button != PointerSecondary {
		t.Errorf("clone pointer = %+v, expected independent copy", clone.Pointer)
	}
	if !clone.Has(ActionPaint) {
		t.Error("clone should carry actions")
	}

	f.Clear()
	if f.Pointer == nil {
		t.Error("Clear must keep a held pointer")
	}
	f.SetPointer(0, 0, PointerNone)
	if f.Pointer != nil {
		t.Error("releasing the button should clear the pointer")
	}
}

func TestActionString(t *testing.T) {
	if ActionSelectWater.String() != "SelectWater" {
		t.Errorf("got %q", ActionSelectWater.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
