package core

// Action represents a semantic sandbox action, abstracted from physical key presses.
// This allows sessions to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionPause              // Space - pause/unpause the simulation
	ActionStep               // N - advance a single tick while paused
	ActionReset              // R - rebuild the scene
	ActionQuit               // Q, Ctrl+C - exit session
	ActionSelectSand         // 1
	ActionSelectWater        // 2
	ActionSelectSolid        // 3
	ActionSelectAir          // 4, E - eraser
	ActionBrushGrow          // + or ]
	ActionBrushShrink        // - or [
	ActionCursorUp           // Up arrow, K
	ActionCursorDown         // Down arrow, J
	ActionCursorLeft         // Left arrow, H
	ActionCursorRight        // Right arrow, L
	ActionPaint              // Enter - paint at the keyboard cursor
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionSelectSand:
		return "SelectSand"
	case ActionSelectWater:
		return "SelectWater"
	case ActionSelectSolid:
		return "SelectSolid"
	case ActionSelectAir:
		return "SelectAir"
	case ActionBrushGrow:
		return "BrushGrow"
	case ActionBrushShrink:
		return "BrushShrink"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionPaint:
		return "Paint"
	default:
		return "Unknown"
	}
}

// PointerButton identifies which mouse button is held.
type PointerButton uint8

const (
	PointerNone      PointerButton = iota
	PointerPrimary                 // paints the selected material
	PointerSecondary               // erases
)

// Pointer is a held mouse button at a screen cell.
type Pointer struct {
	X, Y   int
	Button PointerButton
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered and the pointer, if held.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is nil when no mouse button is held.
	Pointer *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records a held button at screen cell (x, y).
func (f *InputFrame) SetPointer(x, y int, b PointerButton) {
	if b == PointerNone {
		f.Pointer = nil
		return
	}
	f.Pointer = &Pointer{X: x, Y: y, Button: b}
}

// Clear resets all actions for the next frame. The pointer is kept until
// the button is released since a held button paints every tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	return clone
}
