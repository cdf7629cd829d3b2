package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sand/internal/core"
)

// SandboxKeyMap defines the key bindings while a sandbox is running.
type SandboxKeyMap struct {
	Sand        key.Binding
	Water       key.Binding
	Solid       key.Binding
	Eraser      key.Binding
	BrushGrow   key.Binding
	BrushShrink key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Paint       key.Binding
	Pause       key.Binding
	Step        key.Binding
	Reset       key.Binding
	Screenshot  key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SandboxKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sand, k.Water, k.Solid, k.Eraser, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SandboxKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sand, k.Water, k.Solid, k.Eraser},
		{k.BrushGrow, k.BrushShrink, k.Paint},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Step, k.Reset, k.Screenshot},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultSandboxKeyMap returns default key bindings.
func DefaultSandboxKeyMap() SandboxKeyMap {
	return SandboxKeyMap{
		Sand:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "sand")),
		Water:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "water")),
		Solid:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "solid")),
		Eraser:      key.NewBinding(key.WithKeys("4", "e"), key.WithHelp("4/e", "eraser")),
		BrushGrow:   key.NewBinding(key.WithKeys("+", "=", "]"), key.WithHelp("+", "bigger brush")),
		BrushShrink: key.NewBinding(key.WithKeys("-", "_", "["), key.WithHelp("-", "smaller brush")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "cursor up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "cursor down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "cursor left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "cursor right")),
		Paint:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "paint")),
		Pause:       key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
		Step:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "step")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Screenshot:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "scenes")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Action translates a key message to a sandbox action.
// Keys handled by the model itself (help, back, screenshot, quit) map to ActionNone.
func (k SandboxKeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Sand, core.ActionSelectSand},
		{k.Water, core.ActionSelectWater},
		{k.Solid, core.ActionSelectSolid},
		{k.Eraser, core.ActionSelectAir},
		{k.BrushGrow, core.ActionBrushGrow},
		{k.BrushShrink, core.ActionBrushShrink},
		{k.Up, core.ActionCursorUp},
		{k.Down, core.ActionCursorDown},
		{k.Left, core.ActionCursorLeft},
		{k.Right, core.ActionCursorRight},
		{k.Paint, core.ActionPaint},
		{k.Pause, core.ActionPause},
		{k.Step, core.ActionStep},
		{k.Reset, core.ActionReset},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return kb.a
		}
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionRuns
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionRuns
	}

	return MenuActionNone
}
