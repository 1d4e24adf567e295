package components

import (
	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed is computed on demand by comparing frames. All
// devices are merged.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

// Pressed reports whether the action is held this frame.
func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()

// ControlData is the per-frame movement intent sampled from InputData for
// the player entity. The movement system consumes JumpPressed on the first
// fixed step of the frame.
type ControlData struct {
	Axis        float64 // -1..1 horizontal intent
	JumpPressed bool    // press edge this frame
}

var Control = donburi.NewComponentType[ControlData]()
