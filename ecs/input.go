package ecs

import "github.com/jakecoffman/cp"

// InputState is the per-tick snapshot systems read instead of polling devices.
type InputState struct {
	// Cursor is the mouse position in screen pixels.
	Cursor cp.Vector
	// Move is the raw movement axis, each component in [-1, 1].
	Move cp.Vector

	PrimaryPressed   bool
	SecondaryPressed bool
	DropPressed      bool
	InventoryPressed bool
	PausePressed     bool
	// HotbarPressed is the hotbar index picked with the number keys, -1 if none.
	HotbarPressed int
}
