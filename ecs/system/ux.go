package system

import "github.com/GamaDu30/Day-and-Night/ecs"

// UXSystem toggles the inventory overlay and the active hotbar cell. It runs
// before selection so that a tick routes clicks to exactly one place.
type UXSystem struct{}

func NewUXSystem() *UXSystem { return &UXSystem{} }

func (s *UXSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if w.Input.InventoryPressed {
		if w.UX == ecs.UXInventory {
			w.SetUX(ecs.UXNormal)
		} else {
			w.SetUX(ecs.UXInventory)
		}
	}
	if w.Input.HotbarPressed >= 0 {
		w.Inventory.SelectHotbar(w.Input.HotbarPressed)
	}
}
