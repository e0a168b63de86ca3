package system

import (
	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/GamaDu30/Day-and-Night/inventory"
)

// InventorySystem finds the hovered cell and applies the cell protocol. Clicks
// only reach the store while the inventory is open; the drop key works on any
// visible cell.
type InventorySystem struct{}

func NewInventorySystem() *InventorySystem { return &InventorySystem{} }

func (s *InventorySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	open := w.UX == ecs.UXInventory

	ref, ok := w.Layout.Hover(w.Input.Cursor, open)
	if !ok {
		w.Hovered = inventory.NoCell
		return
	}
	w.Hovered = ref

	if w.Input.DropPressed {
		DropCell(w, ref)
	}
	if !open {
		return
	}
	if w.Input.PrimaryPressed {
		w.Inventory.Primary(ref)
	} else if w.Input.SecondaryPressed {
		w.Inventory.Secondary(ref)
	}
}

// DropCell empties ref into the world at the player's position.
func DropCell(w *ecs.World, ref inventory.CellRef) ecs.Entity {
	pos, ok := w.PlayerPos()
	if !ok {
		return 0
	}
	it, _ := w.Inventory.Cell(ref)
	if it.Empty() {
		return 0
	}
	return w.DropItem(w.Inventory.Take(ref), pos)
}
