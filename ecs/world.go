package ecs

import (
	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/GamaDu30/Day-and-Night/inventory"
	"github.com/jakecoffman/cp"
)

// UXState gates selection and click routing.
type UXState int

const (
	UXNormal UXState = iota
	UXInventory
)

// World is the whole game state. It is owned by the update loop and passed to
// every system.
type World struct {
	Settings  Settings
	Catalog   *catalog.Catalog
	Pool      *Pool
	Inventory *inventory.Store
	Layout    *inventory.Layout
	Camera    Camera
	Input     InputState

	Player Entity
	// Selected is recomputed every tick and never kept across ticks.
	Selected Entity
	// Hovered is the inventory cell under the cursor this tick.
	Hovered inventory.CellRef
	UX      UXState

	DT   float64
	Time float64

	events EventQueue
}

// NewWorld creates an empty world for a screen of the given size.
func NewWorld(settings Settings, cat *catalog.Catalog, screenW, screenH float64) *World {
	store := inventory.NewStore(settings.InventoryColumns, settings.InventoryRows, settings.Hotbar, settings.StackSize)
	return &World{
		Settings:  settings,
		Catalog:   cat,
		Pool:      NewPool(settings.MaxEntities, cat),
		Inventory: store,
		Layout:    inventory.NewLayout(store, screenW, screenH, settings.CellSize, settings.CellPadding),
		Camera:    Camera{Zoom: settings.CameraZoom, ScreenW: screenW, ScreenH: screenH},
		Input:     InputState{HotbarPressed: -1},
		Hovered:   inventory.NoCell,
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Step advances the clock by dt seconds.
func (w *World) Step(dt float64) {
	if w == nil {
		return
	}
	w.DT = dt
	w.Time += dt
}

// PlayerPos returns the player position.
func (w *World) PlayerPos() (cp.Vector, bool) {
	if w == nil {
		return cp.Vector{}, false
	}
	d, ok := w.Pool.Get(w.Player)
	if !ok {
		return cp.Vector{}, false
	}
	return d.Pos, true
}

// CursorWorld returns the cursor position in world space.
func (w *World) CursorWorld() cp.Vector {
	return w.Camera.ScreenToWorld(w.Input.Cursor)
}

// DropItem puts a stack into the world at pos as an item entity.
func (w *World) DropItem(it inventory.Item, pos cp.Vector) Entity {
	if w == nil || it.Empty() {
		return 0
	}
	e := w.Pool.SpawnItem(it.Type, it.Amount, pos)
	w.events.Push(Event{Kind: EventDrop, Entity: e, Pos: pos})
	return e
}

// SetUX switches the UX mode. Leaving the inventory returns the held stack to
// the store and drops what no longer fits at the player's feet.
func (w *World) SetUX(ux UXState) {
	if w == nil || w.UX == ux {
		return
	}
	w.UX = ux
	if ux == UXInventory {
		w.Selected = 0
		return
	}
	w.Hovered = inventory.NoCell
	if rest := w.Inventory.ReturnHeld(); !rest.Empty() {
		pos, _ := w.PlayerPos()
		w.DropItem(rest, pos)
	}
}
