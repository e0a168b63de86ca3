package system

import (
	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/jakecoffman/cp"
)

type SelectionSystem struct{}

func NewSelectionSystem() *SelectionSystem { return &SelectionSystem{} }

// Update recomputes the selected entity from scratch. World selection is
// suspended while the inventory is open.
func (s *SelectionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Selected = 0
	if w.UX == ecs.UXInventory {
		return
	}
	// The hotbar is drawn over the world and takes the click.
	if _, ok := w.Layout.Hover(w.Input.Cursor, false); ok {
		return
	}
	w.Selected = Select(w.Pool, w.CursorWorld(), w.Settings.SelectionRadius, w.Settings.SelectionOffset)
}

// Select returns the selectable entity whose anchor (position plus offset) is
// closest to cursor and strictly within radius. The lowest slot wins ties.
func Select(p *ecs.Pool, cursor cp.Vector, radius float64, offset cp.Vector) ecs.Entity {
	var best ecs.Entity
	bestDist := radius
	for e := range p.All() {
		d, _ := p.Get(e)
		if !p.Catalog().Archetype(d.Type).Selectable {
			continue
		}
		dist := d.Pos.Add(offset).Distance(cursor)
		if dist < bestDist {
			bestDist = dist
			best = e
		}
	}
	return best
}
