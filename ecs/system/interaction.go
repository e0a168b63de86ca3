package system

import (
	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/GamaDu30/Day-and-Night/ecs"
)

// InteractionSystem resolves a primary click against the selected entity.
type InteractionSystem struct{}

func NewInteractionSystem() *InteractionSystem { return &InteractionSystem{} }

func (s *InteractionSystem) Update(w *ecs.World) {
	if w == nil || w.UX != ecs.UXNormal || !w.Input.PrimaryPressed {
		return
	}
	Interact(w, w.Selected)
}

// Interact hits a destroyable entity or picks up a pickable one. It reports
// whether the world changed.
func Interact(w *ecs.World, e ecs.Entity) bool {
	d, ok := w.Pool.Get(e)
	if !ok {
		return false
	}
	arch := w.Catalog.Archetype(d.Type)

	switch {
	case arch.Destroyable:
		d.Health--
		w.Events().Push(ecs.Event{Kind: ecs.EventHit, Entity: e, Pos: d.Pos})
		if d.Health > 0 {
			return true
		}
		pos := d.Pos
		if arch.Loot != catalog.ItemNil {
			w.Pool.SpawnItem(arch.Loot, w.Settings.LootAmount, pos)
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventDestroyed, Entity: e, Pos: pos})
		w.Pool.Destroy(e)
		return true

	case arch.Pickable:
		absorbed := w.Inventory.Absorb(d.Item, d.Amount)
		if absorbed == 0 {
			return false
		}
		pos := d.Pos
		d.Amount -= absorbed
		if d.Amount > 0 {
			return true
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventPickup, Entity: e, Pos: pos})
		w.Pool.Destroy(e)
		return true
	}
	return false
}
