package ecs

import (
	"errors"
	"testing"

	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/GamaDu30/Day-and-Night/inventory"
	"github.com/GamaDu30/Day-and-Night/prefabs"
	"github.com/jakecoffman/cp"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	spec, err := prefabs.LoadCatalogSpec()
	if err != nil {
		t.Fatalf("load catalog spec: %v", err)
	}
	c, err := catalog.New(*spec, nil)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func TestPoolEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPool(8, testCatalog(t))
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, p.MustCreate())
			}
			if p.Len() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, p.Len())
			}
			if c.destroyIndex >= 0 {
				if !p.Destroy(ents[c.destroyIndex]) {
					t.Fatalf("Destroy should return true for alive entity")
				}
				if p.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if p.Destroy(ents[c.destroyIndex]) {
					t.Fatalf("second Destroy should be a no-op")
				}
				if p.Len() != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, p.Len())
				}
			}
		})
	}
}

func TestPoolSlotOrderAndReuse(t *testing.T) {
	p := NewPool(4, testCatalog(t))
	a, b, c := p.MustCreate(), p.MustCreate(), p.MustCreate()
	if a.Slot() != 0 || b.Slot() != 1 || c.Slot() != 2 {
		t.Fatalf("expected slots 0,1,2 got %d,%d,%d", a.Slot(), b.Slot(), c.Slot())
	}

	p.Destroy(b)
	d := p.MustCreate()
	if d.Slot() != 1 {
		t.Fatalf("expected freed slot 1 to be reused, got %d", d.Slot())
	}
	if d == b {
		t.Fatalf("reused slot must issue a new handle")
	}
	if p.IsAlive(b) {
		t.Fatalf("stale handle should not be alive")
	}
	if _, ok := p.Get(b); ok {
		t.Fatalf("stale handle should not resolve")
	}

	var got []int
	for e := range p.All() {
		got = append(got, e.Slot())
	}
	want := []int{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected slot order %v, got %v", want, got)
		}
	}
}

func TestPoolFull(t *testing.T) {
	p := NewPool(2, testCatalog(t))
	p.MustCreate()
	p.MustCreate()

	if _, err := p.Create(); !errors.Is(err, ErrPoolFull) {
		t.Fatalf("expected ErrPoolFull, got %v", err)
	}
	if p.Len() != p.Cap() {
		t.Fatalf("live count %d should equal capacity %d", p.Len(), p.Cap())
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPoolFull) {
			t.Fatalf("expected panic with ErrPoolFull, got %v", r)
		}
	}()
	p.MustCreate()
}

func TestPoolDestroyZeroesSlot(t *testing.T) {
	p := NewPool(1, testCatalog(t))
	e := p.SpawnItem(catalog.ItemIron, 4, cp.Vector{X: 3, Y: 4})
	p.Destroy(e)

	n := p.MustCreate()
	d, ok := p.Get(n)
	if !ok {
		t.Fatalf("expected new entity to resolve")
	}
	if *d != (EntityData{}) {
		t.Fatalf("reused slot should start zeroed, got %+v", *d)
	}
}

func TestPoolSetup(t *testing.T) {
	p := NewPool(4, testCatalog(t))

	tree := p.Spawn(catalog.EntityTree, cp.Vector{X: 1, Y: 2})
	d, _ := p.Get(tree)
	if d.Type != catalog.EntityTree || d.Sprite != catalog.SpriteTree {
		t.Fatalf("unexpected tree data %+v", *d)
	}
	if d.Health != p.Catalog().Archetype(catalog.EntityTree).Health {
		t.Fatalf("tree should start with archetype health, got %d", d.Health)
	}
	if d.Pos != (cp.Vector{X: 1, Y: 2}) {
		t.Fatalf("unexpected tree position %v", d.Pos)
	}

	item := p.SpawnItem(catalog.ItemLog, 3, cp.Vector{})
	d, _ = p.Get(item)
	if d.Type != catalog.EntityItem || d.Item != catalog.ItemLog || d.Amount != 3 {
		t.Fatalf("unexpected item data %+v", *d)
	}
	if d.Sprite != catalog.SpriteItemLog {
		t.Fatalf("item entity should use the item sprite, got %s", d.Sprite)
	}

	player := p.Spawn(catalog.EntityPlayer, cp.Vector{})
	d, _ = p.Get(player)
	if d.Health != 0 {
		t.Fatalf("player is not destroyable, health should stay 0, got %d", d.Health)
	}

	if err := p.Setup(Entity(0), catalog.EntityTree, cp.Vector{}); !errors.Is(err, ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestPoolAllStopsEarly(t *testing.T) {
	p := NewPool(5, testCatalog(t))
	for i := 0; i < 5; i++ {
		p.MustCreate()
	}
	n := 0
	for range p.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("expected to stop after 2, got %d", n)
	}

	// The sequence restarts from the first slot.
	first := Entity(0)
	for e := range p.All() {
		first = e
		break
	}
	if first.Slot() != 0 {
		t.Fatalf("expected restart at slot 0, got %d", first.Slot())
	}
}

func TestEntityHandle(t *testing.T) {
	var zero Entity
	if zero.Valid() || zero.Slot() != -1 {
		t.Fatalf("zero handle should be invalid")
	}
	e := makeEntity(0, 3)
	if !e.Valid() || e.Slot() != 0 || e.generation() != 3 {
		t.Fatalf("unexpected handle decode: slot=%d gen=%d", e.Slot(), e.generation())
	}
	if e.String() != "0v3" {
		t.Fatalf("unexpected string %q", e.String())
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := Camera{Pos: cp.Vector{X: 12, Y: -7}, Zoom: 5, ScreenW: 1280, ScreenH: 720}
	if got := c.WorldToScreen(c.Pos); got != (cp.Vector{X: 640, Y: 360}) {
		t.Fatalf("camera position should map to screen center, got %v", got)
	}
	p := cp.Vector{X: 31.5, Y: 4.25}
	back := c.ScreenToWorld(c.WorldToScreen(p))
	if back.Distance(p) > 1e-9 {
		t.Fatalf("expected %v, got %v", p, back)
	}
}

func TestSettingsFromSpec(t *testing.T) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}
	s, err := SettingsFromSpec(*spec)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if s.StackSize != spec.StackSize || s.MaxEntities != spec.MaxEntities {
		t.Fatalf("settings did not pick up spec values: %+v", s)
	}
	if len(s.Scatter) != len(spec.Scatter) {
		t.Fatalf("expected %d scatter entries, got %d", len(spec.Scatter), len(s.Scatter))
	}

	bad := *spec
	bad.Scatter = []prefabs.ScatterSpec{{Type: "player", Count: 1}}
	if _, err := SettingsFromSpec(bad); err == nil {
		t.Fatalf("scattering the player should fail")
	}
	bad.Scatter = []prefabs.ScatterSpec{{Type: "dragon", Count: 1}}
	if _, err := SettingsFromSpec(bad); !errors.Is(err, catalog.ErrUnknownName) {
		t.Fatalf("expected ErrUnknownName, got %v", err)
	}
}

func TestSetUXReturnsHeld(t *testing.T) {
	s := DefaultSettings()
	s.InventoryColumns, s.InventoryRows, s.Hotbar = 1, 1, 0
	w := NewWorld(s, testCatalog(t), 640, 480)
	w.Player = w.Pool.Spawn(catalog.EntityPlayer, cp.Vector{X: 5, Y: 6})

	if err := w.Inventory.SetCell(inventory.CellRef{Area: inventory.AreaGrid, Index: 0}, inventory.Item{Type: catalog.ItemIron, Amount: 2}); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if err := w.Inventory.SetHeld(inventory.Item{Type: catalog.ItemLog, Amount: 3}); err != nil {
		t.Fatalf("set held: %v", err)
	}

	w.SetUX(UXInventory)
	w.SetUX(UXNormal)

	if !w.Inventory.Held().Empty() {
		t.Fatalf("held should be emptied on close")
	}
	var dropped *EntityData
	for e := range w.Pool.All() {
		if d, _ := w.Pool.Get(e); d.Type == catalog.EntityItem {
			dropped = d
		}
	}
	if dropped == nil || dropped.Item != catalog.ItemLog || dropped.Amount != 3 {
		t.Fatalf("expected log x3 dropped in the world, got %+v", dropped)
	}
	if dropped.Pos != (cp.Vector{X: 5, Y: 6}) {
		t.Fatalf("drop should land at the player, got %v", dropped.Pos)
	}
	evts := w.Events().Drain()
	if len(evts) != 1 || evts[0].Kind != EventDrop {
		t.Fatalf("expected one drop event, got %+v", evts)
	}
}

func TestSchedulerFlushesEvents(t *testing.T) {
	w := NewWorld(DefaultSettings(), testCatalog(t), 640, 480)
	var order []string
	sched := NewScheduler(
		systemFunc(func(w *World) {
			order = append(order, "a")
			w.Events().Push(Event{Kind: EventHit})
		}),
		nil,
		systemFunc(func(w *World) {
			order = append(order, "b")
			if w.Events().Len() != 1 {
				t.Fatalf("later systems should see earlier events")
			}
		}),
	)
	sched.Update(w)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("events should be flushed after the tick")
	}
	if len(sched.Systems()) != 2 {
		t.Fatalf("nil systems should be skipped")
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }

func TestPoolMustSetupPanicsOnStaleHandle(t *testing.T) {
	p := NewPool(2, testCatalog(t))
	e := p.Spawn(catalog.EntityMineral, cp.Vector{})
	p.Destroy(e)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEntityNotAlive) {
			t.Fatalf("expected ErrEntityNotAlive panic, got %v", r)
		}
	}()
	p.mustSetup(e, catalog.EntityTree, cp.Vector{})
}
