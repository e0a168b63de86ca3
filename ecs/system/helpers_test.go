package system

import (
	"testing"

	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/GamaDu30/Day-and-Night/inventory"
	"github.com/GamaDu30/Day-and-Night/prefabs"
	"github.com/jakecoffman/cp"
)

const (
	testScreenW = 1280
	testScreenH = 720
)

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	spec, err := prefabs.LoadCatalogSpec()
	if err != nil {
		t.Fatalf("load catalog spec: %v", err)
	}
	cat, err := catalog.New(*spec, nil)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return ecs.NewWorld(ecs.DefaultSettings(), cat, testScreenW, testScreenH)
}

// pointAt aims the cursor at world position p.
func pointAt(w *ecs.World, p cp.Vector) {
	w.Input.Cursor = w.Camera.WorldToScreen(p)
}

// pointAtCell aims the cursor at the center of ref.
func pointAtCell(t *testing.T, w *ecs.World, ref inventory.CellRef) {
	t.Helper()
	for _, c := range w.Layout.Cells() {
		if c.Ref == ref {
			w.Input.Cursor = cp.Vector{X: (c.BB.L + c.BB.R) / 2, Y: (c.BB.B + c.BB.T) / 2}
			return
		}
	}
	t.Fatalf("no cell %v in layout", ref)
}

func resetInput(w *ecs.World) {
	cursor := w.Input.Cursor
	w.Input = ecs.InputState{Cursor: cursor, HotbarPressed: -1}
}

func eventKinds(w *ecs.World) []ecs.EventKind {
	var out []ecs.EventKind
	for _, evt := range w.Events().Drain() {
		out = append(out, evt.Kind)
	}
	return out
}

func entitiesOf(w *ecs.World, t catalog.EntityType) []ecs.Entity {
	var out []ecs.Entity
	for e := range w.Pool.All() {
		if d, _ := w.Pool.Get(e); d.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func fillGrid(t *testing.T, w *ecs.World, it inventory.Item) {
	t.Helper()
	for i := 0; i < w.Inventory.GridLen(); i++ {
		if err := w.Inventory.SetCell(inventory.CellRef{Area: inventory.AreaGrid, Index: i}, it); err != nil {
			t.Fatalf("set cell %d: %v", i, err)
		}
	}
}
