package inventory

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestLayoutOrder(t *testing.T) {
	s := NewStore(3, 2, 4, testStackSize)
	l := NewLayout(s, 800, 600, 40, 4)

	cells := l.Cells()
	if len(cells) != 10 {
		t.Fatalf("expected 10 cells, got %d", len(cells))
	}
	for i := 0; i < 6; i++ {
		if cells[i].Ref != grid(i) {
			t.Fatalf("cell %d: expected %s, got %s", i, grid(i), cells[i].Ref)
		}
	}
	for i := 0; i < 4; i++ {
		if cells[6+i].Ref != hotbar(i) {
			t.Fatalf("cell %d: expected %s, got %s", 6+i, hotbar(i), cells[6+i].Ref)
		}
	}
	if len(l.GridCells()) != 6 || len(l.HotbarCells()) != 4 {
		t.Fatalf("unexpected split %d/%d", len(l.GridCells()), len(l.HotbarCells()))
	}

	// Row-major: cell 1 sits right of cell 0, cell 3 below cell 0.
	if cells[1].BB.L <= cells[0].BB.R || cells[1].BB.B != cells[0].BB.B {
		t.Fatalf("cell 1 should be on the same row right of cell 0")
	}
	if cells[3].BB.B <= cells[0].BB.T || cells[3].BB.L != cells[0].BB.L {
		t.Fatalf("cell 3 should be on the next row below cell 0")
	}
	if cells[6].BB.B <= cells[5].BB.T {
		t.Fatalf("hotbar should be below the grid")
	}
}

func TestLayoutHover(t *testing.T) {
	s := NewStore(3, 2, 4, testStackSize)
	l := NewLayout(s, 800, 600, 40, 4)

	center := func(c Cell) cp.Vector {
		return cp.Vector{X: (c.BB.L + c.BB.R) / 2, Y: (c.BB.B + c.BB.T) / 2}
	}

	cases := []struct {
		name        string
		p           cp.Vector
		includeGrid bool
		want        CellRef
		wantOK      bool
	}{
		{"grid_cell", center(l.Cells()[4]), true, grid(4), true},
		{"grid_hidden", center(l.Cells()[4]), false, NoCell, false},
		{"hotbar_cell", center(l.Cells()[8]), false, hotbar(2), true},
		{"hotbar_with_grid", center(l.Cells()[8]), true, hotbar(2), true},
		{"gap_between_cells", cp.Vector{X: l.Cells()[0].BB.R + 2, Y: center(l.Cells()[0]).Y}, true, NoCell, false},
		{"off_screen", cp.Vector{X: -10, Y: -10}, true, NoCell, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := l.Hover(c.p, c.includeGrid)
			if ok != c.wantOK || got != c.want {
				t.Fatalf("expected %s/%v, got %s/%v", c.want, c.wantOK, got, ok)
			}
		})
	}
}
