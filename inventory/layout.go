package inventory

import "github.com/jakecoffman/cp"

// Cell is the screen-space quad of one inventory cell.
type Cell struct {
	Ref CellRef
	BB  cp.BB
}

// Layout places the grid centered on screen and the hotbar along the bottom
// edge. Cells are kept in draw order: grid row-major, then hotbar left to right.
type Layout struct {
	cells    []Cell
	gridLen  int
	cellSize float64
	panel    cp.BB
}

// NewLayout computes the cell quads for store on a screen of the given size.
func NewLayout(store *Store, screenW, screenH, cellSize, padding float64) *Layout {
	l := &Layout{cellSize: cellSize}
	if store == nil {
		return l
	}
	stride := cellSize + padding

	cols, rows := store.Columns(), store.Rows()
	gridW := float64(cols)*stride - padding
	gridH := float64(rows)*stride - padding
	left := (screenW - gridW) / 2
	top := (screenH - gridH) / 2
	for i := 0; i < store.GridLen(); i++ {
		x := left + float64(i%cols)*stride
		y := top + float64(i/cols)*stride
		l.cells = append(l.cells, Cell{
			Ref: CellRef{Area: AreaGrid, Index: i},
			BB:  cp.BB{L: x, B: y, R: x + cellSize, T: y + cellSize},
		})
	}
	l.gridLen = len(l.cells)
	l.panel = cp.BB{L: left - padding, B: top - padding, R: left + gridW + padding, T: top + gridH + padding}

	n := store.HotbarLen()
	barW := float64(n)*stride - padding
	barLeft := (screenW - barW) / 2
	barTop := screenH - cellSize - 2*padding
	for i := 0; i < n; i++ {
		x := barLeft + float64(i)*stride
		l.cells = append(l.cells, Cell{
			Ref: CellRef{Area: AreaHotbar, Index: i},
			BB:  cp.BB{L: x, B: barTop, R: x + cellSize, T: barTop + cellSize},
		})
	}
	return l
}

// Cells returns every cell quad in draw order.
func (l *Layout) Cells() []Cell {
	if l == nil {
		return nil
	}
	return l.cells
}

// GridCells returns the grid quads only.
func (l *Layout) GridCells() []Cell {
	if l == nil {
		return nil
	}
	return l.cells[:l.gridLen]
}

// HotbarCells returns the hotbar quads only.
func (l *Layout) HotbarCells() []Cell {
	if l == nil {
		return nil
	}
	return l.cells[l.gridLen:]
}

// Panel is the backdrop behind the grid.
func (l *Layout) Panel() cp.BB {
	if l == nil {
		return cp.BB{}
	}
	return l.panel
}

// CellSize returns the side of one cell in pixels.
func (l *Layout) CellSize() float64 {
	if l == nil {
		return 0
	}
	return l.cellSize
}

// Hover returns the first cell under p. The grid is skipped unless
// includeGrid is set, since it is only on screen while the inventory is open.
func (l *Layout) Hover(p cp.Vector, includeGrid bool) (CellRef, bool) {
	if l == nil {
		return NoCell, false
	}
	cells := l.cells
	if !includeGrid {
		cells = l.HotbarCells()
	}
	for _, c := range cells {
		if c.BB.ContainsVect(p) {
			return c.Ref, true
		}
	}
	return NoCell, false
}
