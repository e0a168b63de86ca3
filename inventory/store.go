// Package inventory implements the grid, the hotbar and the cursor-held stack
// together with the mouse driven cell protocol.
package inventory

import (
	"errors"
	"fmt"

	"github.com/GamaDu30/Day-and-Night/catalog"
)

var (
	ErrInvalidCell  = errors.New("inventory: invalid cell")
	ErrInvalidStack = errors.New("inventory: invalid stack")
)

// Area selects the slot collection a cell belongs to.
type Area int

const (
	AreaGrid Area = iota
	AreaHotbar
)

func (a Area) String() string {
	if a == AreaHotbar {
		return "hotbar"
	}
	return "grid"
}

// CellRef addresses one cell.
type CellRef struct {
	Area  Area
	Index int
}

// NoCell is the ref used when nothing is addressed.
var NoCell = CellRef{Index: -1}

// Valid reports whether the ref points at a cell at all.
func (r CellRef) Valid() bool {
	return r.Index >= 0
}

func (r CellRef) String() string {
	if !r.Valid() {
		return "none"
	}
	return fmt.Sprintf("%s[%d]", r.Area, r.Index)
}

// Store owns every stack of the player.
type Store struct {
	grid      []Item
	hotbar    []Item
	held      Item
	origin    CellRef
	columns   int
	stackSize int
	active    int
}

// NewStore creates an empty store with a columns x rows grid.
func NewStore(columns, rows, hotbar, stackSize int) *Store {
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}
	if hotbar < 0 {
		hotbar = 0
	}
	if stackSize < 1 {
		stackSize = 1
	}
	return &Store{
		grid:      make([]Item, columns*rows),
		hotbar:    make([]Item, hotbar),
		origin:    NoCell,
		columns:   columns,
		stackSize: stackSize,
	}
}

func (s *Store) StackSize() int { return s.stackSize }
func (s *Store) Columns() int   { return s.columns }
func (s *Store) GridLen() int   { return len(s.grid) }
func (s *Store) HotbarLen() int { return len(s.hotbar) }

// Rows returns the number of grid rows.
func (s *Store) Rows() int {
	if s.columns == 0 {
		return 0
	}
	return len(s.grid) / s.columns
}

// Held returns the stack carried by the cursor.
func (s *Store) Held() Item { return s.held }

// Origin returns the cell the held stack was last lifted from.
func (s *Store) Origin() CellRef { return s.origin }

// Cell returns the stack in ref.
func (s *Store) Cell(ref CellRef) (Item, bool) {
	p := s.cell(ref)
	if p == nil {
		return Item{}, false
	}
	return *p, true
}

// SetCell overwrites a cell. It is meant for setup and rejects stacks that
// break the stack invariants.
func (s *Store) SetCell(ref CellRef, it Item) error {
	p := s.cell(ref)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrInvalidCell, ref)
	}
	if err := it.validate(s.stackSize); err != nil {
		return err
	}
	*p = it
	return nil
}

// SetHeld overwrites the held stack.
func (s *Store) SetHeld(it Item) error {
	if err := it.validate(s.stackSize); err != nil {
		return err
	}
	s.held = it
	return nil
}

func (s *Store) cell(ref CellRef) *Item {
	if s == nil || ref.Index < 0 {
		return nil
	}
	switch ref.Area {
	case AreaGrid:
		if ref.Index < len(s.grid) {
			return &s.grid[ref.Index]
		}
	case AreaHotbar:
		if ref.Index < len(s.hotbar) {
			return &s.hotbar[ref.Index]
		}
	}
	return nil
}

// Primary applies a left click on ref and reports whether anything changed.
//
//	held empty,  cell empty:      nothing
//	held empty,  cell full:       lift the cell into held
//	held full,   cell empty:      place held into the cell
//	held full,   same type:       merge up to the stack size, the rest stays held
//	held full,   other type:      swap
func (s *Store) Primary(ref CellRef) bool {
	c := s.cell(ref)
	if c == nil {
		return false
	}

	switch {
	case s.held.Empty() && c.Empty():
		return false
	case s.held.Empty():
		s.held = *c
		*c = Item{}
		s.origin = ref
		return true
	case c.Empty():
		*c = s.held
		s.held = Item{}
		return true
	case c.Type == s.held.Type:
		room := s.stackSize - c.Amount
		if room <= 0 {
			return false
		}
		if s.held.Amount <= room {
			c.Amount += s.held.Amount
			s.held = Item{}
			return true
		}
		c.Amount = s.stackSize
		s.held.Amount -= room
		return true
	default:
		*c, s.held = s.held, *c
		s.origin = ref
		return true
	}
}

// Secondary applies a right click on ref: the ceiling half of the cell moves
// into held. A held stack of another type rejects the split, a held stack of
// the same type only takes what still fits.
func (s *Store) Secondary(ref CellRef) bool {
	c := s.cell(ref)
	if c == nil || c.Empty() {
		return false
	}
	if !s.held.Empty() && s.held.Type != c.Type {
		return false
	}

	moved := (c.Amount + 1) / 2
	if room := s.stackSize - s.held.Amount; moved > room {
		moved = room
	}
	if moved <= 0 {
		return false
	}

	if s.held.Empty() {
		s.held = Item{Type: c.Type}
		s.origin = ref
	}
	s.held.Amount += moved
	c.Amount -= moved
	if c.Amount == 0 {
		*c = Item{}
	}
	return true
}

// Take empties ref and returns what it held.
func (s *Store) Take(ref CellRef) Item {
	c := s.cell(ref)
	if c == nil {
		return Item{}
	}
	out := *c
	*c = Item{}
	return out
}

// Absorb stacks amount of t into the grid, filling same-type and empty slots
// in index order. It returns the amount that found room.
func (s *Store) Absorb(t catalog.ItemType, amount int) int {
	if s == nil || t == catalog.ItemNil || amount <= 0 {
		return 0
	}
	remaining := amount
	for i := range s.grid {
		if remaining == 0 {
			break
		}
		remaining -= s.fill(&s.grid[i], t, remaining)
	}
	return amount - remaining
}

func (s *Store) fill(c *Item, t catalog.ItemType, amount int) int {
	if !c.Empty() && c.Type != t {
		return 0
	}
	n := min(s.stackSize-c.Amount, amount)
	if n <= 0 {
		return 0
	}
	if c.Empty() {
		*c = Item{Type: t}
	}
	c.Amount += n
	return n
}

// ReturnHeld puts the held stack back: first into its origin cell, then into
// the grid. Whatever still does not fit is returned and held is cleared.
func (s *Store) ReturnHeld() Item {
	if s == nil || s.held.Empty() {
		return Item{}
	}
	h := s.held
	s.held = Item{}

	if c := s.cell(s.origin); c != nil {
		h.Amount -= s.fill(c, h.Type, h.Amount)
	}
	if h.Amount > 0 {
		h.Amount -= s.Absorb(h.Type, h.Amount)
	}
	s.origin = NoCell
	if h.Amount == 0 {
		return Item{}
	}
	return h
}

// Count returns the total amount of t across grid, hotbar and held.
func (s *Store) Count(t catalog.ItemType) int {
	if s == nil || t == catalog.ItemNil {
		return 0
	}
	total := 0
	for _, it := range s.grid {
		if it.Type == t {
			total += it.Amount
		}
	}
	for _, it := range s.hotbar {
		if it.Type == t {
			total += it.Amount
		}
	}
	if s.held.Type == t {
		total += s.held.Amount
	}
	return total
}

// SelectHotbar marks hotbar index i as active.
func (s *Store) SelectHotbar(i int) bool {
	if s == nil || i < 0 || i >= len(s.hotbar) {
		return false
	}
	s.active = i
	return true
}

// ActiveHotbar returns the active hotbar index.
func (s *Store) ActiveHotbar() int { return s.active }
