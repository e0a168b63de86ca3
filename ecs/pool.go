package ecs

import (
	"errors"
	"fmt"
	"iter"

	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/jakecoffman/cp"
)

// MaxEntities is the default pool capacity.
const MaxEntities = 1024

var (
	ErrPoolFull       = errors.New("ecs: entity pool full")
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
)

// EntityData is the payload of one pool slot.
type EntityData struct {
	Type   catalog.EntityType
	Item   catalog.ItemType
	Sprite catalog.SpriteID
	Pos    cp.Vector
	Health int
	Amount int
}

type slot struct {
	valid bool
	gen   generation
	data  EntityData
}

// Pool is a fixed-capacity slot array. Free slots are kept on a stack so that
// allocation is O(1); a fresh pool hands out slots in index order and a
// destroyed slot is the next one reused.
type Pool struct {
	slots   []slot
	free    []int
	live    int
	catalog *catalog.Catalog
}

// NewPool creates a pool with room for capacity entities.
func NewPool(capacity int, cat *catalog.Catalog) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool{
		slots:   make([]slot, capacity),
		free:    make([]int, capacity),
		catalog: cat,
	}
	for i := range p.free {
		p.free[i] = capacity - 1 - i
	}
	return p
}

// Create claims a free slot.
func (p *Pool) Create() (Entity, error) {
	if p == nil || len(p.free) == 0 {
		return 0, ErrPoolFull
	}
	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	s := &p.slots[idx]
	s.valid = true
	p.live++
	return makeEntity(idx, s.gen), nil
}

// MustCreate claims a free slot and panics when the pool is full. The pool
// never grows, running out of slots is a fatal invariant violation.
func (p *Pool) MustCreate() Entity {
	e, err := p.Create()
	if err != nil {
		panic(fmt.Errorf("ecs: create entity (%d/%d live): %w", p.Len(), p.Cap(), err))
	}
	return e
}

// Setup assigns type and position and derives the sprite and starting health
// from the catalog. Item entities need their item type set beforehand.
func (p *Pool) Setup(e Entity, t catalog.EntityType, pos cp.Vector) error {
	d, ok := p.Get(e)
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntityNotAlive, e)
	}
	d.Type = t
	d.Pos = pos
	d.Sprite = p.catalog.SpriteFor(t, d.Item)
	arch := p.catalog.Archetype(t)
	if arch.Destroyable {
		d.Health = max(arch.Health, 1)
	}
	return nil
}

// Spawn creates and sets up an entity of type t at pos.
func (p *Pool) Spawn(t catalog.EntityType, pos cp.Vector) Entity {
	e := p.MustCreate()
	p.mustSetup(e, t, pos)
	return e
}

// SpawnItem creates a dropped item entity carrying amount of item.
func (p *Pool) SpawnItem(item catalog.ItemType, amount int, pos cp.Vector) Entity {
	e := p.MustCreate()
	d := &p.slots[e.slot()].data
	d.Item = item
	d.Amount = amount
	p.mustSetup(e, catalog.EntityItem, pos)
	return e
}

// mustSetup is Setup for handles fresh from MustCreate, where a failure is a
// pool invariant violation.
func (p *Pool) mustSetup(e Entity, t catalog.EntityType, pos cp.Vector) {
	if err := p.Setup(e, t, pos); err != nil {
		panic(fmt.Errorf("ecs: setup %s as %s: %w", e, t, err))
	}
}

// Get returns the slot payload of a live entity. The pointer must not be kept
// across a Destroy.
func (p *Pool) Get(e Entity) (*EntityData, bool) {
	if !p.IsAlive(e) {
		return nil, false
	}
	return &p.slots[e.slot()].data, true
}

// IsAlive reports whether e still refers to the entity it was issued for.
func (p *Pool) IsAlive(e Entity) bool {
	if p == nil || !e.Valid() {
		return false
	}
	idx := e.slot()
	if idx < 0 || idx >= len(p.slots) {
		return false
	}
	s := &p.slots[idx]
	return s.valid && s.gen == e.generation()
}

// Destroy clears the slot and makes it available again. Any handle to it
// becomes stale immediately.
func (p *Pool) Destroy(e Entity) bool {
	if !p.IsAlive(e) {
		return false
	}
	idx := e.slot()
	s := &p.slots[idx]
	s.valid = false
	s.data = EntityData{}
	s.gen++
	p.free = append(p.free, idx)
	p.live--
	return true
}

// All yields every live entity in slot order.
func (p *Pool) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		if p == nil {
			return
		}
		for i := range p.slots {
			s := &p.slots[i]
			if !s.valid {
				continue
			}
			if !yield(makeEntity(i, s.gen)) {
				return
			}
		}
	}
}

// Len returns the number of live entities.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return p.live
}

// Cap returns the fixed capacity.
func (p *Pool) Cap() int {
	if p == nil {
		return 0
	}
	return len(p.slots)
}

// Catalog returns the catalog entities are set up from.
func (p *Pool) Catalog() *catalog.Catalog {
	if p == nil {
		return nil
	}
	return p.catalog
}
