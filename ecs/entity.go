package ecs

import "strconv"

// Entity is a handle into the pool: slot index plus the slot generation at the
// time the handle was issued. The zero value never refers to an entity.
type Entity uint64

type generation uint32

const entityIDBits = 32

func makeEntity(slot int, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(uint32(slot+1)))
}

func (e Entity) slot() int {
	return int(uint32(e)) - 1
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// Slot returns the pool index the handle points at, -1 for the zero handle.
func (e Entity) Slot() int {
	return e.slot()
}

func (e Entity) String() string {
	if !e.Valid() {
		return "none"
	}
	return strconv.Itoa(e.slot()) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether the handle was issued by a pool. It says nothing about
// the entity still being alive, see Pool.IsAlive.
func (e Entity) Valid() bool {
	return uint32(e) != 0
}
