package catalog

// Archetype is the default behaviour of an entity type.
type Archetype struct {
	Sprite      SpriteID
	Destroyable bool
	Selectable  bool
	Pickable    bool
	Loot        ItemType
	Health      int
}

// Archetypes is the static archetype table, indexed by entity type.
type Archetypes struct {
	entries [entityTypeCount]Archetype
}

// Get returns the archetype of t. Unknown types yield an inert archetype.
func (a *Archetypes) Get(t EntityType) Archetype {
	if a == nil || t <= EntityNil || t >= entityTypeCount {
		return Archetype{}
	}
	return a.entries[t]
}
