// Package catalog holds the static sprite, item and archetype tables. The
// tables are built once from prefab specs and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"

	"github.com/GamaDu30/Day-and-Night/prefabs"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrUnknownName  = errors.New("catalog: unknown name")
	ErrAssetMissing = errors.New("catalog: asset missing")
	ErrDuplicate    = errors.New("catalog: duplicate entry")
)

// ImageLoader resolves an asset path to an image.
type ImageLoader func(path string) (*ebiten.Image, error)

// Catalog groups the three read-only registries.
type Catalog struct {
	Sprites    Sprites
	Items      Items
	Archetypes Archetypes
}

// New builds a catalog from a prefab spec. A nil loader skips image loading,
// sprites then only carry their prefab size.
func New(spec prefabs.CatalogSpec, load ImageLoader) (*Catalog, error) {
	c := &Catalog{}

	for _, s := range spec.Sprites {
		id, err := ParseSpriteID(s.ID)
		if err != nil {
			return nil, err
		}
		if _, ok := c.Sprites.Get(id); ok {
			return nil, fmt.Errorf("%w: sprite %s", ErrDuplicate, id)
		}
		pivot, err := ParsePivot(s.Pivot)
		if err != nil {
			return nil, fmt.Errorf("catalog: sprite %s: %w", id, err)
		}
		sprite := Sprite{Path: s.Image, Pivot: pivot, Width: s.Width, Height: s.Height}
		if load != nil {
			img, err := load(s.Image)
			if err != nil {
				return nil, fmt.Errorf("catalog: sprite %s: %w: %w", id, ErrAssetMissing, err)
			}
			sprite.Image = img
		}
		c.Sprites.register(id, sprite)
	}

	for _, s := range spec.Items {
		t, err := ParseItemType(s.Type)
		if err != nil {
			return nil, err
		}
		if t == ItemNil {
			return nil, fmt.Errorf("%w: item type %q", ErrUnknownName, s.Type)
		}
		sprite, err := c.lookupSprite(s.Sprite)
		if err != nil {
			return nil, fmt.Errorf("catalog: item %s: %w", t, err)
		}
		c.Items.entries[t] = ItemData{Sprite: sprite, Name: s.Name, Description: s.Description}
	}

	for _, s := range spec.Entities {
		t, err := ParseEntityType(s.Type)
		if err != nil {
			return nil, err
		}
		if t == EntityNil {
			return nil, fmt.Errorf("%w: entity type %q", ErrUnknownName, s.Type)
		}
		sprite, err := c.lookupSprite(s.Sprite)
		if err != nil {
			return nil, fmt.Errorf("catalog: entity %s: %w", t, err)
		}
		loot, err := ParseItemType(s.Loot)
		if err != nil {
			return nil, fmt.Errorf("catalog: entity %s: %w", t, err)
		}
		c.Archetypes.entries[t] = Archetype{
			Sprite:      sprite,
			Destroyable: s.Destroyable,
			Selectable:  s.Selectable,
			Pickable:    s.Pickable,
			Loot:        loot,
			Health:      s.Health,
		}
	}

	return c, nil
}

func (c *Catalog) lookupSprite(name string) (SpriteID, error) {
	id, err := ParseSpriteID(name)
	if err != nil {
		return SpriteNil, err
	}
	if id == SpriteNil {
		return SpriteNil, nil
	}
	if _, ok := c.Sprites.Get(id); !ok {
		return SpriteNil, fmt.Errorf("%w: sprite %s not registered", ErrUnknownName, id)
	}
	return id, nil
}

// Archetype returns the archetype of t.
func (c *Catalog) Archetype(t EntityType) Archetype {
	if c == nil {
		return Archetype{}
	}
	return c.Archetypes.Get(t)
}

// SpriteFor resolves the sprite an entity is drawn with. Item entities use the
// icon of the item they carry, every other type uses its archetype sprite.
func (c *Catalog) SpriteFor(t EntityType, item ItemType) SpriteID {
	if c == nil {
		return SpriteNil
	}
	if t == EntityItem {
		return c.Items.Sprite(item)
	}
	return c.Archetypes.Get(t).Sprite
}

// Sprite returns the registered sprite for id.
func (c *Catalog) Sprite(id SpriteID) (Sprite, bool) {
	if c == nil {
		return Sprite{}, false
	}
	return c.Sprites.Get(id)
}
