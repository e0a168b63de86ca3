package catalog

import "fmt"

// EntityType tags every slot in the entity pool.
type EntityType int

const (
	EntityNil EntityType = iota
	EntityPlayer
	EntityMineral
	EntityTree
	EntityItem
	entityTypeCount
)

var entityTypeNames = [entityTypeCount]string{
	EntityNil:     "nil",
	EntityPlayer:  "player",
	EntityMineral: "mineral",
	EntityTree:    "tree",
	EntityItem:    "item",
}

func (t EntityType) String() string {
	if t < 0 || t >= entityTypeCount {
		return fmt.Sprintf("EntityType(%d)", int(t))
	}
	return entityTypeNames[t]
}

// ParseEntityType maps a prefab name to its entity type.
func ParseEntityType(name string) (EntityType, error) {
	for i, n := range entityTypeNames {
		if n == name {
			return EntityType(i), nil
		}
	}
	return EntityNil, fmt.Errorf("%w: entity type %q", ErrUnknownName, name)
}

// ItemType identifies what a stack or a dropped item holds.
type ItemType int

const (
	ItemNil ItemType = iota
	ItemIron
	ItemLog
	itemTypeCount
)

var itemTypeNames = [itemTypeCount]string{
	ItemNil:  "nil",
	ItemIron: "iron",
	ItemLog:  "log",
}

func (t ItemType) String() string {
	if t < 0 || t >= itemTypeCount {
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
	return itemTypeNames[t]
}

// ParseItemType maps a prefab name to its item type. The empty string is ItemNil.
func ParseItemType(name string) (ItemType, error) {
	if name == "" {
		return ItemNil, nil
	}
	for i, n := range itemTypeNames {
		if n == name {
			return ItemType(i), nil
		}
	}
	return ItemNil, fmt.Errorf("%w: item type %q", ErrUnknownName, name)
}

// SpriteID indexes the sprite catalog.
type SpriteID int

const (
	SpriteNil SpriteID = iota
	SpritePlayer
	SpriteTree
	SpriteMineral
	SpriteItemLog
	SpriteItemIron
	spriteCount
)

var spriteNames = [spriteCount]string{
	SpriteNil:      "nil",
	SpritePlayer:   "player",
	SpriteTree:     "tree",
	SpriteMineral:  "mineral",
	SpriteItemLog:  "item_log",
	SpriteItemIron: "item_iron",
}

func (id SpriteID) String() string {
	if id < 0 || id >= spriteCount {
		return fmt.Sprintf("SpriteID(%d)", int(id))
	}
	return spriteNames[id]
}

// ParseSpriteID maps a prefab name to its sprite id. The empty string is SpriteNil.
func ParseSpriteID(name string) (SpriteID, error) {
	if name == "" {
		return SpriteNil, nil
	}
	for i, n := range spriteNames {
		if n == name {
			return SpriteID(i), nil
		}
	}
	return SpriteNil, fmt.Errorf("%w: sprite %q", ErrUnknownName, name)
}
