package catalog

// ItemData is the display data of an item type.
type ItemData struct {
	Sprite      SpriteID
	Name        string
	Description string
}

// Items is the static item registry.
type Items struct {
	entries [itemTypeCount]ItemData
}

// Get returns the item data for t. ItemNil and unknown types yield the zero value.
func (i *Items) Get(t ItemType) ItemData {
	if i == nil || t <= ItemNil || t >= itemTypeCount {
		return ItemData{}
	}
	return i.entries[t]
}

// Sprite returns the icon sprite of t.
func (i *Items) Sprite(t ItemType) SpriteID {
	return i.Get(t).Sprite
}
