package catalog

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Sprite is a loaded image plus the pivot it is drawn around.
type Sprite struct {
	Image *ebiten.Image
	Path  string
	Pivot Pivot
	// Width and Height fall back to the prefab values when no image is loaded.
	Width  float64
	Height float64
}

// Size returns the sprite size in pixels.
func (s Sprite) Size() cp.Vector {
	if s.Image != nil {
		b := s.Image.Bounds()
		return cp.Vector{X: float64(b.Dx()), Y: float64(b.Dy())}
	}
	return cp.Vector{X: s.Width, Y: s.Height}
}

// Sprites is the static sprite registry.
type Sprites struct {
	entries [spriteCount]Sprite
	set     [spriteCount]bool
}

// Get returns the sprite registered for id.
func (s *Sprites) Get(id SpriteID) (Sprite, bool) {
	if s == nil || id <= SpriteNil || id >= spriteCount || !s.set[id] {
		return Sprite{}, false
	}
	return s.entries[id], true
}

func (s *Sprites) register(id SpriteID, sprite Sprite) {
	s.entries[id] = sprite
	s.set[id] = true
}

// IDs returns the registered sprite ids in ascending order.
func (s *Sprites) IDs() []SpriteID {
	if s == nil {
		return nil
	}
	var out []SpriteID
	for id := SpriteNil + 1; id < spriteCount; id++ {
		if s.set[id] {
			out = append(out, id)
		}
	}
	return out
}
