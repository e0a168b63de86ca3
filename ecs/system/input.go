package system

import (
	"slices"

	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// InputSource is the device oracle the input system samples once per tick.
type InputSource interface {
	IsKeyDown(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsMouseJustPressed(button ebiten.MouseButton) bool
	CursorPosition() (int, int)
}

// EbitenInput reads the real keyboard and mouse.
type EbitenInput struct{}

func (EbitenInput) IsKeyDown(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (EbitenInput) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

func (EbitenInput) IsMouseJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (EbitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

// KeyBindings maps actions to keys. Any key of a slice triggers the action.
type KeyBindings struct {
	Left      []ebiten.Key
	Right     []ebiten.Key
	Up        []ebiten.Key
	Down      []ebiten.Key
	Drop      []ebiten.Key
	Inventory []ebiten.Key
	Pause     []ebiten.Key
	// Hotbar[i] selects hotbar cell i.
	Hotbar []ebiten.Key
}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// DefaultKeyBindings binds the number keys to the first hotbar cells, one key
// per cell up to 9.
func DefaultKeyBindings(hotbar int) KeyBindings {
	return KeyBindings{
		Left:      []ebiten.Key{ebiten.KeyJ, ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:     []ebiten.Key{ebiten.KeyL, ebiten.KeyD, ebiten.KeyArrowRight},
		Up:        []ebiten.Key{ebiten.KeyI, ebiten.KeyW, ebiten.KeyArrowUp},
		Down:      []ebiten.Key{ebiten.KeyK, ebiten.KeyS, ebiten.KeyArrowDown},
		Drop:      []ebiten.Key{ebiten.KeyQ},
		Inventory: []ebiten.Key{ebiten.KeyTab, ebiten.KeyE},
		Pause:     []ebiten.Key{ebiten.KeyEscape},
		Hotbar:    slices.Clone(digitKeys[:max(0, min(hotbar, len(digitKeys)))]),
	}
}

type InputSystem struct {
	src  InputSource
	keys KeyBindings
}

func NewInputSystem(src InputSource, keys KeyBindings) *InputSystem {
	if src == nil {
		src = EbitenInput{}
	}
	return &InputSystem{src: src, keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	move := cp.Vector{}
	if i.anyDown(i.keys.Left) {
		move.X -= 1
	}
	if i.anyDown(i.keys.Right) {
		move.X += 1
	}
	if i.anyDown(i.keys.Up) {
		move.Y -= 1
	}
	if i.anyDown(i.keys.Down) {
		move.Y += 1
	}

	cx, cy := i.src.CursorPosition()

	hotbar := -1
	for idx, key := range i.keys.Hotbar {
		if i.src.IsKeyJustPressed(key) {
			hotbar = idx
			break
		}
	}

	w.Input = ecs.InputState{
		Cursor:           cp.Vector{X: float64(cx), Y: float64(cy)},
		Move:             move,
		PrimaryPressed:   i.src.IsMouseJustPressed(ebiten.MouseButtonLeft),
		SecondaryPressed: i.src.IsMouseJustPressed(ebiten.MouseButtonRight),
		DropPressed:      i.anyJustPressed(i.keys.Drop),
		InventoryPressed: i.anyJustPressed(i.keys.Inventory),
		PausePressed:     i.anyJustPressed(i.keys.Pause),
		HotbarPressed:    hotbar,
	}
}

func (i *InputSystem) anyDown(keys []ebiten.Key) bool {
	for _, k := range keys {
		if i.src.IsKeyDown(k) {
			return true
		}
	}
	return false
}

func (i *InputSystem) anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if i.src.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
