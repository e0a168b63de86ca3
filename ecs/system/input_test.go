package system

import (
	"testing"

	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

type fakeInput struct {
	down    map[ebiten.Key]bool
	pressed map[ebiten.Key]bool
	mouse   map[ebiten.MouseButton]bool
	x, y    int
}

func (f fakeInput) IsKeyDown(key ebiten.Key) bool               { return f.down[key] }
func (f fakeInput) IsKeyJustPressed(key ebiten.Key) bool        { return f.pressed[key] }
func (f fakeInput) IsMouseJustPressed(b ebiten.MouseButton) bool { return f.mouse[b] }
func (f fakeInput) CursorPosition() (int, int)                  { return f.x, f.y }

func TestInputSystemSnapshot(t *testing.T) {
	cases := []struct {
		name  string
		src   fakeInput
		check func(t *testing.T, in ecs.InputState)
	}{
		{
			name: "idle",
			src:  fakeInput{x: 10, y: 20},
			check: func(t *testing.T, in ecs.InputState) {
				if in.Move != (cp.Vector{}) || in.PrimaryPressed || in.HotbarPressed != -1 {
					t.Fatalf("unexpected idle input %+v", in)
				}
				if in.Cursor != (cp.Vector{X: 10, Y: 20}) {
					t.Fatalf("cursor = %v", in.Cursor)
				}
			},
		},
		{
			name: "up_left_is_negative",
			src:  fakeInput{down: map[ebiten.Key]bool{ebiten.KeyI: true, ebiten.KeyJ: true}},
			check: func(t *testing.T, in ecs.InputState) {
				if in.Move != (cp.Vector{X: -1, Y: -1}) {
					t.Fatalf("move = %v", in.Move)
				}
			},
		},
		{
			name: "opposite_keys_cancel",
			src:  fakeInput{down: map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeyArrowRight: true, ebiten.KeyS: true}},
			check: func(t *testing.T, in ecs.InputState) {
				if in.Move != (cp.Vector{X: 0, Y: 1}) {
					t.Fatalf("move = %v", in.Move)
				}
			},
		},
		{
			name: "buttons",
			src: fakeInput{
				pressed: map[ebiten.Key]bool{ebiten.KeyQ: true, ebiten.KeyTab: true, ebiten.Key3: true},
				mouse:   map[ebiten.MouseButton]bool{ebiten.MouseButtonRight: true},
			},
			check: func(t *testing.T, in ecs.InputState) {
				if !in.DropPressed || !in.InventoryPressed || !in.SecondaryPressed {
					t.Fatalf("missing presses %+v", in)
				}
				if in.PrimaryPressed || in.PausePressed {
					t.Fatalf("unexpected presses %+v", in)
				}
				if in.HotbarPressed != 2 {
					t.Fatalf("hotbar = %d, want 2", in.HotbarPressed)
				}
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t)
			NewInputSystem(c.src, DefaultKeyBindings(w.Settings.Hotbar)).Update(w)
			c.check(t, w.Input)
		})
	}
}

func TestDefaultKeyBindingsHotbar(t *testing.T) {
	cases := []struct {
		hotbar int
		want   int
	}{
		{0, 0},
		{-1, 0},
		{3, 3},
		{8, 8},
		{12, 9},
	}
	for _, c := range cases {
		if got := len(DefaultKeyBindings(c.hotbar).Hotbar); got != c.want {
			t.Fatalf("DefaultKeyBindings(%d) binds %d hotbar keys, want %d", c.hotbar, got, c.want)
		}
	}

	w := newTestWorld(t)
	src := fakeInput{pressed: map[ebiten.Key]bool{ebiten.Key9: true}}
	NewInputSystem(src, DefaultKeyBindings(w.Settings.Hotbar)).Update(w)
	if w.Input.HotbarPressed != -1 {
		t.Fatalf("key 9 has no cell with an %d-cell hotbar, got %d", w.Settings.Hotbar, w.Input.HotbarPressed)
	}
}
