package system

import (
	"image/color"
	"math"
	"slices"

	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

const (
	itemBobSpeed  = 3
	itemBobHeight = 4
	itemShadowGap = 5
)

var selectedTileColor = color.NRGBA{R: 0x80, A: 0x40}

// RenderSystem draws the ground and the world entities.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	r.drawGround(w, screen)

	if w.Pool.IsAlive(w.Selected) {
		tile := WorldToTile(w.CursorWorld(), w.Settings.TileSize)
		fillWorldRect(screen, w.Camera, tile, cp.Vector{X: w.Settings.TileSize, Y: w.Settings.TileSize}, selectedTileColor)
	}

	// Entities further down the screen are drawn last so they overlap the
	// ones standing behind them.
	entities := slices.Collect(w.Pool.All())
	slices.SortStableFunc(entities, func(a, b ecs.Entity) int {
		da, _ := w.Pool.Get(a)
		db, _ := w.Pool.Get(b)
		switch {
		case da.Pos.Y < db.Pos.Y:
			return -1
		case da.Pos.Y > db.Pos.Y:
			return 1
		}
		return 0
	})

	for _, e := range entities {
		d, _ := w.Pool.Get(e)
		r.drawEntity(w, screen, e, d)
	}
}

func (r *RenderSystem) drawGround(w *ecs.World, screen *ebiten.Image) {
	player, _ := w.PlayerPos()
	tile := w.Settings.TileSize
	if tile <= 0 {
		return
	}
	origin := WorldToTile(player, tile)
	size := cp.Vector{X: tile, Y: tile}

	cols, rows := w.Settings.GroundColumns, w.Settings.GroundRows
	ox := int(math.Floor(origin.X / tile))
	oy := int(math.Floor(origin.Y / tile))
	for ty := oy - rows; ty < oy+rows; ty++ {
		for tx := ox - cols; tx < ox+cols; tx++ {
			c := w.Settings.GroundA
			if (tx+ty)%2 == 0 {
				c = w.Settings.GroundB
			}
			fillWorldRect(screen, w.Camera, cp.Vector{X: float64(tx) * tile, Y: float64(ty) * tile}, size, c)
		}
	}
}

func (r *RenderSystem) drawEntity(w *ecs.World, screen *ebiten.Image, e ecs.Entity, d *ecs.EntityData) {
	sprite, ok := w.Catalog.Sprite(d.Sprite)
	if !ok {
		return
	}

	pos := d.Pos
	if d.Type == catalog.EntityItem {
		lift := math.Sin(w.Time*itemBobSpeed) + itemBobHeight
		pos.Y -= lift
		shadow := &ebiten.ColorScale{}
		shadow.Scale(0, 0, 0, 0.5)
		drawSprite(screen, w.Camera, sprite, pos.Add(cp.Vector{Y: itemShadowGap}), shadow)
	}

	tint := &ebiten.ColorScale{}
	if e == w.Selected {
		tint.Scale(1, 0.5, 0.5, 1)
	}
	drawSprite(screen, w.Camera, sprite, pos, tint)
}

// drawSprite draws s with its pivot on the world position pos.
func drawSprite(screen *ebiten.Image, cam ecs.Camera, s catalog.Sprite, pos cp.Vector, tint *ebiten.ColorScale) {
	size := s.Size()
	origin := s.Pivot.Origin(size)
	if s.Image == nil {
		fillWorldRect(screen, cam, pos.Sub(origin), size, colornames.Magenta)
		return
	}

	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	at := cam.WorldToScreen(pos)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-origin.X, -origin.Y)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(at.X, at.Y)
	if tint != nil {
		op.ColorScale = *tint
	}
	screen.DrawImage(s.Image, op)
}

func fillWorldRect(screen *ebiten.Image, cam ecs.Camera, topLeft, size cp.Vector, c color.Color) {
	tl := cam.WorldToScreen(topLeft)
	br := cam.WorldToScreen(topLeft.Add(size))
	vector.FillRect(screen, float32(tl.X), float32(tl.Y), float32(br.X-tl.X), float32(br.Y-tl.Y), c, false)
}
