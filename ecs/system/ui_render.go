package system

import (
	"image/color"
	"strconv"

	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/GamaDu30/Day-and-Night/inventory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const iconFill = 0.7

var (
	panelColor   = color.NRGBA{A: 0xB4}
	cellColor    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xDC}
	hoveredColor = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xDC}
)

// UIRenderSystem draws the hotbar, the inventory overlay and the held stack.
type UIRenderSystem struct {
	face text.Face
}

func NewUIRenderSystem() *UIRenderSystem {
	return &UIRenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (u *UIRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if u == nil || w == nil || screen == nil {
		return
	}
	l := w.Layout
	open := w.UX == ecs.UXInventory

	if open {
		panel := l.Panel()
		vector.FillRect(screen, float32(panel.L), float32(panel.B), float32(panel.R-panel.L), float32(panel.T-panel.B), panelColor, false)
		for _, c := range l.GridCells() {
			u.drawCell(w, screen, c)
		}
	}
	for _, c := range l.HotbarCells() {
		u.drawCell(w, screen, c)
		if c.Ref.Index == w.Inventory.ActiveHotbar() {
			bb := c.BB
			vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 2, colornames.Gold, false)
		}
	}

	if open {
		if it, ok := w.Inventory.Cell(w.Hovered); ok && !it.Empty() {
			u.drawLabel(screen, w.Catalog.Items.Get(it.Type), w.Input.Cursor)
		}
	}

	if held := w.Inventory.Held(); !held.Empty() {
		u.drawStack(w, screen, held, w.Input.Cursor, l.CellSize())
	}
}

func (u *UIRenderSystem) drawCell(w *ecs.World, screen *ebiten.Image, c inventory.Cell) {
	bb := c.BB
	bg := cellColor
	if c.Ref == w.Hovered {
		bg = hoveredColor
	}
	vector.FillRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), bg, false)

	it, ok := w.Inventory.Cell(c.Ref)
	if !ok || it.Empty() {
		return
	}
	center := cp.Vector{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
	u.drawStack(w, screen, it, center, bb.R-bb.L)
}

// drawStack draws the icon of it centered on center, scaled to a cell of side
// size, with the amount in the bottom right corner.
func (u *UIRenderSystem) drawStack(w *ecs.World, screen *ebiten.Image, it inventory.Item, center cp.Vector, size float64) {
	sprite, ok := w.Catalog.Sprite(w.Catalog.Items.Sprite(it.Type))
	if ok {
		drawIcon(screen, sprite, center, size*iconFill)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X+size/2-3, center.Y+size/2-3)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignEnd
	op.SecondaryAlign = text.AlignEnd
	text.Draw(screen, strconv.Itoa(it.Amount), u.face, op)
}

func (u *UIRenderSystem) drawLabel(screen *ebiten.Image, data catalog.ItemData, at cp.Vector) {
	if data.Name == "" {
		return
	}
	label := data.Name
	if data.Description != "" {
		label += "\n" + data.Description
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X+16, at.Y+16)
	op.ColorScale.ScaleWithColor(colornames.Lightgrey)
	op.LineSpacing = 14
	text.Draw(screen, label, u.face, op)
}

func drawIcon(screen *ebiten.Image, s catalog.Sprite, center cp.Vector, side float64) {
	size := s.Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	scale := side / max(size.X, size.Y)
	if s.Image == nil {
		vector.FillRect(screen, float32(center.X-size.X*scale/2), float32(center.Y-size.Y*scale/2), float32(size.X*scale), float32(size.Y*scale), colornames.Magenta, false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size.X/2, -size.Y/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(center.X, center.Y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(s.Image, op)
}
