package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/GamaDu30/Day-and-Night/assets"
	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/GamaDu30/Day-and-Night/prefabs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const viewSize = 512

// viewer shows one catalog sprite at a time with its pivot marked.
type viewer struct {
	cat     *catalog.Catalog
	ids     []catalog.SpriteID
	current int
	zoom    float64
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.current = (v.current + 1) % len(v.ids)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.current = (v.current + len(v.ids) - 1) % len(v.ids)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.zoom = min(v.zoom+1, 32)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.zoom = max(v.zoom-1, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(v.ids) == 0 {
		return
	}
	id := v.ids[v.current]
	s, _ := v.cat.Sprite(id)
	size := s.Size()
	origin := s.Pivot.Origin(size)

	// The pivot sits at the center of the view.
	cx, cy := float64(viewSize/2), float64(viewSize/2)
	x := cx - origin.X*v.zoom
	y := cy - origin.Y*v.zoom
	if s.Image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(v.zoom, v.zoom)
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(s.Image, op)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(size.X*v.zoom), float32(size.Y*v.zoom), 1, colornames.Gray, false)
	vector.FillRect(screen, float32(cx-2), float32(cy-2), 4, 4, colornames.Red, false)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %s  %vx%v  pivot %s  zoom %.0f\n<- -> sprite, up/down zoom",
		id, s.Path, size.X, size.Y, s.Pivot, v.zoom))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	zoom := flag.Float64("zoom", 12, "initial zoom")
	flag.Parse()

	spec, err := prefabs.LoadCatalogSpec()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	cat, err := catalog.New(*spec, assets.LoadImage)
	if err != nil {
		log.Fatalf("build catalog: %v", err)
	}

	v := &viewer{cat: cat, ids: cat.Sprites.IDs(), zoom: max(*zoom, 1)}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Sprite Viewer")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
