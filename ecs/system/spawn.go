package system

import (
	"math"
	"math/rand/v2"

	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/GamaDu30/Day-and-Night/ecs"
	"github.com/jakecoffman/cp"
)

// SpawnWorld creates the player at the origin and scatters the resource
// entities listed in the settings over random tiles.
func SpawnWorld(w *ecs.World, rng *rand.Rand) {
	if w == nil {
		return
	}
	w.Player = w.Pool.Spawn(catalog.EntityPlayer, cp.Vector{})

	tile := w.Settings.TileSize
	for _, sc := range w.Settings.Scatter {
		for i := 0; i < sc.Count; i++ {
			tx := rng.IntN(2*sc.Range+1) - sc.Range
			ty := rng.IntN(2*sc.Range+1) - sc.Range
			w.Pool.Spawn(sc.Type, TileCenter(tx, ty, tile))
		}
	}
	SnapCamera(w)
}

// TileCenter returns the spot an entity standing on tile (tx, ty) is placed
// at: horizontally centered, a quarter tile above the tile's bottom edge.
func TileCenter(tx, ty int, tile float64) cp.Vector {
	return cp.Vector{
		X: float64(tx)*tile + tile*0.5,
		Y: float64(ty)*tile + tile*0.75,
	}
}

// WorldToTile snaps a world position to the origin of its tile.
func WorldToTile(p cp.Vector, tile float64) cp.Vector {
	return cp.Vector{
		X: math.Floor(p.X/tile) * tile,
		Y: math.Floor(p.Y/tile) * tile,
	}
}
