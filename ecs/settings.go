package ecs

import (
	"fmt"
	"image/color"

	"github.com/GamaDu30/Day-and-Night/catalog"
	"github.com/GamaDu30/Day-and-Night/prefabs"
	"github.com/jakecoffman/cp"
)

// Scatter places Count entities of Type on random tiles within Range tiles of
// the origin.
type Scatter struct {
	Type  catalog.EntityType
	Count int
	Range int
}

// Settings are the world rules, resolved from game.yaml.
type Settings struct {
	MaxEntities     int
	StackSize       int
	TileSize        float64
	SelectionRadius float64
	SelectionOffset cp.Vector
	LootAmount      int

	InventoryColumns int
	InventoryRows    int
	Hotbar           int
	CellSize         float64
	CellPadding      float64

	MoveSpeed        float64
	CameraZoom       float64
	CameraSmoothness float64

	GroundColumns int
	GroundRows    int
	GroundA       color.Color
	GroundB       color.Color
	Clear         color.Color

	Scatter []Scatter
}

// DefaultSettings mirrors the shipped game.yaml.
func DefaultSettings() Settings {
	const tile = 15
	return Settings{
		MaxEntities:      MaxEntities,
		StackSize:        10,
		TileSize:         tile,
		SelectionRadius:  tile * 0.5,
		SelectionOffset:  cp.Vector{X: 0, Y: -tile * 0.25},
		LootAmount:       1,
		InventoryColumns: 8,
		InventoryRows:    3,
		Hotbar:           8,
		CellSize:         48,
		CellPadding:      6,
		MoveSpeed:        50,
		CameraZoom:       5,
		CameraSmoothness: 10,
		GroundColumns:    10,
		GroundRows:       6,
		GroundA:          color.NRGBA{R: 0x33, G: 0x33, B: 0x80, A: 0xBF},
		GroundB:          color.NRGBA{R: 0x4D, G: 0x4D, B: 0x80, A: 0xBF},
		Clear:            color.NRGBA{R: 0x2A, G: 0x2A, B: 0x38, A: 0xFF},
		Scatter: []Scatter{
			{Type: catalog.EntityMineral, Count: 10, Range: 5},
			{Type: catalog.EntityTree, Count: 15, Range: 10},
		},
	}
}

// SettingsFromSpec resolves a GameSpec on top of the defaults. Zero values in
// game.yaml keep the default.
func SettingsFromSpec(spec prefabs.GameSpec) (Settings, error) {
	s := DefaultSettings()
	if spec.MaxEntities > 0 {
		s.MaxEntities = spec.MaxEntities
	}
	if spec.StackSize > 0 {
		s.StackSize = spec.StackSize
	}
	if spec.TileSize > 0 {
		s.TileSize = spec.TileSize
	}
	if spec.SelectionRadius > 0 {
		s.SelectionRadius = spec.SelectionRadius
	}
	if spec.SelectionOffsetY != 0 {
		s.SelectionOffset = cp.Vector{X: 0, Y: spec.SelectionOffsetY}
	}
	if spec.LootAmount > 0 {
		s.LootAmount = min(spec.LootAmount, s.StackSize)
	}

	inv := spec.Inventory
	if inv.Columns > 0 && inv.Rows > 0 {
		s.InventoryColumns = inv.Columns
		s.InventoryRows = inv.Rows
	}
	if inv.Hotbar > 0 {
		s.Hotbar = inv.Hotbar
	}
	if inv.CellSize > 0 {
		s.CellSize = inv.CellSize
	}
	if inv.CellPadding > 0 {
		s.CellPadding = inv.CellPadding
	}

	if spec.Ground.Columns > 0 {
		s.GroundColumns = spec.Ground.Columns
	}
	if spec.Ground.Rows > 0 {
		s.GroundRows = spec.Ground.Rows
	}

	if len(spec.Scatter) > 0 {
		s.Scatter = s.Scatter[:0:0]
		for _, sc := range spec.Scatter {
			t, err := catalog.ParseEntityType(sc.Type)
			if err != nil {
				return Settings{}, fmt.Errorf("ecs: scatter: %w", err)
			}
			if t == catalog.EntityPlayer {
				return Settings{}, fmt.Errorf("ecs: scatter: the player is spawned once, not scattered")
			}
			s.Scatter = append(s.Scatter, Scatter{Type: t, Count: sc.Count, Range: sc.Range})
		}
	}

	s.ApplyTuning(spec)
	return s, nil
}

// ApplyTuning copies the values that may change while the game runs. World
// rules such as stack size or pool capacity are left alone.
func (s *Settings) ApplyTuning(spec prefabs.GameSpec) {
	if spec.Player.MoveSpeed > 0 {
		s.MoveSpeed = spec.Player.MoveSpeed
	}
	if spec.Camera.Zoom > 0 {
		s.CameraZoom = spec.Camera.Zoom
	}
	if spec.Camera.Smoothness > 0 {
		s.CameraSmoothness = spec.Camera.Smoothness
	}
	s.GroundA = spec.Ground.ColorA.Or(s.GroundA)
	s.GroundB = spec.Ground.ColorB.Or(s.GroundB)
	s.Clear = spec.ClearColor.Or(s.Clear)
}
