package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CatalogSpec lists every sprite, item and entity archetype of the game.
type CatalogSpec struct {
	Sprites  []SpriteSpec    `yaml:"sprites"`
	Items    []ItemSpec      `yaml:"items"`
	Entities []ArchetypeSpec `yaml:"entities"`
}

type SpriteSpec struct {
	ID     string  `yaml:"id"`
	Image  string  `yaml:"image"`
	Pivot  string  `yaml:"pivot"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ItemSpec struct {
	Type        string `yaml:"type"`
	Sprite      string `yaml:"sprite"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type ArchetypeSpec struct {
	Type        string `yaml:"type"`
	Sprite      string `yaml:"sprite"`
	Destroyable bool   `yaml:"destroyable"`
	Selectable  bool   `yaml:"selectable"`
	Pickable    bool   `yaml:"pickable"`
	Loot        string `yaml:"loot"`
	Health      int    `yaml:"health"`
}

func LoadCatalogSpec() (*CatalogSpec, error) {
	spec, err := LoadSpec[CatalogSpec]("catalog.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// GameSpec holds the world rules and the tuning values.
type GameSpec struct {
	MaxEntities      int           `yaml:"max_entities"`
	StackSize        int           `yaml:"stack_size"`
	TileSize         float64       `yaml:"tile_size"`
	SelectionRadius  float64       `yaml:"selection_radius"`
	SelectionOffsetY float64       `yaml:"selection_offset_y"`
	LootAmount       int           `yaml:"loot_amount"`
	ClearColor       YAMLColor     `yaml:"clear_color"`
	Inventory        InventorySpec `yaml:"inventory"`
	Player           PlayerSpec    `yaml:"player"`
	Camera           CameraSpec    `yaml:"camera"`
	Ground           GroundSpec    `yaml:"ground"`
	Scatter          []ScatterSpec `yaml:"scatter"`
	Audio            []AudioSpec   `yaml:"audio"`
}

type InventorySpec struct {
	Columns     int     `yaml:"columns"`
	Rows        int     `yaml:"rows"`
	Hotbar      int     `yaml:"hotbar"`
	CellSize    float64 `yaml:"cell_size"`
	CellPadding float64 `yaml:"cell_padding"`
}

type PlayerSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
}

type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type GroundSpec struct {
	Columns int       `yaml:"columns"`
	Rows    int       `yaml:"rows"`
	ColorA  YAMLColor `yaml:"color_a"`
	ColorB  YAMLColor `yaml:"color_b"`
}

type ScatterSpec struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
	Range int    `yaml:"range"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c, or fallback when the color was not set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
