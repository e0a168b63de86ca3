package catalog

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Pivot selects which point of a sprite sits on the entity position.
type Pivot int

const (
	PivotTopLeft Pivot = iota
	PivotTopCenter
	PivotTopRight
	PivotCenterLeft
	PivotCenterCenter
	PivotCenterRight
	PivotBotLeft
	PivotBotCenter
	PivotBotRight
	pivotCount
)

var pivotNames = [pivotCount]string{
	PivotTopLeft:      "top_left",
	PivotTopCenter:    "top_center",
	PivotTopRight:     "top_right",
	PivotCenterLeft:   "center_left",
	PivotCenterCenter: "center_center",
	PivotCenterRight:  "center_right",
	PivotBotLeft:      "bot_left",
	PivotBotCenter:    "bot_center",
	PivotBotRight:     "bot_right",
}

func (p Pivot) String() string {
	if p < 0 || p >= pivotCount {
		return fmt.Sprintf("Pivot(%d)", int(p))
	}
	return pivotNames[p]
}

// ParsePivot maps a prefab pivot name. The empty string is PivotBotCenter.
func ParsePivot(name string) (Pivot, error) {
	if name == "" {
		return PivotBotCenter, nil
	}
	for i, n := range pivotNames {
		if n == name {
			return Pivot(i), nil
		}
	}
	return PivotBotCenter, fmt.Errorf("%w: pivot %q", ErrUnknownName, name)
}

// Anchor returns the pivot as a fraction of the sprite size, y pointing down.
func (p Pivot) Anchor() cp.Vector {
	switch p {
	case PivotTopLeft:
		return cp.Vector{X: 0, Y: 0}
	case PivotTopCenter:
		return cp.Vector{X: 0.5, Y: 0}
	case PivotTopRight:
		return cp.Vector{X: 1, Y: 0}
	case PivotCenterLeft:
		return cp.Vector{X: 0, Y: 0.5}
	case PivotCenterCenter:
		return cp.Vector{X: 0.5, Y: 0.5}
	case PivotCenterRight:
		return cp.Vector{X: 1, Y: 0.5}
	case PivotBotLeft:
		return cp.Vector{X: 0, Y: 1}
	case PivotBotRight:
		return cp.Vector{X: 1, Y: 1}
	default:
		return cp.Vector{X: 0.5, Y: 1}
	}
}

// Origin returns the pixel offset inside a sprite of the given size that is
// drawn at the entity position.
func (p Pivot) Origin(size cp.Vector) cp.Vector {
	a := p.Anchor()
	return cp.Vector{X: a.X * size.X, Y: a.Y * size.Y}
}
