package ecs

import "github.com/jakecoffman/cp"

// Camera maps world coordinates to screen pixels. Pos is the world point shown
// at the center of the screen.
type Camera struct {
	Pos     cp.Vector
	Zoom    float64
	ScreenW float64
	ScreenH float64
}

func (c Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// WorldToScreen converts a world position to screen pixels.
func (c Camera) WorldToScreen(p cp.Vector) cp.Vector {
	z := c.zoom()
	return cp.Vector{
		X: (p.X-c.Pos.X)*z + c.ScreenW/2,
		Y: (p.Y-c.Pos.Y)*z + c.ScreenH/2,
	}
}

// ScreenToWorld converts screen pixels to a world position.
func (c Camera) ScreenToWorld(p cp.Vector) cp.Vector {
	z := c.zoom()
	return cp.Vector{
		X: (p.X-c.ScreenW/2)/z + c.Pos.X,
		Y: (p.Y-c.ScreenH/2)/z + c.Pos.Y,
	}
}
