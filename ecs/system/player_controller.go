package system

import "github.com/GamaDu30/Day-and-Night/ecs"

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

// Update moves the player along the normalised input axis.
func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	d, ok := w.Pool.Get(w.Player)
	if !ok {
		return
	}
	axis := w.Input.Move
	if axis.LengthSq() == 0 {
		return
	}
	axis = axis.Normalize()
	d.Pos = d.Pos.Add(axis.Mult(w.Settings.MoveSpeed * w.DT))
}
