package system

import (
	"github.com/GamaDu30/Day-and-Night/common"
	"github.com/GamaDu30/Day-and-Night/ecs"
)

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera toward the player.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Camera.Zoom = w.Settings.CameraZoom
	target, ok := w.PlayerPos()
	if !ok {
		return
	}
	t := common.Clamp(w.DT*w.Settings.CameraSmoothness, 0, 1)
	w.Camera.Pos = w.Camera.Pos.Lerp(target, t)
}

// SnapCamera centers the camera on the player immediately.
func SnapCamera(w *ecs.World) {
	if w == nil {
		return
	}
	if target, ok := w.PlayerPos(); ok {
		w.Camera.Pos = target
	}
}
