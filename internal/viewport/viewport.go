package viewport

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera parameters for the lobby view. The camera sits on +Z looking at the origin
// so the particle cube rotates around the view axis. Clip planes are raylib's
// defaults; NearClip/FarClip document the intended frustum.
const (
	CameraFovy     = 75
	CameraDistance = 30
	NearClip       = 0.1
	FarClip        = 1000
)

// Viewport is the current window size. Recomputed on every resize; no history kept.
type Viewport struct {
	Width  int32
	Height int32
}

// FromWindow reads the current screen size. Call on the render thread after the
// window exists (e.g. after a resize event).
func FromWindow() Viewport {
	return Viewport{Width: int32(rl.GetScreenWidth()), Height: int32(rl.GetScreenHeight())}
}

// Aspect returns width/height.
func (v Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// Camera returns a perspective camera at (0, 0, CameraDistance) looking at the
// origin with +Y up. raylib derives the projection aspect from the live framebuffer
// on every BeginMode3D, so a resize needs no camera mutation: the aspect follows the
// viewport while position and fovy stay fixed.
func Camera() rl.Camera3D {
	var cam rl.Camera3D
	cam.Position = rl.NewVector3(0, 0, CameraDistance)
	cam.Target = rl.NewVector3(0, 0, 0)
	cam.Up = rl.NewVector3(0, 1, 0)
	cam.Fovy = CameraFovy
	cam.Projection = rl.CameraPerspective
	return cam
}
