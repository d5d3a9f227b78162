package viewport

import (
	"testing"
)

func TestAspect(t *testing.T) {
	tests := []struct {
		name          string
		width, height int32
		expected      float32
	}{
		{"Landscape 1024x768", 1024, 768, 1024.0 / 768.0},
		{"Portrait 768x1024", 768, 1024, 0.75},
		{"Square", 800, 800, 1},
		{"Wide 1920x1080", 1920, 1080, 1920.0 / 1080.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{Width: tt.width, Height: tt.height}
			if got := v.Aspect(); got != tt.expected {
				t.Errorf("Aspect() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCamera(t *testing.T) {
	cam := Camera()
	if cam.Fovy != CameraFovy {
		t.Errorf("Fovy = %v, want %v", cam.Fovy, float32(CameraFovy))
	}
	if cam.Position.Z != CameraDistance || cam.Position.X != 0 || cam.Position.Y != 0 {
		t.Errorf("Position = %+v, want (0, 0, %d)", cam.Position, CameraDistance)
	}
	if cam.Target.X != 0 || cam.Target.Y != 0 || cam.Target.Z != 0 {
		t.Errorf("Target = %+v, want origin", cam.Target)
	}
	if cam.Up.Y != 1 {
		t.Errorf("Up = %+v, want +Y", cam.Up)
	}
}
