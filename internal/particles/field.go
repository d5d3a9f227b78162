package particles

import (
	"math/rand"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Field geometry and motion. Points are sampled once inside a cube of
// 2*CubeHalfExtent per side centered on the origin; afterwards only the whole
// set's orientation changes, by a fixed step per frame about X and Y.
const (
	CubeHalfExtent = 10
	RotationStepX  = 0.0005
	RotationStepY  = 0.0002
)

// Points are uniform white at partial opacity, composited additively so overlaps
// brighten instead of occluding.
var pointColor = rl.NewColor(255, 255, 255, 178)

// Budgets is the device-class point budget: viewports at most WidthThreshold wide
// get Coarse points, wider ones get Fine.
type Budgets struct {
	WidthThreshold int32
	Coarse         int
	Fine           int
}

// Count selects the point budget for a viewport width. The threshold is inclusive
// on the low side.
func (b Budgets) Count(viewportWidth int32) int {
	if viewportWidth <= b.WidthThreshold {
		return b.Coarse
	}
	return b.Fine
}

// Field is a fixed set of points with a shared two-axis rotation. Positions are
// immutable after NewField; only rotX/rotY mutate, once per frame on the render
// thread.
type Field struct {
	points []rl.Vector3
	rotX   float32
	rotY   float32
}

// NewField samples count points, each coordinate independent uniform on
// [-CubeHalfExtent, CubeHalfExtent]. The seed makes the field reproducible;
// pass a time-derived seed for a fresh scatter per session.
func NewField(count int, seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]rl.Vector3, count)
	for i := range pts {
		pts[i] = rl.NewVector3(sample(rng), sample(rng), sample(rng))
	}
	return &Field{points: pts}
}

func sample(rng *rand.Rand) float32 {
	return (rng.Float32()*2 - 1) * CubeHalfExtent
}

// Len returns the number of points.
func (f *Field) Len() int {
	return len(f.points)
}

// Points returns a copy of the point positions (unrotated).
func (f *Field) Points() []rl.Vector3 {
	out := make([]rl.Vector3, len(f.points))
	copy(out, f.points)
	return out
}

// Rotation returns the current orientation about X and Y in radians.
func (f *Field) Rotation() (x, y float32) {
	return f.rotX, f.rotY
}

// Advance applies one frame's rotation step, wrapping at 2π so the angles never
// grow without bound over a long session.
func (f *Field) Advance() {
	f.rotX = math32.Mod(f.rotX+RotationStepX, 2*math32.Pi)
	f.rotY = math32.Mod(f.rotY+RotationStepY, 2*math32.Pi)
}

// Draw renders the field under the current 3D mode. Call between BeginMode3D and
// EndMode3D. Points share one rotation matrix per frame; the stored positions are
// never written.
func (f *Field) Draw() {
	rot := rl.MatrixRotateXYZ(rl.NewVector3(f.rotX, f.rotY, 0))
	rl.BeginBlendMode(rl.BlendAdditive)
	for _, p := range f.points {
		rl.DrawPoint3D(rl.Vector3Transform(p, rot), pointColor)
	}
	rl.EndBlendMode()
}
