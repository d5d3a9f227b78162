package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Overlay text is only recomputed every updateInterval frames to keep the
	// draw path allocation-free most of the time.
	updateInterval = 30
)

// Debug draws runtime overlays (FPS, heap alloc) in the top-right corner.
// Both are off by default and enabled from the lobby config.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount  uint32
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

// New returns a Debug with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders any enabled overlays. Call last in the draw loop so the text sits
// on top of the scene and panel.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc {
		return
	}
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.lastFpsText == ""

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	x := screenW - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
