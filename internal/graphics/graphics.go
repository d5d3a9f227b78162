package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// targetFPS caps the frame cadence; per-frame rotation steps assume this rate.
const targetFPS = 60

// Loop owns the window and the frame cadence. Run repeats update → clear → draw
// until the window is closed or Stop is called, so a non-interactive host can
// shut the loop down cleanly instead of running forever.
type Loop struct {
	title   string
	width   int32
	height  int32
	stopped bool
}

// New returns a loop that will open a resizable window of the given size.
func New(title string, width, height int32) *Loop {
	return &Loop{title: title, width: width, height: height}
}

// Stop requests the loop to exit after the current frame. Safe to call from
// update or draw callbacks; they run on the same thread as the loop.
func (l *Loop) Stop() {
	l.stopped = true
}

// Run opens the window and drives the frame loop. Each frame it calls update
// (input, resize, timers), then clears the screen and calls draw. Blocks until
// the window closes or Stop is called, then closes the window.
func (l *Loop) Run(update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(l.width, l.height, l.title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	for !l.stopped && !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
