// Package lobby is the top-level controller for the lobby screen. It owns the
// camera, background, particle field, and panel, and runs their per-frame
// update and draw in one place instead of spreading state across globals.
package lobby

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/elvispeter1991/flikha-demo/internal/assets"
	"github.com/elvispeter1991/flikha-demo/internal/background"
	"github.com/elvispeter1991/flikha-demo/internal/config"
	"github.com/elvispeter1991/flikha-demo/internal/debug"
	"github.com/elvispeter1991/flikha-demo/internal/logger"
	"github.com/elvispeter1991/flikha-demo/internal/particles"
	"github.com/elvispeter1991/flikha-demo/internal/ui"
	"github.com/elvispeter1991/flikha-demo/internal/viewport"
)

// defaultCSS styles the lobby panel: a dark card centered on screen with a
// title and one green play button. assets/lobby.css, when present, replaces it.
const defaultCSS = `
/* lobby panel */
.panel {
	background: #1a1a2e;
	border: #4a4a6a;
	width: 420px;
	height: 200px;
	left: 50%;
	top: 50%;
	opacity: 0.92;
}
.title {
	color: #eaeaea;
	width: 420px;
	left: 50%;
	top: 38%;
	font-size: 32px;
	padding: 12;
}
#play {
	background: #2e8b57;
	color: #ffffff;
	width: 180px;
	height: 56px;
	left: 50%;
	top: 55%;
	font-size: 28px;
	padding: 14;
	fade-duration: 1000ms;
}
`

// StylesheetPath optionally overrides defaultCSS when the file exists.
const StylesheetPath = "assets/lobby.css"

// Lobby wires the screen's parts together. All fields are mutated only on the
// render thread; the asset decode goroutine is reached through the ImageLoad
// handle alone.
type Lobby struct {
	log *logger.Logger
	cfg config.Config

	view  viewport.Viewport
	cam   rl.Camera3D
	bg    *background.Background
	field *particles.Field
	panel *ui.Panel
	eng   *ui.Engine
	load  *assets.ImageLoad

	overlay      *debug.Debug
	loadResolved bool
}

// New builds the lobby from config. The background load starts immediately in
// the background; the particle field and frame loop do not wait for it.
func New(cfg config.Config, log *logger.Logger) *Lobby {
	view := viewport.Viewport{Width: cfg.WindowWidth, Height: cfg.WindowHeight}

	budgets := particles.Budgets{
		WidthThreshold: cfg.ParticleWidthThreshold,
		Coarse:         cfg.ParticleCoarse,
		Fine:           cfg.ParticleFine,
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	l := &Lobby{
		log:   log,
		cfg:   cfg,
		view:  view,
		cam:   viewport.Camera(),
		bg:    background.New(),
		field: particles.NewField(budgets.Count(view.Width), seed),
		panel: ui.NewPanel(cfg.FadeDuration()),
		load:  assets.Load(cfg.Background),
	}

	l.eng = ui.New(l.panel)
	l.eng.SetStylesheet(loadStylesheet())
	l.eng.AddNode(ui.NewNode("panel", "panel", "", ""))
	l.eng.AddNode(ui.NewNode("label", "title", "", "FLIKHA"))
	l.eng.AddNode(ui.NewNode("button", "", "play", "PLAY"))
	if d, ok := l.eng.ButtonFadeDuration(); ok {
		l.panel.SetFadeDuration(d)
	}

	l.overlay = debug.New()
	l.overlay.ShowFPS = cfg.ShowFPS
	l.overlay.ShowMemAlloc = cfg.ShowMemAlloc

	return l
}

func loadStylesheet() *ui.Stylesheet {
	if sheet, err := ui.ParseCSSFile(StylesheetPath); err == nil {
		return sheet
	}
	sheet, _ := ui.ParseCSS(defaultCSS)
	return sheet
}

// SetOnHidden installs the callback fired once when the panel finishes fading.
func (l *Lobby) SetOnHidden(fn func()) {
	l.panel.OnHidden = fn
}

// Update runs once per frame on the render thread: resize, asset completion,
// input, fade timer, rotation step.
func (l *Lobby) Update() {
	if rl.IsWindowResized() {
		l.view = viewport.FromWindow()
		l.bg.Refit(l.view)
	}

	l.pollLoad()

	if l.eng.Update() {
		l.panel.Trigger()
	}
	l.panel.Update()

	l.field.Advance()
}

// pollLoad promotes the background asset when its decode finishes. Ready images
// are uploaded here so the GPU work happens on the render thread with the GL
// context live; a failure is logged once and the background stays unset.
func (l *Lobby) pollLoad() {
	if l.loadResolved {
		return
	}
	switch l.load.State() {
	case assets.Ready:
		if tex, aspect, ok := l.load.Upload(); ok {
			l.bg.SetTexture(tex, aspect, l.view)
		}
		l.loadResolved = true
	case assets.Failed:
		l.log.Logf("background %s failed to load: %v", l.load.Path(), l.load.Err())
		l.loadResolved = true
	}
}

// Draw renders one frame: backdrop, 3D particle pass, panel, overlays.
func (l *Lobby) Draw() {
	l.bg.Draw(l.view)

	rl.BeginMode3D(l.cam)
	l.field.Draw()
	rl.EndMode3D()

	l.eng.Draw()
	l.overlay.Draw()
}

// Teardown releases GPU resources. Call after the frame loop exits, while the
// window still exists.
func (l *Lobby) Teardown() {
	l.bg.Unload()
}
