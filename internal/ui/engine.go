package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Engine draws the lobby panel's nodes with the current stylesheet and feeds
// mouse input to the one button. Draw order is node order. Resolved styles are
// cached and recomputed only when the sheet or nodes change, so the per-frame
// path does not allocate. The panel's Alpha modulates every color, which is what
// makes the fade a presentation concern rather than per-node bookkeeping.
type Engine struct {
	panel        *Panel
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	hover        bool
}

// New creates an engine for the given panel with no stylesheet or nodes.
func New(panel *Panel) *Engine {
	return &Engine{panel: panel}
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// ButtonFadeDuration returns the fade-duration declared on the button node, if
// the stylesheet sets one. The stylesheet wins over the config default so the
// fade can be tuned next to the rest of the styling.
func (e *Engine) ButtonFadeDuration() (time.Duration, bool) {
	for _, n := range e.nodes {
		if !n.IsButton() {
			continue
		}
		props := e.resolveProps(n)
		if _, ok := props["fade-duration"]; ok {
			return ResolveProps(props).FadeDuration, true
		}
	}
	return 0, false
}

// resolveProps merges properties from all matching rules, last rule wins.
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		match := (sel[0] == '.' && n.Class == sel[1:]) || (sel[0] == '#' && n.ID == sel[1:])
		if !match {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

func (e *Engine) ensureStyles() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = make([]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		style := ResolveProps(e.resolveProps(n))
		e.cachedStyles[i] = style
		if style.Width > 0 {
			n.Bounds.Width = float32(style.Width)
		}
		if style.Height > 0 {
			n.Bounds.Height = float32(style.Height)
		}
		n.Bounds.X = float32(style.Left)
		n.Bounds.Y = float32(style.Top)
	}
	e.cacheValid = true
}

// nodeRect returns the node's absolute screen rectangle, applying percentage
// positioning against the current screen size.
func nodeRect(n *Node, style ComputedStyle, screenW, screenH int32) rl.Rectangle {
	r := n.Bounds
	if style.LeftPct >= 0 {
		r.X = float32((screenW - int32(r.Width)) * style.LeftPct / 100)
	}
	if style.TopPct >= 0 {
		r.Y = float32((screenH - int32(r.Height)) * style.TopPct / 100)
	}
	return r
}

// Update reads mouse state and reports whether the button was clicked this
// frame. Inert once the panel has left Visible: the control stops reacting the
// moment the fade starts.
func (e *Engine) Update() bool {
	e.hover = false
	if e.panel.State() != Visible {
		return false
	}
	e.ensureStyles()
	mouse := rl.GetMousePosition()
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for i, n := range e.nodes {
		if !n.IsButton() {
			continue
		}
		rect := nodeRect(n, e.cachedStyles[i], screenW, screenH)
		if !rl.CheckCollisionPointRec(mouse, rect) {
			continue
		}
		e.hover = true
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			return true
		}
	}
	return false
}

// Draw renders all nodes, alpha-modulated by the panel's fade. Nothing is drawn
// once the panel is hidden.
func (e *Engine) Draw() {
	if e.panel.State() == Hidden {
		return
	}
	e.ensureStyles()
	alpha := e.panel.Alpha()
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		rect := nodeRect(n, style, screenW, screenH)
		x, y := int32(rect.X), int32(rect.Y)
		w, h := int32(rect.Width), int32(rect.Height)

		bg := scaleAlpha(style.Background, alpha*style.Opacity)
		if e.hover && n.IsButton() {
			bg = scaleAlpha(brighten(style.Background), alpha*style.Opacity)
		}
		if bg.A > 0 {
			rl.DrawRectangle(x, y, w, h, bg)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, scaleAlpha(style.Border, alpha))
		}
		if n.Text != "" {
			textX := x + style.Padding
			textY := y + style.Padding
			if n.IsButton() || n.Type == "label" {
				// Center text horizontally inside sized nodes.
				if tw := rl.MeasureText(n.Text, style.FontSize); w > 0 && tw < w {
					textX = x + (w-tw)/2
				}
			}
			rl.DrawText(n.Text, textX, textY, style.FontSize, scaleAlpha(style.Color, alpha))
		}
	}
}

// brighten lifts a color slightly for button hover feedback.
func brighten(c rl.Color) rl.Color {
	lift := func(v uint8) uint8 {
		if v > 225 {
			return 255
		}
		return v + 30
	}
	c.R, c.G, c.B = lift(c.R), lift(c.G), lift(c.B)
	return c
}
