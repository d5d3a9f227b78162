package ui

import (
	"time"
)

// State is the panel lifecycle. Transitions are one-way within a session:
// Visible → Fading on the button click, Fading → Hidden when the fade timer
// elapses. There is no way back to Visible.
type State int

const (
	Visible State = iota
	Fading
	Hidden
)

func (s State) String() string {
	switch s {
	case Visible:
		return "visible"
	case Fading:
		return "fading"
	case Hidden:
		return "hidden"
	}
	return "unknown"
}

// Panel tracks the lobby panel's visibility lifecycle. The fade itself is
// declarative: Alpha is a pure function of time since Trigger, nothing is
// accumulated per frame. OnHidden, if set, fires exactly once when the panel
// reaches Hidden.
type Panel struct {
	OnHidden func()

	state        State
	fadeStart    time.Time
	fadeDuration time.Duration
	now          func() time.Time
}

// NewPanel returns a visible panel that fades out over fadeDuration once
// triggered.
func NewPanel(fadeDuration time.Duration) *Panel {
	if fadeDuration <= 0 {
		fadeDuration = time.Second
	}
	return &Panel{fadeDuration: fadeDuration, now: time.Now}
}

// State returns the current lifecycle state.
func (p *Panel) State() State {
	return p.state
}

// SetFadeDuration replaces the fade length. Ignored once the fade has started,
// so a running timer is never rescheduled.
func (p *Panel) SetFadeDuration(d time.Duration) {
	if p.state != Visible || d <= 0 {
		return
	}
	p.fadeDuration = d
}

// FadeDuration returns the configured fade length.
func (p *Panel) FadeDuration() time.Duration {
	return p.fadeDuration
}

// Trigger starts the fade. Only the Visible state reacts: triggering again while
// fading or hidden is a no-op, so the hide timer can never be scheduled twice.
func (p *Panel) Trigger() {
	if p.state != Visible {
		return
	}
	p.state = Fading
	p.fadeStart = p.now()
}

// Update advances the lifecycle: once the fade has run for the full duration the
// panel becomes Hidden and OnHidden fires. Call once per frame.
func (p *Panel) Update() {
	if p.state != Fading {
		return
	}
	if p.now().Sub(p.fadeStart) < p.fadeDuration {
		return
	}
	p.state = Hidden
	if p.OnHidden != nil {
		p.OnHidden()
	}
}

// Alpha returns the panel's current opacity factor: 1 while visible, 0 once
// hidden, and a linear ramp down while fading.
func (p *Panel) Alpha() float32 {
	switch p.state {
	case Visible:
		return 1
	case Hidden:
		return 0
	}
	elapsed := p.now().Sub(p.fadeStart)
	if elapsed >= p.fadeDuration {
		return 0
	}
	return 1 - float32(elapsed)/float32(p.fadeDuration)
}
