package ui

import (
	"testing"
	"time"
)

// fakeClock drives a panel without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestPanel(fade time.Duration) (*Panel, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPanel(fade)
	p.now = clock.now
	return p, clock
}

func TestPanelLifecycle(t *testing.T) {
	p, clock := newTestPanel(time.Second)

	if p.State() != Visible {
		t.Fatalf("initial state = %v, want visible", p.State())
	}
	if p.Alpha() != 1 {
		t.Errorf("visible Alpha() = %v, want 1", p.Alpha())
	}

	p.Trigger()
	if p.State() != Fading {
		t.Fatalf("state after Trigger = %v, want fading", p.State())
	}

	// Not hidden before the full duration has elapsed.
	clock.advance(999 * time.Millisecond)
	p.Update()
	if p.State() != Fading {
		t.Fatalf("state at 999ms = %v, want fading", p.State())
	}
	if a := p.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("fading Alpha() = %v, want in (0, 1)", a)
	}

	// Hidden exactly once the duration has elapsed.
	clock.advance(time.Millisecond)
	p.Update()
	if p.State() != Hidden {
		t.Fatalf("state at 1000ms = %v, want hidden", p.State())
	}
	if p.Alpha() != 0 {
		t.Errorf("hidden Alpha() = %v, want 0", p.Alpha())
	}
}

func TestPanelAlphaRamp(t *testing.T) {
	p, clock := newTestPanel(time.Second)
	p.Trigger()
	clock.advance(500 * time.Millisecond)
	if a := p.Alpha(); a < 0.49 || a > 0.51 {
		t.Errorf("Alpha() at half fade = %v, want ~0.5", a)
	}
}

func TestPanelRetriggerDoesNotRestartFade(t *testing.T) {
	p, clock := newTestPanel(time.Second)
	p.Trigger()
	start := p.fadeStart

	clock.advance(600 * time.Millisecond)
	p.Trigger() // while fading: must not reschedule
	if p.fadeStart != start {
		t.Fatal("Trigger while fading rescheduled the hide timer")
	}

	clock.advance(400 * time.Millisecond)
	p.Update()
	if p.State() != Hidden {
		t.Fatalf("state = %v, want hidden 1s after the first trigger", p.State())
	}

	p.Trigger() // hidden: no effect
	p.Update()
	if p.State() != Hidden {
		t.Errorf("state after Trigger on hidden = %v, want hidden", p.State())
	}
}

func TestPanelOnHiddenFiresOnce(t *testing.T) {
	p, clock := newTestPanel(time.Second)
	fired := 0
	p.OnHidden = func() { fired++ }

	p.Trigger()
	clock.advance(2 * time.Second)
	p.Update()
	p.Update()
	p.Update()

	if fired != 1 {
		t.Errorf("OnHidden fired %d times, want 1", fired)
	}
}

func TestPanelDefaultFadeDuration(t *testing.T) {
	p := NewPanel(0)
	if p.FadeDuration() != time.Second {
		t.Errorf("FadeDuration() = %v, want 1s default", p.FadeDuration())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{Visible, "visible"},
		{Fading, "fading"},
		{Hidden, "hidden"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}
