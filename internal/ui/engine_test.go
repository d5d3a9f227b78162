package ui

import (
	"testing"
	"time"
)

func TestButtonFadeDuration(t *testing.T) {
	sheet, _ := ParseCSS(`#play { fade-duration: 1500ms; }`)
	e := New(NewPanel(0))
	e.SetStylesheet(sheet)
	e.AddNode(NewNode("button", "", "play", "PLAY"))

	d, ok := e.ButtonFadeDuration()
	if !ok || d != 1500*time.Millisecond {
		t.Errorf("ButtonFadeDuration() = %v, %v; want 1.5s, true", d, ok)
	}
}

func TestButtonFadeDurationUnset(t *testing.T) {
	sheet, _ := ParseCSS(`#play { background: #4a4; }`)
	e := New(NewPanel(0))
	e.SetStylesheet(sheet)
	e.AddNode(NewNode("button", "", "play", "PLAY"))

	if _, ok := e.ButtonFadeDuration(); ok {
		t.Error("ButtonFadeDuration() reported ok without a declaration")
	}
}

func TestSetFadeDuration(t *testing.T) {
	p, clock := newTestPanel(time.Second)
	p.SetFadeDuration(2 * time.Second)
	if p.FadeDuration() != 2*time.Second {
		t.Fatalf("FadeDuration() = %v, want 2s", p.FadeDuration())
	}

	p.Trigger()
	p.SetFadeDuration(time.Millisecond) // ignored once fading
	clock.advance(time.Second)
	p.Update()
	if p.State() != Fading {
		t.Errorf("state = %v, want still fading under the 2s duration", p.State())
	}
	clock.advance(time.Second)
	p.Update()
	if p.State() != Hidden {
		t.Errorf("state = %v, want hidden after full 2s", p.State())
	}
}
