package background

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/elvispeter1991/flikha-demo/internal/viewport"
)

func TestRefitAfterResize(t *testing.T) {
	b := New()
	landscape := viewport.Viewport{Width: 1024, Height: 768}
	portrait := viewport.Viewport{Width: 768, Height: 1024}
	imageAspect := float32(16.0 / 9.0)

	// SetTexture only stores state; no GL until Draw/Unload.
	b.SetTexture(rl.Texture2D{Width: 1920, Height: 1080}, imageAspect, landscape)
	if !b.IsSet() {
		t.Fatal("IsSet() = false after SetTexture")
	}
	if got, want := b.Params(), Fit(imageAspect, landscape.Aspect()); got != want {
		t.Fatalf("initial Params() = %+v, want %+v", got, want)
	}

	b.Refit(portrait)
	if got, want := b.Params(), Fit(imageAspect, portrait.Aspect()); got != want {
		t.Errorf("Params() after resize = %+v, want %+v", got, want)
	}
	if p := b.Params(); !approx(p.ScaleX, 1) || !approx(p.ScaleY, 0.4219) || !approx(p.OffsetY, 0.2891) {
		t.Errorf("portrait crop = %+v, want ScaleX=1 ScaleY=0.4219 OffsetY=0.2891", p)
	}
}

func TestRefitWhileUnset(t *testing.T) {
	b := New()
	b.Refit(viewport.Viewport{Width: 800, Height: 600})
	if b.IsSet() {
		t.Error("Refit set the background")
	}
	if b.Params() != (FitParams{}) {
		t.Errorf("Params() while unset = %+v, want zero value", b.Params())
	}
}
