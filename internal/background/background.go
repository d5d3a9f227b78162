package background

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/elvispeter1991/flikha-demo/internal/viewport"
)

// Background is the lobby backdrop: one texture cropped to the viewport aspect.
// It starts unset (nothing is drawn) and stays unset if the asset never loads;
// the rest of the scene does not depend on it. Fit parameters are recomputed on
// SetTexture and on every Refit (resize), never per frame.
type Background struct {
	tex    rl.Texture2D
	aspect float32
	fit    FitParams
	set    bool
}

func New() *Background {
	return &Background{}
}

// SetTexture installs the uploaded texture and fits it to the given viewport.
// Call on the render thread once the asset decode has completed.
func (b *Background) SetTexture(tex rl.Texture2D, imageAspect float32, v viewport.Viewport) {
	b.tex = tex
	b.aspect = imageAspect
	b.fit = Fit(imageAspect, v.Aspect())
	b.set = true
}

// Refit recomputes the crop for a new viewport. No-op while unset.
func (b *Background) Refit(v viewport.Viewport) {
	if !b.set {
		return
	}
	b.fit = Fit(b.aspect, v.Aspect())
}

// IsSet reports whether a texture has been installed.
func (b *Background) IsSet() bool {
	return b.set
}

// Params returns the current fit parameters (zero value while unset).
func (b *Background) Params() FitParams {
	return b.fit
}

// Draw renders the cropped region of the texture over the full viewport.
// Call before the 3D pass so the backdrop sits behind the particle field.
func (b *Background) Draw(v viewport.Viewport) {
	if !b.set {
		return
	}
	texW := float32(b.tex.Width)
	texH := float32(b.tex.Height)
	src := rl.NewRectangle(b.fit.OffsetX*texW, b.fit.OffsetY*texH, b.fit.ScaleX*texW, b.fit.ScaleY*texH)
	dst := rl.NewRectangle(0, 0, float32(v.Width), float32(v.Height))
	rl.DrawTexturePro(b.tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

// Unload releases the GPU texture. Safe to call while unset.
func (b *Background) Unload() {
	if !b.set {
		return
	}
	rl.UnloadTexture(b.tex)
	b.set = false
}
