package background

// FitParams describes the crop window applied to the background image so the
// visible region exactly fills the viewport with no distortion. Scales and offsets
// are fractions of the image size: the visible region is
// [OffsetX, OffsetX+ScaleX] x [OffsetY, OffsetY+ScaleY] in normalized image space.
type FitParams struct {
	ScaleX  float32
	ScaleY  float32
	OffsetX float32
	OffsetY float32
}

// Fit computes cover-style crop parameters for an image shown in a viewport.
// The longer axis relative to the viewport is cropped, centered; the other axis is
// used in full. Exactly one scale is 1, the other is in (0, 1], and the cropped
// axis's offset is (1-scale)/2. Pure function of the two aspect ratios.
func Fit(imageAspect, viewportAspect float32) FitParams {
	if imageAspect > viewportAspect {
		// Image relatively wider: full height, crop left and right.
		sx := viewportAspect / imageAspect
		return FitParams{ScaleX: sx, ScaleY: 1, OffsetX: (1 - sx) / 2}
	}
	// Image relatively taller (or equal): full width, crop top and bottom.
	sy := imageAspect / viewportAspect
	return FitParams{ScaleX: 1, ScaleY: sy, OffsetY: (1 - sy) / 2}
}
