package history

import "github.com/lucasb-eyer/go-colorful"

// Endpoints of the loss/latency gradient. A perfect batch is drawn in
// colorGood, a fully lost one in colorBad.
var (
	colorGood = colorful.Color{R: 0, G: 200.0 / 255.0, B: 30.0 / 255.0}
	colorBad  = colorful.Color{R: 200.0 / 255.0, G: 0, B: 30.0 / 255.0}
)

// Mix linearly interpolates from a to b in RGB space. t is clamped to
// [0, 1] so boundary values return an endpoint exactly, with no floating
// rounding artifacts.
func Mix(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.BlendRgb(b, t)
}

// Tint is a display-only emphasis overlay, alpha-blended on top of an
// entry's computed color at render time. Weight 0 is a no-op and weight 1
// replaces the color entirely. The zero Tint draws nothing.
type Tint struct {
	Weight float64
	Color  colorful.Color
}
