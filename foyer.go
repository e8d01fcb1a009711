package foyer

import (
	"github.com/tanema/gween/ease"
)

// Vec2 is a 2D vector used for positions, offsets, and bounds.
type Vec2 struct {
	X, Y float64
}

// Lerp returns the linear interpolation between a and b at t.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max bound pair used by the idle animator.
type Range struct {
	Min, Max float64
}

// Lerp returns the value at t between Min and Max.
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// HitMode controls whether an element (and, when set recursively, its
// subtree) participates in pointer hit testing.
type HitMode uint8

const (
	HitIgnore      HitMode = iota // excluded from hit testing
	HitInteractive                // participates in hit testing
)

// ElementKind distinguishes element behavior in hit testing and localization.
type ElementKind uint8

const (
	KindContainer ElementKind = iota // group element with no visual output
	KindPanel                        // sized rectangular region (screens are panels)
	KindButton                       // interactive leaf with a text label
	KindLabel                        // non-interactive text element
)

// ScreenClass marks an element as a screen for ScreenManager discovery.
const ScreenClass = "screen"

// ActiveClass marks the currently active screen. Managed by ScreenManager;
// renderers may use it to decide which subtree to draw.
const ActiveClass = "active"

// --- Ease registry ---

// Smoothstep is the default ease: the classic 3t²-2t³ hermite curve.
// Expressed as a gween ease.TweenFunc (time, begin, change, duration).
func Smoothstep(t, b, c, d float32) float32 {
	p := t / d
	return c*(p*p*(3-2*p)) + b
}

// easeFuncs maps config ease identifiers to gween ease functions.
var easeFuncs = map[string]ease.TweenFunc{
	"smoothstep":     Smoothstep,
	"linear":         ease.Linear,
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-quart":       ease.InQuart,
	"out-quart":      ease.OutQuart,
	"in-out-quart":   ease.InOutQuart,
	"in-sine":        ease.InSine,
	"out-sine":       ease.OutSine,
	"in-out-sine":    ease.InOutSine,
	"in-expo":        ease.InExpo,
	"out-expo":       ease.OutExpo,
	"in-out-expo":    ease.InOutExpo,
	"in-circ":        ease.InCirc,
	"out-circ":       ease.OutCirc,
	"in-out-circ":    ease.InOutCirc,
	"in-back":        ease.InBack,
	"out-back":       ease.OutBack,
	"in-out-back":    ease.InOutBack,
	"in-bounce":      ease.InBounce,
	"out-bounce":     ease.OutBounce,
	"in-out-bounce":  ease.InOutBounce,
	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,
}

// EaseByName returns the ease function registered under name. An empty name
// returns Smoothstep. Unknown names warn and fall back to Smoothstep so a
// typo in a config degrades the motion curve, never the run.
func EaseByName(name string) ease.TweenFunc {
	if name == "" {
		return Smoothstep
	}
	if fn, ok := easeFuncs[name]; ok {
		return fn
	}
	warnf("unknown ease %q%s, using smoothstep", name, suggest(name, easeNames()))
	return Smoothstep
}

func easeNames() []string {
	names := make([]string, 0, len(easeFuncs))
	for name := range easeFuncs {
		names = append(names, name)
	}
	return names
}
