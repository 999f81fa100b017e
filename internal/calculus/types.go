// Package calculus layers numerical calculus on top of formula evaluation:
// finite-difference derivatives, quadrature (Simpson, trapezoid, midpoint
// Riemann sum), two-sided limit estimation, tangent/normal lines, and point
// sampling for plots.
//
// Every operation here drives eval.Evaluate as an opaque primitive and
// locally absorbs per-point failures: a failing point is either skipped
// (sampling, Riemann rectangles) or converted into a Result with Err set.
// Nothing in this package panics or carries state between calls.
package calculus

import "math"

// Result is the outcome of a numerical operation that can degrade: a value
// plus an optional error. When Err is non-nil the value is a zero sentinel
// and must not be trusted.
type Result struct {
	Value float64
	Err   error
}

// Sample is one (x, y) pair produced by sampling a formula over a range.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rectangle describes one subinterval's bar in a midpoint Riemann sum, as
// drawn by a plot: anchored at min(0, height) with magnitude |height|, so
// negative function values draw below the axis.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RiemannResult is the outcome of a midpoint Riemann sum: the accumulated
// value, one rectangle per successfully evaluated subinterval, and the
// number of subintervals that were dropped because their midpoint failed to
// evaluate. A non-zero Skipped means the sum was effectively computed over
// fewer than the requested subintervals.
type RiemannResult struct {
	Value      float64     `json:"value"`
	Rectangles []Rectangle `json:"rectangles"`
	Skipped    int         `json:"skipped"`
}

// LimitResult is the outcome of a two-sided limit estimate. HasLeft and
// HasRight report whether each one-sided approach produced a finite value;
// Value is meaningful only when HasValue is true. Exists is true only when
// both sides agree within the tolerance.
type LimitResult struct {
	Left     float64 `json:"leftLimit"`
	Right    float64 `json:"rightLimit"`
	Value    float64 `json:"limit"`
	HasLeft  bool    `json:"hasLeft"`
	HasRight bool    `json:"hasRight"`
	HasValue bool    `json:"hasValue"`
	Exists   bool    `json:"exists"`
}

// Line is a tangent or normal line at a point. Slope is +Inf for a vertical
// line, in which case Intercept is NaN and Equation has the form "x = c"
// instead of slope-intercept form.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Equation  string  `json:"equation"`
	Point     Sample  `json:"point"`
}

// isFinite reports whether v is a usable IEEE-754 value (not NaN, not ±Inf).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
