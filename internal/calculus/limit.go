package calculus

import (
	"math"

	"github.com/hassan/mathengine/internal/eval"
)

// DefaultEpsilon is the default tolerance within which the two one-sided
// approaches must agree for the limit to be reported as existing.
const DefaultEpsilon = 0.001

// limitSteps is the fixed, decreasing sequence of offsets at which each
// side of the limit point is probed.
var limitSteps = [...]float64{0.1, 0.01, 0.001, 0.0001}

// Limit estimates the two-sided limit of formula as x approaches a, with
// the default tolerance.
func Limit(formula string, a float64) LimitResult {
	return LimitWithEpsilon(formula, a, DefaultEpsilon)
}

// LimitWithEpsilon probes f(a-s) and f(a+s) for each step s in the fixed
// sequence, keeping only finite results. Each side reports its last
// successful probe, i.e. the smallest step that actually evaluated — not
// necessarily the smallest step in the sequence, since closer probes may
// fail where farther ones succeed.
//
// If both sides produced a value and they differ by less than epsilon, the
// limit exists and equals their average. If only one side produced a value,
// that value is reported with Exists false. If neither side produced a
// value, no fields are set and Exists is false.
func LimitWithEpsilon(formula string, a, epsilon float64) LimitResult {
	var result LimitResult
	for _, s := range limitSteps {
		if y, err := eval.Evaluate(formula, a-s); err == nil && isFinite(y) {
			result.Left = y
			result.HasLeft = true
		}
		if y, err := eval.Evaluate(formula, a+s); err == nil && isFinite(y) {
			result.Right = y
			result.HasRight = true
		}
	}

	switch {
	case result.HasLeft && result.HasRight:
		if math.Abs(result.Left-result.Right) < epsilon {
			result.Value = (result.Left + result.Right) / 2
			result.HasValue = true
			result.Exists = true
		}
	case result.HasLeft:
		result.Value = result.Left
		result.HasValue = true
	case result.HasRight:
		result.Value = result.Right
		result.HasValue = true
	}
	return result
}
