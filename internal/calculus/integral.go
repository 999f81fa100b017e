package calculus

import (
	"fmt"
	"math"

	"github.com/hassan/mathengine/internal/eval"
)

// Simpson approximates the definite integral of formula over [a, b] by the
// composite Simpson's rule with n subintervals. Simpson's rule requires an
// even subinterval count, so an odd n is incremented by one. The weight
// pattern over the n+1 evaluation points is 1 at the endpoints, 4 at
// odd-indexed interior points, and 2 at even-indexed interior points; the
// result is (h/3) times the weighted sum. Any single evaluation failure
// degrades the whole call to an error result.
func Simpson(formula string, a, b float64, n int) Result {
	if n < 2 {
		n = 2
	}
	if n%2 == 1 {
		n++
	}
	h := (b - a) / float64(n)

	var sum float64
	for i := 0; i <= n; i++ {
		x := a + float64(i)*h
		y, err := eval.Evaluate(formula, x)
		if err != nil {
			return Result{Err: fmt.Errorf("integral unavailable: %w", err)}
		}
		switch {
		case i == 0 || i == n:
			sum += y
		case i%2 == 1:
			sum += 4 * y
		default:
			sum += 2 * y
		}
	}
	return Result{Value: h / 3 * sum}
}

// Trapezoid approximates the definite integral of formula over [a, b] by
// the composite trapezoidal rule with n subintervals:
// (h/2) * (f(a) + 2*Σ interior + f(b)). Degrades to an error result on any
// evaluation failure, like Simpson.
func Trapezoid(formula string, a, b float64, n int) Result {
	if n < 1 {
		n = 1
	}
	h := (b - a) / float64(n)

	var sum float64
	for i := 0; i <= n; i++ {
		x := a + float64(i)*h
		y, err := eval.Evaluate(formula, x)
		if err != nil {
			return Result{Err: fmt.Errorf("integral unavailable: %w", err)}
		}
		if i == 0 || i == n {
			sum += y
		} else {
			sum += 2 * y
		}
	}
	return Result{Value: h / 2 * sum}
}

// RiemannSum approximates the definite integral of formula over [a, b] by a
// midpoint Riemann sum with n equal-width subintervals, and co-produces one
// Rectangle per subinterval for visualization.
//
// Subintervals whose midpoint fails to evaluate (or evaluates to a
// non-finite value) are skipped from both the sum and the rectangle list
// and counted in Skipped. The remaining rectangles keep the original width,
// so a non-zero Skipped means the reported value covers less than [a, b];
// the count is surfaced rather than renormalized so callers can decide how
// to present the gap.
func RiemannSum(formula string, a, b float64, n int) RiemannResult {
	if n < 1 {
		n = 1
	}
	width := (b - a) / float64(n)

	result := RiemannResult{Rectangles: make([]Rectangle, 0, n)}
	for i := 0; i < n; i++ {
		left := a + float64(i)*width
		mid := left + width/2
		height, err := eval.Evaluate(formula, mid)
		if err != nil || !isFinite(height) {
			result.Skipped++
			continue
		}
		result.Value += height * width
		result.Rectangles = append(result.Rectangles, Rectangle{
			X:      left,
			Y:      math.Min(0, height),
			Width:  width,
			Height: math.Abs(height),
		})
	}
	return result
}
