// Package mathengine is a single-variable mathematical expression engine:
// it parses a textual formula in the free variable x, evaluates it at
// arbitrary points, and layers numerical calculus on top — finite-difference
// derivatives, definite-integral approximation by several quadrature rules,
// two-sided limit estimation, and tangent/normal line construction.
//
// This package is the engine's public boundary; a presentation layer (plots,
// sliders, HTTP) consumes it without knowing anything about tokenization or
// parsing. Every operation is a pure function of its inputs: no state
// outlives a call, so concurrent callers never interfere.
package mathengine

import (
	"github.com/hassan/mathengine/internal/calculus"
	"github.com/hassan/mathengine/internal/eval"
)

// Result is a numeric value plus an optional error, used by operations that
// degrade a failed sub-evaluation to a reported error instead of
// propagating it. Check Err before trusting Value.
type Result = calculus.Result

// Sample is one (x, y) point of a sampled formula.
type Sample = calculus.Sample

// Rectangle is one subinterval's visual bar from a midpoint Riemann sum.
type Rectangle = calculus.Rectangle

// RiemannResult is a midpoint Riemann sum value with its rectangles.
type RiemannResult = calculus.RiemannResult

// LimitResult is a two-sided numerical limit estimate.
type LimitResult = calculus.LimitResult

// Line is a tangent or normal line at a point.
type Line = calculus.Line

// Evaluate computes the value of formula at the given x. It fails with an
// error wrapping the underlying lexical, syntactic, or domain failure
// together with the formula text.
func Evaluate(formula string, x float64) (float64, error) {
	return eval.Evaluate(formula, x)
}

// IsValidExpression reports whether formula is a well-formed expression,
// defined as: does evaluating it at x = 1 succeed.
func IsValidExpression(formula string) bool {
	return eval.IsValid(formula)
}

// GeneratePoints samples formula at stepCount+1 evenly spaced points over
// [xMin, xMax] for plotting, silently dropping failed or non-finite
// samples. It never fails.
func GeneratePoints(formula string, xMin, xMax float64, stepCount int) []Sample {
	return calculus.SamplePoints(formula, xMin, xMax, stepCount)
}

// Derivative estimates f'(x) by a forward finite difference.
func Derivative(formula string, x float64) Result {
	return calculus.Derivative(formula, x)
}

// DerivativePoints samples the derivative estimate over [xMin, xMax] for
// plotting, dropping failed or non-finite points.
func DerivativePoints(formula string, xMin, xMax float64, stepCount int) []Sample {
	return calculus.DerivativePoints(formula, xMin, xMax, stepCount)
}

// Integral approximates the definite integral over [a, b] by the composite
// Simpson's rule with n subintervals (an odd n is bumped to even).
func Integral(formula string, a, b float64, n int) Result {
	return calculus.Simpson(formula, a, b, n)
}

// Trapezoid approximates the definite integral over [a, b] by the composite
// trapezoidal rule with n subintervals.
func Trapezoid(formula string, a, b float64, n int) Result {
	return calculus.Trapezoid(formula, a, b, n)
}

// RiemannSum approximates the definite integral over [a, b] by a midpoint
// Riemann sum with n subintervals, co-producing one rectangle per
// subinterval for visualization.
func RiemannSum(formula string, a, b float64, n int) RiemannResult {
	return calculus.RiemannSum(formula, a, b, n)
}

// Limit estimates the two-sided limit of formula as x approaches a.
func Limit(formula string, a float64) LimitResult {
	return calculus.Limit(formula, a)
}

// TangentLine builds the tangent line of formula at x0.
func TangentLine(formula string, x0 float64) (Line, error) {
	return calculus.TangentLine(formula, x0)
}

// NormalLine builds the normal line of formula at x0. A horizontal tangent
// yields the vertical line x = x0 with a non-finite slope.
func NormalLine(formula string, x0 float64) (Line, error) {
	return calculus.NormalLine(formula, x0)
}
