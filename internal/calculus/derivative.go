package calculus

import (
	"fmt"

	"github.com/hassan/mathengine/internal/eval"
)

// DefaultStep is the default perturbation used by the forward-difference
// derivative estimate. The approximation error scales with the step, so
// results are only accurate to a couple of decimal places.
const DefaultStep = 1e-4

// Derivative estimates f'(x) with the default step.
func Derivative(formula string, x float64) Result {
	return DerivativeWithStep(formula, x, DefaultStep)
}

// DerivativeWithStep estimates f'(x) by the one-sided forward difference
// (f(x+h) - f(x)) / h. If either evaluation fails, the result carries the
// error and a zero sentinel value instead of propagating the failure;
// callers must check Err before trusting Value.
func DerivativeWithStep(formula string, x, h float64) Result {
	ahead, err := eval.Evaluate(formula, x+h)
	if err != nil {
		return Result{Err: fmt.Errorf("derivative unavailable: %w", err)}
	}
	at, err := eval.Evaluate(formula, x)
	if err != nil {
		return Result{Err: fmt.Errorf("derivative unavailable: %w", err)}
	}
	return Result{Value: (ahead - at) / h}
}

// DerivativePoints samples the derivative estimate at stepCount+1 evenly
// spaced x values over [xMin, xMax], dropping points where the estimate
// fails or is non-finite, exactly like SamplePoints does for the function
// itself. Used for plotting f' alongside f.
func DerivativePoints(formula string, xMin, xMax float64, stepCount int) []Sample {
	if stepCount < 1 {
		stepCount = 1
	}
	step := (xMax - xMin) / float64(stepCount)

	samples := make([]Sample, 0, stepCount+1)
	for i := 0; i <= stepCount; i++ {
		x := xMin + float64(i)*step
		d := Derivative(formula, x)
		if d.Err != nil || !isFinite(d.Value) {
			continue
		}
		samples = append(samples, Sample{X: x, Y: d.Value})
	}
	return samples
}
