package calculus

import "github.com/hassan/mathengine/internal/eval"

// SamplePoints evaluates formula at stepCount+1 evenly spaced x values over
// [xMin, xMax], inclusive of both bounds, and returns the samples in
// increasing x order. Samples whose evaluation fails or yields a non-finite
// value are silently dropped, so the result may be sparse; callers must not
// assume it is dense or complete. SamplePoints never fails.
func SamplePoints(formula string, xMin, xMax float64, stepCount int) []Sample {
	if stepCount < 1 {
		stepCount = 1
	}
	step := (xMax - xMin) / float64(stepCount)

	samples := make([]Sample, 0, stepCount+1)
	for i := 0; i <= stepCount; i++ {
		x := xMin + float64(i)*step
		y, err := eval.Evaluate(formula, x)
		if err != nil || !isFinite(y) {
			continue
		}
		samples = append(samples, Sample{X: x, Y: y})
	}
	return samples
}
