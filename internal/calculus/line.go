package calculus

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hassan/mathengine/internal/eval"
)

// TangentLine builds the tangent line of formula at x0. The slope is the
// forward-difference derivative estimate and the intercept follows as
// y0 - slope*x0. The call fails only when f(x0) itself cannot be evaluated;
// the returned Point is always exactly (x0, f(x0)).
func TangentLine(formula string, x0 float64) (Line, error) {
	y0, err := eval.Evaluate(formula, x0)
	if err != nil {
		return Line{}, fmt.Errorf("tangent line unavailable: %w", err)
	}
	slope := Derivative(formula, x0).Value
	intercept := y0 - slope*x0
	return Line{
		Slope:     slope,
		Intercept: intercept,
		Equation:  formatEquation(slope, intercept),
		Point:     Sample{X: x0, Y: y0},
	}, nil
}

// NormalLine builds the line through (x0, f(x0)) perpendicular to the
// tangent there: slope -1/m for tangent slope m. When the tangent is
// horizontal (m exactly zero) the normal is the vertical line x = x0,
// represented with a non-finite slope and a NaN intercept rather than
// computing a literal division by zero.
func NormalLine(formula string, x0 float64) (Line, error) {
	y0, err := eval.Evaluate(formula, x0)
	if err != nil {
		return Line{}, fmt.Errorf("normal line unavailable: %w", err)
	}
	tangentSlope := Derivative(formula, x0).Value
	if tangentSlope == 0 {
		return Line{
			Slope:     math.Inf(1),
			Intercept: math.NaN(),
			Equation:  "x = " + formatNumber(x0),
			Point:     Sample{X: x0, Y: y0},
		}, nil
	}
	slope := -1 / tangentSlope
	intercept := y0 - slope*x0
	return Line{
		Slope:     slope,
		Intercept: intercept,
		Equation:  formatEquation(slope, intercept),
		Point:     Sample{X: x0, Y: y0},
	}, nil
}

// formatEquation renders a slope-intercept line as a human-readable string,
// special-casing the coefficients 0, 1 and -1. This is cosmetic formatting
// only; the numeric Slope/Intercept fields are authoritative.
func formatEquation(slope, intercept float64) string {
	var s string
	switch slope {
	case 0:
		return "y = " + formatNumber(intercept)
	case 1:
		s = "y = x"
	case -1:
		s = "y = -x"
	default:
		s = "y = " + formatNumber(slope) + "x"
	}
	switch {
	case intercept > 0:
		s += " + " + formatNumber(intercept)
	case intercept < 0:
		s += " - " + formatNumber(-intercept)
	}
	return s
}

// formatNumber renders a coefficient with six significant digits, enough to
// read off a finite-difference slope without dragging its approximation
// noise into the equation string.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
