package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/mathengine/internal/lexer"
)

func TestEvaluate_Arithmetic(t *testing.T) {
	tests := []struct {
		formula string
		x       float64
		want    float64
	}{
		{"x^2 + 3*x - 5", 2, 5},
		{"2^3^2", 0, 512}, // right-associative: 2^(3^2), not (2^3)^2 = 64
		{"(2^3)^2", 0, 64},
		{"1 + 2 * 3", 0, 7},
		{"(1 + 2) * 3", 0, 9},
		{"10 - 4 - 3", 0, 3}, // left-associative
		{"100 / 10 / 2", 0, 5},
		{"-x", 3, -3},
		{"--x", 3, 3},
		{"+x", 3, 3},
		{"-2^2", 0, 4}, // unary binds tighter than ^: (-2)^2
		{"2 + -3", 0, -1},
		{"3.5 * 2", 0, 7},
		{".5 * 4", 0, 2},
		{"x", 1.25, 1.25},
		{"7", 123, 7},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			got, err := Evaluate(tt.formula, tt.x)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_ConstantsAndFunctions(t *testing.T) {
	tests := []struct {
		formula string
		x       float64
		want    float64
	}{
		{"pi", 0, math.Pi},
		{"e", 0, math.E},
		{"2 * pi", 0, 2 * math.Pi},
		{"sin(0)", 0, 0},
		{"cos(0)", 0, 1},
		{"tan(0)", 0, 0},
		{"ln(e)", 0, 1},
		{"log(100)", 0, 2},
		{"sqrt(16)", 0, 4},
		{"abs(0 - 3)", 0, 3},
		{"exp(0)", 0, 1},
		{"exp(1)", 0, math.E},
		{"sin(pi / 2)", 0, 1},
		{"sqrt(x^2)", -3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			got, err := Evaluate(tt.formula, tt.x)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvaluate_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		x       float64
	}{
		{"division by zero", "1/x", 0},
		{"division by zero literal", "5 / 0", 1},
		{"sqrt of negative", "sqrt(-1)", 0},
		{"ln of zero", "ln(0)", 0},
		{"ln of negative", "ln(x)", -2},
		{"log of zero", "log(x)", 0},
		{"log of negative", "log(-5)", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.formula, tt.x)
			require.Error(t, err)

			var domainErr *DomainError
			assert.True(t, errors.As(err, &domainErr), "expected a *DomainError, got %v", err)
		})
	}
}

func TestEvaluate_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		formula string
	}{
		{"trailing variable", "2x"}, // no implicit multiplication
		{"trailing number", "x 2"},
		{"trailing parenthesized", "(1)(2)"},
		{"function without parens", "sin x"},
		{"missing close paren", "(1 + 2"},
		{"missing function close paren", "sin(x"},
		{"dangling operator", "2 +"},
		{"leading close paren", ")"},
		{"empty formula", ""},
		{"operator only", "*"},
		{"empty parens", "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.formula, 0)
			require.Error(t, err)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "expected a *ParseError, got %v", err)
		})
	}
}

func TestEvaluate_LexErrors(t *testing.T) {
	_, err := Evaluate("y + 1", 0)
	require.Error(t, err)

	var lexErr *lexer.LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, "y", lexErr.Text)
}

func TestEvaluate_WrapsFormulaInError(t *testing.T) {
	_, err := Evaluate("sqrt(-1)", 0)
	require.Error(t, err)

	var evalErr *EvalError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, "sqrt(-1)", evalErr.Formula)
	assert.Contains(t, err.Error(), "sqrt(-1)")
}

func TestEvaluate_NonZeroDivisorIsFine(t *testing.T) {
	got, err := Evaluate("1/x", 4)
	require.NoError(t, err)
	assert.Equal(t, 0.25, got)
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		formula string
		want    bool
	}{
		{"x^2 + 1", true},
		{"sin(x)/x", true},
		{"1/x", true}, // valid at the probe point x = 1
		{"ln(x)", true},
		{"2x", false},
		{"y + 1", false},
		{"", false},
		{"sqrt(-1)", false}, // fails at every x, including the probe
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.formula))
		})
	}
}
