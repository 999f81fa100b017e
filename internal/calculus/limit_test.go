package calculus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit_SincAtZero(t *testing.T) {
	// sin(x)/x is undefined at 0 but approaches 1 from both sides.
	r := Limit("sin(x)/x", 0)
	assert.True(t, r.Exists)
	require.True(t, r.HasValue)
	assert.InDelta(t, 1, r.Value, 1e-2)
	assert.True(t, r.HasLeft)
	assert.True(t, r.HasRight)
}

func TestLimit_ContinuousPoint(t *testing.T) {
	// At x = 1 the two sides of x^2 differ by 4 * 0.0001, inside the
	// default tolerance.
	r := Limit("x^2", 1)
	assert.True(t, r.Exists)
	assert.InDelta(t, 1, r.Value, 1e-2)
}

func TestLimit_OneSidedOnly(t *testing.T) {
	// ln(x) only evaluates on the right of 0; the left side fails at every
	// step, so the right-hand value is reported but the limit does not
	// exist.
	r := Limit("ln(x)", 0)
	assert.False(t, r.Exists)
	assert.False(t, r.HasLeft)
	require.True(t, r.HasRight)
	require.True(t, r.HasValue)
	assert.Equal(t, r.Right, r.Value)
	assert.InDelta(t, math.Log(0.0001), r.Right, 1e-9)
}

func TestLimit_NeitherSide(t *testing.T) {
	// sqrt(-1) fails at every probe point on both sides.
	r := Limit("sqrt(-1)", 0)
	assert.False(t, r.Exists)
	assert.False(t, r.HasLeft)
	assert.False(t, r.HasRight)
	assert.False(t, r.HasValue)
}

func TestLimit_SidesDisagree(t *testing.T) {
	// abs(x)/x jumps from -1 to 1 across 0: both sides evaluate but the
	// limit does not exist, and no combined value is reported.
	r := Limit("abs(x)/x", 0)
	assert.False(t, r.Exists)
	assert.False(t, r.HasValue)
	require.True(t, r.HasLeft)
	require.True(t, r.HasRight)
	assert.InDelta(t, -1, r.Left, 1e-9)
	assert.InDelta(t, 1, r.Right, 1e-9)
}

func TestLimit_LastSuccessfulStepWins(t *testing.T) {
	// ln(x - 0.001) at 0: the right-side probes at steps 0.1 and 0.01
	// succeed, but the closer probes at 0.001 and 0.0001 fail. The reported
	// right value must come from the smallest step that worked, 0.01.
	r := Limit("ln(x - 0.001)", 0)
	require.True(t, r.HasRight)
	assert.InDelta(t, math.Log(0.01-0.001), r.Right, 1e-9)
	assert.False(t, r.HasLeft)
}

func TestLimitWithEpsilon(t *testing.T) {
	// With a generous tolerance the jump of abs(x)/x still fails (gap 2),
	// but a tolerance above the gap accepts it and averages to 0.
	strict := LimitWithEpsilon("abs(x)/x", 0, 0.5)
	assert.False(t, strict.Exists)

	loose := LimitWithEpsilon("abs(x)/x", 0, 3)
	assert.True(t, loose.Exists)
	assert.InDelta(t, 0, loose.Value, 1e-9)
}
