package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given arguments and returns what
// it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, "eval", "x^2 + 3*x - 5", "--x", "2")
	require.NoError(t, err)
	assert.Equal(t, "5", strings.TrimSpace(out))
}

func TestEvalCommand_Error(t *testing.T) {
	_, err := execute(t, "eval", "1/x", "--x", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "sin(x)/x")
	require.NoError(t, err)
	assert.Contains(t, out, "valid: true")

	_, err = execute(t, "check", "2x")
	require.Error(t, err)
}

func TestPlotCommand(t *testing.T) {
	out, err := execute(t, "plot", "x", "--min", "0", "--max", "1", "--steps", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "0 0", lines[0])
	assert.Equal(t, "1 1", lines[4])
}

func TestPlotCommand_JSON(t *testing.T) {
	out, err := execute(t, "plot", "x", "--min", "0", "--max", "1", "--steps", "1", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"x":0,"y":0},{"x":1,"y":1}]`, strings.TrimSpace(out))

	// Reset the persistent flag for later tests.
	jsonOutput = false
}

func TestIntegrateCommand(t *testing.T) {
	out, err := execute(t, "integrate", "x", "--from", "0", "--to", "2", "--n", "4", "--method", "trapezoid")
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(out))
}

func TestIntegrateCommand_UnknownMethod(t *testing.T) {
	_, err := execute(t, "integrate", "x", "--method", "midpoint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown method")
}

func TestLimitCommand(t *testing.T) {
	out, err := execute(t, "limit", "sin(x)/x", "--at", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "limit exists")
}

func TestLineCommand(t *testing.T) {
	out, err := execute(t, "line", "x", "--x", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "y = x")
}
