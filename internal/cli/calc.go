package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hassan/mathengine"
)

var deriveX float64

var deriveCmd = &cobra.Command{
	Use:   "derive <formula>",
	Short: "Estimate the derivative of a formula at a point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := mathengine.Derivative(args[0], deriveX)
		if d.Err != nil {
			return d.Err
		}
		return printResult(cmd,
			map[string]float64{"x": deriveX, "derivative": d.Value},
			strconv.FormatFloat(d.Value, 'g', -1, 64))
	},
}

var (
	integrateFrom   float64
	integrateTo     float64
	integrateN      int
	integrateMethod string
)

var integrateCmd = &cobra.Command{
	Use:   "integrate <formula>",
	Short: "Approximate the definite integral of a formula",
	Long: `integrate approximates the definite integral over [from, to] with n
subintervals. Methods: simpson (composite Simpson's rule, n bumped to even),
trapezoid (composite trapezoidal rule), riemann (midpoint Riemann sum, also
reporting the per-subinterval rectangles with --json).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formula := args[0]
		logger.Debug("integrating",
			zap.String("formula", formula),
			zap.String("method", integrateMethod),
			zap.Float64("from", integrateFrom),
			zap.Float64("to", integrateTo),
			zap.Int("n", integrateN))

		switch integrateMethod {
		case "simpson", "trapezoid":
			var r mathengine.Result
			if integrateMethod == "simpson" {
				r = mathengine.Integral(formula, integrateFrom, integrateTo, integrateN)
			} else {
				r = mathengine.Trapezoid(formula, integrateFrom, integrateTo, integrateN)
			}
			if r.Err != nil {
				return r.Err
			}
			return printResult(cmd,
				map[string]float64{"value": r.Value},
				strconv.FormatFloat(r.Value, 'g', -1, 64))
		case "riemann":
			r := mathengine.RiemannSum(formula, integrateFrom, integrateTo, integrateN)
			text := strconv.FormatFloat(r.Value, 'g', -1, 64)
			if r.Skipped > 0 {
				text += fmt.Sprintf(" (%d of %d subintervals skipped)", r.Skipped, integrateN)
			}
			return printResult(cmd, r, text)
		default:
			return fmt.Errorf("unknown method %q (want simpson, trapezoid, or riemann)", integrateMethod)
		}
	},
}

var limitAt float64

var limitCmd = &cobra.Command{
	Use:   "limit <formula>",
	Short: "Estimate the two-sided limit of a formula at a point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := mathengine.Limit(args[0], limitAt)
		var text string
		switch {
		case r.Exists:
			text = fmt.Sprintf("limit exists: %g (left %g, right %g)", r.Value, r.Left, r.Right)
		case r.HasValue:
			text = fmt.Sprintf("limit does not exist; one-sided value %g", r.Value)
		default:
			text = "limit does not exist: no side could be evaluated"
		}
		return printResult(cmd, r, text)
	},
}

var (
	lineX      float64
	lineNormal bool
)

var lineCmd = &cobra.Command{
	Use:   "line <formula>",
	Short: "Build the tangent (or normal) line of a formula at a point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			l   mathengine.Line
			err error
		)
		if lineNormal {
			l, err = mathengine.NormalLine(args[0], lineX)
		} else {
			l, err = mathengine.TangentLine(args[0], lineX)
		}
		if err != nil {
			return err
		}
		return printResult(cmd, l,
			fmt.Sprintf("%s (through (%g, %g))", l.Equation, l.Point.X, l.Point.Y))
	},
}

func init() {
	deriveCmd.Flags().Float64VarP(&deriveX, "x", "x", 0, "point at which to estimate the derivative")
	rootCmd.AddCommand(deriveCmd)

	integrateCmd.Flags().Float64Var(&integrateFrom, "from", 0, "lower bound of integration")
	integrateCmd.Flags().Float64Var(&integrateTo, "to", 1, "upper bound of integration")
	integrateCmd.Flags().IntVarP(&integrateN, "n", "n", 100, "number of subintervals")
	integrateCmd.Flags().StringVar(&integrateMethod, "method", "simpson", "integration method: simpson, trapezoid, or riemann")
	rootCmd.AddCommand(integrateCmd)

	limitCmd.Flags().Float64Var(&limitAt, "at", 0, "point the variable approaches")
	rootCmd.AddCommand(limitCmd)

	lineCmd.Flags().Float64VarP(&lineX, "x", "x", 0, "point at which to build the line")
	lineCmd.Flags().BoolVar(&lineNormal, "normal", false, "build the normal line instead of the tangent")
	rootCmd.AddCommand(lineCmd)
}
