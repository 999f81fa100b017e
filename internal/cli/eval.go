package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hassan/mathengine"
)

var evalX float64

var evalCmd = &cobra.Command{
	Use:   "eval <formula>",
	Short: "Evaluate a formula at a point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formula := args[0]
		logger.Debug("evaluating", zap.String("formula", formula), zap.Float64("x", evalX))

		y, err := mathengine.Evaluate(formula, evalX)
		if err != nil {
			return err
		}
		return printResult(cmd,
			map[string]float64{"x": evalX, "value": y},
			strconv.FormatFloat(y, 'g', -1, 64))
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <formula>",
	Short: "Check whether a formula is a well-formed expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		valid := mathengine.IsValidExpression(args[0])
		if err := printResult(cmd, map[string]bool{"valid": valid}, fmt.Sprintf("valid: %v", valid)); err != nil {
			return err
		}
		if !valid {
			return fmt.Errorf("invalid expression: %q", args[0])
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().Float64VarP(&evalX, "x", "x", 0, "value bound to the variable x")
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(checkCmd)
}
