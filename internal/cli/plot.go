package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hassan/mathengine"
)

var (
	plotMin        float64
	plotMax        float64
	plotSteps      int
	plotDerivative bool
)

var plotCmd = &cobra.Command{
	Use:   "plot <formula>",
	Short: "Sample a formula (or its derivative) over a range",
	Long: `plot evaluates the formula at evenly spaced points over [min, max] and
prints one "x y" pair per line. Points where the formula fails to evaluate
or is non-finite are omitted, so the output may have gaps.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formula := args[0]
		logger.Debug("sampling",
			zap.String("formula", formula),
			zap.Float64("min", plotMin),
			zap.Float64("max", plotMax),
			zap.Int("steps", plotSteps),
			zap.Bool("derivative", plotDerivative))

		var samples []mathengine.Sample
		if plotDerivative {
			samples = mathengine.DerivativePoints(formula, plotMin, plotMax, plotSteps)
		} else {
			samples = mathengine.GeneratePoints(formula, plotMin, plotMax, plotSteps)
		}

		var sb strings.Builder
		for _, s := range samples {
			fmt.Fprintf(&sb, "%g %g\n", s.X, s.Y)
		}
		return printResult(cmd, samples, strings.TrimRight(sb.String(), "\n"))
	},
}

func init() {
	plotCmd.Flags().Float64Var(&plotMin, "min", -10, "lower bound of the sample range")
	plotCmd.Flags().Float64Var(&plotMax, "max", 10, "upper bound of the sample range")
	plotCmd.Flags().IntVar(&plotSteps, "steps", 100, "number of steps across the range")
	plotCmd.Flags().BoolVar(&plotDerivative, "derivative", false, "sample the derivative instead of the formula")
	rootCmd.AddCommand(plotCmd)
}
