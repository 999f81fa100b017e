// Package cli implements the mathengine command line driver. It is thin
// presentation glue over the engine: every subcommand parses flags, calls
// one engine operation, and prints the result as text or JSON.
package cli

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0"

var (
	jsonOutput bool
	debug      bool

	// logger is a no-op unless --debug is set; the engine itself never
	// logs, so this only traces CLI activity.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:     "mathengine",
	Short:   "Evaluate and analyze single-variable formulas",
	Long: `mathengine evaluates a formula in the free variable x and layers
numerical calculus on top: derivatives, definite integrals, limits, and
tangent/normal lines.

Formulas use the operators + - * / ^, the constants e and pi, and the
functions sin, cos, tan, ln, log, sqrt, abs and exp, e.g. "sin(x)/x".`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			l, err := zap.NewDevelopment()
			if err == nil {
				logger = l
			}
		}
	},
}

// Execute runs the root command and returns its error, leaving the exit
// code decision to main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// printResult renders v on the command's stdout: JSON when --json is set,
// otherwise the given plain-text form.
func printResult(cmd *cobra.Command, v interface{}, text string) error {
	if jsonOutput {
		out, err := sonic.MarshalString(v)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
