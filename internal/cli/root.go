package cli

import (
	"fmt"
	"os"

	"analogue-clock/internal/utils"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "analogue-clock",
		Short: "Single-window analogue clock with three render variants",
		Long: `analogue-clock draws a wall clock in a 600x600 window.

Three variants are available: a 2D line-drawn clock (the default), a 2D
triangulated clock rendered through a shader pipeline, and a 3D lit clock
with a perspective camera. Close the window or press Escape to quit.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.DebugMode = flagVerbose
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand runs the line-drawn variant.
			return runVariant(variantLines)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flagVerbose bool
	flagTheme   string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose (debug) logging")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "path to a TOML theme file (watched for changes)")
}

// Execute runs the CLI; any error exits the process non-zero.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
