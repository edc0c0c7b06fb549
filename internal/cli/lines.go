package cli

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(linesCmd)
}

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "2D line-drawn clock, ticking hands at 10 FPS",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVariant(variantLines)
	},
}
