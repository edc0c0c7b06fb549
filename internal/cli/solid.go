package cli

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(solidCmd)
}

var solidCmd = &cobra.Command{
	Use:   "solid",
	Short: "3D lit clock with a perspective camera, fully smooth hands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVariant(variantSolid)
	},
}
