package cli

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(meshCmd)
}

var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "2D triangulated clock through a shader pipeline, smooth minute hand",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVariant(variantMesh)
	},
}
