package cmd

import (
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [ScriptName]",
	Short: "Create a ScriptableObject script in the selected folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args)
	},
}

func init() {
	addTemplateFlags(createCmd)
	addCreateFlags(createCmd)
	rootCmd.AddCommand(createCmd)
}
