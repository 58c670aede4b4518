package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shireesh.com/sogen/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage .sogen.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .sogen.yaml with the default options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Init(projectDir, config.Defaults(), forceInit)
		if err != nil {
			return err
		}
		log.WithField("path", path).Info("config written")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd, nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "script_name: %s\n", s.ScriptName)
		fmt.Fprintf(out, "menu_path: %s\n", s.MenuPath)
		fmt.Fprintf(out, "add_header: %t\n", s.AddHeader)
		fmt.Fprintf(out, "add_on_enable: %t\n", s.AddOnEnable)
		fmt.Fprintf(out, "add_on_validate: %t\n", s.AddOnValidate)
		fmt.Fprintf(out, "add_sample_fields: %t\n", s.AddSampleFields)
		fmt.Fprintf(out, "assets_root: %s\n", s.AssetsRoot)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "replace an existing file")
	addTemplateFlags(configShowCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
