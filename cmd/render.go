package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shireesh.com/sogen/internal/generator"
	"shireesh.com/sogen/internal/sotemplate"
)

var renderCmd = &cobra.Command{
	Use:   "render [ScriptName]",
	Short: "Print the generated script without writing it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd, args)
		if err != nil {
			return err
		}
		cfg := s.Config
		cfg.ScriptName = sotemplate.Normalize(cfg.ScriptName)
		if cfg.ScriptName == "" {
			return generator.ErrEmptyName
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), sotemplate.Render(cfg))
		return err
	},
}

func init() {
	addTemplateFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}
