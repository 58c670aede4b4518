package cmd

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shireesh.com/sogen/internal/config"
	"shireesh.com/sogen/internal/generator"
	"shireesh.com/sogen/internal/host"
	"shireesh.com/sogen/internal/sotemplate"
	"shireesh.com/sogen/internal/tui"
)

var (
	projectDir  string
	selection   string
	assumeYes   bool
	noOverwrite bool
	interactive bool
	verbose     bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "sogen [ScriptName]",
	Short: "Create Unity ScriptableObject scripts with [CreateAssetMenu] configured",
	Long: `sogen writes a ScriptableObject class into a Unity project.

The file is saved in the selected folder (--select), or in the assets root
when nothing is selected. Options not given as flags come from .sogen.yaml
in the project or home directory, then from SOGEN_* environment variables.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", ".", "Unity project root")
	rootCmd.PersistentFlags().String("assets-root", generator.DefaultRoot, "folder used when nothing is selected")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	addTemplateFlags(rootCmd)
	addCreateFlags(rootCmd)
}

func addCreateFlags(c *cobra.Command) {
	c.Flags().StringVarP(&selection, "select", "s", "", "selected asset; a file selects its folder")
	c.Flags().BoolVarP(&assumeYes, "yes", "y", false, "overwrite an existing script without asking")
	c.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "never overwrite an existing script")
	c.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for every option")
	c.MarkFlagsMutuallyExclusive("yes", "no-overwrite")
}

func addTemplateFlags(c *cobra.Command) {
	c.Flags().StringP("name", "n", sotemplate.DefaultScriptName, "script and class name")
	c.Flags().StringP("menu", "m", sotemplate.DefaultMenuPath, "asset creation menu path")
	c.Flags().Bool("header", true, "add a [Header] attribute above the sample fields")
	c.Flags().Bool("on-enable", true, "add an OnEnable method")
	c.Flags().Bool("on-validate", true, "add an OnValidate method")
	c.Flags().Bool("sample-fields", true, "add sample fields")
}

// loadSettings merges defaults, config file, environment and flags.
func loadSettings(cmd *cobra.Command, args []string) (config.Settings, error) {
	v := config.New(projectDir)
	for key, flag := range map[string]string{
		config.KeyScriptName:      "name",
		config.KeyMenuPath:        "menu",
		config.KeyAddHeader:       "header",
		config.KeyAddOnEnable:     "on-enable",
		config.KeyAddOnValidate:   "on-validate",
		config.KeyAddSampleFields: "sample-fields",
		config.KeyAssetsRoot:      "assets-root",
	} {
		if err := v.BindPFlag(key, cmd.Flag(flag)); err != nil {
			return config.Settings{}, err
		}
	}
	if len(args) == 1 {
		v.Set(config.KeyScriptName, args[0])
	}
	s, err := config.Load(v)
	if err != nil {
		return config.Settings{}, err
	}
	log.WithField("config", configUsed(v)).Debug("settings loaded")
	return s, nil
}

func configUsed(v *viper.Viper) string {
	if f := v.ConfigFileUsed(); f != "" {
		return f
	}
	return "none"
}

func runCreate(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	cfg := s.Config
	if interactive {
		if cfg, err = promptConfig(cfg); err != nil {
			return err
		}
	}

	project := host.NewProject(projectDir, s.AssetsRoot, log)
	if selection != "" && !project.FileExists(selection) {
		return fmt.Errorf("selected asset %s does not exist", selection)
	}
	project.Selection = selection
	switch {
	case assumeYes:
		project.Confirm = host.AlwaysConfirm(true)
	case noOverwrite:
		project.Confirm = host.AlwaysConfirm(false)
	}

	target := generator.ResolveTargetDirectory(project, s.AssetsRoot)
	log.WithField("dir", target).Debug("target directory")

	res, err := generator.Generate(cfg, target, project)
	if err != nil {
		return err
	}
	if res.Skipped {
		return nil
	}
	log.Infof("✓ ScriptableObject created: %s", res.Path)
	return nil
}

func inputPrompt(label, def string) (string, error) {
	prompt := promptui.Prompt{Label: label, Default: def, AllowEdit: true}
	return prompt.Run()
}

func promptConfig(cfg sotemplate.Config) (sotemplate.Config, error) {
	var err error
	if cfg.ScriptName, err = inputPrompt("Script Name", cfg.ScriptName); err != nil {
		return cfg, err
	}
	if cfg.MenuPath, err = inputPrompt("Menu Path", cfg.MenuPath); err != nil {
		return cfg, err
	}

	opts, err := tui.ToggleOptions([]tui.Option{
		{Label: "Add [Header] attribute", Enabled: cfg.AddHeader},
		{Label: "Add OnEnable method", Enabled: cfg.AddOnEnable},
		{Label: "Add OnValidate method", Enabled: cfg.AddOnValidate},
		{Label: "Add sample fields", Enabled: cfg.AddSampleFields},
	})
	if err != nil {
		return cfg, err
	}
	cfg.AddHeader = opts[0].Enabled
	cfg.AddOnEnable = opts[1].Enabled
	cfg.AddOnValidate = opts[2].Enabled
	cfg.AddSampleFields = opts[3].Enabled
	return cfg, nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
