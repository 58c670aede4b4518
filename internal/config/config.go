// Package config loads sogen defaults from .sogen.yaml and SOGEN_* variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"shireesh.com/sogen/internal/generator"
	"shireesh.com/sogen/internal/sotemplate"
)

const (
	FileName  = ".sogen"
	FileType  = "yaml"
	EnvPrefix = "SOGEN"
)

const (
	KeyScriptName      = "script_name"
	KeyMenuPath        = "menu_path"
	KeyAddHeader       = "add_header"
	KeyAddOnEnable     = "add_on_enable"
	KeyAddOnValidate   = "add_on_validate"
	KeyAddSampleFields = "add_sample_fields"
	KeyAssetsRoot      = "assets_root"
)

// Settings is the full set of values a config file may hold.
type Settings struct {
	sotemplate.Config `mapstructure:",squash" yaml:",inline"`
	AssetsRoot        string `mapstructure:"assets_root" yaml:"assets_root"`
}

func Defaults() Settings {
	return Settings{Config: sotemplate.DefaultConfig(), AssetsRoot: generator.DefaultRoot}
}

// New returns a viper instance seeded with defaults that searches projectDir
// and then $HOME for .sogen.yaml.
func New(projectDir string) *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyScriptName, d.ScriptName)
	v.SetDefault(KeyMenuPath, d.MenuPath)
	v.SetDefault(KeyAddHeader, d.AddHeader)
	v.SetDefault(KeyAddOnEnable, d.AddOnEnable)
	v.SetDefault(KeyAddOnValidate, d.AddOnValidate)
	v.SetDefault(KeyAddSampleFields, d.AddSampleFields)
	v.SetDefault(KeyAssetsRoot, d.AssetsRoot)

	v.SetConfigName(FileName)
	v.SetConfigType(FileType)
	v.AddConfigPath(projectDir)
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads the config file if one exists and decodes the result.
func Load(v *viper.Viper) (Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config: %w", err)
		}
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}
	return s, nil
}

// Path returns where Init writes the config for projectDir.
func Path(projectDir string) string {
	return filepath.Join(projectDir, FileName+"."+FileType)
}

// Init writes s to projectDir/.sogen.yaml. An existing file is left alone
// unless force is set.
func Init(projectDir string, s Settings, force bool) (string, error) {
	path := Path(projectDir)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists", path)
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("writing config file %s: %w", path, err)
	}
	return path, nil
}
