// Package sotemplate renders the C# source for a Unity ScriptableObject class.
package sotemplate

import (
	"strings"
	"unicode"
)

const (
	DefaultScriptName = "NewScriptableObject"
	DefaultMenuPath   = "ScriptableObjects"
)

// Config holds the options for one generated script.
type Config struct {
	ScriptName      string `mapstructure:"script_name" yaml:"script_name"`
	MenuPath        string `mapstructure:"menu_path" yaml:"menu_path"`
	AddHeader       bool   `mapstructure:"add_header" yaml:"add_header"`
	AddOnEnable     bool   `mapstructure:"add_on_enable" yaml:"add_on_enable"`
	AddOnValidate   bool   `mapstructure:"add_on_validate" yaml:"add_on_validate"`
	AddSampleFields bool   `mapstructure:"add_sample_fields" yaml:"add_sample_fields"`
}

func DefaultConfig() Config {
	return Config{
		ScriptName:      DefaultScriptName,
		MenuPath:        DefaultMenuPath,
		AddHeader:       true,
		AddOnEnable:     true,
		AddOnValidate:   true,
		AddSampleFields: true,
	}
}

// Normalize drops every whitespace rune from name. It does not check that the
// result is a legal C# identifier.
func Normalize(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}

// Render returns the script source for c. The output always ends with a newline
// and uses four-space indentation.
func Render(c Config) string {
	const indent = "    "
	name := c.ScriptName

	lines := []string{
		"using UnityEngine;",
		"",
		`[CreateAssetMenu(fileName = "` + name + `", menuName = "` + c.MenuPath + "/" + name + `")]`,
		"public class " + name + " : ScriptableObject",
		"{",
	}

	if c.AddSampleFields {
		if c.AddHeader {
			lines = append(lines, indent+`[Header("Settings")]`)
		}
		lines = append(lines,
			indent+"[SerializeField] private string displayName;",
			indent+"[SerializeField] private int value;",
			"",
			indent+"// Add your fields here",
		)
	}

	if c.AddOnEnable || c.AddOnValidate {
		lines = append(lines, "")
	}

	if c.AddOnEnable {
		lines = append(lines, method("OnEnable", "Initialization when the asset is loaded")...)
	}

	if c.AddOnValidate {
		if c.AddOnEnable {
			lines = append(lines, "")
		}
		lines = append(lines, method("OnValidate", "Validation in the editor")...)
	}

	lines = append(lines, "}")
	return strings.Join(lines, "\n") + "\n"
}

func method(name, comment string) []string {
	return []string{
		"    private void " + name + "()",
		"    {",
		"        // " + comment,
		"    }",
	}
}
