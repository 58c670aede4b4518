// Package generator writes a rendered ScriptableObject script into a Unity
// project through a Host.
package generator

import (
	"errors"
	"fmt"
	"path/filepath"

	"shireesh.com/sogen/internal/sotemplate"
)

// DefaultRoot is the asset folder used when nothing is selected.
const DefaultRoot = "Assets"

// ErrEmptyName is returned when the script name is blank after whitespace is removed.
var ErrEmptyName = errors.New("script name cannot be empty")

// IOError reports a failed write of the generated script.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Host is the editor side of a generation request.
type Host interface {
	// CurrentSelectionPath returns the selected asset path, if any.
	CurrentSelectionPath() (string, bool)
	PathIsFile(path string) bool
	FileExists(path string) bool
	WriteFile(path, content string) error
	// ConfirmOverwrite blocks until the user accepts or declines replacing filename.
	ConfirmOverwrite(filename string) bool
	RefreshIndex()
	SelectAndHighlight(path string)
}

// Result describes a finished request.
type Result struct {
	Path string
	// Skipped is set when the user declined to overwrite an existing file.
	Skipped bool
}

// ResolveTargetDirectory picks the folder the script goes into. A selected file
// yields its parent folder, a selected folder is used as is, and no selection
// falls back to root.
func ResolveTargetDirectory(host Host, root string) string {
	path, ok := host.CurrentSelectionPath()
	if !ok || path == "" {
		return root
	}
	if host.PathIsFile(path) {
		return filepath.Dir(path)
	}
	return path
}

// Generate renders cfg and writes it to <targetDir>/<name>.cs.
func Generate(cfg sotemplate.Config, targetDir string, host Host) (*Result, error) {
	cfg.ScriptName = sotemplate.Normalize(cfg.ScriptName)
	if cfg.ScriptName == "" {
		return nil, ErrEmptyName
	}

	fileName := cfg.ScriptName + ".cs"
	fullPath := filepath.Join(targetDir, fileName)

	if host.FileExists(fullPath) && !host.ConfirmOverwrite(fileName) {
		return &Result{Path: fullPath, Skipped: true}, nil
	}

	content := sotemplate.Render(cfg)
	if err := host.WriteFile(fullPath, content); err != nil {
		return nil, &IOError{Path: fullPath, Err: err}
	}

	host.RefreshIndex()
	host.SelectAndHighlight(fullPath)

	return &Result{Path: fullPath}, nil
}
