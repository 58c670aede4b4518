// Package host implements generator.Host on top of a Unity project directory.
//
// Paths handed to and returned from a Project are project-relative, the same
// form the Unity editor uses ("Assets/Scripts/Foo.cs").
package host

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
)

// ConfirmFunc answers an overwrite prompt for filename.
type ConfirmFunc func(filename string) bool

type Project struct {
	Root       string
	AssetsRoot string
	Selection  string
	Confirm    ConfirmFunc
	Log        logrus.FieldLogger
}

func NewProject(root, assetsRoot string, log logrus.FieldLogger) *Project {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Project{
		Root:       root,
		AssetsRoot: assetsRoot,
		Confirm:    PromptConfirm,
		Log:        log,
	}
}

// PromptConfirm asks on the terminal whether filename may be replaced.
func PromptConfirm(filename string) bool {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("The file %s already exists. Do you want to overwrite it", filename),
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}

// AlwaysConfirm returns a ConfirmFunc with a fixed answer.
func AlwaysConfirm(answer bool) ConfirmFunc {
	return func(string) bool { return answer }
}

func (p *Project) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Root, path)
}

// CurrentSelectionPath reports Selection when it names an existing asset.
func (p *Project) CurrentSelectionPath() (string, bool) {
	if p.Selection == "" || !p.FileExists(p.Selection) {
		return "", false
	}
	return filepath.Clean(p.Selection), true
}

func (p *Project) PathIsFile(path string) bool {
	info, err := os.Stat(p.abs(path))
	return err == nil && info.Mode().IsRegular()
}

func (p *Project) FileExists(path string) bool {
	_, err := os.Stat(p.abs(path))
	return err == nil
}

// WriteFile replaces the file at path. The parent folder must already exist.
func (p *Project) WriteFile(path, content string) error {
	return os.WriteFile(p.abs(path), []byte(content), 0o644)
}

func (p *Project) ConfirmOverwrite(filename string) bool {
	if p.Confirm == nil {
		return PromptConfirm(filename)
	}
	return p.Confirm(filename)
}

// RefreshIndex imports new assets under AssetsRoot by giving every file and
// folder that lacks one a .meta sidecar. Failures are logged and skipped.
func (p *Project) RefreshIndex() {
	root := p.abs(p.AssetsRoot)
	imported := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, metaExt) {
			return nil
		}
		if _, err := os.Stat(path + metaExt); err == nil {
			return nil
		}
		if err := writeMeta(path, d.IsDir()); err != nil {
			p.Log.WithError(err).WithField("path", path).Warn("could not import asset")
			return nil
		}
		imported++
		p.Log.WithField("path", path).Debug("imported asset")
		return nil
	})
	if err != nil {
		p.Log.WithError(err).Warn("asset refresh failed")
		return
	}
	p.Log.WithField("imported", imported).Debug("asset index refreshed")
}

// SelectAndHighlight records path as the active selection.
func (p *Project) SelectAndHighlight(path string) {
	p.Selection = path
	p.Log.WithField("path", path).Info("selected asset")
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~")
}
