package host

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const metaExt = ".meta"

type iconRef struct {
	InstanceID int `yaml:"instanceID"`
}

type monoImporter struct {
	ExternalObjects    map[string]string `yaml:"externalObjects"`
	SerializedVersion  int               `yaml:"serializedVersion"`
	DefaultReferences  []string          `yaml:"defaultReferences"`
	ExecutionOrder     int               `yaml:"executionOrder"`
	Icon               iconRef           `yaml:"icon,flow"`
	UserData           string            `yaml:"userData"`
	AssetBundleName    string            `yaml:"assetBundleName"`
	AssetBundleVariant string            `yaml:"assetBundleVariant"`
}

type defaultImporter struct {
	ExternalObjects    map[string]string `yaml:"externalObjects"`
	UserData           string            `yaml:"userData"`
	AssetBundleName    string            `yaml:"assetBundleName"`
	AssetBundleVariant string            `yaml:"assetBundleVariant"`
}

// Meta is the subset of a Unity .meta file this tool writes.
type Meta struct {
	FileFormatVersion int              `yaml:"fileFormatVersion"`
	GUID              string           `yaml:"guid"`
	FolderAsset       string           `yaml:"folderAsset,omitempty"`
	MonoImporter      *monoImporter    `yaml:"MonoImporter,omitempty"`
	DefaultImporter   *defaultImporter `yaml:"DefaultImporter,omitempty"`
}

// NewGUID returns a Unity style asset GUID: 32 lowercase hex digits.
func NewGUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func newMeta(assetPath string, isDir bool) Meta {
	m := Meta{FileFormatVersion: 2, GUID: NewGUID()}
	switch {
	case isDir:
		m.FolderAsset = "yes"
		m.DefaultImporter = &defaultImporter{ExternalObjects: map[string]string{}}
	case strings.HasSuffix(assetPath, ".cs"):
		m.MonoImporter = &monoImporter{
			ExternalObjects:   map[string]string{},
			SerializedVersion: 2,
			DefaultReferences: []string{},
		}
	default:
		m.DefaultImporter = &defaultImporter{ExternalObjects: map[string]string{}}
	}
	return m
}

func writeMeta(assetPath string, isDir bool) error {
	out, err := yaml.Marshal(newMeta(assetPath, isDir))
	if err != nil {
		return err
	}
	return os.WriteFile(assetPath+metaExt, out, 0o644)
}

// ReadMeta parses the .meta sidecar of assetPath.
func ReadMeta(assetPath string) (*Meta, error) {
	data, err := os.ReadFile(assetPath + metaExt)
	if err != nil {
		return nil, err
	}
	var m Meta
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
