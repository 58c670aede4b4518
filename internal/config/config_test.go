package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(New(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "menu_path: Game/Data\nadd_header: false\nassets_root: Assets/Game\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sogen.yaml"), []byte(content), 0o644))

	s, err := Load(New(dir))
	require.NoError(t, err)
	assert.Equal(t, "Game/Data", s.MenuPath)
	assert.False(t, s.AddHeader)
	assert.True(t, s.AddOnEnable)
	assert.Equal(t, "NewScriptableObject", s.ScriptName)
	assert.Equal(t, "Assets/Game", s.AssetsRoot)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SOGEN_MENU_PATH", "FromEnv")

	s, err := Load(New(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, "FromEnv", s.MenuPath)
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sogen.yaml"), []byte("menu_path: [unclosed\n"), 0o644))

	_, err := Load(New(dir))
	assert.Error(t, err)
}

func TestInitRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := Defaults()
	want.MenuPath = "Custom/Menu"

	path, err := Init(dir, want, false)
	require.NoError(t, err)
	assert.Equal(t, Path(dir), path)

	got, err := Load(New(dir))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Init(dir, want, false)
	assert.Error(t, err)
	_, err = Init(dir, want, true)
	assert.NoError(t, err)
}
