package host

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shireesh.com/sogen/internal/generator"
	"shireesh.com/sogen/internal/sotemplate"
)

func newTestProject(t *testing.T) (*Project, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Assets"), 0o755))
	p := NewProject(root, "Assets", logger)
	p.Confirm = AlwaysConfirm(false)
	return p, hook
}

func mkdir(t *testing.T, p *Project, rel string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(p.Root, rel), 0o755))
}

func TestProjectSelection(t *testing.T) {
	p, _ := newTestProject(t)

	_, ok := p.CurrentSelectionPath()
	assert.False(t, ok)

	mkdir(t, p, "Assets/Scripts")
	require.NoError(t, p.WriteFile("Assets/Scripts/Player.cs", "class Player {}"))
	p.Selection = "Assets/Scripts/Player.cs"

	assert.True(t, p.PathIsFile("Assets/Scripts/Player.cs"))
	assert.False(t, p.PathIsFile("Assets/Scripts"))
	assert.True(t, p.FileExists("Assets/Scripts"))
	assert.False(t, p.FileExists("Assets/Missing.cs"))
	assert.Equal(t, filepath.Join("Assets", "Scripts"), generator.ResolveTargetDirectory(p, "Assets"))

	p.Selection = "Assets/Scripts"
	assert.Equal(t, filepath.Join("Assets", "Scripts"), generator.ResolveTargetDirectory(p, "Assets"))
}

func TestRefreshIndexWritesMeta(t *testing.T) {
	p, _ := newTestProject(t)
	mkdir(t, p, "Assets/Data")
	require.NoError(t, p.WriteFile("Assets/Data/Loot.cs", "content"))

	p.RefreshIndex()

	meta, err := ReadMeta(filepath.Join(p.Root, "Assets/Data/Loot.cs"))
	require.NoError(t, err)
	assert.Equal(t, 2, meta.FileFormatVersion)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), meta.GUID)
	require.NotNil(t, meta.MonoImporter)
	assert.Equal(t, 2, meta.MonoImporter.SerializedVersion)

	folder, err := ReadMeta(filepath.Join(p.Root, "Assets/Data"))
	require.NoError(t, err)
	assert.Equal(t, "yes", folder.FolderAsset)

	// An existing GUID survives a second refresh.
	p.RefreshIndex()
	again, err := ReadMeta(filepath.Join(p.Root, "Assets/Data/Loot.cs"))
	require.NoError(t, err)
	assert.Equal(t, meta.GUID, again.GUID)

	_, err = os.Stat(filepath.Join(p.Root, "Assets/Data/Loot.cs.meta.meta"))
	assert.True(t, os.IsNotExist(err))
}

func TestRefreshIndexSkipsHidden(t *testing.T) {
	p, _ := newTestProject(t)
	mkdir(t, p, "Assets/.hidden")
	require.NoError(t, p.WriteFile("Assets/.hidden/Secret.cs", "x"))

	p.RefreshIndex()

	_, err := os.Stat(filepath.Join(p.Root, "Assets/.hidden/Secret.cs.meta"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateIntoProject(t *testing.T) {
	p, hook := newTestProject(t)
	cfg := sotemplate.DefaultConfig()
	cfg.ScriptName = "Player Stats"

	res, err := generator.Generate(cfg, "Assets", p)
	require.NoError(t, err)

	want := filepath.Join("Assets", "PlayerStats.cs")
	assert.Equal(t, want, res.Path)
	assert.Equal(t, want, p.Selection)

	data, err := os.ReadFile(filepath.Join(p.Root, want))
	require.NoError(t, err)
	cfg.ScriptName = "PlayerStats"
	assert.Equal(t, sotemplate.Render(cfg), string(data))

	assert.FileExists(t, filepath.Join(p.Root, want+".meta"))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "selected asset", hook.LastEntry().Message)
}

func TestGenerateDeclinedKeepsFile(t *testing.T) {
	p, _ := newTestProject(t)
	require.NoError(t, p.WriteFile("Assets/PlayerStats.cs", "hand written"))

	cfg := sotemplate.DefaultConfig()
	cfg.ScriptName = "PlayerStats"

	res, err := generator.Generate(cfg, "Assets", p)
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	data, err := os.ReadFile(filepath.Join(p.Root, "Assets/PlayerStats.cs"))
	require.NoError(t, err)
	assert.Equal(t, "hand written", string(data))
	assert.Empty(t, p.Selection)
}

func TestWriteFileFailure(t *testing.T) {
	p, _ := newTestProject(t)
	// A regular file where a directory is expected.
	require.NoError(t, p.WriteFile("Assets/Blocked", "x"))

	cfg := sotemplate.DefaultConfig()
	_, err := generator.Generate(cfg, "Assets/Blocked", p)

	var ioErr *generator.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestMissingSelectionIsIgnored(t *testing.T) {
	p, _ := newTestProject(t)
	p.Selection = "Assets/Typo.cs"

	_, ok := p.CurrentSelectionPath()
	assert.False(t, ok)
	assert.Equal(t, "Assets", generator.ResolveTargetDirectory(p, "Assets"))
}

func TestWriteIntoMissingFolder(t *testing.T) {
	p, _ := newTestProject(t)

	cfg := sotemplate.DefaultConfig()
	_, err := generator.Generate(cfg, "Assets/Missing", p)

	var ioErr *generator.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, filepath.Join("Assets", "Missing", "NewScriptableObject.cs"), ioErr.Path)
	assert.NoDirExists(t, filepath.Join(p.Root, "Assets", "Missing"))
}
