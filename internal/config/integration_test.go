package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHome points EMPDASH_HOME and HOME at a temp directory.
func stubHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(EnvHome, "")
	return home
}

func TestGlobalConfig(t *testing.T) {
	stubHome(t)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, 8, cfg.View.PageSize)

	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)
}

func TestSetGlobalConfig(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := Default()
	cfg.View.PageSize = 20
	SetGlobalConfig(cfg)

	assert.Same(t, cfg, GetGlobalConfig())
	assert.Equal(t, 20, GetPageSize())
}

func TestConfigGetters(t *testing.T) {
	stubHome(t)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	cfg.Output.DefaultFormat = "json"
	cfg.View.PageSize = 5
	cfg.Data.Files = []string{"a.json", "b.yaml"}

	assert.Equal(t, "json", GetDefaultOutputFormat())
	assert.Equal(t, "ndjson", GetOutputFormat("ndjson"))
	assert.Equal(t, "json", GetOutputFormat(""))
	assert.Equal(t, 5, GetPageSize())
	assert.Equal(t, []string{"a.json", "b.yaml"}, GetDataFiles())
}

func TestEnsureConfigDir(t *testing.T) {
	tmpHome := stubHome(t)

	require.NoError(t, EnsureConfigDir())

	stat, err := os.Stat(filepath.Join(tmpHome, ".empdash"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	tmpDir := t.TempDir()
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	cfg.Logging.File = filepath.Join(tmpDir, "logs", "subdir", "test.log")

	require.NoError(t, EnsureLogDir())

	stat, err := os.Stat(filepath.Join(tmpDir, "logs", "subdir"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDirError(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	cfg := GetGlobalConfig()

	// A regular file cannot be used as a parent directory.
	tmpFile := filepath.Join(t.TempDir(), "test-file")
	require.NoError(t, os.WriteFile(tmpFile, nil, 0600))
	cfg.Logging.File = filepath.Join(tmpFile, "subdir", "test.log")

	assert.Error(t, EnsureLogDir())
}

func TestEnsureLogDirNoFile(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	GetGlobalConfig().Logging.File = ""

	assert.NoError(t, EnsureLogDir())
}

func TestGetConfigDir(t *testing.T) {
	home := stubHome(t)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".empdash"), dir)

	custom := t.TempDir()
	t.Setenv(EnvHome, custom)
	dir, err = GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, custom, dir)
}
