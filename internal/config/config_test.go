package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/empdash/internal/logging"
)

func TestDefault(t *testing.T) {
	home := stubHome(t)

	cfg := Default()
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, 8, cfg.View.PageSize)
	assert.Empty(t, cfg.Data.Files)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, ".empdash", "logs", "empdash.log"), cfg.Logging.File)
	assert.NoError(t, cfg.Validate())
}

func TestNewReadsConfigFile(t *testing.T) {
	home := stubHome(t)
	dir := filepath.Join(home, ".empdash")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
view:
  page_size: 12
data:
  files: [staff.json]
`), 0600))

	cfg := New()
	assert.Equal(t, 12, cfg.View.PageSize)
	assert.Equal(t, []string{"staff.json"}, cfg.Data.Files)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
}

func TestNewIgnoresBrokenConfigFile(t *testing.T) {
	home := stubHome(t)
	dir := filepath.Join(home, ".empdash")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("view: [unclosed"), 0600))

	cfg := New()
	assert.Equal(t, 8, cfg.View.PageSize)
}

func TestApplyEnv(t *testing.T) {
	stubHome(t)
	t.Setenv(EnvPageSize, "25")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "console")
	t.Setenv(EnvData, "a.json"+string(os.PathListSeparator)+"b.yaml")

	cfg := New()
	assert.Equal(t, 25, cfg.View.PageSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, []string{"a.json", "b.yaml"}, cfg.Data.Files)
}

func TestApplyEnvIgnoresBadPageSize(t *testing.T) {
	stubHome(t)
	t.Setenv(EnvPageSize, "lots")

	assert.Equal(t, 8, New().View.PageSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json output", mutate: func(c *Config) { c.Output.DefaultFormat = "json" }},
		{name: "unknown output", mutate: func(c *Config) { c.Output.DefaultFormat = "xml" }, wantErr: ErrInvalidOutputFormat},
		{name: "zero page size", mutate: func(c *Config) { c.View.PageSize = 0 }, wantErr: ErrInvalidPageSize},
		{name: "huge page size", mutate: func(c *Config) { c.View.PageSize = 5000 }, wantErr: ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	stubHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.View.PageSize = 3
	cfg.Data.Files = []string{"people.yaml"}
	require.NoError(t, cfg.Save(path))

	loaded := Default()
	require.NoError(t, ShallowMergeYAML(loaded, path))
	assert.Equal(t, cfg, loaded)
}

func TestToLoggingConfig(t *testing.T) {
	withFile := LoggingConfig{Level: "debug", Format: "json", File: "/tmp/empdash.log"}
	got := withFile.ToLoggingConfig()
	assert.Equal(t, logging.Config{Level: "debug", Format: "json", Output: "file", File: "/tmp/empdash.log"}, got)

	noFile := LoggingConfig{Level: "warn", Format: "console"}
	assert.Equal(t, logging.OutputStderr, noFile.ToLoggingConfig().Output)
}

func TestLoad(t *testing.T) {
	home := stubHome(t)
	dir := filepath.Join(home, ".empdash")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("view:\n  page_size: 12\n"), 0600))

	overlay := filepath.Join(t.TempDir(), "team.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("output:\n  default_format: json\n"), 0600))

	cfg, err := Load(overlay)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.View.PageSize)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)

	// Environment wins over both files.
	t.Setenv(EnvPageSize, "4")
	cfg, err = Load(overlay)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.View.PageSize)
}

func TestLoadErrors(t *testing.T) {
	stubHome(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("output:\n  default_format: xml\n"), 0600))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidOutputFormat)
}
