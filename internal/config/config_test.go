package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unijfdev/lazysvn/internal/theme"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, theme.DraculaName, cfg.Theme)
	assert.Equal(t, "svn", cfg.SvnBin)
	assert.True(t, cfg.ShowIcons)
	assert.Empty(t, cfg.DebugLog)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "theme: nord\nsvn_bin: /opt/svn/bin/svn\nshow_icons: false\ndebug_log: /tmp/lazysvn.log\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, theme.NordName, cfg.Theme)
	assert.Equal(t, "/opt/svn/bin/svn", cfg.SvnBin)
	assert.False(t, cfg.ShowIcons)
	assert.Equal(t, "/tmp/lazysvn.log", cfg.DebugLog)
}

func TestLoadConfigFromXDGDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, "lazysvn")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme: clean-light\n"), 0o600))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, theme.CleanLightName, cfg.Theme)
}

func TestLoadConfigInvalidYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t{nonsense"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigSanitizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: no-such-theme\nsvn_bin: '  '\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), cfg.Theme)
	assert.Equal(t, "svn", cfg.SvnBin)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/logs/lazysvn.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "lazysvn.log"), expanded)

	t.Setenv("LAZYSVN_TEST_DIR", "/var/tmp")
	expanded, err = ExpandPath("$LAZYSVN_TEST_DIR/x.log")
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/x.log", expanded)
}
