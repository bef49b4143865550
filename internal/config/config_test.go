package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, DefaultLocation, cfg.Source.Location)
	assert.Zero(t, cfg.Source.HTTPTimeout, "requests do not time out by default")
	assert.Empty(t, cfg.Source.UserAgent, "no headers are sent by default")
	assert.True(t, cfg.Source.AllowPrivate)
	assert.Equal(t, 1*time.Second, cfg.Database.Timeout)
	assert.Equal(t, "error", cfg.Log.Level, "load failures are logged by default")
	assert.Empty(t, cfg.Log.File, "empty selects the debuglog default path")
	assert.Equal(t, "esc", cfg.Keys.Quit)
	assert.Equal(t, "enter", cfg.Keys.Submit)
	assert.Equal(t, "tab", cfg.Keys.Focus)
	assert.Equal(t, 100, cfg.UI.WordWrapMaxWidth)
}

func TestLoad_DefaultConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultLocation, cfg.Source.Location)
	assert.Zero(t, cfg.Source.HTTPTimeout)
	assert.True(t, filepath.IsAbs(cfg.Database.Path))
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")
	configContent := `
[source]
location = "https://quotes.dev/quotes.json"
http_timeout = "15s"
user_agent = "test-agent"

[database]
path = "/tmp/test.db"
timeout = "10s"

[ui.colors]
primary = "#FF0000"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://quotes.dev/quotes.json", cfg.Source.Location)
	assert.Equal(t, 15*time.Second, cfg.Source.HTTPTimeout)
	assert.Equal(t, "test-agent", cfg.Source.UserAgent)
	assert.True(t, cfg.Source.AllowPrivate, "unset keys keep defaults")
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, 10*time.Second, cfg.Database.Timeout)
	assert.Equal(t, "#FF0000", cfg.UI.Colors.Primary)
	assert.Equal(t, "#4ECDC4", cfg.UI.Colors.Secondary)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("QUIP_SOURCE_LOCATION", "https://env.quotes.dev/quotes.json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://env.quotes.dev/quotes.json", cfg.Source.Location)
}

func TestLoad_InvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[source\nlocation ="), 0o644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	cfg := defaultConfig()
	cfg.Source.Location = "bolt:///tmp/quip.db"
	cfg.Source.HTTPTimeout = 45 * time.Second
	cfg.Database.Path = "/test/path.db"
	cfg.Keys.Quit = "ctrl+q"

	savePath := filepath.Join(t.TempDir(), "nested", "saved-config.toml")
	require.NoError(t, Save(cfg, savePath))

	loaded, err := Load(savePath)
	require.NoError(t, err)

	assert.Equal(t, cfg.Source.Location, loaded.Source.Location)
	assert.Equal(t, cfg.Source.HTTPTimeout, loaded.Source.HTTPTimeout)
	assert.Equal(t, cfg.Database.Path, loaded.Database.Path)
	assert.Equal(t, cfg.Keys.Quit, loaded.Keys.Quit)
	assert.Equal(t, cfg.UI, loaded.UI)
}

func TestGenerateDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "generated.toml")
	require.NoError(t, GenerateDefaultConfig(configPath))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultLocation, cfg.Source.Location)
	assert.Equal(t, "esc", cfg.Keys.Quit)
}

func TestRender(t *testing.T) {
	out, err := Render(defaultConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "[source]")
	assert.Contains(t, out, DefaultLocation)
	assert.Regexp(t, `http_timeout = ['"]0s['"]`, out)
	assert.True(t, strings.Contains(out, "[ui.colors]") || strings.Contains(out, "[ui]"))
}

func TestNested(t *testing.T) {
	got := nested(map[string]any{"a.b.c": 1, "a.d": 2, "e": 3})
	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1},
			"d": 2,
		},
		"e": 3,
	}, got)
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "quip-test/1.0", cfg.Source.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.Source.HTTPTimeout)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
