package providers

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"vcheck/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigProvider_Defaults(t *testing.T) {
	conf, err := NewConfigProvider(&structures.CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, "GogSteamVersionChecker", conf.AppName)
	assert.Equal(t, 8000, conf.WebServer.Port)
	assert.Equal(t, DefaultGogCatalogURL, conf.Upstream.GogCatalogURL)
	assert.Equal(t, DefaultSteamFeedURL, conf.Upstream.SteamFeedURL)
	assert.Equal(t, 10*time.Second, conf.Upstream.Timeout)
	assert.True(t, conf.Metrics.Enabled)
}

func TestConfigProvider_EnvOverrides(t *testing.T) {
	t.Setenv("GOG_CATALOG_URL", "http://127.0.0.1:9000/catalog")
	t.Setenv("STEAM_RSS_URL", "http://127.0.0.1:9000/rss?appid={game_id}")
	t.Setenv("VCHECK_UPSTREAM_TIMEOUT", "3s")

	conf, err := NewConfigProvider(&structures.CliFlags{DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000/catalog", conf.Upstream.GogCatalogURL)
	assert.Equal(t, "http://127.0.0.1:9000/rss?appid={game_id}", conf.Upstream.SteamFeedURL)
	assert.Equal(t, 3*time.Second, conf.Upstream.Timeout)
	assert.True(t, conf.Debug)
}

func TestConfigProvider_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
webServer:
  host: 0.0.0.0
  port: 9090
logger:
  level: debug
  dir: /var/log/vcheck
upstream:
  timeout: 5s
metrics:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, 9090, conf.WebServer.Port)
	assert.Equal(t, "debug", conf.Logger.Level)
	assert.Equal(t, 5*time.Second, conf.Upstream.Timeout)
	assert.Equal(t, DefaultGogContentURL, conf.Upstream.GogContentURL)
	assert.False(t, conf.Metrics.Enabled)
	assert.Equal(t, path, conf.Path)
}

func TestConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestConfigProvider_InvalidTemplateFromEnv(t *testing.T) {
	t.Setenv("GOG_CONTENT_URL", "https://content-system.gog.com/static")

	_, err := NewConfigProvider(&structures.CliFlags{})
	assert.Error(t, err)
}
