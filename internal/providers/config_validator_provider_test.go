package providers

import (
	"testing"
	"time"
	"vcheck/internal/structures"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Upstream: structures.UpstreamConfig{
			GogCatalogURL: DefaultGogCatalogURL,
			GogContentURL: DefaultGogContentURL,
			SteamStoreURL: DefaultSteamStoreURL,
			SteamFeedURL:  DefaultSteamFeedURL,
			Timeout:       10 * time.Second,
			UserAgent:     DefaultUserAgent,
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MissingUpstreamURL(t *testing.T) {
	c := validConfig()
	c.Upstream.SteamStoreURL = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ContentURLWithoutPlaceholders(t *testing.T) {
	c := validConfig()
	c.Upstream.GogContentURL = "https://content-system.gog.com/products/1/os/windows/builds"
	v := NewCnfValidator(c)
	assert.ErrorContains(t, v.Validate(), "{game_id}")
}

func TestConfigValidator_ContentURLWithoutOS(t *testing.T) {
	c := validConfig()
	c.Upstream.GogContentURL = "https://content-system.gog.com/products/{game_id}/builds"
	v := NewCnfValidator(c)
	assert.ErrorContains(t, v.Validate(), "{os}")
}

func TestConfigValidator_FeedURLWithoutPlaceholder(t *testing.T) {
	c := validConfig()
	c.Upstream.SteamFeedURL = "https://steamdb.info/api/PatchnotesRSS/"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
