package providers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"vcheck/internal/structures"

	"github.com/spf13/viper"
)

const (
	DefaultGogCatalogURL = "https://catalog.gog.com/v1/catalog"
	DefaultGogContentURL = "https://content-system.gog.com/products/{game_id}/os/{os}/builds?generation=2"
	DefaultSteamStoreURL = "https://store.steampowered.com/api/storesearch/"
	DefaultSteamFeedURL  = "https://steamdb.info/api/PatchnotesRSS/?appid={game_id}"
	DefaultUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 8000)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", os.TempDir())
	v.SetDefault("upstream.gogCatalogUrl", DefaultGogCatalogURL)
	v.SetDefault("upstream.gogContentUrl", DefaultGogContentURL)
	v.SetDefault("upstream.steamStoreUrl", DefaultSteamStoreURL)
	v.SetDefault("upstream.steamFeedUrl", DefaultSteamFeedURL)
	v.SetDefault("upstream.timeout", 10*time.Second)
	v.SetDefault("upstream.userAgent", DefaultUserAgent)
	v.SetDefault("upstream.maxResponseSize", 4<<20)
	v.SetDefault("static.dir", "static")
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("metrics.enabled", true)
}

func bindEnv(v *viper.Viper) {
	v.BindEnv("upstream.gogCatalogUrl", "GOG_CATALOG_URL")
	v.BindEnv("upstream.gogContentUrl", "GOG_CONTENT_URL")
	v.BindEnv("upstream.steamStoreUrl", "STEAM_STORE_URL")
	v.BindEnv("upstream.steamFeedUrl", "STEAM_RSS_URL")
	v.BindEnv("upstream.timeout", "VCHECK_UPSTREAM_TIMEOUT")
	v.BindEnv("logger.level", "VCHECK_LOG_LEVEL")
	v.BindEnv("logger.dir", "VCHECK_LOG_DIR")
	v.BindEnv("webServer.host", "VCHECK_HOST")
	v.BindEnv("webServer.port", "VCHECK_PORT")
	v.BindEnv("metrics.enabled", "VCHECK_METRICS_ENABLED")
	v.BindEnv("static.dir", "VCHECK_STATIC_DIR")
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	err := v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "GogSteamVersionChecker"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
