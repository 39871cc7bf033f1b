package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required"`
}

// UpstreamConfig holds the third-party endpoints. Content and feed URLs are
// templates: {game_id} and {os} are substituted per request.
type UpstreamConfig struct {
	GogCatalogURL   string        `yaml:"gogCatalogUrl" validate:"required|fullUrl"`
	GogContentURL   string        `yaml:"gogContentUrl" validate:"required"`
	SteamStoreURL   string        `yaml:"steamStoreUrl" validate:"required|fullUrl"`
	SteamFeedURL    string        `yaml:"steamFeedUrl" validate:"required"`
	Timeout         time.Duration `yaml:"timeout" validate:"required|min:1"`
	UserAgent       string        `yaml:"userAgent" validate:"required"`
	MaxResponseSize int64         `yaml:"maxResponseSize"`
}

type StaticConfig struct {
	Dir string `yaml:"dir"`
}

type CorsConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Logger    LoggerConfig   `yaml:"logger"`
	Upstream  UpstreamConfig `yaml:"upstream"`
	Static    StaticConfig   `yaml:"static"`
	Cors      CorsConfig     `yaml:"cors"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}
