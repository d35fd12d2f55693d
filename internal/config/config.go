package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Foursquare FoursquareConfig `yaml:"foursquare" mapstructure:"foursquare"`
	Analysis   AnalysisConfig   `yaml:"analysis" mapstructure:"analysis"`
	Cache      CacheConfig      `yaml:"cache" mapstructure:"cache"`
}

// ServerConfig configures the API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// FoursquareConfig holds Foursquare Places API settings.
type FoursquareConfig struct {
	Key         string  `yaml:"key" mapstructure:"key"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// AnalysisConfig configures analysis behavior.
type AnalysisConfig struct {
	MaxCompetitors int `yaml:"max_competitors" mapstructure:"max_competitors"`
}

// CacheConfig configures the places response cache.
type CacheConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Path     string `yaml:"path" mapstructure:"path"`
	TTLHours int    `yaml:"ttl_hours" mapstructure:"ttl_hours"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LOCALMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("foursquare.base_url", "https://api.foursquare.com/v3/places")
	v.SetDefault("foursquare.rate_limit", 10)
	v.SetDefault("foursquare.timeout_secs", 15)
	v.SetDefault("analysis.max_competitors", 20)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", "localmind.db")
	v.SetDefault("cache.ttl_hours", 24)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a run mode depends on. Modes: "serve" needs a
// listen port, "analyze" only needs sane analysis bounds.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	case "analyze":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Foursquare.RateLimit <= 0 {
		problems = append(problems, "foursquare.rate_limit must be > 0")
	}
	if c.Foursquare.TimeoutSecs <= 0 {
		problems = append(problems, "foursquare.timeout_secs must be > 0")
	}
	if c.Analysis.MaxCompetitors < 1 || c.Analysis.MaxCompetitors > 50 {
		problems = append(problems, "analysis.max_competitors must be between 1 and 50")
	}
	if c.Cache.Enabled {
		if c.Cache.Path == "" {
			problems = append(problems, "cache.path is required when cache is enabled")
		}
		if c.Cache.TTLHours < 1 {
			problems = append(problems, "cache.ttl_hours must be >= 1")
		}
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
