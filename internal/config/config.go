package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	SourceFile     = "file"
	SourcePostgres = "postgres"

	// ProductionCacheTTL applies when cache.ttl is unset in production.
	ProductionCacheTTL = 5 * time.Minute
)

// Config holds all configuration for the portfolio server and cvctl.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Data    DataConfig    `mapstructure:"data"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
	API     APIConfig     `mapstructure:"api"`
	PDF     PDFConfig     `mapstructure:"pdf"`
	Site    SiteConfig    `mapstructure:"site"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

// ServerConfig holds HTTP listener settings. Port, when set (PORT), wins
// over ListenAddr.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
	Port       string `mapstructure:"port"`
}

// DataConfig selects where CV sections are read from.
type DataConfig struct {
	Dir         string `mapstructure:"dir"`
	Source      string `mapstructure:"source"`
	DatabaseURL string `mapstructure:"database_url"`
}

// CacheConfig holds the section cache TTL as a duration string. Empty means
// the environment default.
type CacheConfig struct {
	TTL string `mapstructure:"ttl"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// APIConfig holds settings of the JSON API.
type APIConfig struct {
	AdminToken string `mapstructure:"admin_token"`
}

// String masks the admin token.
func (c APIConfig) String() string {
	if c.AdminToken == "" {
		return "APIConfig{AdminToken:}"
	}
	return "APIConfig{AdminToken:***}"
}

type PDFConfig struct {
	ChromePath string        `mapstructure:"chrome_path"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Attempts   int           `mapstructure:"attempts"`
	Backoff    time.Duration `mapstructure:"backoff"`
}

type SiteConfig struct {
	FeaturedOnly bool `mapstructure:"featured_only"`
}

// Load reads configuration from file and environment variables. When file
// is empty, config.yaml is looked up in the working directory and in
// $HOME/.portfolio.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.env", EnvDevelopment)
	v.SetDefault("server.listen_addr", ":3000")
	v.SetDefault("server.port", "")
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.source", SourceFile)
	v.SetDefault("data.database_url", "")
	v.SetDefault("cache.ttl", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("api.admin_token", "")
	v.SetDefault("pdf.chrome_path", "")
	v.SetDefault("pdf.timeout", 60*time.Second)
	v.SetDefault("pdf.attempts", 3)
	v.SetDefault("pdf.backoff", time.Second)
	v.SetDefault("site.featured_only", false)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(homeDir(), ".portfolio"))
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// conventional names used by hosting platforms and docker-compose files
	_ = v.BindEnv("server.port", "PORTFOLIO_SERVER_PORT", "PORT")
	_ = v.BindEnv("data.database_url", "PORTFOLIO_DATA_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("pdf.chrome_path", "PORTFOLIO_PDF_CHROME_PATH", "CHROME_PATH")
	_ = v.BindEnv("app.env", "PORTFOLIO_APP_ENV", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are set and consistent.
func (c *Config) Validate() error {
	switch c.App.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("app.env must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.App.Env)
	}
	if c.Server.ListenAddr == "" && c.Server.Port == "" {
		return fmt.Errorf("server.listen_addr must not be empty")
	}
	switch c.Data.Source {
	case SourceFile:
		if c.Data.Dir == "" {
			return fmt.Errorf("data.dir must not be empty")
		}
	case SourcePostgres:
		if c.Data.DatabaseURL == "" {
			return fmt.Errorf("data.database_url must be set when data.source is %q", SourcePostgres)
		}
	default:
		return fmt.Errorf("data.source must be %q or %q, got %q", SourceFile, SourcePostgres, c.Data.Source)
	}
	if c.Cache.TTL != "" {
		d, err := time.ParseDuration(c.Cache.TTL)
		if err != nil {
			return fmt.Errorf("cache.ttl: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("cache.ttl must be >= 0")
		}
	}
	if _, ok := levels[strings.ToLower(c.Logging.Level)]; !ok {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be text or json")
	}
	if c.PDF.Timeout <= 0 {
		return fmt.Errorf("pdf.timeout must be greater than 0")
	}
	if c.PDF.Attempts < 1 {
		return fmt.Errorf("pdf.attempts must be at least 1")
	}
	if c.PDF.Backoff < 0 {
		return fmt.Errorf("pdf.backoff must be >= 0")
	}
	return nil
}

func (c *Config) IsProduction() bool { return c.App.Env == EnvProduction }

// CacheTTL is cache.ttl, or 0 in development and ProductionCacheTTL in
// production when unset. Call after Validate.
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTL != "" {
		if d, err := time.ParseDuration(c.Cache.TTL); err == nil {
			return d
		}
	}
	if c.IsProduction() {
		return ProductionCacheTTL
	}
	return 0
}

// Addr is the address the HTTP server listens on.
func (c *Config) Addr() string {
	if c.Server.Port != "" {
		return ":" + strings.TrimPrefix(c.Server.Port, ":")
	}
	return c.Server.ListenAddr
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the process logger from the logging section.
func NewLogger(c LoggingConfig, w io.Writer) *slog.Logger {
	level, ok := levels[strings.ToLower(c.Level)]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
