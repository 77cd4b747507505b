package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// CatalogConfig points at the remote artwork catalog and its image service.
type CatalogConfig struct {
	APIURL         string
	ImageURL       string
	PlaceholderURL string
	Timeout        time.Duration
	PageSize       int
	UserAgent      string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from the environment and, when configFile is
// non-empty, from that file. Environment values win over the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("CATALOG_API_URL", "https://api.artic.edu/api/v1/artworks")
	v.SetDefault("CATALOG_IMAGE_URL", "https://www.artic.edu/iiif/2")
	v.SetDefault("CATALOG_PLACEHOLDER_URL", "https://via.placeholder.com/200x200?text=No+Image")
	v.SetDefault("CATALOG_TIMEOUT", "15s")
	v.SetDefault("CATALOG_PAGE_SIZE", 10)
	v.SetDefault("CATALOG_USER_AGENT", "artwork-search-service")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	// Env
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("CATALOG_TIMEOUT"))
	if err != nil {
		timeout = 15 * time.Second
	}

	pageSize := v.GetInt("CATALOG_PAGE_SIZE")
	if pageSize <= 0 {
		pageSize = 10
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Catalog: CatalogConfig{
			APIURL:         v.GetString("CATALOG_API_URL"),
			ImageURL:       v.GetString("CATALOG_IMAGE_URL"),
			PlaceholderURL: v.GetString("CATALOG_PLACEHOLDER_URL"),
			Timeout:        timeout,
			PageSize:       pageSize,
			UserAgent:      v.GetString("CATALOG_USER_AGENT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
