package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Database  DatabaseConfig
	Storage   StorageConfig
	Limits    LimitsConfig
	Collector CollectorConfig
	Events    EventsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DatabaseConfig selects the entity store. Driver "memory" needs no DSN.
type DatabaseConfig struct {
	Driver string // "memory" or "postgres"
	DSN    string
}

// StorageConfig configures the local image store.
type StorageConfig struct {
	ImageRoot      string
	FetchPerSecond float64
	FetchBurst     int
	ImageCacheSize int
	MaxImageBytes  int64
}

// LimitsConfig holds the business limits enforced by the use cases.
type LimitsConfig struct {
	MaxItemsPerList int
}

// CollectorConfig tunes the orphaned-image collector.
type CollectorConfig struct {
	IntervalMinutes   int
	PageSize          int
	FalsePositiveRate float64
	DeleteConcurrency int
}

// EventsConfig configures the fire-and-forget action event hook.
type EventsConfig struct {
	WebhookURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/giftlist/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/giftlist/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = viper.GetString("database.dsn")

	cfg.Storage.ImageRoot = viper.GetString("storage.image_root")
	cfg.Storage.FetchPerSecond = viper.GetFloat64("storage.fetch_per_second")
	cfg.Storage.FetchBurst = viper.GetInt("storage.fetch_burst")
	cfg.Storage.ImageCacheSize = viper.GetInt("storage.image_cache_size")
	cfg.Storage.MaxImageBytes = viper.GetInt64("storage.max_image_bytes")

	cfg.Limits.MaxItemsPerList = viper.GetInt("limits.max_items_per_list")

	cfg.Collector.IntervalMinutes = viper.GetInt("collector.interval_minutes")
	cfg.Collector.PageSize = viper.GetInt("collector.page_size")
	cfg.Collector.FalsePositiveRate = viper.GetFloat64("collector.false_positive_rate")
	cfg.Collector.DeleteConcurrency = viper.GetInt("collector.delete_concurrency")

	cfg.Events.WebhookURL = viper.GetString("events.webhook_url")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.driver", "memory")

	viper.SetDefault("storage.image_root", "./data/images")
	viper.SetDefault("storage.fetch_per_second", 5.0)
	viper.SetDefault("storage.fetch_burst", 5)
	viper.SetDefault("storage.image_cache_size", 1024)

	viper.SetDefault("limits.max_items_per_list", 100)

	viper.SetDefault("collector.interval_minutes", 60)
	viper.SetDefault("collector.page_size", 500)
	viper.SetDefault("collector.false_positive_rate", 0.01)
	viper.SetDefault("collector.delete_concurrency", 8)
}
