package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		BaseURL        string `mapstructure:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"api"`

	List struct {
		ItemsPerPage int `mapstructure:"items_per_page"`
		DebounceMS   int `mapstructure:"debounce_ms"`
	} `mapstructure:"list"`

	Store struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"store"`

	Export struct {
		OutputDir string `mapstructure:"output_dir"`
	} `mapstructure:"export"`

	Share struct {
		Endpoint  string `mapstructure:"endpoint"`
		Region    string `mapstructure:"region"`
		Bucket    string `mapstructure:"bucket"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"share"`

	Preview struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"preview"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("api.base_url", "http://localhost:8080/api")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("list.items_per_page", 10)
	v.SetDefault("list.debounce_ms", 500)
	v.SetDefault("store.path", "warehub.db")
	v.SetDefault("export.output_dir", "exports")
	v.SetDefault("share.region", "auto")
	v.SetDefault("preview.port", 8090)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override API settings from WAREHUB_* environment variables
	if base := os.Getenv("WAREHUB_API_URL"); base != "" {
		cfg.API.BaseURL = base
	}
	if path := os.Getenv("WAREHUB_STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}

	// Share credentials come from the environment, never from the config file
	if key := os.Getenv("SHARE_ACCESS_KEY"); key != "" {
		cfg.Share.AccessKey = key
	}
	if secret := os.Getenv("SHARE_SECRET_KEY"); secret != "" {
		cfg.Share.SecretKey = secret
	}
	if bucket := os.Getenv("SHARE_BUCKET"); bucket != "" {
		cfg.Share.Bucket = bucket
	}
	if endpoint := os.Getenv("SHARE_ENDPOINT"); endpoint != "" {
		cfg.Share.Endpoint = endpoint
	}

	return &cfg
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func (c *Config) Debounce() time.Duration {
	return time.Duration(c.List.DebounceMS) * time.Millisecond
}
