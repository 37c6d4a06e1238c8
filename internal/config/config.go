package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		SigningKey string `yaml:"signing_key"`
	} `yaml:"auth"`
	Storage struct {
		Endpoint  string `yaml:"endpoint"`
		Region    string `yaml:"region"`
		Bucket    string `yaml:"bucket"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
	} `yaml:"storage"`
}

// Load reads the yaml config file (CONFIG_PATH, default config/config.yaml)
// and then applies environment overrides, so a bare environment-only
// deployment works without a file at all.
func Load() (Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg.Server.Address = getenv("ADDR", cfg.Server.Address)
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Address = ":" + port
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":4533"
	}

	cfg.Database.Driver = getenv("DB_DRIVER", cfg.Database.Driver)
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "mysql"
	}
	cfg.Database.URL = getenv("DATABASE_URL", cfg.Database.URL)

	cfg.Auth.SigningKey = getenv("JWT_SECRET", cfg.Auth.SigningKey)

	cfg.Storage.Endpoint = getenv("S3_ENDPOINT", cfg.Storage.Endpoint)
	cfg.Storage.Region = getenv("S3_REGION", cfg.Storage.Region)
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "us-east-1"
	}
	cfg.Storage.Bucket = getenv("S3_BUCKET", cfg.Storage.Bucket)
	cfg.Storage.AccessKey = getenv("S3_ACCESS_KEY", cfg.Storage.AccessKey)
	cfg.Storage.SecretKey = getenv("S3_SECRET_KEY", cfg.Storage.SecretKey)

	if cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("config: database url is not set")
	}
	if cfg.Auth.SigningKey == "" {
		return Config{}, fmt.Errorf("config: jwt signing key is not set")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
