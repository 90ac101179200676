// Package config loads server configuration from an optional YAML file with
// GEARBASE_* environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Auth   AuthConfig   `yaml:"auth"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AuthConfig struct {
	// JWTSecret overrides the secret persisted in the database. Leave empty
	// to use the generated one.
	JWTSecret string `yaml:"jwt_secret"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		DB:     DBConfig{Path: "gearbase.db"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads configuration from the YAML file at path (optional, may be
// empty) and applies GEARBASE_* environment overrides on top of defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("GEARBASE_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if addr := os.Getenv("GEARBASE_SERVER_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if dbPath := os.Getenv("GEARBASE_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("GEARBASE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if secret := os.Getenv("GEARBASE_JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
