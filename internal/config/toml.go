// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Cipher  CipherConfig  `toml:"cipher"`
	Server  ServerConfig  `toml:"server"`
	History HistoryConfig `toml:"history"`
	Logging LoggingConfig `toml:"logging"`
}

// CipherConfig maps cipher-related settings.
type CipherConfig struct {
	Shift *int `toml:"shift"`
}

// ServerConfig maps HTTP server settings.
type ServerConfig struct {
	Host      *string `toml:"host"`
	Port      *int    `toml:"port"`
	StaticDir *string `toml:"static-dir"`
}

// HistoryConfig maps operation-history settings.
type HistoryConfig struct {
	Enabled *bool   `toml:"enabled"`
	DBPath  *string `toml:"db-path"`
}

// LoggingConfig maps server logging settings.
type LoggingConfig struct {
	Level   *string `toml:"level"`
	Dir     *string `toml:"dir"`
	Console *bool   `toml:"console"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
