package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	CatalogPath string `koanf:"catalog_path"` // JSON track catalog; empty means start with an empty catalog
	DBPath      string `koanf:"db_path"`      // state database; empty means the XDG data location
	Owner       string `koanf:"owner"`        // identity stamped on user-created playlists
	LogLevel    string `koanf:"log_level"`    // zerolog level name (default "info")

	Playlists     PlaylistsConfig     `koanf:"playlists"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// PlaylistsConfig holds generated-playlist settings.
type PlaylistsConfig struct {
	Curator         string `koanf:"curator"`          // identity for auto-generated playlists
	RecommendedSize int    `koanf:"recommended_size"` // tracks per generated playlist (default 8)
}

// NotificationsConfig holds notification bus settings.
type NotificationsConfig struct {
	LifespanMs int `koanf:"lifespan_ms"` // default notification lifespan (default 3000)
}

// Lifespan returns the configured lifespan as a duration.
func (c NotificationsConfig) Lifespan() time.Duration {
	return time.Duration(c.LifespanMs) * time.Millisecond
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	cfg.CatalogPath = expandPath(cfg.CatalogPath)
	cfg.DBPath = expandPath(cfg.DBPath)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Owner == "" {
		cfg.Owner = "you"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Playlists.Curator == "" {
		cfg.Playlists.Curator = "tonearm"
	}
	if cfg.Playlists.RecommendedSize <= 0 {
		cfg.Playlists.RecommendedSize = 8
	}
	if cfg.Notifications.LifespanMs <= 0 {
		cfg.Notifications.LifespanMs = 3000
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/tonearm/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tonearm", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
