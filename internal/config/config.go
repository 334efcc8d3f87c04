package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the endpoints and local paths larder runs with.
type Config struct {
	ProductAPI     string
	BerryAPI       string
	StatePath      string
	LogPath        string
	LogLevel       string
	RequestTimeout time.Duration
	BerryLimit     int
}

const (
	defaultConfigPath     = "~/.config/larder/config.toml"
	defaultProductAPI     = "https://fakestoreapi.com/products"
	defaultBerryAPI       = "https://pokeapi.co/api/v2/berry/"
	defaultStatePath      = "~/.local/share/larder/state.db"
	defaultLogPath        = "~/.local/share/larder/larder.log"
	defaultLogLevel       = "info"
	defaultRequestTimeout = 5 * time.Second
	defaultBerryLimit     = 100
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ProductAPI:     defaultProductAPI,
		BerryAPI:       defaultBerryAPI,
		StatePath:      mustExpand(defaultStatePath),
		LogPath:        mustExpand(defaultLogPath),
		LogLevel:       defaultLogLevel,
		RequestTimeout: defaultRequestTimeout,
		BerryLimit:     defaultBerryLimit,
	}
}

// Load locates and parses the larder config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ProductAPI     string `toml:"product_api"`
		BerryAPI       string `toml:"berry_api"`
		StatePath      string `toml:"state_path"`
		LogPath        string `toml:"log_path"`
		LogLevel       string `toml:"log_level"`
		RequestTimeout string `toml:"request_timeout"`
		BerryLimit     int    `toml:"berry_limit"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.ProductAPI); v != "" {
		cfg.ProductAPI = v
	}
	if v := strings.TrimSpace(raw.BerryAPI); v != "" {
		cfg.BerryAPI = v
	}
	if v := strings.TrimSpace(raw.StatePath); v != "" {
		cfg.StatePath = expandOrKeep(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = expandOrKeep(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if raw.BerryLimit < 0 {
		return Config{}, fmt.Errorf("parse config: berry_limit must not be negative")
	}
	if raw.BerryLimit > 0 {
		cfg.BerryLimit = raw.BerryLimit
	}

	return cfg, nil
}

// InMemoryState reports whether the state path selects a transient database.
func (c Config) InMemoryState() bool {
	return c.StatePath == ":memory:"
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandOrKeep(path string) string {
	if path == ":memory:" {
		return path
	}
	return mustExpand(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
