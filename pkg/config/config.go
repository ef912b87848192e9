// Package config loads and validates the shelfd configuration file.
//
// Configuration may be provided as YAML or JSON; the format is detected
// from the file extension. Settings not present in the file keep their
// defaults, including the built-in seed catalog.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shelfd/shelfd/pkg/book"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrEmptyFile    = errors.New("configuration file is empty")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
)

// DefaultPort is the port the book API listens on when not configured.
const DefaultPort = 8080

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the TCP port to listen on. 0 selects an ephemeral port.
	Port int `json:"port" yaml:"port"`

	// ReadTimeout and WriteTimeout are in seconds.
	ReadTimeout  int `json:"readTimeout,omitempty" yaml:"readTimeout,omitempty"`
	WriteTimeout int `json:"writeTimeout,omitempty" yaml:"writeTimeout,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is the output format: text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Config is the top-level shelfd configuration.
type Config struct {
	Server ServerConfig `json:"server" yaml:"server"`
	Log    LogConfig    `json:"log" yaml:"log"`

	// Seed is the catalog present when the process starts.
	Seed []book.Book `json:"seed" yaml:"seed"`
}

// Default returns the default configuration, including the two-book
// seed catalog.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:         DefaultPort,
			ReadTimeout:  30,
			WriteTimeout: 30,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Seed: DefaultSeed(),
	}
}

// DefaultSeed returns the built-in seed catalog.
func DefaultSeed() []book.Book {
	return []book.Book{
		{ID: 1, Title: "1984", Author: "George Orwell", Year: 1949},
		{ID: 2, Title: "Brave New World", Author: "Aldous Huxley", Year: 1932},
	}
}

// LoadFromFile reads a Config from a JSON or YAML file. Settings absent
// from the file keep their defaults; an explicitly empty seed list
// yields an empty catalog.
func LoadFromFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	cfg := Default()

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("invalid readTimeout %d: must not be negative", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout < 0 {
		return fmt.Errorf("invalid writeTimeout %d: must not be negative", c.Server.WriteTimeout)
	}

	seen := make(map[int]bool, len(c.Seed))
	for i, b := range c.Seed {
		if b.ID <= 0 {
			return fmt.Errorf("seed book at index %d: ID must be positive, got %d", i, b.ID)
		}
		if seen[b.ID] {
			return fmt.Errorf("seed book at index %d: duplicate ID %d", i, b.ID)
		}
		seen[b.ID] = true
		if b.Title == "" {
			return fmt.Errorf("seed book %d: title is required", b.ID)
		}
		if b.Author == "" {
			return fmt.Errorf("seed book %d: author is required", b.ID)
		}
	}
	return nil
}
