package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Package config provides configuration management for the tile builder

// Config struct to hold all configuration data
type Config struct {
	OutputDir     string   `json:"output_dir"`      // Empty means next to the first source image
	JPEGQuality   int      `json:"jpeg_quality"`    // 1-100
	MinTileWidth  int      `json:"min_tile_width"`  // 0 means no floor
	MinTileHeight int      `json:"min_tile_height"` // 0 means no floor
	Workers       int      `json:"workers"`         // <= 0 means one per CPU
	CropMode      string   `json:"crop_mode"`       // "center" or "smart"
	Monitors      []string `json:"monitors"`        // e.g. ["3840x1600", "1920x1080"]
}

var (
	instance *Config
	once     sync.Once
)

// GetConfig returns the singleton instance of Config, loaded from the user's config file.
func GetConfig() *Config {
	once.Do(func() {
		filename, err := GetFilename()
		if err != nil {
			fmt.Println("Error locating config:", err)
			instance = Default()
			return
		}
		instance, err = Load(filename)
		if err != nil {
			fmt.Println("Error loading config:", err)
			instance = Default()
		}
	})
	return instance
}

// Default returns a Config populated with default values.
func Default() *Config {
	c := &Config{}
	c.setDefaultValues()
	return c
}

// GetPath returns the path to the user's config directory
func GetPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName)), nil
}

// GetFilename returns the path to the user's config file
func GetFilename() (string, error) {
	dir, err := GetPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Load reads the config file at filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", filename, err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", filename, err)
	}
	c.normalize()
	return c, nil
}

// setDefaultValues sets default values for the configuration
func (c *Config) setDefaultValues() {
	c.OutputDir = ""
	c.JPEGQuality = DefaultJPEGQuality
	c.MinTileWidth = 0
	c.MinTileHeight = 0
	c.Workers = runtime.NumCPU()
	c.CropMode = DefaultCropMode
	c.Monitors = nil
}

// normalize replaces out of range values with their defaults.
func (c *Config) normalize() {
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = DefaultJPEGQuality
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.MinTileWidth < 0 {
		c.MinTileWidth = 0
	}
	if c.MinTileHeight < 0 {
		c.MinTileHeight = 0
	}
	if c.CropMode == "" {
		c.CropMode = DefaultCropMode
	}
}

// Save writes the configuration to filename, creating its directory if needed.
func (c *Config) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ") // Use indentation for readability
	if err != nil {
		return fmt.Errorf("encoding config data: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
