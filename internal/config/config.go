// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format                string  `yaml:"format"`
		Threshold             float64 `yaml:"threshold"`
		CriticalMinSimilarity float64 `yaml:"critical_min_similarity"`
		MinChars              int     `yaml:"min_chars"`
		Workers               int     `yaml:"workers"`
		Verbose               bool    `yaml:"verbose"`
		Debug                 bool    `yaml:"debug"`
		NoColor               bool    `yaml:"no_color"`
		ShowBodies            bool    `yaml:"show_bodies"`
	} `yaml:"defaults"`

	// Ignore patterns are stripped from clause bodies before similarity
	// comparison. Malformed patterns are dropped at compile time, not here.
	IgnorePatterns []string `yaml:"ignore_patterns"`

	// Critical clauses escalate a mismatch to NOT_APPLIED.
	CriticalClauses []string `yaml:"critical_clauses"`

	// Profiles for different comparison scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a comparison profile with specific settings
type Profile struct {
	Format                string   `yaml:"format"`
	Threshold             float64  `yaml:"threshold"`
	CriticalMinSimilarity float64  `yaml:"critical_min_similarity"`
	MinChars              int      `yaml:"min_chars"`
	Workers               int      `yaml:"workers"`
	Verbose               bool     `yaml:"verbose"`
	Debug                 bool     `yaml:"debug"`
	NoColor               bool     `yaml:"no_color"`
	ShowBodies            bool     `yaml:"show_bodies"`
	IgnorePatterns        []string `yaml:"ignore_patterns"`
	CriticalClauses       []string `yaml:"critical_clauses"`
	Description           string   `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.Threshold = 0.985
	config.Defaults.CriticalMinSimilarity = 0.95
	config.Defaults.MinChars = 200
	config.Defaults.Workers = 0 // 0 = NumCPU

	// Strict review profile: any critical drift at all escalates.
	config.Profiles["strict"] = Profile{
		Format:                "text",
		Threshold:             0.995,
		CriticalMinSimilarity: 0.999,
		Description:           "Escalates on near-any drift in critical clauses",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig checks value ranges that would otherwise surface as
// confusing comparison results.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if err := validateThresholds(config.Defaults.Threshold, config.Defaults.CriticalMinSimilarity); err != nil {
		return err
	}
	for name, profile := range config.Profiles {
		if err := validateThresholds(profile.Threshold, profile.CriticalMinSimilarity); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return nil
}

func validateThresholds(threshold, criticalMin float64) error {
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold %v out of range [0,1]", threshold)
	}
	if criticalMin < 0 || criticalMin > 1 {
		return fmt.Errorf("critical_min_similarity %v out of range [0,1]", criticalMin)
	}
	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first
	for _, name := range []string{"clause-check.yaml", "clause-check.yml", ".clause-check.yaml", ".clause-check.yml"} {
		if fileExists(name) {
			return name
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Check XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(xdgConfig, "clause-check", name)
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns a default configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults — callers should not crash on a missing/bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}
