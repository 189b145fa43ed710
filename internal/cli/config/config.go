// Package config stores the CLI's project settings under ~/.investi/.
// Auth tokens live in a separate credentials file owned by the token store.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config stores CLI configuration
type Config struct {
	RestURL    string `json:"rest_url"`           // row-storage endpoint
	AuthURL    string `json:"auth_url"`           // auth endpoint
	StorageURL string `json:"storage_url"`        // object-storage endpoint
	AnonKey    string `json:"anon_key"`           // public API key
	Email      string `json:"email,omitempty"`    // last signed-in email
	UserID     string `json:"user_id,omitempty"`  // last signed-in user ID
}

// GetConfigPath returns the configuration file path (~/.investi/config.json)
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".investi", "config.json"), nil
}

// Load loads configuration from file
func Load() (*Config, error) {
	configFile, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Save saves configuration to file
func (c *Config) Save() error {
	configFile, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// IsConfigured checks whether the project endpoints are set
func (c *Config) IsConfigured() bool {
	return c.RestURL != "" && c.AuthURL != "" && c.AnonKey != ""
}
