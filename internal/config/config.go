// ABOUTME: Weekly configuration management.
// ABOUTME: Handles data location, login credential, session, server and log settings.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/weekly/internal/auth"
	"github.com/harperreed/weekly/internal/storage"
)

// Environment variables that override the config file.
const (
	EnvDataDir       = "WEEKLY_DATA_DIR"
	EnvSessionSecret = "WEEKLY_SESSION_SECRET"
)

// Config stores weekly tool configuration.
type Config struct {
	// DataDir is the root directory for data storage; weekly.db lives here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/weekly.
	DataDir string `json:"data_dir,omitempty"`

	Auth   AuthConfig   `json:"auth"`
	Server ServerConfig `json:"server"`
	Log    LogConfig    `json:"log"`
}

// AuthConfig holds the single shared login.
type AuthConfig struct {
	Username string `json:"username,omitempty"`
	// PasswordHash is a bcrypt hash, as printed by 'weekly passwd'.
	PasswordHash  string `json:"password_hash,omitempty"`
	SessionSecret string `json:"session_secret,omitempty"`
	// SessionTTL is a Go duration string such as "12h".
	SessionTTL string `json:"session_ttl,omitempty"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `json:"addr,omitempty"`
	// Mode is the gin mode: "release" (default), "debug" or "test".
	Mode string `json:"mode,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `json:"level,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return ExpandPath(dir)
	}
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the SQLite database path inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "weekly.db")
}

// OpenStorage opens the report repository.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return storage.Open(c.DBPath())
}

// Credential returns the configured login.
func (c *Config) Credential() auth.Credential {
	return auth.Credential{
		Username:     c.Auth.Username,
		PasswordHash: c.Auth.PasswordHash,
	}
}

// GetSessionSecret returns the session signing secret, preferring the environment.
func (c *Config) GetSessionSecret() string {
	if s := os.Getenv(EnvSessionSecret); s != "" {
		return s
	}
	return c.Auth.SessionSecret
}

// GetSessionTTL parses the session lifetime, defaulting to auth.DefaultSessionTTL.
func (c *Config) GetSessionTTL() (time.Duration, error) {
	if c.Auth.SessionTTL == "" {
		return auth.DefaultSessionTTL, nil
	}
	d, err := time.ParseDuration(c.Auth.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid session_ttl %q: %w", c.Auth.SessionTTL, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid session_ttl %q: must be positive", c.Auth.SessionTTL)
	}
	return d, nil
}

// GetAddr returns the HTTP listen address, defaulting to 127.0.0.1:8501.
func (c *Config) GetAddr() string {
	if c.Server.Addr == "" {
		return "127.0.0.1:8501"
	}
	return c.Server.Addr
}

// GetMode returns the gin mode, defaulting to "release".
func (c *Config) GetMode() string {
	if c.Server.Mode == "" {
		return "release"
	}
	return c.Server.Mode
}

// GetLogLevel returns the log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "weekly", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
