package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"act-wallet-tui/gateway"

	"github.com/kelseyhightower/envconfig"
)

// Page is a top-level screen of the TUI
type Page int

const (
	PageConnect Page = iota
	PageFlows
)

// ClickableArea is a mouse target in screen cells
type ClickableArea struct {
	X, Y          int
	Width, Height int
	Target        string
}

// Contains reports whether the cell (x, y) falls inside the area
func (a ClickableArea) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Config represents the application configuration
type Config struct {
	BackendURL string `json:"backend_url"`
	Network    string `json:"network"`
	StartPanel string `json:"start_panel,omitempty"`
	Logger     bool   `json:"logger"`
}

// Env holds ACTWALLET_* overrides; unset fields leave the file value alone
type Env struct {
	BackendURL string `envconfig:"BACKEND_URL"`
	Network    string `envconfig:"NETWORK"`
	Logger     *bool  `envconfig:"LOGGER"`
}

// DefaultPath is the config file in the user's home directory
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".act-wallet-config.json")
}

// Save writes the config to the specified path
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		BackendURL: "http://127.0.0.1:8645",
		Network:    string(gateway.NetworkMain),
		StartPanel: "create-token",
		Logger:     false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg := DefaultConfig()
		_ = Save(path, cfg)
		return cfg
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BackendURL == "" {
		c.BackendURL = def.BackendURL
	}
	if c.Network == "" {
		c.Network = def.Network
	}
	if c.StartPanel == "" {
		c.StartPanel = def.StartPanel
	}
	return c
}

// ApplyEnv overlays ACTWALLET_* environment variables onto cfg
func ApplyEnv(cfg Config) (Config, error) {
	var env Env
	if err := envconfig.Process("actwallet", &env); err != nil {
		return cfg, fmt.Errorf("failed to process env: %w", err)
	}
	if env.BackendURL != "" {
		cfg.BackendURL = env.BackendURL
	}
	if env.Network != "" {
		cfg.Network = env.Network
	}
	if env.Logger != nil {
		cfg.Logger = *env.Logger
	}
	return cfg, nil
}

// NetworkValue parses the configured network
func (c Config) NetworkValue() (gateway.Network, error) {
	return gateway.ParseNetwork(c.Network)
}
