package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config represents the application configuration
type Config struct {
	AceHigh      bool   `toml:"ace_high" env:"CRIBBAGE_ACE_HIGH"`
	WinningScore int    `toml:"winning_score" env:"CRIBBAGE_WINNING_SCORE"`
	Seed         int64  `toml:"seed" env:"CRIBBAGE_SEED"`
	DefaultDeck  string `toml:"default_deck" env:"CRIBBAGE_DEFAULT_DECK"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		WinningScore: 121,
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cribbage", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cribbage", "config.toml")
}

// LoadConfig loads the config file, creating it on first use, then applies
// CRIBBAGE_* environment overrides.
func LoadConfig() (*Config, error) {
	config, err := loadFile()
	if err != nil {
		return nil, err
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if config.WinningScore <= 0 {
		config.WinningScore = Default().WinningScore
	}

	return config, nil
}

func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// GetDeckPath returns the path to a deck, either in the deck library or a relative path
func GetDeckPath(deckName string) (string, error) {
	// First, try to find the deck in the deck library
	deckPath := filepath.Join(GetDeckLibraryPath(), deckName)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// GetDefaultDeck returns the default deck name from config
func GetDefaultDeck() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config file
func SetDefaultDeck(deckName string) error {
	config, err := loadFile()
	if err != nil {
		return err
	}

	config.DefaultDeck = deckName
	return writeConfig(config)
}
