package config

import (
	"fmt"
	"os"
	"path/filepath"

	"hyprdrop/pkg/core"
)

// initializeConfig creates or loads the configuration.
func initializeConfig(providedPath string, defaultPath string, log core.Logger) (*Config, error) {
	// Try provided path first if specified
	if providedPath != "" {
		config, err := loadConfigFromPath(providedPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
		return config, nil
	}

	if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
		config, err := DefaultConfig(log)
		if err != nil {
			return nil, err
		}

		data, err := config.marshalYAML()
		if err != nil {
			return nil, err
		}

		// The defaults are usable even when the file cannot be written.
		if err := os.MkdirAll(filepath.Dir(defaultPath), 0755); err != nil {
			log.Warn("Failed to create config directory", "path", filepath.Dir(defaultPath), "error", err.Error())
			return config, nil
		}
		if err := os.WriteFile(defaultPath, data, 0644); err != nil {
			log.Warn("Failed to write default config", "path", defaultPath, "error", err.Error())
			return config, nil
		}
		log.Info("Wrote default configuration", "path", defaultPath)
		config.path = defaultPath
		return config, nil
	}

	config, err := loadConfigFromPath(defaultPath, log)
	if err != nil {
		log.Error("Invalid configuration, using defaults", err, "path", defaultPath)
		return DefaultConfig(log)
	}
	return config, nil
}

// FindConfig locates and initializes the configuration.
func FindConfig(providedPath string, log core.Logger) (*Config, error) {
	log.Debug("Looking for configuration", "provided_path", providedPath)

	homeConfigDir, err := os.UserConfigDir()
	if err != nil {
		log.Error("Failed to get user config directory", err)
		return nil, err
	}

	defaultConfigPath := filepath.Join(homeConfigDir, "hyprdrop", "config.yaml")
	log.Debug("Configuration paths", "config_path", defaultConfigPath)

	return initializeConfig(providedPath, defaultConfigPath, log)
}
