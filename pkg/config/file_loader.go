package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"hyprdrop/pkg/core"
	"hyprdrop/pkg/logger"
)

// fileConfig is the on-disk shape shared by the YAML and TOML decoders.
type fileConfig struct {
	SpecialWorkspace string  `yaml:"special_workspace" toml:"special_workspace"`
	LedgerPath       string  `yaml:"ledger_path" toml:"ledger_path"`
	DispatchStrategy string  `yaml:"dispatch_strategy" toml:"dispatch_strategy"`
	FocusAfterShow   bool    `yaml:"focus_after_show" toml:"focus_after_show"`
	NotifyCommand    string  `yaml:"notify_command" toml:"notify_command"`
	DiscoveryDelayMs *int    `yaml:"discovery_delay_ms" toml:"discovery_delay_ms"`
	LogFile          *string `yaml:"log_file" toml:"log_file"`
}

// LoadFromFile loads the configuration from a YAML or TOML file, chosen by extension.
func (c *Config) LoadFromFile(path string, log core.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	var temp fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &temp); err != nil {
			log.Error("Failed to parse config TOML", err)
			return fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &temp); err != nil {
			log.Error("Failed to parse config YAML", err)
			return fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	log.Debug("Config parsed successfully")

	c.log = log
	c.path = path
	c.specialWorkspace = strings.TrimPrefix(temp.SpecialWorkspace, "special:")
	c.focusAfterShow = temp.FocusAfterShow
	c.notifyCommand = temp.NotifyCommand
	c.dispatchStrategy = temp.DispatchStrategy

	c.discoveryDelayMs = DefaultDiscoveryDelayMs
	if temp.DiscoveryDelayMs != nil {
		c.discoveryDelayMs = *temp.DiscoveryDelayMs
	}

	if temp.LedgerPath != "" {
		if c.ledgerPath, err = logger.ExpandHome(temp.LedgerPath); err != nil {
			return err
		}
	}

	if temp.LogFile != nil {
		c.logFile = *temp.LogFile
	} else if c.logFile, err = logger.DefaultLogPath(); err != nil {
		return err
	}

	if err := c.applyDefaults(); err != nil {
		return err
	}
	return c.Validate()
}

// loadConfigFromPath loads the configuration from a file.
func loadConfigFromPath(path string, log core.Logger) (*Config, error) {
	config := &Config{log: log}
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate performs basic sanity checks.
func (c *Config) Validate() error {
	if c.specialWorkspace == "" {
		return fmt.Errorf("special_workspace cannot be empty")
	}
	if strings.ContainsAny(c.specialWorkspace, " \t\n,") {
		return fmt.Errorf("special_workspace %q cannot contain whitespace or commas", c.specialWorkspace)
	}
	switch c.dispatchStrategy {
	case StrategySocket, StrategyHyprctl:
	default:
		return fmt.Errorf("unknown dispatch_strategy %q", c.dispatchStrategy)
	}
	if c.discoveryDelayMs < 0 {
		return fmt.Errorf("discovery_delay_ms cannot be negative")
	}
	return nil
}

// marshalYAML renders c in the on-disk format.
func (c *Config) marshalYAML() ([]byte, error) {
	delay := c.discoveryDelayMs
	logFile := c.logFile
	return yaml.Marshal(fileConfig{
		SpecialWorkspace: c.specialWorkspace,
		LedgerPath:       c.ledgerPath,
		DispatchStrategy: c.dispatchStrategy,
		FocusAfterShow:   c.focusAfterShow,
		NotifyCommand:    c.notifyCommand,
		DiscoveryDelayMs: &delay,
		LogFile:          &logFile,
	})
}
