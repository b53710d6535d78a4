package config

import (
	"fmt"
	"os"
	"path/filepath"

	"hyprdrop/pkg/core"
	"hyprdrop/pkg/logger"
)

const (
	DefaultSpecialWorkspace = "hyprdrop"
	DefaultDiscoveryDelayMs = 500
	defaultLedgerFile       = "addresses"
)

// DefaultConfig creates a default configuration.
func DefaultConfig(log core.Logger) (*Config, error) {
	log.Debug("Creating default configuration")

	ledgerPath, err := defaultLedgerPath()
	if err != nil {
		log.Error("Failed to resolve default ledger path", err)
		return nil, err
	}

	logPath, err := logger.DefaultLogPath()
	if err != nil {
		log.Error("Failed to resolve default log path", err)
		return nil, err
	}

	config := &Config{
		specialWorkspace: DefaultSpecialWorkspace,
		ledgerPath:       ledgerPath,
		dispatchStrategy: StrategySocket,
		focusAfterShow:   false,
		notifyCommand:    "",
		discoveryDelayMs: DefaultDiscoveryDelayMs,
		logFile:          logPath,
		log:              log,
	}

	log.Debug("Created default configuration",
		"special_workspace", config.specialWorkspace,
		"ledger_path", config.ledgerPath,
		"dispatch_strategy", config.dispatchStrategy)

	return config, nil
}

// defaultLedgerPath resolves $XDG_STATE_HOME/hyprdrop/addresses, falling back to
// ~/.local/state/hyprdrop/addresses.
func defaultLedgerPath() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "hyprdrop", defaultLedgerFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "hyprdrop", defaultLedgerFile), nil
}

// applyDefaults fills the settings a partial file left unset.
func (c *Config) applyDefaults() error {
	defaults, err := DefaultConfig(c.log)
	if err != nil {
		return err
	}
	if c.specialWorkspace == "" {
		c.specialWorkspace = defaults.specialWorkspace
	}
	if c.ledgerPath == "" {
		c.ledgerPath = defaults.ledgerPath
	}
	if c.dispatchStrategy == "" {
		c.dispatchStrategy = defaults.dispatchStrategy
	}
	return nil
}
