package config

import (
	"time"

	"hyprdrop/pkg/core"
)

// Dispatch strategies understood by the compositor port.
const (
	StrategySocket  = "socket"
	StrategyHyprctl = "hyprctl"
)

// Config holds the application configuration.
type Config struct {
	// Configurable via YAML or TOML file (private fields to enforce immutability)
	specialWorkspace string
	ledgerPath       string
	dispatchStrategy string
	focusAfterShow   bool
	notifyCommand    string
	discoveryDelayMs int
	logFile          string

	// Internal fields
	log  core.Logger
	path string
}

// New creates a new Config instance with the provided logger.
func New(log core.Logger) *Config {
	return &Config{
		log: log,
	}
}

// GetSpecialWorkspace returns the name of the hidden workspace, without the "special:" prefix.
func (c *Config) GetSpecialWorkspace() string {
	return c.specialWorkspace
}

// GetLedgerPath returns the path of the address ledger file.
func (c *Config) GetLedgerPath() string {
	return c.ledgerPath
}

// GetDispatchStrategy returns how dispatches reach the compositor.
func (c *Config) GetDispatchStrategy() string {
	return c.dispatchStrategy
}

// FocusAfterShow reports whether a focuswindow step precedes bringactivetotop.
func (c *Config) FocusAfterShow() bool {
	return c.focusAfterShow
}

// GetNotifyCommand returns the notify command.
func (c *Config) GetNotifyCommand() string {
	return c.notifyCommand
}

// GetDiscoveryDelay returns how long to wait before looking for a freshly launched window.
func (c *Config) GetDiscoveryDelay() time.Duration {
	return time.Duration(c.discoveryDelayMs) * time.Millisecond
}

// GetLogFile returns the log file path. Empty means file logging is disabled.
func (c *Config) GetLogFile() string {
	return c.logFile
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}
