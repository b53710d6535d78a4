package wm

import (
	"fmt"
	"os"

	"hyprdrop/pkg/config"
	"hyprdrop/pkg/core"
)

// NewPort picks the compositor transport for the requested strategy. The socket
// strategy falls back to hyprctl when the socket cannot be resolved.
func NewPort(strategy string, log core.Logger) (Port, error) {
	if os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") == "" {
		return nil, fmt.Errorf("unsupported compositor: HYPRLAND_INSTANCE_SIGNATURE not set, only Hyprland is supported")
	}

	switch strategy {
	case config.StrategySocket:
		sock, err := NewSocket()
		if err == nil {
			_, err = os.Stat(sock.Path())
		}
		if err == nil {
			log.Debug("Using socket dispatch", "path", sock.Path())
			return sock, nil
		}
		log.Warn("Falling back to hyprctl dispatch", "error", err.Error())
		return NewHyprland(log)
	case config.StrategyHyprctl:
		return NewHyprland(log)
	default:
		return nil, fmt.Errorf("unknown dispatch strategy %q", strategy)
	}
}
