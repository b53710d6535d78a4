package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyprdrop/pkg/config"
	"hyprdrop/pkg/logger"
)

func TestNewPortRequiresHyprland(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")
	_, err := NewPort(config.StrategySocket, logger.NewNop())
	assert.Error(t, err)
}

func TestNewPortPrefersSocket(t *testing.T) {
	sock, _ := fakeHyprland(t, nil)

	port, err := NewPort(config.StrategySocket, logger.NewNop())
	require.NoError(t, err)
	require.Equal(t, "socket", port.Name())
	assert.Equal(t, sock.Path(), port.(*Socket).Path())
}

func TestNewPortUnknownStrategy(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "instance")
	_, err := NewPort("carrier-pigeon", logger.NewNop())
	assert.Error(t, err)
}
