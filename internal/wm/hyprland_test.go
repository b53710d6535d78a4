package wm

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyprdrop/pkg/logger"
)

// fakeHyprctl writes a shell script standing in for hyprctl. Every invocation
// appends its arguments to the returned log file.
func fakeHyprctl(t *testing.T) (*Hyprland, string) {
	t.Helper()
	dir := t.TempDir()
	argLog := filepath.Join(dir, "args")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.json"), []byte(clientsJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "active.json"), []byte(activeWorkspaceJSON), 0o644))

	script := `#!/bin/sh
echo "$*" >> "` + argLog + `"
case "$*" in
  "-j clients") cat "` + dir + `/clients.json" ;;
  "-j activeworkspace") cat "` + dir + `/active.json" ;;
  "dispatch bringactivetotop") echo "Invalid dispatcher" ;;
  dispatch*) echo ok ;;
  *) echo "unknown request" >&2; exit 3 ;;
esac
`
	bin := filepath.Join(dir, "hyprctl")
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	return &Hyprland{Binary: bin, log: logger.NewNop()}, argLog
}

func TestHyprctlTransport(t *testing.T) {
	h, argLog := fakeHyprctl(t)
	ctx := context.Background()

	clients, err := h.Clients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "dropdown", clients[1].InitialTitle)

	ws, err := h.ActiveWorkspace(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, ws.ID)

	require.NoError(t, h.Dispatch(ctx, "exec", "[workspace special:hyprdrop silent] kitty --class=term"))
	err = h.Dispatch(ctx, "bringactivetotop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid dispatcher")

	data, err := os.ReadFile(argLog)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		"-j clients",
		"-j activeworkspace",
		"dispatch exec [workspace special:hyprdrop silent] kitty --class=term",
		"dispatch bringactivetotop",
	}, lines)
}

func TestHyprctlFailureIncludesStderr(t *testing.T) {
	h, _ := fakeHyprctl(t)
	_, err := h.run(context.Background(), "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown request")
}
