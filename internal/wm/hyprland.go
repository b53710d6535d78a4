package wm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"hyprdrop/pkg/core"
)

// Hyprland wraps hyprctl shell-outs.
type Hyprland struct {
	Binary string
	log    core.Logger
}

var _ Port = (*Hyprland)(nil)

func NewHyprland(log core.Logger) (*Hyprland, error) {
	// Check if hyprctl is available
	path, err := exec.LookPath("hyprctl")
	if err != nil {
		log.Error("hyprctl not found in PATH", err)
		return nil, fmt.Errorf("hyprctl not found in PATH: %w", err)
	}
	log.Debug("Found hyprctl", "path", path)

	return &Hyprland{Binary: path, log: log}, nil
}

func (h *Hyprland) Name() string {
	return "hyprctl"
}

func (h *Hyprland) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, h.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("hyprctl %s: %v: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.Bytes(), nil
}

func (h *Hyprland) Clients(ctx context.Context) ([]Client, error) {
	output, err := h.run(ctx, "-j", "clients")
	if err != nil {
		return nil, err
	}
	return decodeClients(output)
}

func (h *Hyprland) ActiveWorkspace(ctx context.Context) (Workspace, error) {
	output, err := h.run(ctx, "-j", "activeworkspace")
	if err != nil {
		return Workspace{}, err
	}
	return decodeWorkspace(output)
}

// Dispatch invokes `hyprctl dispatch`.
func (h *Hyprland) Dispatch(ctx context.Context, args ...string) error {
	output, err := h.run(ctx, append([]string{"dispatch"}, args...)...)
	if err != nil {
		return err
	}
	return checkReply(args, output)
}
