package wm

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
)

// Socket talks to the Hyprland command socket directly.
type Socket struct {
	path string
}

var _ Port = (*Socket)(nil)

// NewSocket resolves the command socket of the running Hyprland instance.
func NewSocket() (*Socket, error) {
	path, err := commandSocketPath()
	if err != nil {
		return nil, err
	}
	return &Socket{path: path}, nil
}

func (s *Socket) Name() string {
	return "socket"
}

// Path returns the socket path in use.
func (s *Socket) Path() string {
	return s.path
}

// request writes one command and reads the whole reply; Hyprland closes the
// connection after answering.
func (s *Socket) request(ctx context.Context, command string) ([]byte, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", s.path)
	if err != nil {
		return nil, fmt.Errorf("connect command socket: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}
	if _, err := conn.Write([]byte(command)); err != nil {
		return nil, fmt.Errorf("write %q: %w", command, err)
	}
	reply, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("read reply to %q: %w", command, err)
	}
	return reply, nil
}

func (s *Socket) Clients(ctx context.Context) ([]Client, error) {
	reply, err := s.request(ctx, "j/clients")
	if err != nil {
		return nil, err
	}
	return decodeClients(reply)
}

func (s *Socket) ActiveWorkspace(ctx context.Context) (Workspace, error) {
	reply, err := s.request(ctx, "j/activeworkspace")
	if err != nil {
		return Workspace{}, err
	}
	return decodeWorkspace(reply)
}

func (s *Socket) Dispatch(ctx context.Context, args ...string) error {
	if len(args) == 0 {
		return nil
	}
	reply, err := s.request(ctx, "dispatch "+strings.Join(args, " "))
	if err != nil {
		return err
	}
	return checkReply(args, reply)
}

func commandSocketPath() (string, error) {
	sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if sig == "" {
		return "", fmt.Errorf("HYPRLAND_INSTANCE_SIGNATURE not set")
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return "", fmt.Errorf("XDG_RUNTIME_DIR not set")
	}
	return filepath.Join(runtimeDir, "hypr", sig, ".socket.sock"), nil
}
