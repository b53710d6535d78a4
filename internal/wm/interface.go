package wm

import (
	"context"
	"strings"
)

// SpecialPrefix marks special workspaces in workspace names and dispatch targets.
const SpecialPrefix = "special:"

// Port is the boundary to the compositor: snapshot queries plus dispatches.
type Port interface {
	// Clients lists every mapped window, in the compositor's order.
	Clients(ctx context.Context) ([]Client, error)
	// ActiveWorkspace returns the focused workspace.
	ActiveWorkspace(ctx context.Context) (Workspace, error)
	// Dispatch runs a single dispatcher, e.g. Dispatch(ctx, "movetoworkspace", "5,class:^foo$").
	Dispatch(ctx context.Context, args ...string) error
	// Name returns the transport name for logging/display
	Name() string
}

// Client is a snapshot of one window.
type Client struct {
	Address      string
	Class        string
	Title        string
	InitialTitle string
	Workspace    Workspace
}

// Workspace identifies a workspace by id and name.
type Workspace struct {
	ID   int
	Name string
}

// IsSpecial reports whether ws is the special workspace called name.
func (ws Workspace) IsSpecial(name string) bool {
	return strings.TrimPrefix(ws.Name, SpecialPrefix) == name
}

// FindByAddress returns the client with the given address.
func FindByAddress(clients []Client, address string) (Client, bool) {
	if address == "" {
		return Client{}, false
	}
	for _, c := range clients {
		if c.Address == address {
			return c, true
		}
	}
	return Client{}, false
}
