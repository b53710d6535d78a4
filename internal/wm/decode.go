package wm

import (
	"encoding/json"
	"fmt"
	"strings"
)

type rawWorkspace struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type rawClient struct {
	Address      string       `json:"address"`
	Mapped       *bool        `json:"mapped"`
	Class        string       `json:"class"`
	Title        string       `json:"title"`
	InitialTitle string       `json:"initialTitle"`
	Workspace    rawWorkspace `json:"workspace"`
}

func decodeClients(data []byte) ([]Client, error) {
	var raw []rawClient
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	clients := make([]Client, 0, len(raw))
	for _, c := range raw {
		if c.Mapped != nil && !*c.Mapped {
			continue
		}
		clients = append(clients, Client{
			Address:      c.Address,
			Class:        c.Class,
			Title:        c.Title,
			InitialTitle: c.InitialTitle,
			Workspace:    Workspace{ID: c.Workspace.ID, Name: c.Workspace.Name},
		})
	}
	return clients, nil
}

func decodeWorkspace(data []byte) (Workspace, error) {
	var raw rawWorkspace
	if err := json.Unmarshal(data, &raw); err != nil {
		return Workspace{}, fmt.Errorf("decode activeworkspace: %w", err)
	}
	return Workspace{ID: raw.ID, Name: raw.Name}, nil
}

// checkReply turns a dispatch reply into an error unless it is "ok".
func checkReply(args []string, reply []byte) error {
	text := strings.TrimSpace(string(reply))
	if text == "ok" {
		return nil
	}
	if text == "" {
		text = "empty reply"
	}
	return fmt.Errorf("dispatch %s: %s", strings.Join(args, " "), text)
}
