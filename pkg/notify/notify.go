package notify

import (
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"hyprdrop/pkg/core"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

func (t NotificationType) String() string {
	if t == Info {
		return "INFO"
	}
	return "ERROR"
}

const defaultTitle = "Hyprdrop"

// sender delivers one notification or reports why it could not.
type sender func(title, message string, nType NotificationType) error

// NotifyService handles desktop notifications
type NotifyService struct {
	log           core.Logger
	notifyCommand string
	title         string

	// senders is the fallback chain tried in order after the custom command.
	senders []sender
}

// NewNotifyService creates a new notification service
func NewNotifyService(notifyCommand string, log core.Logger) *NotifyService {
	n := &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
		title:         defaultTitle,
	}
	n.senders = []sender{
		n.trySessionBus,
		n.trySystemNotification,
		n.printToTerminal,
	}
	return n
}

// Show displays a notification of the specified type
func (n *NotifyService) Show(message string, nType NotificationType) error {
	// First try configured notification command if available
	if n.notifyCommand != "" {
		err := n.executeNotifyCommand(message, nType)
		if err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand, "error", err.Error())
	}

	var lastErr error
	for _, send := range n.senders {
		if lastErr = send(n.title, message, nType); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("no notification backend delivered the message: %w", lastErr)
}

func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	n.log.Debug("Executing notify command", "notify_command", n.notifyCommand, "type", nType.String())
	line := n.notifyCommand + " " + shellquote.Join(nType.String(), message)
	return exec.Command("sh", "-c", line).Run()
}
