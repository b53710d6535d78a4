package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsName      = "org.freedesktop.Notifications"
	notificationsPath      = "/org/freedesktop/Notifications"
	notificationsInterface = "org.freedesktop.Notifications.Notify"

	expireTimeoutMs = 5000
)

// urgency levels from the desktop notifications specification
const (
	urgencyNormal   byte = 1
	urgencyCritical byte = 2
)

// trySessionBus talks to the notification daemon directly, without spawning a helper binary.
func (n *NotifyService) trySessionBus(title string, message string, nType NotificationType) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}

	urgency := urgencyNormal
	if nType == Error {
		urgency = urgencyCritical
	}

	obj := conn.Object(notificationsName, dbus.ObjectPath(notificationsPath))
	call := obj.Call(notificationsInterface, 0,
		appName,
		uint32(0),
		"",
		headline(title, nType),
		message,
		[]string{},
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(urgency)},
		int32(expireTimeoutMs),
	)
	if call.Err != nil {
		return fmt.Errorf("notify over dbus: %w", call.Err)
	}

	n.log.Debug("Notification sent successfully", "tool", "dbus", "type", nType.String())
	return nil
}
