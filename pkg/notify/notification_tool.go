package notify

import (
	"fmt"
	"os/exec"
	"strconv"
)

// appName groups hyprdrop's notifications in the notification daemon.
const appName = "hyprdrop"

// headline is the summary line shown for a notification.
func headline(title string, nType NotificationType) string {
	if nType == Error {
		return title + ": toggle failed"
	}
	return title
}

// notifyHelper is a notification binary and the arguments it needs.
type notifyHelper struct {
	name string
	args func(summary, body string, urgency string) []string
}

// Failures of consecutive toggles replace each other instead of stacking up.
var notifyHelpers = []notifyHelper{
	{
		name: "dunstify",
		args: func(summary, body, urgency string) []string {
			return []string{
				"-a", appName,
				"-u", urgency,
				"-t", strconv.Itoa(expireTimeoutMs),
				"-h", "string:x-dunst-stack-tag:" + appName,
				summary, body,
			}
		},
	},
	{
		name: "notify-send",
		args: func(summary, body, urgency string) []string {
			return []string{
				"-a", appName,
				"-u", urgency,
				"-t", strconv.Itoa(expireTimeoutMs),
				"-h", "string:x-canonical-private-synchronous:" + appName,
				summary, body,
			}
		},
	},
}

func urgencyName(nType NotificationType) string {
	if nType == Error {
		return "critical"
	}
	return "normal"
}

func (n *NotifyService) trySystemNotification(title string, message string, nType NotificationType) error {
	summary := headline(title, nType)
	for _, helper := range notifyHelpers {
		path, err := exec.LookPath(helper.name)
		if err != nil {
			continue
		}
		if err := exec.Command(path, helper.args(summary, message, urgencyName(nType))...).Run(); err != nil {
			n.log.Debug("Notification helper failed", "tool", helper.name, "error", err.Error())
			continue
		}
		n.log.Debug("Notification sent successfully", "tool", helper.name, "type", nType.String())
		return nil
	}
	return fmt.Errorf("no notification helper available")
}
