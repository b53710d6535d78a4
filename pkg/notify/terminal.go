package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var stderr io.Writer = os.Stderr

func (n *NotifyService) printToTerminal(title string, message string, nType NotificationType) error {
	if !isRunningInTerminal() {
		return fmt.Errorf("stderr is not a terminal")
	}

	var colorCode string
	var prefix string

	switch nType {
	case Error:
		colorCode = "\x1b[31m" // Red
		prefix = fmt.Sprintf("%s - Error", title)
	case Info:
		colorCode = "\x1b[32m" // Green
		prefix = fmt.Sprintf("%s - Info", title)
	}

	fmt.Fprintf(stderr, "%s%s: %s\x1b[0m\n", colorCode, prefix, message)
	return nil
}

func isRunningInTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
