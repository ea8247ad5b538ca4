// Package share hands the grouped text report to the outside world: an
// OS-level share command when one is configured, otherwise the system
// clipboard. Failures are reported to the caller and never touch the
// store.
package share

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Cassandrat897/keepy-app/internal/logger"
)

// Sharer sends a text report somewhere useful.
type Sharer struct {
	// Command is an optional external share handler (e.g. termux-share).
	// It receives the report on stdin.
	Command string
}

// Share sends the report through the configured command, falling back to
// the clipboard. The returned string says where the report went.
func (s Sharer) Share(text string) (string, error) {
	if s.Command != "" {
		if err := runCommand(s.Command, text); err == nil {
			return "shared via " + s.Command, nil
		} else {
			logger.Warn("Share command failed, falling back to clipboard",
				logger.F("command", s.Command), logger.F("error", err))
		}
	}

	if err := clipboard.WriteAll(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return "copied to clipboard", nil
}

func runCommand(command, stdin string) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return fmt.Errorf("empty share command")
	}
	if _, err := exec.LookPath(parts[0]); err != nil {
		return err
	}
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Run()
}
