package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Run executes a command from ProjectRoot under a section header, streaming its output to Out.
func Run(label, name string, args ...string) error {
	PrintH2Header(label)

	cmd := exec.Command(name, args...)
	cmd.Dir = ProjectRoot
	cmd.Stdout = Out
	cmd.Stderr = Out
	if err := cmd.Run(); err != nil {
		PrintError(label + " failed")
		return fmt.Errorf("%s: %w", label, err)
	}

	PrintSuccess(label + " passed")
	return nil
}

// RunOptional is Run for tools that may not be installed. A missing tool prints
// an install hint and is not an error.
func RunOptional(label, installHint, name string, args ...string) error {
	err := Run(label, name, args...)
	if IsCommandNotFound(err) {
		PrintWarning(fmt.Sprintf("%s not found (install: %s)", name, installHint))
		return nil
	}
	return err
}

// IsCommandNotFound reports whether err means the executable could not be located.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") || strings.Contains(msg, "no such file or directory")
}
