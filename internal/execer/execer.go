// Package execer hands the process over to the child command once the
// wait has finished.
package execer

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrEmptyCommand is returned when Resolve is called without a command.
var ErrEmptyCommand = errors.New("empty child command")

// Resolve locates the child command's binary on PATH. It runs as a
// preflight before any polling starts, so a command that can never be
// executed fails fast instead of after a long wait.
func Resolve(argv []string) (string, error) {
	if len(argv) == 0 {
		return "", ErrEmptyCommand
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return "", fmt.Errorf("cannot resolve child command %q: %w", argv[0], err)
	}
	return path, nil
}
