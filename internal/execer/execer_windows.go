//go:build windows

package execer

import (
	"errors"
	"os"
	"os/exec"
)

// Handoff approximates process replacement, which Windows lacks: it spawns
// the child with inherited streams, waits for it, and exits with the
// child's code. Signal forwarding fidelity differs from a true replace.
func Handoff(path string, argv []string, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env

	err := cmd.Run()
	if err == nil {
		os.Exit(0)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	return err
}
