//go:build !windows

package execer

import (
	"golang.org/x/sys/unix"
)

// Handoff replaces the current process image with the child command. On
// success it does not return; stdin, stdout and stderr carry over
// unchanged, as does the argument vector.
func Handoff(path string, argv []string, env []string) error {
	return unix.Exec(path, argv, env)
}
