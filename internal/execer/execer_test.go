package execer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "fake-tool")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", dir)

	path, err := Resolve([]string{"fake-tool", "--flag", "arg"})
	require.NoError(t, err)
	assert.Equal(t, bin, path)
}

func TestResolveMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Resolve([]string{"no-such-binary-anywhere"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-binary-anywhere")
}

func TestResolveEmptyCommand(t *testing.T) {
	_, err := Resolve(nil)
	assert.ErrorIs(t, err, ErrEmptyCommand)
}
