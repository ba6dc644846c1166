package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (code int, out string, err error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd(&code)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return code, buf.String(), err
}

func TestVersionFlag(t *testing.T) {
	_, out, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "anime-librarian")
	assert.Contains(t, out, version)
}

func TestInvalidFormatFlag(t *testing.T) {
	t.Setenv("ANIMELIBRARIAN_SOURCE_PATH", t.TempDir())
	t.Setenv("ANIMELIBRARIAN_TARGET_PATH", t.TempDir())

	_, _, err := runCommand(t, "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestMissingSourcePath(t *testing.T) {
	t.Setenv("ANIMELIBRARIAN_SOURCE_PATH", "")
	t.Setenv("ANIMELIBRARIAN_TARGET_PATH", "")

	_, _, err := runCommand(t, "--target", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source path not set")
}

func TestEmptySourceDirectoryIsANoOp(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()

	code, out, err := runCommand(t, "--source", source, "--target", target)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.True(t, strings.Contains(out, "No media files found"), "output: %q", out)
}
