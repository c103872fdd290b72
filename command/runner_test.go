package command

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesOutput(t *testing.T) {
	runner := NewRunner()

	result, err := runner.Run(context.Background(), "", "sh", "-c", "echo out; echo err 1>&2")
	require.NoError(t, err)
	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
	assert.Equal(t, 0, result.ExitCode)
	assert.True(t, result.Success())
}

func TestRunNonZeroExit(t *testing.T) {
	runner := NewRunner()

	result, err := runner.Run(context.Background(), "", "sh", "-c", "echo diagnostics 1>&2; exit 42")
	require.NoError(t, err, "non-zero exit is a result, not a launch error")
	assert.Equal(t, 42, result.ExitCode)
	assert.Equal(t, "diagnostics\n", result.Stderr)
	assert.False(t, result.Success())
}

func TestRunRespectsWorkingDirectory(t *testing.T) {
	runner := NewRunner()
	dir := t.TempDir()

	result, err := runner.Run(context.Background(), dir, "pwd")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", result.Stdout)
}

func TestRunLaunchFailure(t *testing.T) {
	runner := NewRunner()

	_, err := runner.Run(context.Background(), "", "mygit-no-such-binary-xyz")
	assert.Error(t, err)
}
