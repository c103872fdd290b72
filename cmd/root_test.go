package cmd

import (
	"testing"

	"github.com/grovetools/mygit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	rootCmd := NewRootCmd()

	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"clone", "pull", "run", "list", "config", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestCloneCmd_RejectsMalformedReference(t *testing.T) {
	tests := []string{
		"no-slash",
		"too/many/parts",
		"/leading",
		"trailing/",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			rootCmd := NewRootCmd()
			rootCmd.SetArgs([]string{"clone", input})

			err := rootCmd.Execute()
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidRepoFormat, errors.GetCode(err))
		})
	}
}

func TestRunCmd_RequiresRepoAndScript(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"run", "acme/widgets"})

	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
}
