package cli

import (
	"github.com/grovetools/mygit/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewStandardCommand creates a new command with the standard mygit flags.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		GetLogger(cmd)
	}

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger creates a logger based on command flags. The flags apply to every
// component logger, not just the returned one.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logging.SetLevel(logrus.DebugLevel)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		logging.SetFormatter(&logrus.JSONFormatter{})
	}

	return logging.NewLogger("cli")
}
