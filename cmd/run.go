package cmd

import (
	"context"
	"os"

	"github.com/grovetools/mygit/config"
	"github.com/grovetools/mygit/git"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "run <owner/repo> <script-path> [args...]",
		Short: "Run a script from a repository, cloning it first if needed",
		Long: `Run a script that lives inside one of your repositories. The script path is
relative to the repository root and may not escape it. You are asked to
confirm before anything executes; pass --yes to skip the prompt.

The script's own exit code becomes mygit's exit code.`,
		Example: `  mygit run acme/widgets scripts/deploy.sh
  mygit run acme/widgets scripts/deploy.sh --yes -- --env staging`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := git.ParseRef(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return doRun(cmd.Context(), cfg, ref, args[1], args[2:], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	// Everything after the script path belongs to the script, including flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func doRun(ctx context.Context, cfg *config.Config, ref git.RepoRef, scriptPath string, scriptArgs []string, yes bool) error {
	code, err := newGuard(cfg).Run(ctx, ref, scriptPath, scriptArgs, yes)
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}
