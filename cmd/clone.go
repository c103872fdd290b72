package cmd

import (
	"context"
	"fmt"

	"github.com/grovetools/mygit/config"
	"github.com/grovetools/mygit/git"
	"github.com/grovetools/mygit/tui/theme"
	"github.com/spf13/cobra"
)

// NewCloneCmd creates the clone command.
func NewCloneCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clone <owner/repo>",
		Short: "Clone a repository into the clone directory",
		Long: `Clone a repository from GitHub using the configured credentials.

If the repository is already cloned, nothing happens; pass --force to remove
the local copy and clone it again from scratch.`,
		Example: `  mygit clone acme/widgets
  mygit clone acme/widgets --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := git.ParseRef(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return doClone(cmd.Context(), cfg, ref, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove any existing local copy before cloning")

	return cmd
}

func doClone(ctx context.Context, cfg *config.Config, ref git.RepoRef, force bool) error {
	t := theme.DefaultTheme

	result, err := newSyncer(cfg).EnsureCloned(ctx, ref, force)
	if err != nil {
		return err
	}

	if result.AlreadyPresent {
		fmt.Printf("Repository already exists at %s\n", t.Path.Render(result.Directory))
		fmt.Println("Use --force to re-clone, or 'mygit pull' to update it.")
		return nil
	}

	fmt.Printf("%s Cloned %s to %s\n", t.Success.Render("✓"), ref.String(), t.Path.Render(result.Directory))
	return nil
}
