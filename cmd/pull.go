package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovetools/mygit/config"
	"github.com/grovetools/mygit/git"
	"github.com/grovetools/mygit/tui/theme"
	"github.com/spf13/cobra"
)

// NewPullCmd creates the pull command.
func NewPullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pull <owner/repo>",
		Short:   "Pull the latest changes for a cloned repository",
		Example: "  mygit pull acme/widgets",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := git.ParseRef(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return doPull(cmd.Context(), cfg, ref)
		},
	}

	return cmd
}

func doPull(ctx context.Context, cfg *config.Config, ref git.RepoRef) error {
	t := theme.DefaultTheme

	output, err := newSyncer(cfg).Pull(ctx, ref)
	if err != nil {
		return err
	}

	if out := strings.TrimSpace(output); out != "" {
		fmt.Println(out)
	}
	fmt.Printf("%s Updated %s\n", t.Success.Render("✓"), ref.String())
	return nil
}
