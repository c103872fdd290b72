package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/mygit/config"
	"github.com/grovetools/mygit/tui/theme"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories cloned into the clone directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return doList(cfg, os.Stdout)
		},
	}

	return cmd
}

func doList(cfg *config.Config, out io.Writer) error {
	t := theme.DefaultTheme

	repos, err := newSyncer(cfg).ListLocal()
	if err != nil {
		return err
	}

	if len(repos) == 0 {
		fmt.Fprintf(out, "No repositories cloned under %s\n", t.Path.Render(cfg.CloneDirectory))
		fmt.Fprintln(out, "Use 'mygit clone <owner/repo>' to clone one.")
		return nil
	}

	fmt.Fprintln(out, t.Title.Render("Cloned repositories"))
	for _, repo := range repos {
		fmt.Fprintf(out, "  %s  %s\n", repo.Name, t.Muted.Render(repo.Directory))
	}
	fmt.Fprintf(out, "\nTotal: %d repository(ies)\n", len(repos))
	return nil
}
