// Package cmd wires the mygit subcommands to the underlying sync, guard, and
// remote-listing machinery.
package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/mygit/cli"
	"github.com/grovetools/mygit/git"
	"github.com/grovetools/mygit/tui/menu"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the mygit command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand("mygit", "Clone, update, and run scripts from your private GitHub repositories")
	rootCmd.Long = `mygit connects to your GitHub account using a personal access token and
manages local clones of your repositories under a single directory.

Run without arguments in a terminal to get an interactive menu.`

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
			return runMenu(cmd)
		}
		return cmd.Help()
	}

	rootCmd.AddCommand(
		NewCloneCmd(),
		NewPullCmd(),
		NewRunCmd(),
		NewListCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// runMenu shows the interactive menu and carries out whatever the user
// selected, using the same code paths as the explicit subcommands.
func runMenu(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m := menu.New(newGitHubClient(cfg))
	finalModel, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	final, ok := finalModel.(*menu.Model)
	if !ok {
		return nil
	}
	if final.Err != nil {
		return final.Err
	}

	sel := final.Selection
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch sel.Action {
	case menu.ActionClone:
		ref, err := git.ParseRef(sel.Repo)
		if err != nil {
			return err
		}
		return doClone(ctx, cfg, ref, false)

	case menu.ActionPull:
		ref, err := git.ParseRef(sel.Repo)
		if err != nil {
			return err
		}
		return doPull(ctx, cfg, ref)

	case menu.ActionRun:
		ref, err := git.ParseRef(sel.Repo)
		if err != nil {
			return err
		}
		return doRun(ctx, cfg, ref, sel.Script, nil, false)

	case menu.ActionList:
		return doList(cfg, os.Stdout)

	case menu.ActionConfig:
		fmt.Println(cfg.String())
		return nil
	}

	return nil
}
