package cmd

import (
	"github.com/grovetools/mygit/command"
	"github.com/grovetools/mygit/config"
	"github.com/grovetools/mygit/git"
	"github.com/grovetools/mygit/github"
	"github.com/grovetools/mygit/script"
)

// loadConfig reads the configuration from MYGIT_CONFIG or the default
// location. Commands that touch repositories call this once at startup.
func loadConfig() (*config.Config, error) {
	return config.LoadDefault()
}

func newSyncer(cfg *config.Config) *git.Syncer {
	return git.NewSyncer(cfg, command.NewRunner())
}

func newGuard(cfg *config.Config) *script.Guard {
	return script.NewGuard(newSyncer(cfg), &command.RealExecutor{}, script.NewTerminalConfirmer())
}

func newGitHubClient(cfg *config.Config) *github.Client {
	return github.NewClient(cfg.GitHubToken)
}
