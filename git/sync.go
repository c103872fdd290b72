package git

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/grovetools/mygit/command"
	"github.com/grovetools/mygit/config"
	"github.com/grovetools/mygit/errors"
	"github.com/grovetools/mygit/logging"
	"github.com/sirupsen/logrus"
)

// Syncer reconciles local repository state against the remote by shelling
// out to the git executable. It holds no cached filesystem state: every
// operation re-probes the disk, so external mutation (a manual rm -rf, for
// example) is reflected on the next call.
type Syncer struct {
	cfg    *config.Config
	runner command.Runner
	log    *logrus.Entry
}

// NewSyncer creates a Syncer for the given configuration and process runner.
func NewSyncer(cfg *config.Config, runner command.Runner) *Syncer {
	return &Syncer{
		cfg:    cfg,
		runner: runner,
		log:    logging.NewLogger("sync"),
	}
}

// SyncResult reports the outcome of an EnsureCloned call.
type SyncResult struct {
	// Directory is the absolute local path of the repository.
	Directory string

	// AlreadyPresent is true when the repository existed and no network
	// operation was performed.
	AlreadyPresent bool
}

// LocalRepo describes one cloned repository found under the base directory.
type LocalRepo struct {
	Name      string
	Directory string
}

// DirFor maps a repository reference to its deterministic local directory,
// base/<name>. The owner is deliberately not part of the path; two owners
// sharing a repository name collide, and the first clone wins. This is a
// known limitation, not special-cased.
func (s *Syncer) DirFor(ref RepoRef) string {
	return filepath.Join(s.cfg.CloneDirectory, ref.Name)
}

// EnsureCloned makes sure the repository exists locally. With force=false an
// existing directory is returned untouched, with no network access. With
// force=true an existing directory is removed first; if removal fails the
// clone is not attempted. Diagnostic output from git is credential-redacted
// before it can surface in an error.
func (s *Syncer) EnsureCloned(ctx context.Context, ref RepoRef, force bool) (*SyncResult, error) {
	dir := s.DirFor(ref)

	if _, err := os.Stat(dir); err == nil {
		if !force {
			s.log.WithField("directory", dir).Debug("repository already present")
			return &SyncResult{Directory: dir, AlreadyPresent: true}, nil
		}

		s.log.WithField("directory", dir).Info("removing existing directory")
		if err := os.RemoveAll(dir); err != nil {
			return nil, errors.DirRemoveFailed(dir, err)
		}
	}

	if err := os.MkdirAll(s.cfg.CloneDirectory, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCloneFailed, "failed to create clone directory").
			WithDetail("path", s.cfg.CloneDirectory)
	}

	s.log.WithField("repository", ref.String()).Info("cloning repository")
	fetchURL := AuthCloneURL(ref, s.cfg.GitHubUsername, s.cfg.GitHubToken)

	result, err := s.runner.Run(ctx, "", "git", "clone", fetchURL, dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCloneFailed, "failed to execute git").
			WithDetail("repository", ref.String())
	}
	if !result.Success() {
		return nil, errors.CloneFailed(ref.String(), s.redact(result.Stderr))
	}

	// Defense in depth: the clone leaves the credential-embedded URL in
	// .git/config. Rewrite it to the display URL. The clone already
	// succeeded, so a rewrite failure is logged and tolerated.
	cleanURL := CloneURL(ref)
	if setResult, err := s.runner.Run(ctx, dir, "git", "remote", "set-url", "origin", cleanURL); err != nil || !setResult.Success() {
		s.log.WithField("repository", ref.String()).Warn("failed to rewrite remote url after clone")
	}

	return &SyncResult{Directory: dir}, nil
}

// Pull fetches the latest changes for an already-cloned repository. The
// remote URL was sanitized after clone, so no credentials are injected here;
// if the token has rotated, git's own authentication failure is surfaced,
// still passed through redaction as a safety net.
func (s *Syncer) Pull(ctx context.Context, ref RepoRef) (string, error) {
	dir := s.DirFor(ref)

	if _, err := os.Stat(dir); err != nil {
		return "", errors.RepoNotFound(ref.String(), dir)
	}

	s.log.WithField("repository", ref.String()).Info("pulling latest changes")

	result, err := s.runner.Run(ctx, dir, "git", "pull")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodePullFailed, "failed to execute git").
			WithDetail("repository", ref.String())
	}
	if !result.Success() {
		return "", errors.PullFailed(ref.String(), s.redact(result.Stderr))
	}

	return result.Stdout, nil
}

// ListLocal returns the repositories present under the base directory,
// sorted by name. A directory counts only if it contains git metadata.
// Entries that cannot be inspected are skipped rather than failing the scan.
func (s *Syncer) ListLocal() ([]LocalRepo, error) {
	entries, err := os.ReadDir(s.cfg.CloneDirectory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to read clone directory").
			WithDetail("path", s.cfg.CloneDirectory)
	}

	var repos []LocalRepo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(s.cfg.CloneDirectory, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
			continue
		}
		repos = append(repos, LocalRepo{Name: entry.Name(), Directory: dir})
	}

	sort.Slice(repos, func(i, j int) bool {
		return repos[i].Name < repos[j].Name
	})
	return repos, nil
}

// redact scrubs the configured token and account identifier from diagnostic text.
func (s *Syncer) redact(text string) string {
	return Redact(text, s.cfg.GitHubToken, s.cfg.GitHubUsername)
}
