// Package testutil provides shared helpers for tests that need real git
// repositories or configuration files on disk.
package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/grovetools/mygit/config"
	"gopkg.in/yaml.v3"
)

// RequireGit skips the test if the git executable is not on PATH.
func RequireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// InitGitRepo initializes a git repository with one commit in the given
// directory.
func InitGitRepo(t *testing.T, dir string) {
	t.Helper()

	RunGit(t, dir, "init")
	RunGit(t, dir, "config", "user.name", "Test User")
	RunGit(t, dir, "config", "user.email", "test@example.com")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# Test Project\n"), 0600); err != nil {
		t.Fatalf("Failed to create README: %v", err)
	}

	RunGit(t, dir, "add", ".")
	RunGit(t, dir, "commit", "-m", "Initial commit")
}

// RunGit runs a git command in dir and fails the test on error.
func RunGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// WriteConfig writes a mygit configuration file and returns its path.
func WriteConfig(t *testing.T, dir string, cfg *config.Config) string {
	t.Helper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// RandomString generates a random hex string of the given length.
func RandomString(length int) string {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)[:length]
}
