// Package script validates and executes a script that lives inside a cloned
// repository, guarding against path traversal outside the repository root.
package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/grovetools/mygit/command"
	"github.com/grovetools/mygit/errors"
	"github.com/grovetools/mygit/git"
	"github.com/grovetools/mygit/logging"
	"github.com/grovetools/mygit/util/pathutil"
	"github.com/sirupsen/logrus"
)

// interpreter is the explicit command used to run scripts. Invoking through
// an interpreter means the executable bit on the file is not load-bearing,
// which is why the chmod below may fail soft.
const interpreter = "bash"

// Guard resolves a requested in-repository script path, validates it against
// the repository root, asks for confirmation, and runs the script with the
// invoking user's privileges.
//
// The containment check canonicalizes paths once and compares string
// prefixes. A symlink created inside the repository after canonicalization
// can still point outside it; this is a known weakness, not a supported use.
type Guard struct {
	syncer   *git.Syncer
	executor command.Executor
	confirm  Confirmer
	out      io.Writer
	log      *logrus.Entry
}

// NewGuard creates a Guard. The executor runs the script itself (with the
// caller's terminal attached); the syncer is used to clone the repository if
// it is absent.
func NewGuard(syncer *git.Syncer, executor command.Executor, confirm Confirmer) *Guard {
	return &Guard{
		syncer:   syncer,
		executor: executor,
		confirm:  confirm,
		out:      os.Stdout,
		log:      logging.NewLogger("guard"),
	}
}

// WithOutput redirects the guard's informational output. Used in tests.
func (g *Guard) WithOutput(w io.Writer) *Guard {
	g.out = w
	return g
}

// Run executes scriptPath from the given repository, cloning it first if
// needed. Extra args are appended to the script invocation positionally.
// The returned exit code is the script's own exit status; a declined
// confirmation returns 0 without executing anything.
func (g *Guard) Run(ctx context.Context, ref git.RepoRef, scriptPath string, args []string, noConfirm bool) (int, error) {
	result, err := g.syncer.EnsureCloned(ctx, ref, false)
	if err != nil {
		return 0, err
	}

	repoDir, err := pathutil.Canonical(result.Directory)
	if err != nil {
		return 0, errors.InvalidScriptPath(scriptPath, err)
	}

	resolved, err := g.validate(repoDir, scriptPath)
	if err != nil {
		return 0, err
	}

	if !noConfirm {
		fmt.Fprintf(g.out, "\nScript to execute: %s\n", resolved)
		fmt.Fprintf(g.out, "Repository: %s\n", ref.String())
		if !g.confirm.Confirm("\nAre you sure you want to run this script?") {
			fmt.Fprintln(g.out, "Operation cancelled.")
			return 0, nil
		}
	}

	// Best-effort; the interpreter invocation below does not need the
	// executable bit.
	if err := os.Chmod(resolved, 0755); err != nil {
		g.log.WithField("script", resolved).Debug("could not set executable bit")
	}

	fmt.Fprintf(g.out, "\nRunning script: %s\n", scriptPath)
	fmt.Fprintln(g.out, strings.Repeat("-", 40))

	return g.execute(ctx, repoDir, resolved, args)
}

// validate resolves the requested path and enforces that it names a regular
// file strictly inside the repository. Each rejection carries a distinct
// error code: not found, not a file, traversal detected, or invalid path.
func (g *Guard) validate(repoDir, scriptPath string) (string, error) {
	if scriptPath == "" {
		return "", errors.InvalidScriptPath(scriptPath, fmt.Errorf("empty path"))
	}
	if filepath.IsAbs(scriptPath) {
		return "", errors.InvalidScriptPath(scriptPath, fmt.Errorf("absolute paths are not allowed"))
	}

	joined := filepath.Join(repoDir, scriptPath)
	if !pathutil.Contains(repoDir, joined) {
		return "", errors.PathTraversal(scriptPath)
	}

	info, err := os.Stat(joined)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.ScriptNotFound(joined)
		}
		return "", errors.InvalidScriptPath(scriptPath, err)
	}
	if !info.Mode().IsRegular() {
		return "", errors.ScriptNotAFile(joined)
	}

	// Re-check containment after resolving symlinks: a link inside the
	// repository may still point out of it.
	resolved, err := pathutil.Canonical(joined)
	if err != nil {
		return "", errors.InvalidScriptPath(scriptPath, err)
	}
	if !pathutil.Contains(repoDir, resolved) {
		return "", errors.PathTraversal(scriptPath)
	}

	return resolved, nil
}

// execute runs the validated script with the repository as working directory
// and the caller's terminal attached, propagating its exit code verbatim.
func (g *Guard) execute(ctx context.Context, repoDir, resolved string, args []string) (int, error) {
	cmdArgs := append([]string{resolved}, args...)
	cmd := g.executor.CommandContext(ctx, interpreter, cmdArgs...)
	cmd.Dir = repoDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = g.out
	cmd.Stderr = os.Stderr

	g.log.WithField("script", resolved).Debug("launching script")

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, errors.ExecLaunchFailed(resolved, err)
	}
	return 0, nil
}
