package script

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/mygit/command"
	"github.com/grovetools/mygit/config"
	"github.com/grovetools/mygit/errors"
	"github.com/grovetools/mygit/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner scripts the sync engine's git invocations. The guard's own
// script execution goes through the real executor, not this runner.
type stubRunner struct {
	cloneResult *command.Result
	calls       int
}

func (r *stubRunner) Run(ctx context.Context, dir, name string, args ...string) (*command.Result, error) {
	r.calls++
	if len(args) > 0 && args[0] == "clone" && r.cloneResult != nil {
		return r.cloneResult, nil
	}
	return &command.Result{}, nil
}

// setupRepo creates a fake cloned repository under the config's clone
// directory and returns the guard plus the repository path.
func setupRepo(t *testing.T, confirm Confirmer) (*Guard, *git.Syncer, string) {
	t.Helper()

	cfg := &config.Config{
		GitHubUsername: "octocat",
		GitHubToken:    "tok",
		CloneDirectory: filepath.Join(t.TempDir(), "repos"),
	}
	repoDir := filepath.Join(cfg.CloneDirectory, "widgets")
	require.NoError(t, os.MkdirAll(filepath.Join(repoDir, ".git"), 0755))

	syncer := git.NewSyncer(cfg, &stubRunner{})
	guard := NewGuard(syncer, &command.RealExecutor{}, confirm).WithOutput(&bytes.Buffer{})
	return guard, syncer, repoDir
}

func writeScript(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

var testRef = git.RepoRef{Owner: "acme", Name: "widgets"}

func TestRunPropagatesExitCode(t *testing.T) {
	guard, _, repoDir := setupRepo(t, &StaticConfirmer{Answer: true})
	writeScript(t, repoDir, "fail.sh", "#!/bin/bash\nexit 7\n")

	code, err := guard.Run(context.Background(), testRef, "fail.sh", nil, true)
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestRunForwardsArgsAndWorkingDirectory(t *testing.T) {
	guard, _, repoDir := setupRepo(t, &StaticConfirmer{Answer: true})
	writeScript(t, repoDir, "env.sh", "#!/bin/bash\necho \"$1\" > arg.txt\npwd > cwd.txt\n")

	code, err := guard.Run(context.Background(), testRef, "env.sh", []string{"hello"}, true)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	arg, err := os.ReadFile(filepath.Join(repoDir, "arg.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(arg))

	cwd, err := os.ReadFile(filepath.Join(repoDir, "cwd.txt"))
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(repoDir)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", string(cwd))
}

func TestRunScriptWithoutExecutableBit(t *testing.T) {
	guard, _, repoDir := setupRepo(t, &StaticConfirmer{Answer: true})
	// Mode 0644: only the interpreter invocation makes this runnable.
	writeScript(t, repoDir, "plain.sh", "#!/bin/bash\nexit 0\n")

	code, err := guard.Run(context.Background(), testRef, "plain.sh", nil, true)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestDeclinedConfirmationSkipsExecution(t *testing.T) {
	guard, _, repoDir := setupRepo(t, &StaticConfirmer{Answer: false})
	writeScript(t, repoDir, "touchy.sh", "#!/bin/bash\ntouch executed.txt\n")

	code, err := guard.Run(context.Background(), testRef, "touchy.sh", nil, false)
	require.NoError(t, err, "declining is not an error")
	assert.Equal(t, 0, code)
	assert.NoFileExists(t, filepath.Join(repoDir, "executed.txt"))
}

func TestEOFCountsAsDecline(t *testing.T) {
	guard, _, repoDir := setupRepo(t, nil)
	guard.confirm = &TerminalConfirmer{In: &bytes.Buffer{}, Out: &bytes.Buffer{}}
	writeScript(t, repoDir, "touchy.sh", "#!/bin/bash\ntouch executed.txt\n")

	code, err := guard.Run(context.Background(), testRef, "touchy.sh", nil, false)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.NoFileExists(t, filepath.Join(repoDir, "executed.txt"))
}

func TestPathContainment(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantCode errors.ErrorCode
	}{
		{"parent escape", "../escape.sh", errors.ErrCodePathTraversal},
		{"nested escape", "a/../../etc/passwd", errors.ErrCodePathTraversal},
		{"absolute path", "/etc/passwd", errors.ErrCodeInvalidScriptPath},
		{"empty path", "", errors.ErrCodeInvalidScriptPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, _, _ := setupRepo(t, &StaticConfirmer{Answer: true})

			_, err := guard.Run(context.Background(), testRef, tt.script, nil, true)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantCode),
				"want %s, got %s", tt.wantCode, errors.GetCode(err))
		})
	}
}

func TestScriptNotFound(t *testing.T) {
	guard, _, _ := setupRepo(t, &StaticConfirmer{Answer: true})

	_, err := guard.Run(context.Background(), testRef, "missing.sh", nil, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeScriptNotFound))
}

func TestScriptNotAFile(t *testing.T) {
	guard, _, repoDir := setupRepo(t, &StaticConfirmer{Answer: true})
	require.NoError(t, os.MkdirAll(filepath.Join(repoDir, "subdir"), 0755))

	_, err := guard.Run(context.Background(), testRef, "subdir", nil, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeScriptNotAFile))
}

func TestSymlinkEscapeDetected(t *testing.T) {
	guard, _, repoDir := setupRepo(t, &StaticConfirmer{Answer: true})

	outside := filepath.Join(t.TempDir(), "outside.sh")
	require.NoError(t, os.WriteFile(outside, []byte("#!/bin/bash\n"), 0644))
	require.NoError(t, os.Symlink(outside, filepath.Join(repoDir, "sneaky.sh")))

	_, err := guard.Run(context.Background(), testRef, "sneaky.sh", nil, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodePathTraversal))
}

func TestCloneFailureIsTerminal(t *testing.T) {
	cfg := &config.Config{
		GitHubUsername: "octocat",
		GitHubToken:    "tok",
		CloneDirectory: filepath.Join(t.TempDir(), "repos"),
	}
	runner := &stubRunner{cloneResult: &command.Result{ExitCode: 128, Stderr: "fatal: repository not found"}}
	syncer := git.NewSyncer(cfg, runner)
	guard := NewGuard(syncer, &command.RealExecutor{}, &StaticConfirmer{Answer: true}).WithOutput(&bytes.Buffer{})

	_, err := guard.Run(context.Background(), testRef, "script.sh", nil, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeCloneFailed))
}

func TestConfirmerAffirmativeAnswers(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"anything\n", false},
	}

	for _, tt := range tests {
		c := &TerminalConfirmer{In: bytes.NewBufferString(tt.input), Out: &bytes.Buffer{}}
		assert.Equal(t, tt.want, c.Confirm("run?"), "input %q", tt.input)
	}
}
