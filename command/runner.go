package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a single external command invocation.
const DefaultTimeout = 10 * time.Minute

// Result holds the captured outcome of a finished external command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner runs an external command to completion, capturing stdout and stderr
// separately from the exit status. A non-zero exit is reported through
// Result.ExitCode, not as an error; the error return is reserved for
// failures to launch the process at all.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*Result, error)
}

// ExecRunner is the production Runner, executing commands through an Executor.
type ExecRunner struct {
	executor Executor
	timeout  time.Duration
}

// NewRunner creates an ExecRunner backed by the real os/exec executor.
func NewRunner() *ExecRunner {
	return NewRunnerWithExecutor(&RealExecutor{})
}

// NewRunnerWithExecutor creates an ExecRunner with a custom Executor.
func NewRunnerWithExecutor(executor Executor) *ExecRunner {
	return &ExecRunner{
		executor: executor,
		timeout:  DefaultTimeout,
	}
}

// Run executes the command synchronously in dir and returns its captured output.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := r.executor.CommandContext(runCtx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, err
	}

	return result, nil
}
