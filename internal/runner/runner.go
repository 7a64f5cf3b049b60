package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Result describes a process that ran to completion.
type Result struct {
	// ExitCode is the process exit status. It is -1 when the process was
	// terminated by a signal (including context cancellation).
	ExitCode int
}

// Runner runs a program with the given arguments in dir and blocks until it
// exits. An empty dir means the caller's working directory.
//
// Implementations must return a nil error for any process that started,
// whatever its exit status, and a non-nil error only when the process could
// not be run at all.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// ExecRunner is the os/exec backed Runner.
//
// The child's stdout and stderr are connected directly to Stdout and
// Stderr, so progress output from git reaches the user as it is produced.
// Nil writers discard the corresponding stream.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer

	logger zerolog.Logger
}

// NewExecRunner creates an ExecRunner streaming child output to stdout and
// stderr and logging each invocation at debug level.
func NewExecRunner(stdout, stderr io.Writer, logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{
		Stdout: stdout,
		Stderr: stderr,
		logger: logger,
	}
}

// Run executes name with args in dir.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	r.logger.Debug().
		Str("dir", dir).
		Str("cmd", strings.Join(append([]string{name}, args...), " ")).
		Msg("running command")

	// #nosec G204 -- name and args are fixed by the caller, never user input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return Result{ExitCode: 0}, nil
	}

	// The process started and exited non-zero (or was killed). That is a
	// completed run as far as callers are concerned.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{ExitCode: exitErr.ExitCode()}, nil
	}

	return Result{ExitCode: -1}, fmt.Errorf("start %s in %q: %w", name, dir, err)
}
