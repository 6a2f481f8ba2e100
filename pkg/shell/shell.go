// File: pkg/shell/shell.go

// Package shell runs external processes and reports their outcome as a Result.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"go.trai.ch/zerr"
)

// Command describes one process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Quiet discards the process output from the terminal; stdout and stderr
	// are captured into Result.Output instead.
	Quiet bool
}

// With returns a copy of c with args appended.
func (c Command) With(args ...string) Command {
	c.Args = append(append([]string(nil), c.Args...), args...)
	return c
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result is the outcome of running a Command: either success, or a failure
// carrying the exit code, the captured output and the underlying cause.
type Result struct {
	failed   bool
	ExitCode int
	Output   string
	Err      error
}

// Success returns a successful Result.
func Success(output string) Result {
	return Result{Output: output}
}

// Failure returns a failed Result. A negative exit code means the process
// could not be started or was killed.
func Failure(exitCode int, output string, err error) Result {
	if err == nil {
		err = zerr.New("command failed")
	}
	return Result{failed: true, ExitCode: exitCode, Output: output, Err: err}
}

// Failed reports whether the command failed.
func (r Result) Failed() bool { return r.failed }

// Error returns nil on success, otherwise the failure cause annotated with the exit code.
func (r Result) Error() error {
	if !r.failed {
		return nil
	}
	return zerr.With(r.Err, "exit_code", r.ExitCode)
}

// Runner runs commands.
type Runner interface {
	Run(ctx context.Context, cmd Command) Result
}

// Executor implements Runner using os/exec.
type Executor struct {
	logger *log.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger *log.Logger) *Executor {
	return &Executor{logger: logger}
}

// Run executes cmd and translates its exit status into a Result. This is the
// only place where process status is interpreted.
func (e *Executor) Run(ctx context.Context, cmd Command) Result {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // command is built by the caller
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}

	var captured bytes.Buffer
	if cmd.Quiet {
		c.Stdout = &captured
		c.Stderr = &captured
	} else {
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
	}

	e.logger.Debug("running command", "cmd", cmd.String(), "dir", cmd.Dir)
	if err := c.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		e.logger.Debug("command failed", "cmd", cmd.Name, "exit_code", exitCode)
		return Failure(exitCode, captured.String(), zerr.Wrap(err, "command failed: "+cmd.Name))
	}
	return Success(captured.String())
}
