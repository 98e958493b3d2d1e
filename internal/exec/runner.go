// Package exec provides a stub-friendly interface for running external commands.
package exec

import (
	"context"
	"errors"
	"io"
	"os"
	osexec "os/exec"
	"strings"
)

// ExitStatus is the exit code of a finished process.
type ExitStatus int

// Success reports whether the process exited with code 0.
func (s ExitStatus) Success() bool { return s == 0 }

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir    string    // working directory (optional)
	Stdin  io.Reader // defaults to os.Stdin
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
}

// CommandRunner is the interface for running external commands.
type CommandRunner interface {
	// Run executes a command and waits for it to exit.
	// A process that ran and exited non-zero is reported through ExitStatus
	// with a nil error. The error is reserved for failures to start or wait
	// (binary not found, ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (ExitStatus, error)
}

// RealRunner is the production implementation of CommandRunner using os/exec.
// Unset streams are inherited from the parent process so the user sees the
// tool's own output.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command with the configured streams.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (ExitStatus, error) {
	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Stdin = orReader(opts.Stdin, os.Stdin)
	cmd.Stdout = orWriter(opts.Stdout, os.Stdout)
	cmd.Stderr = orWriter(opts.Stderr, os.Stderr)

	err := cmd.Run()
	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			return ExitStatus(exitErr.ExitCode()), nil
		}
		return -1, err
	}
	return 0, nil
}

// CommandLine renders name and args for messages, e.g. "yarn add internetdata zod".
func CommandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func orReader(r, def io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return def
}

func orWriter(w, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}
