package wasmbuild

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sanctify/wasmbuild/internal"
)

// Command describes a single external process invocation. Args are passed to the
// process as-is; no shell is involved.
type Command struct {
	Name string
	Args []string
	Dir  string
}

func (command Command) String() string {
	return strings.Join(append([]string{command.Name}, command.Args...), " ")
}

type Runner interface {
	Run(ctx context.Context, command Command) error
}

// ExecRunner runs commands as child processes, streaming their output to the
// stdout and stderr carried by the context.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, command Command) error {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir
	cmd.Stdout = internal.Stdout(ctx)
	cmd.Stderr = internal.Stderr(ctx)

	if err := cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &CommandError{Command: command, ExitCode: code, Err: err}
	}
	return nil
}

type CommandError struct {
	Command  Command
	ExitCode int
	Err      error
}

func (err CommandError) Error() string {
	return fmt.Sprintf("'%s' failed (%d): %v", err.Command, err.ExitCode, err.Err)
}

func (err CommandError) Unwrap() error { return err.Err }

type MissingToolError struct {
	Names []string
}

func (err MissingToolError) Error() string {
	return fmt.Sprintf("EMSDK not found - aborting! missing: %s", strings.Join(err.Names, ", "))
}
