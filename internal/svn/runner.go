// Package svn wraps the svn binary and owns the status-list state model.
package svn

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command in a working directory and returns
// its captured standard output. Implementations block until the process
// exits; there is no background execution.
type Runner interface {
	Run(ctx context.Context, name string, args []string, cwd string) (string, error)
}

// CommandError reports a command that could not run or exited non-zero.
// Output carries the captured diagnostic text.
type CommandError struct {
	Command string
	Output  string
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s: %s", e.Command, e.Output)
	}
	return fmt.Sprintf("%s failed", e.Command)
}

// execRunner is the default Runner backed by os/exec.
type execRunner struct{}

// NewExecRunner returns a Runner that spawns real child processes.
func NewExecRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args []string, cwd string) (string, error) {
	// #nosec G204 -- name comes from local config and args from internal logic, nothing is shell interpolated
	cmd := exec.CommandContext(ctx, name, args...)
	if cwd != "" {
		cmd.Dir = cwd
	}

	output, err := cmd.Output()
	if err != nil {
		cmdline := strings.Join(append([]string{name}, args...), " ")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail := strings.TrimSpace(string(exitErr.Stderr))
			if detail == "" {
				detail = strings.TrimSpace(string(output))
			}
			return "", &CommandError{Command: cmdline, Output: detail}
		}
		return "", &CommandError{Command: cmdline, Output: err.Error()}
	}

	return string(output), nil
}
