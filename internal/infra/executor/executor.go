// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/runoshun/envboot/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewClient creates a new command executor client attached to the process stdio.
func NewClient() *Client {
	return NewClientWithIO(os.Stdin, os.Stdout, os.Stderr)
}

// NewClientWithIO creates a client whose interactive runs use the given streams.
func NewClientWithIO(stdin io.Reader, stdout, stderr io.Writer) *Client {
	return &Client{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and returns stdout and stderr separately.
// Tool notices on stderr never reach Output.
func (c *Client) Execute(cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	var stdout, stderr bytes.Buffer
	execCmd := command(cmd)
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr
	err := execCmd.Run()
	return result(stdout.Bytes(), stderr.Bytes(), err)
}

// ExecuteInteractive runs a command with stdin/stdout/stderr connected to the terminal.
func (c *Client) ExecuteInteractive(cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	execCmd := command(cmd)
	execCmd.Stdin = c.stdin
	execCmd.Stdout = c.stdout
	execCmd.Stderr = c.stderr
	return result(nil, nil, execCmd.Run())
}

func command(cmd *domain.ExecCommand) *exec.Cmd {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.Command(cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	return execCmd
}

// result separates "ran and exited non-zero" from "could not run at all".
func result(stdout, stderr []byte, err error) (*domain.ExecResult, error) {
	if err == nil {
		return &domain.ExecResult{Output: stdout, Stderr: stderr}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ExecResult{Output: stdout, Stderr: stderr, ExitCode: exitErr.ExitCode()}, nil
	}
	return nil, err
}
