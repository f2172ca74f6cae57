package tools

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of one external command.
type ExecResult struct {
	Stdout string
	Stderr string
	Err    error
}

// Executor runs a fully built argument slice (args[0] is the program).
type Executor interface {
	Execute(ctx context.Context, args []string) ExecResult
}

// CommandExecutor runs commands with os/exec. When Verbose is set, stderr
// is tee'd to Tee (os.Stderr when nil) while still being captured for
// classification.
type CommandExecutor struct {
	Verbose bool
	Tee     io.Writer
}

// Execute implements [Executor].
func (e CommandExecutor) Execute(ctx context.Context, args []string) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	if e.Verbose {
		tee := e.Tee
		if tee == nil {
			tee = os.Stderr
		}
		cmd.Stderr = io.MultiWriter(&stderrBuf, tee)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
