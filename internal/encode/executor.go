package encode

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single encoder invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// ExitCode returns the process exit code, or -1 when the command did not
// run or was terminated by a signal.
func (r ExecResult) ExitCode() int {
	var ee *exec.ExitError
	if errors.As(r.Err, &ee) {
		return ee.ExitCode()
	}
	return -1
}

// Execute runs argv (argv[0] is the command). Stderr is captured for error
// reporting; in verbose mode it is also tee'd to os.Stderr in real time so
// encoder progress stays visible.
func Execute(ctx context.Context, verbose bool, argv []string) ExecResult {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
