package tailwindcli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// rawOutcome is what a finished child process left behind: its exit code
// and both output streams, captured independently and in full.
type rawOutcome struct {
	exitCode int
	stdout   []byte
	stderr   []byte
}

// invoke runs the materialized binary with the given arguments and waits
// for it to exit. Arguments are passed through untouched; the tool parses
// its own command line. Stdin is not wired up, the tool runs detached from
// the caller's terminal input.
//
// A process that couldn't even be started is reported as a [*SpawnError];
// a process that ran and exited, with whatever status, is a rawOutcome.
func invoke(ctx context.Context, path string, args []string, cfg *config) (*rawOutcome, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	// exec.Cmd drains both pipes concurrently under the hood, so capturing
	// into plain buffers can't deadlock on a full pipe
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	cmd.Dir = cfg.workdir
	if len(cfg.env) > 0 {
		cmd.Env = append(os.Environ(), cfg.env...)
	}

	err := cmd.Run()

	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return &rawOutcome{
			exitCode: exit.ExitCode(),
			stdout:   stdout.Bytes(),
			stderr:   stderr.Bytes(),
		}, nil
	}
	if err != nil {
		return nil, &SpawnError{Path: path, Err: err}
	}

	return &rawOutcome{
		exitCode: 0,
		stdout:   stdout.Bytes(),
		stderr:   stderr.Bytes(),
	}, nil
}
