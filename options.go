package tailwindcli

import (
	"fmt"
	"strings"
)

type config struct {
	tempdir string
	workdir string
	env     []string
	verbose bool
}

// Option allows customizing the behavior of a single invocation.
type Option func(c *config) error

// WithTempDir sets the directory the executable is materialized into.
// Defaults to the system temporary directory; the directory must exist and
// be writable. Useful to keep build artifacts under a project's output
// folder instead of the global temp location.
func WithTempDir(dir string) Option {
	return func(c *config) error {
		c.tempdir = dir
		return nil
	}
}

// WithWorkDir sets the working directory tailwindcss runs in, so relative
// --input and --output paths resolve against it instead of the caller's
// current directory.
func WithWorkDir(dir string) Option {
	return func(c *config) error {
		c.workdir = dir
		return nil
	}
}

// WithEnv sets up additional environment variables for the tool, on top of
// the current process environment.
func WithEnv(vars ...string) Option {
	return func(c *config) error {
		for _, vrb := range vars {
			if !strings.Contains(vrb, "=") {
				return fmt.Errorf("invalid env format; %s doesn't match NAME=value expectation", vrb)
			}
		}
		c.env = append(c.env, vars...)
		return nil
	}
}

// WithVerbose logs every stage of the invocation to stdout: resolved
// platform, temporary file path, command line, and cleanup.
func WithVerbose() Option {
	return func(c *config) error {
		c.verbose = true
		return nil
	}
}
