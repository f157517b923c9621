package tailwindcli

import "fmt"

// MaterializeError reports a failure to write the embedded binary to its
// temporary file: creation, write, permission bits or flushing to disk.
// No partial file is left behind when this is returned.
type MaterializeError struct {
	Path string
	Err  error
}

func (e *MaterializeError) Error() string {
	return fmt.Sprintf("couldn't save tailwindcss executable to temporary file %s: %v", e.Path, e.Err)
}

func (e *MaterializeError) Unwrap() error {
	return e.Err
}

// SpawnError reports that the operating system couldn't start the
// materialized binary at all. This is distinct from [ExitError]: the tool
// never ran, so there is no output to inspect.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("couldn't invoke tailwindcss at %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitError reports that tailwindcss ran and exited non-zero. Both streams
// are retained, trimmed the same way as on success, so callers can surface
// the tool's own diagnostics; a non-zero exit usually means the invocation
// arguments were wrong, not that the wrapper is broken.
type ExitError struct {
	Code   int
	Stdout string
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf(
		"tailwindcss exited with code %d\n\nstdout:\n%s\n\nstderr:\n%s",
		e.Code, e.Stdout, e.Stderr,
	)
}

// CleanupError reports that the temporary executable couldn't be deleted
// after use. The invocation outcome obtained before the failed deletion is
// still returned alongside it, a leaked temp file doesn't invalidate the
// tool's output.
type CleanupError struct {
	Path string
	Err  error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("couldn't delete temporary tailwindcss executable %s: %v", e.Path, e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}
