package tailwindcli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/aexvir/tailwindcli/platform"
)

// executable is a temporary file holding the embedded binary for the
// duration of one invocation. The invocation that created it is its only
// owner and is responsible for calling Remove exactly once.
type executable struct {
	path    string
	removed bool
}

// materialize writes the embedded binary to a uniquely named file in dir
// and marks it executable. The name carries the platform, the module
// version and a random token: the token rules out collisions between
// concurrent invocations, the rest makes stale files attributable when a
// cleanup ever fails.
//
// On any failure the partial file is removed before returning, so a file at
// the returned path is always complete and runnable.
func materialize(data []byte, p platform.Platform, dir string) (*executable, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	name := fmt.Sprintf("tailwindcss-%s-v%s-%s%s", p, Version, uuid.NewString(), p.ExeSuffix())
	path := filepath.Join(dir, name)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, &MaterializeError{Path: path, Err: err}
	}

	fail := func(cause error) (*executable, error) {
		file.Close()
		os.Remove(path)
		return nil, &MaterializeError{Path: path, Err: cause}
	}

	if _, err := file.Write(data); err != nil {
		return fail(err)
	}

	// windows has no permission bits to set; the .exe suffix is what makes
	// the file executable there
	if !p.IsWindows() {
		if err := file.Chmod(0o755); err != nil {
			return fail(err)
		}
	}

	// make sure the bytes hit the disk before the file is handed to exec
	if err := file.Sync(); err != nil {
		return fail(err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return nil, &MaterializeError{Path: path, Err: err}
	}

	return &executable{path: path}, nil
}

// Remove deletes the temporary file. Calling it more than once is a no-op;
// the file is only ever deleted by the invocation that created it.
func (e *executable) Remove() error {
	if e.removed {
		return nil
	}
	e.removed = true

	return os.Remove(e.path)
}
