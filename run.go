package tailwindcli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aexvir/tailwindcli/embedded"
	"github.com/aexvir/tailwindcli/platform"
)

// Run invokes the embedded tailwindcss binary with the given arguments and
// blocks until it exits, returning its trimmed stdout and stderr.
//
// The binary matching the running platform is written to a temporary file
// which is deleted again before Run returns, on every path past its
// creation. Errors are typed and inspectable with errors.As:
//
//   - [*platform.UnsupportedError]: no binary is embedded for this machine
//   - [*MaterializeError]: the temporary file couldn't be written
//   - [*SpawnError]: the process couldn't be started
//   - [*ExitError]: the tool ran and exited non-zero; inspect its streams
//   - [*CleanupError]: the temporary file couldn't be deleted; when the
//     invocation itself produced an Output it is still returned alongside
//
// Run applies no timeout; cancel or deadline the context to bound it.
func Run(ctx context.Context, args []string, opts ...Option) (out *Output, err error) {
	var cfg config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	plat, err := platform.Resolve()
	if err != nil {
		return nil, err
	}

	if cfg.verbose {
		logstep(fmt.Sprintf("running tailwindcss %s", strings.Join(args, " ")))
		logdetail(fmt.Sprintf("platform %s", plat))
	}

	exe, err := materialize(embedded.Bytes(plat), plat, cfg.tempdir)
	if err != nil {
		return nil, err
	}

	if cfg.verbose {
		logdetail(fmt.Sprintf("materialized %s", exe.path))
	}

	// the file outlives the process and is deleted exactly once, no matter
	// which of the steps below fails; a failed deletion is reported but
	// never masks an outcome that was already obtained
	defer func() {
		rmErr := exe.Remove()
		if rmErr == nil {
			if cfg.verbose {
				logdetail("deleted temporary executable")
			}
			return
		}

		cleanup := &CleanupError{Path: exe.path, Err: rmErr}
		if err != nil {
			err = errors.Join(err, cleanup)
			return
		}
		err = cleanup
	}()

	raw, err := invoke(ctx, exe.path, args, &cfg)
	if err != nil {
		return nil, err
	}

	out, err = classify(raw)

	if cfg.verbose {
		if err != nil {
			logdetail(fmt.Sprintf("tailwindcss exited with code %d", raw.exitCode))
		} else {
			logdetail("tailwindcss finished successfully")
		}
	}

	return out, err
}
