package tailwindcli

import "strings"

// Output holds what a successful tailwindcss run wrote to its output
// streams. Both values are decoded as UTF-8 with invalid byte sequences
// replaced by U+FFFD, and stripped of leading and trailing whitespace; the
// trimming is part of the contract, not cosmetics.
type Output struct {
	Stdout string
	Stderr string
}

// classify turns a finished process into the caller-facing result: a zero
// exit code becomes an [*Output], anything else an [*ExitError] carrying
// the same decoded and trimmed streams.
func classify(raw *rawOutcome) (*Output, error) {
	stdout := decode(raw.stdout)
	stderr := decode(raw.stderr)

	if raw.exitCode != 0 {
		return nil, &ExitError{
			Code:   raw.exitCode,
			Stdout: stdout,
			Stderr: stderr,
		}
	}

	return &Output{Stdout: stdout, Stderr: stderr}, nil
}

func decode(stream []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(stream), "�"))
}
