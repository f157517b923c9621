package tailwindcli

import "strings"

// Version identifies this module release. The part before the first dash is
// the tailwindcss version whose binaries are embedded; the part after it is
// the wrapper revision, bumped when the module changes without a tailwindcss
// upgrade.
const Version = "3.4.17-0"

// ToolVersion returns the version of the embedded tailwindcss binaries,
// e.g. "3.4.17". Running the tool with --help prints a banner containing
// "tailwindcss v" followed by this value.
func ToolVersion() string {
	base, _, _ := strings.Cut(Version, "-")
	return base
}
