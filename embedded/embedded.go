package embedded

import (
	"fmt"

	_ "embed"

	"github.com/aexvir/tailwindcli/platform"
)

//go:embed bin/tailwindcss-macos-arm64
var macosArm64 []byte

//go:embed bin/tailwindcss-macos-x64
var macosX64 []byte

//go:embed bin/tailwindcss-linux-arm64
var linuxArm64 []byte

//go:embed bin/tailwindcss-linux-armv7
var linuxArmv7 []byte

//go:embed bin/tailwindcss-linux-x64
var linuxX64 []byte

//go:embed bin/tailwindcss-windows-arm64.exe
var windowsArm64 []byte

//go:embed bin/tailwindcss-windows-x64.exe
var windowsX64 []byte

// Bytes returns the embedded binary for the given platform.
// The lookup is total over [platform.All]; every enumerated platform has an
// embed directive above, so a miss can only mean a platform constant was
// added without its asset, which is a bug and not a runtime condition.
func Bytes(p platform.Platform) []byte {
	switch p {
	case platform.MacOSArm64:
		return macosArm64
	case platform.MacOSX64:
		return macosX64
	case platform.LinuxArm64:
		return linuxArm64
	case platform.LinuxArmv7:
		return linuxArmv7
	case platform.LinuxX64:
		return linuxX64
	case platform.WindowsArm64:
		return windowsArm64
	case platform.WindowsX64:
		return windowsX64
	}

	panic(fmt.Sprintf("no embedded binary for platform %q", p))
}

// AssetName returns the file name the binary for the given platform is
// stored under, both in bin/ and in the upstream release.
func AssetName(p platform.Platform) string {
	return fmt.Sprintf("tailwindcss-%s%s", p, p.ExeSuffix())
}
