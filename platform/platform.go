package platform

import (
	"fmt"
	"runtime"
)

// Platform is one of the operating system and architecture pairs the
// standalone Tailwind CLI is distributed for. The value doubles as the
// platform segment of the upstream release asset names.
type Platform string

const (
	MacOSArm64 Platform = "macos-arm64"
	MacOSX64   Platform = "macos-x64"

	LinuxArm64 Platform = "linux-arm64"
	LinuxArmv7 Platform = "linux-armv7"
	LinuxX64   Platform = "linux-x64"

	WindowsArm64 Platform = "windows-arm64"
	WindowsX64   Platform = "windows-x64"
)

// All lists every supported platform.
func All() []Platform {
	return []Platform{
		MacOSArm64,
		MacOSX64,
		LinuxArm64,
		LinuxArmv7,
		LinuxX64,
		WindowsArm64,
		WindowsX64,
	}
}

// Resolve maps the running operating system and architecture to its
// Platform. It returns an [*UnsupportedError] when the combination has no
// prebuilt binary; it never guesses a default.
func Resolve() (Platform, error) {
	return resolve(runtime.GOOS, runtime.GOARCH)
}

// resolve is the pure lookup behind Resolve, split out so the full table
// can be exercised in tests regardless of the host machine.
func resolve(goos, goarch string) (Platform, error) {
	switch goos {
	case "darwin":
		switch goarch {
		case "arm64":
			return MacOSArm64, nil
		case "amd64":
			return MacOSX64, nil
		}
	case "linux":
		switch goarch {
		case "arm64":
			return LinuxArm64, nil
		case "arm":
			return LinuxArmv7, nil
		case "amd64":
			return LinuxX64, nil
		}
	case "windows":
		switch goarch {
		case "arm64":
			return WindowsArm64, nil
		case "amd64":
			return WindowsX64, nil
		}
	}

	return "", &UnsupportedError{GOOS: goos, GOARCH: goarch}
}

// String returns the platform segment used in asset and temp file names.
func (p Platform) String() string {
	return string(p)
}

// ExeSuffix returns the file name suffix executables carry on this
// platform; ".exe" on windows, empty elsewhere.
func (p Platform) ExeSuffix() string {
	if p == WindowsArm64 || p == WindowsX64 {
		return ".exe"
	}
	return ""
}

// IsWindows reports whether the platform lacks a posix permission model,
// in which case marking files executable is a no-op.
func (p Platform) IsWindows() bool {
	return p.ExeSuffix() == ".exe"
}

// UnsupportedError is returned when the running machine has no prebuilt
// Tailwind binary.
type UnsupportedError struct {
	GOOS   string
	GOARCH string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no prebuilt tailwindcss binary for %s/%s", e.GOOS, e.GOARCH)
}
