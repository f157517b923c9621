// Package platform identifies which prebuilt Tailwind CSS binary matches
// the machine the code is running on.
//
// The standalone CLI is distributed for a fixed set of operating system and
// architecture pairs; [Resolve] maps the values reported by the Go runtime
// onto that set. Anything outside the set is an error, never a fallback:
// there is no binary to fall back to.
package platform
