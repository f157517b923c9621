// Package embedded carries the prebuilt Tailwind CSS standalone binaries,
// one per supported platform, baked into the compiled artifact with go:embed
// so that nothing has to be downloaded or installed at run time.
//
// The files under bin/ are the unmodified upstream release assets for the
// version pinned by the parent package. To refresh them run:
//
//	mage provision
//
// which downloads every platform's binary from the tailwindcss GitHub
// release into bin/ (see the gen package).
package embedded
