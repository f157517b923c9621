package embedded

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aexvir/tailwindcli/platform"
)

func TestBytesNonEmptyForEveryPlatform(t *testing.T) {
	for _, p := range platform.All() {
		t.Run(string(p), func(t *testing.T) {
			assert.NotEmpty(t, Bytes(p))
		})
	}
}

func TestAssetName(t *testing.T) {
	assert.Equal(t, "tailwindcss-linux-x64", AssetName(platform.LinuxX64))
	assert.Equal(t, "tailwindcss-macos-arm64", AssetName(platform.MacOSArm64))
	assert.Equal(t, "tailwindcss-windows-x64.exe", AssetName(platform.WindowsX64))
	assert.Equal(t, "tailwindcss-windows-arm64.exe", AssetName(platform.WindowsArm64))
}
