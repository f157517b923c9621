package tailwindcli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/mod/semver"
)

func TestToolVersionIsValidSemver(t *testing.T) {
	assert.True(t, semver.IsValid("v"+ToolVersion()), "tool version %q is not semver", ToolVersion())
}

func TestVersionCarriesWrapperRevision(t *testing.T) {
	// module versions look like <tool semver>-<wrapper revision> so the
	// wrapper can ship fixes without pretending tailwindcss changed
	assert.True(t, strings.HasPrefix(Version, ToolVersion()+"-"))
	assert.NotContains(t, ToolVersion(), "-")
}
