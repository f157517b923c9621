package tailwindcli

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aexvir/tailwindcli/platform"
)

func TestMaterializeWritesExecutableFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("#!/bin/sh\necho hello\n")

	exe, err := materialize(data, platform.LinuxX64, dir)
	require.NoError(t, err)

	written, err := os.ReadFile(exe.path)
	require.NoError(t, err)
	assert.Equal(t, data, written)

	info, err := os.Stat(exe.path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}

	require.NoError(t, exe.Remove())
	_, err = os.Stat(exe.path)
	assert.True(t, os.IsNotExist(err))
}

func TestMaterializeFileName(t *testing.T) {
	dir := t.TempDir()

	exe, err := materialize([]byte("data"), platform.MacOSArm64, dir)
	require.NoError(t, err)
	defer exe.Remove()

	name := filepath.Base(exe.path)
	assert.Contains(t, name, "tailwindcss-")
	assert.Contains(t, name, string(platform.MacOSArm64))
	assert.Contains(t, name, "v"+Version)

	// windows binaries keep their extension so the os recognizes them
	winexe, err := materialize([]byte("data"), platform.WindowsX64, dir)
	require.NoError(t, err)
	defer winexe.Remove()
	assert.Equal(t, ".exe", filepath.Ext(winexe.path))
}

func TestMaterializeUniquePathsUnderConcurrency(t *testing.T) {
	dir := t.TempDir()

	const workers = 16
	paths := make(chan string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			exe, err := materialize([]byte("data"), platform.LinuxX64, dir)
			assert.NoError(t, err)
			paths <- exe.path
		}()
	}
	wg.Wait()
	close(paths)

	seen := make(map[string]bool, workers)
	for path := range paths {
		assert.False(t, seen[path], "colliding temp file path %s", path)
		seen[path] = true

		// all files coexist; nothing overwrote anything
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
	assert.Len(t, seen, workers)
}

func TestMaterializeFailsOnMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")

	_, err := materialize([]byte("data"), platform.LinuxX64, missing)
	require.Error(t, err)

	var merr *MaterializeError
	require.ErrorAs(t, err, &merr)
	assert.ErrorIs(t, err, merr.Err)

	// nothing half-written left behind
	_, statErr := os.Stat(filepath.Dir(missing))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemoveIsIdempotent(t *testing.T) {
	exe, err := materialize([]byte("data"), platform.LinuxX64, t.TempDir())
	require.NoError(t, err)

	require.NoError(t, exe.Remove())
	require.NoError(t, exe.Remove())
}

func TestMaterializeDefaultsToSystemTempDir(t *testing.T) {
	exe, err := materialize([]byte("data"), platform.LinuxX64, "")
	require.NoError(t, err)
	defer exe.Remove()

	assert.Equal(t, os.TempDir(), filepath.Dir(exe.path))
}
