package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanDirectories_Recursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.go"), "package app\n")
	writeFile(t, filepath.Join(root, "internal", "svc", "svc.go"), "package svc\n")
	writeFile(t, filepath.Join(root, "docs", "readme.md"), "docs\n")
	writeFile(t, filepath.Join(root, "vendor", "dep", "dep.go"), "package dep\n")
	writeFile(t, filepath.Join(root, "_scratch", "x.go"), "package scratch\n")
	writeFile(t, filepath.Join(root, ".hidden", "h.go"), "package hidden\n")

	dirs, err := NewDirectoryScanner().ScanDirectories([]string{root + "/..."})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Clean(root),
		filepath.Join(root, "internal", "svc"),
	}, dirs)
}

func TestScanDirectories_TestOnlyDirExcluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "pkg_test.go"), "package pkg\n")

	dirs, err := NewDirectoryScanner().ScanDirectories([]string{root + "/..."})
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestScanDirectories_SingleDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.go"), "package app\n")
	writeFile(t, filepath.Join(root, "nested", "n.go"), "package nested\n")

	dirs, err := NewDirectoryScanner().ScanDirectories([]string{root})
	require.NoError(t, err)

	// No pattern, no recursion.
	assert.Equal(t, []string{filepath.Clean(root)}, dirs)
}

func TestScanDirectories_MissingDirectory(t *testing.T) {
	_, err := NewDirectoryScanner().ScanDirectories([]string{"/does/not/exist"})
	assert.Error(t, err)
}
