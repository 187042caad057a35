package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanGeneratedFiles(t *testing.T) {
	root := t.TempDir()
	generated := filepath.Join(root, "appcontext_inject.gen.go")
	nested := filepath.Join(root, "internal", "svc", "svc_inject.gen.go")
	keep := filepath.Join(root, "app.go")
	writeFile(t, generated, "package app\n")
	writeFile(t, nested, "package svc\n")
	writeFile(t, keep, "package app\n")

	removed, err := NewCleaner().CleanGeneratedFiles([]string{root + "/..."})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{generated, nested}, removed)

	_, err = os.Stat(keep)
	assert.NoError(t, err)
	_, err = os.Stat(generated)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanGeneratedFiles_SingleDirectory(t *testing.T) {
	root := t.TempDir()
	top := filepath.Join(root, "appcontext_inject.gen.go")
	nested := filepath.Join(root, "sub", "sub_inject.gen.go")
	writeFile(t, top, "package app\n")
	writeFile(t, nested, "package sub\n")

	removed, err := NewCleaner().CleanGeneratedFiles([]string{root})
	require.NoError(t, err)
	assert.Equal(t, []string{top}, removed)

	// Non-recursive clean leaves nested files alone.
	_, err = os.Stat(nested)
	assert.NoError(t, err)
}

func TestCleanGeneratedFiles_MissingDirectoryIsNoop(t *testing.T) {
	removed, err := NewCleaner().CleanGeneratedFiles([]string{filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, err)
	assert.Empty(t, removed)
}
