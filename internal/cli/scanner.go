package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirectoryScanner expands directory arguments into the concrete set of
// package directories to scan. Go-style "./..." patterns expand recursively;
// hidden directories, underscore-prefixed directories, vendor and testdata
// are never descended into.
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories resolves every pattern and returns the sorted list of
// directories that contain Go source files.
func (s *DirectoryScanner) ScanDirectories(patterns []string) ([]string, error) {
	found := make(map[string]bool)

	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/...") {
			baseDir := strings.TrimSuffix(pattern, "/...")
			if baseDir == "" {
				baseDir = "."
			}
			if err := s.scanRecursively(baseDir, found); err != nil {
				return nil, err
			}
			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to access directory %s: %w", pattern, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", pattern)
		}
		if s.hasGoFiles(pattern) {
			found[filepath.Clean(pattern)] = true
		}
	}

	dirs := make([]string, 0, len(found))
	for dir := range found {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs, nil
}

func (s *DirectoryScanner) scanRecursively(baseDir string, found map[string]bool) error {
	return filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if path != baseDir && skipDirName(info.Name()) {
			return filepath.SkipDir
		}
		if s.hasGoFiles(path) {
			found[filepath.Clean(path)] = true
		}
		return nil
	})
}

func (s *DirectoryScanner) hasGoFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") {
			return true
		}
	}
	return false
}

func skipDirName(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	return name == "vendor" || name == "testdata"
}
