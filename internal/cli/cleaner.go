package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/injectgen/internal/parser"
)

// Cleaner removes previously generated dispatch files
type Cleaner struct{}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// CleanGeneratedFiles removes every generated dispatch file under the given
// directory patterns and returns the removed paths.
func (c *Cleaner) CleanGeneratedFiles(patterns []string) ([]string, error) {
	var removed []string

	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/...") {
			baseDir := strings.TrimSuffix(pattern, "/...")
			if baseDir == "" {
				baseDir = "."
			}
			if err := c.cleanRecursively(baseDir, &removed); err != nil {
				return removed, err
			}
			continue
		}

		if err := c.cleanSingleDirectory(pattern, &removed); err != nil {
			return removed, fmt.Errorf("failed to clean directory %s: %w", pattern, err)
		}
	}

	return removed, nil
}

func (c *Cleaner) cleanRecursively(baseDir string, removed *[]string) error {
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
		return c.cleanSingleDirectory(path, removed)
	})
}

func (c *Cleaner) cleanSingleDirectory(dir string, removed *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), parser.GeneratedFileSuffix) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove file %s: %w", path, err)
		}
		*removed = append(*removed, path)
	}

	return nil
}
