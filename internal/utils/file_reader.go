package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileReader provides file reading with modification-aware caching. Repeated
// reads of go.mod and scanned sources during one generation run hit the
// cache instead of the filesystem.
type FileReader struct {
	contentCache *Cache[string, string]
}

// NewFileReader creates a new FileReader instance with caching
func NewFileReader() *FileReader {
	return &FileReader{
		contentCache: NewCache[string, string](),
	}
}

// ReadFile reads a file and returns its contents as a string with caching
func (fr *FileReader) ReadFile(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}
	cleanPath := filepath.Clean(filePath)

	if cached, exists := fr.contentCache.GetWithFileValidation(cleanPath, cleanPath); exists {
		return cached, nil
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filepath.Base(cleanPath), err)
	}

	contentStr := string(content)
	fr.contentCache.SetWithFileInfo(cleanPath, contentStr, cleanPath)
	return contentStr, nil
}

// ClearCache clears all cached files
func (fr *FileReader) ClearCache() {
	fr.contentCache.Clear()
}

// CacheSize returns the number of cached files
func (fr *FileReader) CacheSize() int {
	return fr.contentCache.Size()
}
