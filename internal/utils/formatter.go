package utils

import (
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"

	"golang.org/x/tools/imports"
)

// FormatGoCodeString formats Go source code through the goimports formatter
// in format-only mode, falling back to plain gofmt-style formatting. Import
// resolution stays off so formatting never touches the network or module
// cache.
func FormatGoCodeString(filename, source string) (string, error) {
	processed, err := imports.Process(filename, []byte(source), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err == nil {
		return string(processed), nil
	}

	formatted, fmtErr := format.Source([]byte(source))
	if fmtErr == nil {
		return string(formatted), nil
	}

	// Distinguish invalid syntax from a formatter limitation.
	fset := token.NewFileSet()
	if _, parseErr := parser.ParseFile(fset, filename, source, parser.ParseComments); parseErr != nil {
		return source, fmt.Errorf("invalid Go syntax: %w (format error: %v)", parseErr, err)
	}
	return source, err
}

// ValidateGoCode checks if the provided code is valid Go syntax
func ValidateGoCode(code string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", code, parser.ParseComments)
	return err
}

// FormatAndWriteGoFile formats Go code and writes it to a file. When
// formatting fails the unformatted code is still written so the problem is
// inspectable on disk, and the formatting error is returned.
func FormatAndWriteGoFile(filename string, code string) error {
	formatted, err := FormatGoCodeString(filename, code)
	if err != nil {
		if writeErr := os.WriteFile(filename, []byte(code), 0644); writeErr != nil {
			return fmt.Errorf("failed to write unformatted code to %s: %w (format error: %v)", filename, writeErr, err)
		}
		return fmt.Errorf("failed to format %s: %w", filename, err)
	}

	return os.WriteFile(filename, []byte(formatted), 0644)
}
