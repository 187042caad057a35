package cli

// Config holds the configuration for one generation run
type Config struct {
	// Directories is the list of directories to scan for marked Go files.
	// Supports Go-style patterns like "./..." for recursive scanning.
	Directories []string

	// ModuleName is the custom module path for import resolution.
	// If empty, it is determined from the nearest go.mod file.
	ModuleName string

	// Verbose enables detailed logging and per-diagnostic locations
	Verbose bool
}
