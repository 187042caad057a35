package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/toyz/injectgen/internal/cli"
	"github.com/toyz/injectgen/internal/utils"
)

func main() {
	var (
		moduleFlag  = flag.String("module", "", "Custom module path for imports (defaults to go.mod module)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and per-diagnostic locations")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag   = flag.Bool("clean", false, "Delete all generated *_inject.gen.go files from the specified directories")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "injectgen wiring generator\n")
		fmt.Fprintf(os.Stderr, "Recursively scans directories for Go types with //injectgen:: markers and generates per-context dispatch files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    One or more directories to scan for marked Go files\n")
		fmt.Fprintf(os.Stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./internal/...     Scan internal directory and all its subdirectories\n")
		fmt.Fprintf(os.Stderr, "  ./internal/app     Scan only the specific directory (no recursion)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                                  # Scan everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --module example.com/myapp ./...       # Specify custom module path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./internal/...               # Enable detailed output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./...                          # Delete generated dispatch files\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Header("wiring generator")

	if *cleanFlag {
		removed, err := cli.NewCleaner().CleanGeneratedFiles(args)
		if err != nil {
			diagnostics.Error("Clean operation failed: %v", err)
			os.Exit(1)
		}
		diagnostics.Success("Removed %d generated file(s)", len(removed))
		return
	}

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Target directories: %s", strings.Join(args, ", "))
		if *moduleFlag != "" {
			diagnostics.List("Custom module: %s", *moduleFlag)
		}
	}

	generator := cli.NewGeneratorWithDiagnostics(*verboseFlag, diagnostics)
	if *moduleFlag != "" {
		generator.SetCustomModule(*moduleFlag)
	}

	if err := generator.Generate(args); err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	summary := generator.GetSummary()
	stats := map[string]interface{}{
		"Directories scanned": summary.DirectoriesScanned,
		"Types discovered":    summary.TypesDiscovered,
		"Contexts found":      summary.ContextsFound,
		"Files generated":     len(summary.GeneratedFiles),
		"Diagnostics":         len(summary.Diagnostics),
	}
	diagnostics.Summary("Generation Complete!", stats)

	if *verboseFlag && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	diagnostics.GenerationComplete()
}
