// Package cli coordinates the generation pipeline: directory scanning,
// module resolution, program parsing, candidate collection, artifact
// emission and file writing.
package cli

import (
	"fmt"
	"time"

	"github.com/toyz/injectgen/internal/diag"
	"github.com/toyz/injectgen/internal/generator"
	"github.com/toyz/injectgen/internal/parser"
	"github.com/toyz/injectgen/internal/utils"
)

// Generator coordinates the CLI generation process
type Generator struct {
	scanner        *DirectoryScanner
	moduleResolver *ModuleResolver
	codeGenerator  *generator.Generator
	reporter       *DiagnosticReporter
	diagnostics    *utils.DiagnosticSystem
	customModule   string
	summary        GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(verbose bool) *Generator {
	return NewGeneratorWithDiagnostics(verbose, utils.NewDiagnosticSystem(utils.DiagnosticInfo))
}

// NewGeneratorWithDiagnostics creates a CLI generator with an explicit
// diagnostic system.
func NewGeneratorWithDiagnostics(verbose bool, diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:        NewDirectoryScanner(),
		moduleResolver: NewModuleResolver(),
		codeGenerator:  generator.New(),
		reporter:       NewDiagnosticReporter(verbose),
		diagnostics:    diagnostics,
	}
}

// SetCustomModule sets a custom module path for import resolution
func (g *Generator) SetCustomModule(moduleName string) {
	g.customModule = moduleName
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Generate executes the generation process for the given directories
func (g *Generator) Generate(directories []string) error {
	return g.Run(Config{
		Directories: directories,
		ModuleName:  g.customModule,
		Verbose:     g.reporter.verbose,
	})
}

// Run executes the complete generation process. Source-level findings
// accumulate as diagnostics and are reported at the end; only environment
// failures (unreadable directories, missing go.mod, write errors) abort.
func (g *Generator) Run(config Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{}

	g.diagnostics.StartProgress("Resolving module name")
	moduleName, err := g.moduleResolver.ResolveModuleName(config.ModuleName)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return fmt.Errorf("failed to resolve module name: %w", err)
	}
	g.diagnostics.EndProgress(true, "")
	g.diagnostics.Debug("Resolved module name: %s", moduleName)

	g.diagnostics.StartProgress("Scanning directories for Go packages")
	dirs, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return fmt.Errorf("failed to scan directories: %w", err)
	}
	g.diagnostics.EndProgress(true, fmt.Sprintf("found %d package directories", len(dirs)))
	g.summary.DirectoriesScanned = len(dirs)

	prog := parser.NewProgram()
	for _, dir := range dirs {
		pkgPath, err := g.moduleResolver.BuildPackagePath(moduleName, dir)
		if err != nil {
			return fmt.Errorf("failed to build package path for %s: %w", dir, err)
		}
		g.diagnostics.Verbose("Parsing %s (%s)", dir, pkgPath)
		if err := prog.LoadDirectory(dir, pkgPath); err != nil {
			return fmt.Errorf("failed to load package %s: %w", dir, err)
		}
	}

	collector := parser.NewCollector(prog)
	candidates, diags := collector.Collect()
	contexts := collector.CollectContexts()

	g.summary.TypesDiscovered = len(candidates)
	g.summary.ContextsFound = len(contexts)
	g.diagnostics.Debug("Discovered %d eligible types, %d resolver contexts", len(candidates), len(contexts))
	g.diagnostics.Dump("candidates", candidates)

	if len(contexts) == 0 {
		g.diagnostics.Warn("No resolver context found; nothing to generate")
	}

	artifacts, emitDiags := g.codeGenerator.EmitAll(contexts, candidates)
	diags = append(diags, emitDiags...)

	var writeErr error
	for _, artifact := range artifacts {
		g.diagnostics.Progress("Writing %s", artifact.FilePath)
		if err := utils.FormatAndWriteGoFile(artifact.FilePath, artifact.Content); err != nil {
			writeErr = fmt.Errorf("failed to write %s: %w", artifact.FilePath, err)
			break
		}
		g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, artifact.FilePath)
	}

	g.summary.Diagnostics = diags
	g.summary.Duration = time.Since(startTime)
	g.reporter.Report(diags)

	if writeErr != nil {
		return writeErr
	}
	if diags.HasErrors() {
		g.diagnostics.Warn("Generation completed with %d error-level diagnostic(s)", diags.CountBySeverity(diag.SeverityError))
	}
	return nil
}
