package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/toyz/injectgen/internal/diag"
)

// DiagnosticReporter renders accumulated diagnostics for the terminal.
// Diagnostics are data, not errors: the full list is printed after the run
// regardless of how generation went.
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stderr,
	}
}

// Report prints every diagnostic, one line each, colored by severity.
func (r *DiagnosticReporter) Report(diags diag.List) {
	for _, d := range diags {
		r.reportOne(d)
	}

	if errors := diags.CountBySeverity(diag.SeverityError); errors > 0 {
		fmt.Fprintf(r.out, "\n%d error(s), %d warning(s)\n",
			errors, diags.CountBySeverity(diag.SeverityWarning))
	}
}

func (r *DiagnosticReporter) reportOne(d diag.Diagnostic) {
	switch d.Severity {
	case diag.SeverityError:
		red := color.New(color.FgRed, color.Bold)
		red.Fprintf(r.out, "%s ", d.Code.ID())
	case diag.SeverityWarning:
		yellow := color.New(color.FgYellow, color.Bold)
		yellow.Fprint(r.out, "! ")
		fmt.Fprintf(r.out, "%s ", d.Code.ID())
	default:
		gray := color.New(color.FgHiBlack)
		gray.Fprintf(r.out, "%s ", d.Code.ID())
	}

	fmt.Fprint(r.out, d.Message)
	if r.verbose && d.Location.File != "" {
		fmt.Fprintf(r.out, " (%s)", d.Location)
	}
	fmt.Fprintln(r.out)
}

// GenerationSummary collects the statistics of one generation run
type GenerationSummary struct {
	DirectoriesScanned int
	TypesDiscovered    int
	ContextsFound      int
	GeneratedFiles     []string
	Diagnostics        diag.List
	Duration           time.Duration
}
