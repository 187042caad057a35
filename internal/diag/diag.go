// Package diag defines the typed diagnostic catalog shared by every analysis
// and generation phase. Diagnostics are accumulated as data and returned next
// to partial results; a recorded diagnostic never aborts a generation pass.
package diag

import "fmt"

// Severity classifies how a diagnostic should be surfaced.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Code identifies one diagnostic condition. Codes are stable: they are part
// of the tool's output contract and must not be renumbered.
type Code int

const (
	// MultipleMarkers reports a field carrying more than one inject marker.
	MultipleMarkers Code = iota + 1
	// UnexportedField reports an inject marker on an unexported field.
	UnexportedField
	// UnexportedFieldType reports a marked field whose declared type cannot
	// be named from generated code.
	UnexportedFieldType
	// GenericContext reports a resolver context declaring type parameters.
	GenericContext
	// MultipleContexts reports that more than one resolver context exists.
	MultipleContexts
	// NoEligibleTypes reports a context for which no eligible type was found.
	NoEligibleTypes
	// ProviderKeyIgnored reports a service key on a provider-passthrough field.
	ProviderKeyIgnored
)

// ID returns the stable printable identifier, e.g. "IG001".
func (c Code) ID() string {
	return fmt.Sprintf("IG%03d", int(c))
}

// Severity returns the severity tier of the code.
func (c Code) Severity() Severity {
	switch c {
	case MultipleMarkers:
		return SeverityError
	case UnexportedField, UnexportedFieldType, GenericContext, ProviderKeyIgnored:
		return SeverityWarning
	case MultipleContexts, NoEligibleTypes:
		return SeverityInfo
	default:
		return SeverityError
	}
}

// template returns the message template for the code. Substitution arguments
// are documented per code so every emission site passes the same shape.
func (c Code) template() string {
	switch c {
	case MultipleMarkers: // field, owning type
		return "field %s on %s has multiple inject markers"
	case UnexportedField: // field, owning type
		return "field %s on %s is unexported and cannot be assigned by a generated injector"
	case UnexportedFieldType: // field, owning type
		return "field %s on %s has an unexported type and cannot be assigned by a generated injector"
	case GenericContext: // context
		return "resolver context %s declares type parameters and is not supported"
	case MultipleContexts: // context
		return "multiple resolver contexts found; %s also receives the full dispatch table"
	case NoEligibleTypes: // context
		return "no eligible types found for context %s"
	case ProviderKeyIgnored: // field, owning type
		return "service key on field %s of %s is ignored for provider injection"
	default:
		return "unknown diagnostic"
	}
}

// Location points at the source declaration a diagnostic is anchored to.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted file:line:column representation.
func (l Location) String() string {
	if l.File == "" {
		return "unknown location"
	}
	if l.Line == 0 {
		return l.File
	}
	if l.Column == 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is one recorded condition with its rendered message.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Location Location
}

// New builds a diagnostic from the code's message template and substitution
// arguments.
func New(code Code, loc Location, args ...any) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: code.Severity(),
		Message:  fmt.Sprintf(code.template(), args...),
		Location: loc,
	}
}

// String renders the diagnostic the way the CLI reporter prints it.
func (d Diagnostic) String() string {
	if d.Location.File == "" {
		return fmt.Sprintf("%s %s: %s", d.Code.ID(), d.Severity, d.Message)
	}
	return fmt.Sprintf("%s %s: %s (%s)", d.Code.ID(), d.Severity, d.Message, d.Location)
}

// List accumulates diagnostics across a generation pass.
type List []Diagnostic

// Add appends a diagnostic built from code, location and arguments.
func (l *List) Add(code Code, loc Location, args ...any) {
	*l = append(*l, New(code, loc, args...))
}

// CountBySeverity returns how many diagnostics carry the given severity.
func (l List) CountBySeverity(s Severity) int {
	count := 0
	for _, d := range l {
		if d.Severity == s {
			count++
		}
	}
	return count
}

// HasErrors reports whether any error-tier diagnostic was recorded.
func (l List) HasErrors() bool {
	return l.CountBySeverity(SeverityError) > 0
}
