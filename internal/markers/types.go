// Package markers parses the //injectgen:: comment markers that drive field
// injection. Markers carry constructor-style arguments: an optional
// positional key literal followed by -Name=value parameters, validated
// against a per-marker schema.
package markers

import (
	"fmt"

	"github.com/toyz/injectgen/internal/diag"
	"github.com/toyz/injectgen/internal/models"
)

// Prefix is the comment prefix shared by every marker.
const Prefix = "injectgen::"

// MarkerType identifies one marker in the recognized set.
type MarkerType int

const (
	// InjectMarker is plain injection: //injectgen::inject [-Required=bool]
	InjectMarker MarkerType = iota
	// KeyedMarker is keyed injection: //injectgen::keyed <key> [-Required=bool]
	KeyedMarker
	// ExcludeMarker removes a type from eligibility: //injectgen::exclude
	ExcludeMarker
)

// String returns the marker name as written in source.
func (m MarkerType) String() string {
	switch m {
	case InjectMarker:
		return "inject"
	case KeyedMarker:
		return "keyed"
	case ExcludeMarker:
		return "exclude"
	default:
		return "unknown"
	}
}

// ParseMarkerType converts a marker name to its MarkerType.
func ParseMarkerType(s string) (MarkerType, error) {
	switch s {
	case "inject":
		return InjectMarker, nil
	case "keyed":
		return KeyedMarker, nil
	case "exclude":
		return ExcludeMarker, nil
	default:
		return 0, fmt.Errorf("unknown marker type: %s", s)
	}
}

// ParsedMarker is one fully parsed marker with typed parameters.
type ParsedMarker struct {
	Type       MarkerType
	Key        models.KeyValue
	Parameters map[string]any
	Location   diag.Location
	Raw        string
}

// Required returns the -Required parameter, defaulting to true when absent.
func (m *ParsedMarker) Required() bool {
	if value, exists := m.Parameters["Required"]; exists {
		if boolValue, ok := value.(bool); ok {
			return boolValue
		}
	}
	return true
}

// IsInjection reports whether the marker is one of the field-injection
// markers (as opposed to the type-level exclusion marker).
func (m *ParsedMarker) IsInjection() bool {
	return m.Type == InjectMarker || m.Type == KeyedMarker
}

// ParameterType represents the type of a marker parameter.
type ParameterType int

const (
	StringType ParameterType = iota
	BoolType
	IntType
)

// String returns the string representation of the parameter type.
func (p ParameterType) String() string {
	switch p {
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	default:
		return "unknown"
	}
}

// ParameterSpec defines the specification for a marker parameter.
type ParameterSpec struct {
	Type         ParameterType
	Required     bool
	DefaultValue any
	Description  string
	Validator    func(any) error
}

// MarkerSchema defines the accepted surface of one marker type.
type MarkerSchema struct {
	Type        MarkerType
	Description string
	// TakesKey is true when the marker accepts a positional key literal.
	TakesKey bool
	// KeyRequired is true when the positional key literal must be present.
	KeyRequired bool
	Parameters  map[string]ParameterSpec
	Examples    []string
}
