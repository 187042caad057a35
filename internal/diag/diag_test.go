package diag

import (
	"strings"
	"testing"
)

func TestCodeIDsAreStable(t *testing.T) {
	tests := []struct {
		code Code
		id   string
	}{
		{MultipleMarkers, "IG001"},
		{UnexportedField, "IG002"},
		{UnexportedFieldType, "IG003"},
		{GenericContext, "IG004"},
		{MultipleContexts, "IG005"},
		{NoEligibleTypes, "IG006"},
		{ProviderKeyIgnored, "IG007"},
	}

	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("code %d: expected ID %s, got %s", tt.code, tt.id, got)
		}
	}
}

func TestCodeSeverities(t *testing.T) {
	if MultipleMarkers.Severity() != SeverityError {
		t.Error("multiple markers must be an error")
	}
	for _, code := range []Code{UnexportedField, UnexportedFieldType, GenericContext, ProviderKeyIgnored} {
		if code.Severity() != SeverityWarning {
			t.Errorf("%s must be a warning", code.ID())
		}
	}
	for _, code := range []Code{MultipleContexts, NoEligibleTypes} {
		if code.Severity() != SeverityInfo {
			t.Errorf("%s must be informational", code.ID())
		}
	}
}

func TestNewFormatsTemplate(t *testing.T) {
	d := New(MultipleMarkers, Location{File: "widget.go", Line: 12}, "Cache", "Widget")

	if d.Severity != SeverityError {
		t.Errorf("expected error severity, got %v", d.Severity)
	}
	if !strings.Contains(d.Message, "field Cache on Widget") {
		t.Errorf("unexpected message: %s", d.Message)
	}
	if got := d.String(); !strings.Contains(got, "widget.go:12") {
		t.Errorf("rendered diagnostic should carry the location, got: %s", got)
	}
}

func TestListAccumulation(t *testing.T) {
	var list List
	list.Add(MultipleMarkers, Location{}, "A", "T")
	list.Add(UnexportedField, Location{}, "b", "T")
	list.Add(NoEligibleTypes, Location{}, "Ctx")

	if len(list) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(list))
	}
	if !list.HasErrors() {
		t.Error("expected HasErrors to be true")
	}
	if got := list.CountBySeverity(SeverityWarning); got != 1 {
		t.Errorf("expected 1 warning, got %d", got)
	}
	if got := list.CountBySeverity(SeverityInfo); got != 1 {
		t.Errorf("expected 1 info, got %d", got)
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc      Location
		expected string
	}{
		{Location{}, "unknown location"},
		{Location{File: "a.go"}, "a.go"},
		{Location{File: "a.go", Line: 4}, "a.go:4"},
		{Location{File: "a.go", Line: 4, Column: 2}, "a.go:4:2"},
	}

	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}
