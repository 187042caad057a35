package markers

import "fmt"

// Built-in marker schemas

// InjectMarkerSchema defines the schema for //injectgen::inject markers.
var InjectMarkerSchema = MarkerSchema{
	Type:        InjectMarker,
	Description: "Marks a field for plain (unkeyed) service injection",
	Parameters: map[string]ParameterSpec{
		"Required": {
			Type:         BoolType,
			Required:     false,
			DefaultValue: true,
			Description:  "Whether resolution failure aborts the injection call (default true)",
		},
	},
	Examples: []string{
		"//injectgen::inject",
		"//injectgen::inject -Required=false",
	},
}

// KeyedMarkerSchema defines the schema for //injectgen::keyed markers.
var KeyedMarkerSchema = MarkerSchema{
	Type:        KeyedMarker,
	Description: "Marks a field for keyed service injection",
	TakesKey:    true,
	KeyRequired: true,
	Parameters: map[string]ParameterSpec{
		"Required": {
			Type:         BoolType,
			Required:     false,
			DefaultValue: true,
			Description:  "Whether resolution failure aborts the injection call (default true)",
		},
	},
	Examples: []string{
		"//injectgen::keyed \"primary\"",
		"//injectgen::keyed 42 -Required=false",
		"//injectgen::keyed 'a'",
		"//injectgen::keyed true",
	},
}

// ExcludeMarkerSchema defines the schema for //injectgen::exclude markers.
var ExcludeMarkerSchema = MarkerSchema{
	Type:        ExcludeMarker,
	Description: "Removes a struct from injection eligibility",
	Parameters:  map[string]ParameterSpec{},
	Examples: []string{
		"//injectgen::exclude",
	},
}

var builtinSchemas = map[MarkerType]MarkerSchema{
	InjectMarker:  InjectMarkerSchema,
	KeyedMarker:   KeyedMarkerSchema,
	ExcludeMarker: ExcludeMarkerSchema,
}

// SchemaFor returns the schema registered for a marker type.
func SchemaFor(markerType MarkerType) (MarkerSchema, error) {
	schema, exists := builtinSchemas[markerType]
	if !exists {
		return MarkerSchema{}, fmt.Errorf("marker type %s is not registered", markerType)
	}
	return schema, nil
}

// validateAgainstSchema checks a parsed marker against its schema: unknown
// parameters are rejected, missing required parameters and key literals are
// reported. Defaults are not applied here; accessors supply them.
func validateAgainstSchema(marker *ParsedMarker) error {
	schema, err := SchemaFor(marker.Type)
	if err != nil {
		return err
	}

	if !schema.TakesKey && marker.Key.Present() {
		return fmt.Errorf("marker %s does not accept a key literal", marker.Type)
	}
	if schema.KeyRequired && !marker.Key.Present() {
		return fmt.Errorf("marker %s requires a key literal", marker.Type)
	}

	for paramName, paramValue := range marker.Parameters {
		paramSpec, exists := schema.Parameters[paramName]
		if !exists {
			return fmt.Errorf("unknown parameter '%s' for marker %s", paramName, marker.Type)
		}
		if paramSpec.Validator != nil {
			if err := paramSpec.Validator(paramValue); err != nil {
				return fmt.Errorf("parameter '%s' validation failed: %w", paramName, err)
			}
		}
	}

	return nil
}
