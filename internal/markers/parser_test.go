package markers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/injectgen/internal/diag"
	"github.com/toyz/injectgen/internal/models"
)

func TestIsMarkerComment(t *testing.T) {
	tests := []struct {
		comment  string
		expected bool
	}{
		{"//injectgen::inject", true},
		{"// injectgen::keyed \"k\"", true},
		{"//injectgen::exclude", true},
		{"// regular comment", false},
		{"//inject:: wrong prefix", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsMarkerComment(tt.comment), "comment: %q", tt.comment)
	}
}

func TestParseMarker_Inject(t *testing.T) {
	parser := NewParser()

	marker, err := parser.ParseMarker("//injectgen::inject", diag.Location{File: "widget.go", Line: 3})
	require.NoError(t, err)

	assert.Equal(t, InjectMarker, marker.Type)
	assert.False(t, marker.Key.Present())
	assert.True(t, marker.Required(), "Required defaults to true")
	assert.Equal(t, "widget.go", marker.Location.File)
}

func TestParseMarker_InjectOptional(t *testing.T) {
	parser := NewParser()

	marker, err := parser.ParseMarker("//injectgen::inject -Required=false", diag.Location{})
	require.NoError(t, err)

	assert.Equal(t, InjectMarker, marker.Type)
	assert.False(t, marker.Required())
}

func TestParseMarker_InjectBareRequiredFlag(t *testing.T) {
	parser := NewParser()

	marker, err := parser.ParseMarker("//injectgen::inject -Required", diag.Location{})
	require.NoError(t, err)
	assert.True(t, marker.Required())
}

func TestParseMarker_KeyedLiteralKinds(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name    string
		comment string
		kind    models.KeyKind
		check   func(t *testing.T, key models.KeyValue)
	}{
		{
			name:    "string key",
			comment: `//injectgen::keyed "primary"`,
			kind:    models.KeyString,
			check: func(t *testing.T, key models.KeyValue) {
				assert.Equal(t, "primary", key.Str)
			},
		},
		{
			name:    "escaped string key",
			comment: `//injectgen::keyed "with \"quotes\""`,
			kind:    models.KeyString,
			check: func(t *testing.T, key models.KeyValue) {
				assert.Equal(t, `with "quotes"`, key.Str)
			},
		},
		{
			name:    "bool key",
			comment: "//injectgen::keyed true",
			kind:    models.KeyBool,
			check: func(t *testing.T, key models.KeyValue) {
				assert.True(t, key.Bool)
			},
		},
		{
			name:    "int key",
			comment: "//injectgen::keyed 42",
			kind:    models.KeyInt,
			check: func(t *testing.T, key models.KeyValue) {
				assert.Equal(t, int64(42), key.Int)
			},
		},
		{
			name:    "negative int key",
			comment: "//injectgen::keyed -7",
			kind:    models.KeyInt,
			check: func(t *testing.T, key models.KeyValue) {
				assert.Equal(t, int64(-7), key.Int)
			},
		},
		{
			name:    "float key",
			comment: "//injectgen::keyed 2.5",
			kind:    models.KeyFloat,
			check: func(t *testing.T, key models.KeyValue) {
				assert.Equal(t, 2.5, key.Float)
			},
		},
		{
			name:    "rune key",
			comment: "//injectgen::keyed 'a'",
			kind:    models.KeyRune,
			check: func(t *testing.T, key models.KeyValue) {
				assert.Equal(t, 'a', key.Rune)
			},
		},
		{
			name:    "nil key",
			comment: "//injectgen::keyed nil",
			kind:    models.KeyNil,
			check:   func(t *testing.T, key models.KeyValue) {},
		},
		{
			name:    "unsupported identifier key",
			comment: "//injectgen::keyed SomeConstant",
			kind:    models.KeyUnsupported,
			check: func(t *testing.T, key models.KeyValue) {
				assert.Equal(t, "SomeConstant", key.Raw)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, err := parser.ParseMarker(tt.comment, diag.Location{})
			require.NoError(t, err)
			assert.Equal(t, KeyedMarker, marker.Type)
			assert.Equal(t, tt.kind, marker.Key.Kind)
			tt.check(t, marker.Key)
		})
	}
}

func TestParseMarker_KeyedWithRequiredFlag(t *testing.T) {
	parser := NewParser()

	marker, err := parser.ParseMarker(`//injectgen::keyed "cache" -Required=false`, diag.Location{})
	require.NoError(t, err)

	assert.Equal(t, KeyedMarker, marker.Type)
	assert.Equal(t, models.KeyString, marker.Key.Kind)
	assert.Equal(t, "cache", marker.Key.Str)
	assert.False(t, marker.Required())
}

func TestParseMarker_KeyedRequiresKey(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseMarker("//injectgen::keyed", diag.Location{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a key literal")
}

func TestParseMarker_InjectRejectsKey(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseMarker(`//injectgen::inject "oops"`, diag.Location{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not accept a key literal")
}

func TestParseMarker_Exclude(t *testing.T) {
	parser := NewParser()

	marker, err := parser.ParseMarker("//injectgen::exclude", diag.Location{})
	require.NoError(t, err)

	assert.Equal(t, ExcludeMarker, marker.Type)
	assert.False(t, marker.IsInjection())
}

func TestParseMarker_UnknownType(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseMarker("//injectgen::provide", diag.Location{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown marker type")
}

func TestParseMarker_UnknownParameter(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseMarker("//injectgen::inject -Lazy", diag.Location{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parameter 'Lazy'")
}
