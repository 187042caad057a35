package markers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/injectgen/internal/diag"
	"github.com/toyz/injectgen/internal/models"
)

// markerLine is the participle grammar root for one marker comment.
type markerLine struct {
	Name string       `parser:"Comment Prefix Separator @Ident"`
	Key  *keyLiteral  `parser:"@@?"`
	Args []markerArg  `parser:"@@*"`
}

// keyLiteral is the positional resolution-key literal. Alternatives are
// ordered so the reserved words true/false/nil win over the bare-identifier
// fallback, which classifies as an unsupported key kind.
type keyLiteral struct {
	Str   *string `parser:"@String"`
	Rune  *string `parser:"| @Char"`
	True  bool    `parser:"| @'true'"`
	False bool    `parser:"| @'false'"`
	Nil   bool    `parser:"| @'nil'"`
	Num   *string `parser:"| @Number"`
	Ident *string `parser:"| @Ident"`
}

// markerArg is one -Name or -Name=value argument.
type markerArg struct {
	Name  string  `parser:"Dash @Ident"`
	Value *string `parser:"(Equals @(Ident | Number | String))?"`
}

// Parser parses marker comments against the built-in schemas.
type Parser struct {
	parser *participle.Parser[markerLine]
}

// NewParser creates a marker parser.
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//`},
		{Name: "Prefix", Pattern: `injectgen`},
		{Name: "Separator", Pattern: `::`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Char", Pattern: `'(\\.|[^'])'`},
		{Name: "Number", Pattern: `-?[0-9]+(\.[0-9]+)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[markerLine](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{parser: parser}
}

// IsMarkerComment reports whether a comment line carries the marker prefix.
// It is a cheap pre-filter; ParseMarker performs the real validation.
func IsMarkerComment(comment string) bool {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	return strings.HasPrefix(text, Prefix)
}

// ParseMarker parses a single marker comment. The comment must carry the
// injectgen:: prefix; use IsMarkerComment to filter beforehand.
func (p *Parser) ParseMarker(comment string, location diag.Location) (*ParsedMarker, error) {
	line, err := p.parser.ParseString(location.File, strings.TrimSpace(comment))
	if err != nil {
		return nil, fmt.Errorf("failed to parse marker: %w", err)
	}

	markerType, err := ParseMarkerType(line.Name)
	if err != nil {
		return nil, err
	}

	marker := &ParsedMarker{
		Type:       markerType,
		Key:        convertKeyLiteral(line.Key),
		Parameters: make(map[string]any),
		Location:   location,
		Raw:        strings.TrimSpace(comment),
	}

	schema, err := SchemaFor(markerType)
	if err != nil {
		return nil, err
	}

	for _, arg := range line.Args {
		marker.Parameters[arg.Name] = convertArgValue(schema, arg)
	}

	if err := validateAgainstSchema(marker); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	return marker, nil
}

// convertKeyLiteral converts the grammar's key literal into the tagged
// KeyValue variant attached to field metadata.
func convertKeyLiteral(key *keyLiteral) models.KeyValue {
	if key == nil {
		return models.KeyValue{Kind: models.KeyAbsent}
	}

	switch {
	case key.Str != nil:
		unquoted, err := strconv.Unquote(*key.Str)
		if err != nil {
			return models.KeyValue{Kind: models.KeyUnsupported, Raw: *key.Str}
		}
		return models.KeyValue{Kind: models.KeyString, Str: unquoted, Raw: *key.Str}
	case key.Rune != nil:
		unquoted, err := strconv.Unquote(*key.Rune)
		if err != nil || unquoted == "" {
			return models.KeyValue{Kind: models.KeyUnsupported, Raw: *key.Rune}
		}
		return models.KeyValue{Kind: models.KeyRune, Rune: []rune(unquoted)[0], Raw: *key.Rune}
	case key.True:
		return models.KeyValue{Kind: models.KeyBool, Bool: true, Raw: "true"}
	case key.False:
		return models.KeyValue{Kind: models.KeyBool, Bool: false, Raw: "false"}
	case key.Nil:
		return models.KeyValue{Kind: models.KeyNil, Raw: "nil"}
	case key.Num != nil:
		raw := *key.Num
		if strings.Contains(raw, ".") {
			if floatVal, err := strconv.ParseFloat(raw, 64); err == nil {
				return models.KeyValue{Kind: models.KeyFloat, Float: floatVal, Raw: raw}
			}
		} else if intVal, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return models.KeyValue{Kind: models.KeyInt, Int: intVal, Raw: raw}
		}
		return models.KeyValue{Kind: models.KeyUnsupported, Raw: raw}
	case key.Ident != nil:
		// Bare identifiers are not a supported key kind; they survive to
		// emission as the unsupported-key sentinel.
		return models.KeyValue{Kind: models.KeyUnsupported, Raw: *key.Ident}
	default:
		return models.KeyValue{Kind: models.KeyAbsent}
	}
}

// convertArgValue converts one -Name=value argument per the schema's
// parameter type. A bare boolean flag means true; a bare flag on a parameter
// with a default means the default.
func convertArgValue(schema MarkerSchema, arg markerArg) any {
	spec, known := schema.Parameters[arg.Name]

	if arg.Value == nil {
		if known && spec.Type == BoolType {
			return true
		}
		if known && spec.DefaultValue != nil {
			return spec.DefaultValue
		}
		return true
	}

	raw := unquoteIfQuoted(*arg.Value)
	if !known {
		return raw
	}

	switch spec.Type {
	case BoolType:
		if boolVal, err := strconv.ParseBool(raw); err == nil {
			return boolVal
		}
		return raw
	case IntType:
		if intVal, err := strconv.Atoi(raw); err == nil {
			return intVal
		}
		return raw
	default:
		return raw
	}
}

func unquoteIfQuoted(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if unquoted, err := strconv.Unquote(s); err == nil {
			return unquoted
		}
	}
	return s
}
