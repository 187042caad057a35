package parser

import (
	"go/ast"

	"github.com/toyz/injectgen/internal/diag"
	"github.com/toyz/injectgen/internal/markers"
	"github.com/toyz/injectgen/internal/models"
)

// Extractor turns an eligible type declaration into its ordered injection
// metadata, walking the declaration's own fields and then every embedded
// base reachable inside the program.
type Extractor struct {
	prog    *Program
	markers *markers.Parser
}

// NewExtractor creates an extractor over a scanned program.
func NewExtractor(prog *Program) *Extractor {
	return &Extractor{
		prog:    prog,
		markers: markers.NewParser(),
	}
}

// ExtractFields returns the validated field injections of a declaration in
// assignment order: the declaration's own fields first, then the fields of
// each embedded base, pre-order in declaration order. A field name seen on a
// nearer type shadows the same name on every base behind it, whether or not
// the nearer field is marked. Invalid fields are recorded as diagnostics and
// dropped; extraction never fails.
func (e *Extractor) ExtractFields(decl *TypeDecl) ([]models.FieldInjection, diag.List) {
	var (
		fields  []models.FieldInjection
		diags   diag.List
		seen    = make(map[string]bool)
		visited = make(map[string]bool)
	)
	e.walk(decl, seen, visited, &fields, &diags)
	return fields, diags
}

func (e *Extractor) walk(decl *TypeDecl, seen, visited map[string]bool, fields *[]models.FieldInjection, diags *diag.List) {
	if visited[decl.Identity()] {
		return
	}
	visited[decl.Identity()] = true

	if decl.Struct == nil || decl.Struct.Fields == nil {
		return
	}

	for _, field := range decl.Struct.Fields.List {
		for _, name := range field.Names {
			e.extractField(decl, field, name, seen, fields, diags)
		}
	}

	for _, base := range embeddedBases(decl) {
		baseDecl, ok := e.prog.Lookup(base[0] + "." + base[1])
		if !ok {
			continue
		}
		e.walk(baseDecl, seen, visited, fields, diags)
	}
}

func (e *Extractor) extractField(decl *TypeDecl, field *ast.Field, name *ast.Ident, seen map[string]bool, fields *[]models.FieldInjection, diags *diag.List) {
	if name.Name == "_" {
		return
	}

	// Shadowing claims the name even for unmarked fields: a redeclared name
	// on a nearer type hides the base field entirely.
	if seen[name.Name] {
		return
	}
	seen[name.Name] = true

	loc := e.prog.location(name.Pos())
	found := e.fieldMarkers(field, loc)
	if len(found) == 0 {
		return
	}
	if len(found) > 1 {
		diags.Add(diag.MultipleMarkers, loc, name.Name, decl.Identity())
		return
	}
	marker := found[0]

	if !ast.IsExported(name.Name) {
		diags.Add(diag.UnexportedField, loc, name.Name, decl.Identity())
		return
	}

	ref := e.prog.resolveType(decl.File, decl.PkgPath, field.Type)
	if hasUnexportedNamed(ref) {
		diags.Add(diag.UnexportedFieldType, loc, name.Name, decl.Identity())
		return
	}

	injection := models.FieldInjection{
		Name:     name.Name,
		Type:     ref,
		Key:      marker.Key,
		Required: marker.Required(),
		Shape:    ClassifyShape(ref),
	}

	if ref.IsNamed(RuntimePkgPath, ProviderTypeName) {
		injection.ProviderPassthrough = true
		if marker.Key.Present() {
			diags.Add(diag.ProviderKeyIgnored, loc, name.Name, decl.Identity())
		}
	}

	*fields = append(*fields, injection)
}

// fieldMarkers parses the injection markers attached to a field, scanning
// both the doc comment group and the trailing line comment. Comments that
// carry the prefix but fail to parse are skipped; only well-formed injection
// markers count toward the one-marker rule.
func (e *Extractor) fieldMarkers(field *ast.Field, loc diag.Location) []*markers.ParsedMarker {
	var found []*markers.ParsedMarker

	collect := func(group *ast.CommentGroup) {
		if group == nil {
			return
		}
		for _, comment := range group.List {
			if !markers.IsMarkerComment(comment.Text) {
				continue
			}
			marker, err := e.markers.ParseMarker(comment.Text, loc)
			if err != nil {
				continue
			}
			if marker.IsInjection() {
				found = append(found, marker)
			}
		}
	}

	collect(field.Doc)
	collect(field.Comment)
	return found
}
