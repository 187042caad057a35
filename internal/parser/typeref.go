package parser

import (
	"bytes"
	"go/ast"
	"go/printer"

	"github.com/toyz/injectgen/internal/models"
)

// predeclared is the set of predeclared type names. Identifiers in this set
// resolve without a package path even though they are lower case.
var predeclared = map[string]bool{
	"bool": true, "byte": true, "complex64": true, "complex128": true,
	"error": true, "float32": true, "float64": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"rune": true, "string": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "any": true, "comparable": true,
}

// resolveType converts a field type expression into a resolved type
// reference. Named types are resolved against the declaring file's import
// table, so the result is independent of per-file aliasing. Shapes the
// generator does not model become opaque references carrying the source text.
func (p *Program) resolveType(file *ast.File, declPkgPath string, expr ast.Expr) *models.TypeRef {
	switch e := expr.(type) {
	case *ast.Ident:
		if predeclared[e.Name] {
			return &models.TypeRef{Kind: models.NamedRef, Name: e.Name}
		}
		return &models.TypeRef{Kind: models.NamedRef, PkgPath: declPkgPath, Name: e.Name}

	case *ast.SelectorExpr:
		qualifier, ok := e.X.(*ast.Ident)
		if !ok {
			return p.opaqueRef(expr)
		}
		path, ok := importPathFor(file, qualifier.Name)
		if !ok {
			return p.opaqueRef(expr)
		}
		return &models.TypeRef{Kind: models.NamedRef, PkgPath: path, Name: e.Sel.Name}

	case *ast.StarExpr:
		return &models.TypeRef{
			Kind: models.PointerRef,
			Elem: p.resolveType(file, declPkgPath, e.X),
		}

	case *ast.ArrayType:
		if e.Len == nil {
			return &models.TypeRef{
				Kind: models.SliceRef,
				Elem: p.resolveType(file, declPkgPath, e.Elt),
			}
		}
		return &models.TypeRef{
			Kind: models.ArrayRef,
			Len:  p.exprText(e.Len),
			Elem: p.resolveType(file, declPkgPath, e.Elt),
		}

	case *ast.MapType:
		return &models.TypeRef{
			Kind: models.MapRef,
			Key:  p.resolveType(file, declPkgPath, e.Key),
			Elem: p.resolveType(file, declPkgPath, e.Value),
		}

	case *ast.ChanType:
		if e.Dir != ast.SEND|ast.RECV {
			return p.opaqueRef(expr)
		}
		return &models.TypeRef{
			Kind: models.ChanRef,
			Elem: p.resolveType(file, declPkgPath, e.Value),
		}

	case *ast.IndexExpr:
		// iter.Seq[T] is the one generic instantiation the generator models,
		// as a lazily materialized collection.
		if base, ok := e.X.(*ast.SelectorExpr); ok {
			if qualifier, isIdent := base.X.(*ast.Ident); isIdent && base.Sel.Name == "Seq" {
				if path, found := importPathFor(file, qualifier.Name); found && path == "iter" {
					return &models.TypeRef{
						Kind: models.SeqRef,
						Elem: p.resolveType(file, declPkgPath, e.Index),
					}
				}
			}
		}
		return p.opaqueRef(expr)

	default:
		return p.opaqueRef(expr)
	}
}

func (p *Program) opaqueRef(expr ast.Expr) *models.TypeRef {
	return &models.TypeRef{Kind: models.OpaqueRef, Raw: p.exprText(expr)}
}

// exprText renders an expression back to source text.
func (p *Program) exprText(expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, p.fset, expr); err != nil {
		return ""
	}
	return buf.String()
}

// hasUnexportedNamed reports whether any named component of the reference is
// an unexported package-level type. Such types cannot be named from a
// generated file in another package.
func hasUnexportedNamed(ref *models.TypeRef) bool {
	if ref == nil {
		return false
	}
	if ref.Kind == models.NamedRef {
		if ref.PkgPath == "" || ref.Name == "" {
			return false
		}
		return !ast.IsExported(ref.Name)
	}
	return hasUnexportedNamed(ref.Elem) || hasUnexportedNamed(ref.Key)
}
