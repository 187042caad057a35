package parser

import (
	"go/ast"
	"strconv"
	"strings"
)

// importPathFor resolves a package qualifier used in a file to the import
// path it names. The local name is the import alias when one is declared and
// the last path segment otherwise.
func importPathFor(file *ast.File, qualifier string) (string, bool) {
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		localName := lastPathSegment(path)
		if spec.Name != nil {
			localName = spec.Name.Name
		}

		if localName == qualifier {
			return path, true
		}
	}
	return "", false
}

func lastPathSegment(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// resolveEmbedded resolves an embedded field expression to the package path
// and name of the embedded type. Pointer embedding and generic instantiation
// are unwrapped to the underlying named type.
func resolveEmbedded(file *ast.File, declPkgPath string, expr ast.Expr) (string, string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		return declPkgPath, e.Name, true
	case *ast.StarExpr:
		return resolveEmbedded(file, declPkgPath, e.X)
	case *ast.IndexExpr:
		return resolveEmbedded(file, declPkgPath, e.X)
	case *ast.IndexListExpr:
		return resolveEmbedded(file, declPkgPath, e.X)
	case *ast.SelectorExpr:
		qualifier, ok := e.X.(*ast.Ident)
		if !ok {
			return "", "", false
		}
		path, ok := importPathFor(file, qualifier.Name)
		if !ok {
			return "", "", false
		}
		return path, e.Sel.Name, true
	default:
		return "", "", false
	}
}

// embeddedBases returns the embedded fields of a struct declaration resolved
// to (package path, name) pairs, in declaration order.
func embeddedBases(decl *TypeDecl) [][2]string {
	if decl.Struct == nil || decl.Struct.Fields == nil {
		return nil
	}

	var bases [][2]string
	for _, field := range decl.Struct.Fields.List {
		if len(field.Names) != 0 {
			continue
		}
		pkgPath, name, ok := resolveEmbedded(decl.File, decl.PkgPath, field.Type)
		if !ok {
			continue
		}
		bases = append(bases, [2]string{pkgPath, name})
	}
	return bases
}

// DerivesFrom reports whether a declaration embeds the named type, directly
// or through a chain of embedded structs declared inside the program. Bases
// outside the program terminate their branch of the walk.
func (p *Program) DerivesFrom(decl *TypeDecl, pkgPath, name string) bool {
	visited := make(map[string]bool)
	return p.derivesFrom(decl, pkgPath, name, visited)
}

func (p *Program) derivesFrom(decl *TypeDecl, pkgPath, name string, visited map[string]bool) bool {
	if visited[decl.Identity()] {
		return false
	}
	visited[decl.Identity()] = true

	for _, base := range embeddedBases(decl) {
		if base[0] == pkgPath && base[1] == name {
			return true
		}
		baseDecl, ok := p.Lookup(base[0] + "." + base[1])
		if !ok {
			continue
		}
		if p.derivesFrom(baseDecl, pkgPath, name, visited) {
			return true
		}
	}
	return false
}
