// Package parser builds the whole-program view of the target module: every
// type declaration of every scanned package, keyed by fully-qualified
// identity, plus the field extraction and eligibility walks that turn those
// declarations into generation metadata.
package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/injectgen/internal/diag"
)

// TypeDecl is one type declaration as seen by the scan, with enough of the
// surrounding syntax retained to resolve embedded bases and field types
// against the declaring file's import table.
type TypeDecl struct {
	PkgPath  string
	PkgName  string
	Name     string
	FileName string
	File     *ast.File
	Spec     *ast.TypeSpec
	// Struct is the struct literal when the declaration is a struct type,
	// nil otherwise.
	Struct *ast.StructType
	// Doc is the declaration's doc comment group, taken from the TypeSpec
	// when present and from the enclosing GenDecl otherwise.
	Doc      *ast.CommentGroup
	Location diag.Location
}

// Identity returns the fully-qualified identity of the declaration.
func (d *TypeDecl) Identity() string {
	return d.PkgPath + "." + d.Name
}

// Program is the aggregated AST of every scanned package. Declarations are
// de-duplicated by fully-qualified identity with first-wins semantics, so a
// re-scan of an overlapping directory never changes the program.
type Program struct {
	fset  *token.FileSet
	types map[string]*TypeDecl
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{
		fset:  token.NewFileSet(),
		types: make(map[string]*TypeDecl),
	}
}

// LoadDirectory parses every Go source file in a single directory and adds
// its type declarations under the given import path. Test files and
// previously generated files are skipped so generation is idempotent.
func (p *Program) LoadDirectory(dir, pkgPath string) error {
	pkgs, err := parser.ParseDir(p.fset, dir, func(info os.FileInfo) bool {
		name := info.Name()
		if strings.HasSuffix(name, "_test.go") {
			return false
		}
		if strings.HasSuffix(name, GeneratedFileSuffix) {
			return false
		}
		return true
	}, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(pkgs))
	for name := range pkgs {
		names = append(names, name)
	}
	if len(names) > 1 {
		sort.Strings(names)
		return fmt.Errorf("directory %s contains multiple packages: %s", dir, strings.Join(names, ", "))
	}

	for _, pkg := range pkgs {
		fileNames := make([]string, 0, len(pkg.Files))
		for fileName := range pkg.Files {
			fileNames = append(fileNames, fileName)
		}
		sort.Strings(fileNames)

		for _, fileName := range fileNames {
			p.addFile(pkgPath, pkg.Name, fileName, pkg.Files[fileName])
		}
	}

	return nil
}

// AddSource parses a single in-memory source file and adds its declarations.
// The file name only has to be unique within the program.
func (p *Program) AddSource(pkgPath, fileName, source string) error {
	file, err := parser.ParseFile(p.fset, fileName, source, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", fileName, err)
	}

	p.addFile(pkgPath, file.Name.Name, fileName, file)
	return nil
}

func (p *Program) addFile(pkgPath, pkgName, fileName string, file *ast.File) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}

			structType, _ := typeSpec.Type.(*ast.StructType)

			typeDecl := &TypeDecl{
				PkgPath:  pkgPath,
				PkgName:  pkgName,
				Name:     typeSpec.Name.Name,
				FileName: fileName,
				File:     file,
				Spec:     typeSpec,
				Struct:   structType,
				Doc:      doc,
				Location: p.location(typeSpec.Pos()),
			}

			identity := typeDecl.Identity()
			if _, exists := p.types[identity]; !exists {
				p.types[identity] = typeDecl
			}
		}
	}
}

// Lookup returns the declaration with the given fully-qualified identity.
func (p *Program) Lookup(identity string) (*TypeDecl, bool) {
	decl, ok := p.types[identity]
	return decl, ok
}

// Types returns every declaration sorted by fully-qualified identity. The
// ordering is byte-wise, so it is stable across runs and platforms.
func (p *Program) Types() []*TypeDecl {
	identities := make([]string, 0, len(p.types))
	for identity := range p.types {
		identities = append(identities, identity)
	}
	sort.Strings(identities)

	decls := make([]*TypeDecl, 0, len(identities))
	for _, identity := range identities {
		decls = append(decls, p.types[identity])
	}
	return decls
}

// location converts a token position into a diagnostic location.
func (p *Program) location(pos token.Pos) diag.Location {
	position := p.fset.Position(pos)
	return diag.Location{
		File:   filepath.ToSlash(position.Filename),
		Line:   position.Line,
		Column: position.Column,
	}
}
