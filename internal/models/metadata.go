// Package models defines the metadata structures passed between the scan,
// extraction and emission phases. Everything here is immutable after the
// whole-program scan that builds it; nothing survives a generation pass.
package models

import (
	"fmt"

	"github.com/toyz/injectgen/internal/diag"
)

// TypeRefKind enumerates the declared-type shapes the generator understands.
type TypeRefKind int

const (
	// NamedRef is a named type, predeclared when PkgPath is empty.
	NamedRef TypeRefKind = iota
	// PointerRef is *Elem.
	PointerRef
	// SliceRef is []Elem.
	SliceRef
	// ArrayRef is [Len]Elem.
	ArrayRef
	// MapRef is map[Key]Elem.
	MapRef
	// ChanRef is chan Elem.
	ChanRef
	// SeqRef is iter.Seq[Elem].
	SeqRef
	// OpaqueRef is any shape the generator does not model; Raw holds the
	// source text and is rendered verbatim.
	OpaqueRef
)

// TypeRef is a resolved type reference: every named type carries the import
// path of its declaring package so rendering no longer depends on the import
// aliases of the file the field was declared in.
type TypeRef struct {
	Kind TypeRefKind
	// PkgPath is the declaring package's import path for NamedRef; empty for
	// predeclared types.
	PkgPath string
	// Name is the type name for NamedRef.
	Name string
	// Elem is the element type for pointer, slice, array, chan and seq
	// references, and the value type for maps.
	Elem *TypeRef
	// Key is the key type for maps.
	Key *TypeRef
	// Len is the length expression text for arrays.
	Len string
	// Raw is the verbatim source text for OpaqueRef.
	Raw string
}

// Identity returns the canonical identity string used as a service-registry
// resolution key. It is stable across re-runs and independent of import
// aliasing at the declaration site.
func (t *TypeRef) Identity() string {
	switch t.Kind {
	case NamedRef:
		if t.PkgPath == "" {
			return t.Name
		}
		return t.PkgPath + "." + t.Name
	case PointerRef:
		return "*" + t.Elem.Identity()
	case SliceRef:
		return "[]" + t.Elem.Identity()
	case ArrayRef:
		return "[" + t.Len + "]" + t.Elem.Identity()
	case MapRef:
		return "map[" + t.Key.Identity() + "]" + t.Elem.Identity()
	case ChanRef:
		return "chan " + t.Elem.Identity()
	case SeqRef:
		return "iter.Seq[" + t.Elem.Identity() + "]"
	case OpaqueRef:
		return t.Raw
	default:
		return "unknown"
	}
}

// IsNamed reports whether the reference is exactly the named type given by
// import path and name.
func (t *TypeRef) IsNamed(pkgPath, name string) bool {
	return t.Kind == NamedRef && t.PkgPath == pkgPath && t.Name == name
}

// Materialization selects how a multi-result registry query is converted into
// the field's declared container shape.
type Materialization int

const (
	// MaterializeNone leaves the results as a lazy sequence.
	MaterializeNone Materialization = iota
	// MaterializeFixedArray forces the results into a fixed-size array.
	MaterializeFixedArray
	// MaterializeGrowableList forces the results into a growable list.
	MaterializeGrowableList
)

// String returns the string representation of the materialization strategy.
func (m Materialization) String() string {
	switch m {
	case MaterializeNone:
		return "none"
	case MaterializeFixedArray:
		return "fixed-array"
	case MaterializeGrowableList:
		return "growable-list"
	default:
		return "unknown"
	}
}

// Shape is the collection classification of one field's declared type.
type Shape struct {
	// Collection is false for scalar fields; Elem and Materialization are
	// only meaningful when it is true.
	Collection      bool
	Elem            *TypeRef
	Materialization Materialization
}

// Scalar is the shape of a single-service field.
var Scalar = Shape{}

// KeyKind enumerates the supported resolution-key literal kinds.
type KeyKind int

const (
	// KeyAbsent means the field is unkeyed.
	KeyAbsent KeyKind = iota
	// KeyNil is an explicitly supplied nil key.
	KeyNil
	KeyString
	KeyBool
	KeyInt
	KeyFloat
	KeyRune
	// KeyUnsupported marks a key literal the generator does not understand;
	// it formats to a sentinel value instead of failing emission.
	KeyUnsupported
)

// KeyValue is a resolution key as a tagged variant. At most one of the value
// fields is meaningful, selected by Kind.
type KeyValue struct {
	Kind  KeyKind
	Str   string
	Bool  bool
	Int   int64
	Float float64
	Rune  rune
	// Raw preserves the literal as written, for diagnostics and debugging.
	Raw string
}

// Present reports whether a key was supplied.
func (k KeyValue) Present() bool {
	return k.Kind != KeyAbsent
}

// FieldInjection is one injectable field of an eligible type, in validated
// and normalized form.
type FieldInjection struct {
	Name     string
	Type     *TypeRef
	Key      KeyValue
	Required bool
	Shape    Shape
	// ProviderPassthrough is true when the declared type is exactly the
	// service-provider type; key and required are ignored at emission.
	ProviderPassthrough bool
}

// TypeCandidate is one eligible injectable type discovered by the
// whole-program scan.
type TypeCandidate struct {
	PkgPath  string
	PkgName  string
	Name     string
	FileName string
	// Fields is in declaration-then-inheritance order and is emitted
	// verbatim as the assignment order.
	Fields   []FieldInjection
	Location diag.Location
}

// Identity returns the fully-qualified identity used as the dispatch-table
// match value and the de-duplication key.
func (c *TypeCandidate) Identity() string {
	return c.PkgPath + "." + c.Name
}

// ContextDecl is one resolver-context declaration the generator completes.
type ContextDecl struct {
	PkgPath  string
	PkgName  string
	Name     string
	FileName string
	// TypeParams counts declared type parameters; non-zero contexts are
	// rejected with a diagnostic.
	TypeParams int
	Location   diag.Location
}

// Identity returns the fully-qualified identity of the context declaration.
func (c *ContextDecl) Identity() string {
	return c.PkgPath + "." + c.Name
}

// GeneratedArtifact is the generated-source output for one resolver context.
type GeneratedArtifact struct {
	ContextName string
	PackageName string
	FilePath    string
	Content     string
}

// String returns a short description for logs.
func (a *GeneratedArtifact) String() string {
	return fmt.Sprintf("%s (%s)", a.FilePath, a.ContextName)
}
