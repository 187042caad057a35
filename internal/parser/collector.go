package parser

import (
	"github.com/toyz/injectgen/internal/diag"
	"github.com/toyz/injectgen/internal/markers"
	"github.com/toyz/injectgen/internal/models"
)

// Collector finds the eligible injectable types and the resolver contexts of
// a scanned program.
type Collector struct {
	prog      *Program
	extractor *Extractor
	markers   *markers.Parser
}

// NewCollector creates a collector over a scanned program.
func NewCollector(prog *Program) *Collector {
	return &Collector{
		prog:      prog,
		extractor: NewExtractor(prog),
		markers:   markers.NewParser(),
	}
}

// Collect returns every eligible injectable type with its extracted field
// metadata, sorted by fully-qualified identity. A type is eligible when it
// is a non-generic struct embedding the runtime entity base, directly or
// transitively, and does not opt out with an exclude marker. Types with no
// injectable fields are still eligible; they dispatch to a no-op injector.
func (c *Collector) Collect() ([]models.TypeCandidate, diag.List) {
	var (
		candidates []models.TypeCandidate
		diags      diag.List
	)

	for _, decl := range c.prog.Types() {
		if decl.Struct == nil {
			continue
		}
		if decl.Spec.TypeParams != nil && len(decl.Spec.TypeParams.List) > 0 {
			continue
		}
		if !c.prog.DerivesFrom(decl, RuntimePkgPath, EntityTypeName) {
			continue
		}
		if c.isExcluded(decl) {
			continue
		}

		fields, fieldDiags := c.extractor.ExtractFields(decl)
		diags = append(diags, fieldDiags...)

		candidates = append(candidates, models.TypeCandidate{
			PkgPath:  decl.PkgPath,
			PkgName:  decl.PkgName,
			Name:     decl.Name,
			FileName: decl.FileName,
			Fields:   fields,
			Location: decl.Location,
		})
	}

	return candidates, diags
}

// CollectContexts returns every resolver context declaration, sorted by
// fully-qualified identity. Generic contexts are returned with their type
// parameter count so emission can reject them with a diagnostic instead of
// dropping them silently.
func (c *Collector) CollectContexts() []models.ContextDecl {
	var contexts []models.ContextDecl

	for _, decl := range c.prog.Types() {
		if decl.Struct == nil {
			continue
		}
		if !c.prog.DerivesFrom(decl, RuntimePkgPath, ResolverTypeName) {
			continue
		}

		typeParams := 0
		if decl.Spec.TypeParams != nil {
			typeParams = len(decl.Spec.TypeParams.List)
		}

		contexts = append(contexts, models.ContextDecl{
			PkgPath:    decl.PkgPath,
			PkgName:    decl.PkgName,
			Name:       decl.Name,
			FileName:   decl.FileName,
			TypeParams: typeParams,
			Location:   decl.Location,
		})
	}

	return contexts
}

// isExcluded reports whether the declaration's doc comment carries an
// exclude marker.
func (c *Collector) isExcluded(decl *TypeDecl) bool {
	if decl.Doc == nil {
		return false
	}
	for _, comment := range decl.Doc.List {
		if !markers.IsMarkerComment(comment.Text) {
			continue
		}
		marker, err := c.markers.ParseMarker(comment.Text, decl.Location)
		if err != nil {
			continue
		}
		if marker.Type == markers.ExcludeMarker {
			return true
		}
	}
	return false
}
