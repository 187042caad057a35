// Package generator renders the per-context dispatch artifacts. Emission is
// deterministic: candidates are ordered by fully-qualified identity, imports
// are sorted, and nothing time- or environment-dependent is written, so
// re-running generation over unchanged sources is byte-identical.
package generator

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/injectgen/internal/diag"
	"github.com/toyz/injectgen/internal/models"
	"github.com/toyz/injectgen/internal/parser"
)

// Generator emits dispatch artifacts for resolver contexts.
type Generator struct{}

// New creates a code generator.
func New() *Generator {
	return &Generator{}
}

// EmitAll generates one artifact per usable resolver context. Generic
// contexts are skipped with a diagnostic; every remaining context receives
// the full dispatch table, with additional contexts past the first noted as
// informational diagnostics.
func (g *Generator) EmitAll(contexts []models.ContextDecl, candidates []models.TypeCandidate) ([]models.GeneratedArtifact, diag.List) {
	var (
		artifacts []models.GeneratedArtifact
		diags     diag.List
	)

	emitted := 0
	for _, ctx := range contexts {
		if ctx.TypeParams > 0 {
			diags.Add(diag.GenericContext, ctx.Location, ctx.Identity())
			continue
		}
		if emitted > 0 {
			diags.Add(diag.MultipleContexts, ctx.Location, ctx.Identity())
		}
		if len(candidates) == 0 {
			diags.Add(diag.NoEligibleTypes, ctx.Location, ctx.Identity())
		}
		artifacts = append(artifacts, g.Emit(ctx, candidates))
		emitted++
	}

	return artifacts, diags
}

// Emit generates the dispatch artifact for a single resolver context.
func (g *Generator) Emit(ctx models.ContextDecl, candidates []models.TypeCandidate) models.GeneratedArtifact {
	sorted := make([]models.TypeCandidate, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Identity() < sorted[j].Identity()
	})

	imports := newImportSet(ctx.PkgPath)
	runtimeQual := imports.qualify(parser.RuntimePkgPath)

	names := g.injectorNames(sorted)

	// Bodies are rendered before the import block so every package a type
	// reference pulls in is registered by the time imports are written.
	var body strings.Builder
	g.writeDispatch(&body, ctx, sorted, names, runtimeQual)
	for _, candidate := range sorted {
		if len(candidate.Fields) == 0 {
			continue
		}
		g.writeInjector(&body, candidate, names[candidate.Identity()], imports, runtimeQual)
	}

	var file strings.Builder
	file.WriteString("// Code generated by injectgen. DO NOT EDIT.\n")
	file.WriteString("// This file was automatically generated and should not be modified manually.\n\n")
	file.WriteString(fmt.Sprintf("package %s\n\n", ctx.PkgName))
	file.WriteString(imports.render())
	file.WriteString(body.String())

	fileName := strings.ToLower(ctx.Name) + parser.GeneratedFileSuffix
	return models.GeneratedArtifact{
		ContextName: ctx.Name,
		PackageName: ctx.PkgName,
		FilePath:    filepath.Join(filepath.Dir(ctx.FileName), fileName),
		Content:     file.String(),
	}
}

// injectorNames assigns a collision-free function name to every candidate
// that needs a generated injector. Names derive from the simple type name;
// distinct types sharing a simple name get a numeric suffix in identity
// order.
func (g *Generator) injectorNames(sorted []models.TypeCandidate) map[string]string {
	names := make(map[string]string, len(sorted))
	taken := make(map[string]bool, len(sorted))

	for _, candidate := range sorted {
		base := "inject" + candidate.Name
		name := base
		for suffix := 2; taken[name]; suffix++ {
			name = fmt.Sprintf("%s%d", base, suffix)
		}
		taken[name] = true
		names[candidate.Identity()] = name
	}
	return names
}

// writeDispatch renders the InjectorFor method on the resolver context.
func (g *Generator) writeDispatch(b *strings.Builder, ctx models.ContextDecl, sorted []models.TypeCandidate, names map[string]string, runtimeQual string) {
	if len(sorted) == 0 {
		b.WriteString(fmt.Sprintf("// InjectorFor returns the generated injector for a fully-qualified type\n// name. No eligible types were found, so every lookup falls back to the\n// caller's slow path.\nfunc (r *%s) InjectorFor(typeName string) %s.Injector {\n\treturn nil\n}\n", ctx.Name, runtimeQual))
		return
	}

	b.WriteString(fmt.Sprintf("// InjectorFor returns the generated injector for a fully-qualified type\n// name, or nil when the type is not part of the generated set.\nfunc (r *%s) InjectorFor(typeName string) %s.Injector {\n", ctx.Name, runtimeQual))
	b.WriteString("\tswitch typeName {\n")
	for _, candidate := range sorted {
		b.WriteString(fmt.Sprintf("\tcase %q:\n", candidate.Identity()))
		if len(candidate.Fields) == 0 {
			b.WriteString(fmt.Sprintf("\t\treturn %s.NoopInjector\n", runtimeQual))
		} else {
			b.WriteString(fmt.Sprintf("\t\treturn %s\n", names[candidate.Identity()]))
		}
	}
	b.WriteString("\tdefault:\n\t\treturn nil\n\t}\n}\n")
}

// writeInjector renders one generated injector function.
func (g *Generator) writeInjector(b *strings.Builder, candidate models.TypeCandidate, name string, imports *importSet, runtimeQual string) {
	targetRef := &models.TypeRef{Kind: models.NamedRef, PkgPath: candidate.PkgPath, Name: candidate.Name}
	targetType := renderType(targetRef, imports)

	b.WriteString(fmt.Sprintf("\n// %s assigns the declared services of %s.\nfunc %s(p %s.Provider, target any) {\n", name, candidate.Identity(), name, runtimeQual))
	b.WriteString(fmt.Sprintf("\tt := target.(*%s)\n", targetType))
	for _, field := range candidate.Fields {
		g.writeAssignment(b, field, imports, runtimeQual)
	}
	b.WriteString("}\n")
}

// writeAssignment renders the assignment statements for one field.
func (g *Generator) writeAssignment(b *strings.Builder, field models.FieldInjection, imports *importSet, runtimeQual string) {
	if field.ProviderPassthrough {
		b.WriteString(fmt.Sprintf("\tt.%s = p\n", field.Name))
		return
	}

	if field.Shape.Collection {
		g.writeCollectionAssignment(b, field, imports, runtimeQual)
		return
	}

	typeText := renderType(field.Type, imports)
	identity := field.Type.Identity()

	var call string
	if field.Key.Present() {
		keyText := formatKey(field.Key, runtimeQual)
		if field.Required {
			call = fmt.Sprintf("p.GetRequiredKeyedService(%q, %s)", identity, keyText)
		} else {
			call = fmt.Sprintf("p.GetKeyedService(%q, %s)", identity, keyText)
		}
	} else {
		if field.Required {
			call = fmt.Sprintf("p.GetRequiredService(%q)", identity)
		} else {
			call = fmt.Sprintf("p.GetService(%q)", identity)
		}
	}

	if field.Required {
		b.WriteString(fmt.Sprintf("\tt.%s = %s.(%s)\n", field.Name, call, typeText))
		return
	}
	b.WriteString(fmt.Sprintf("\tif svc, ok := %s; ok {\n\t\tt.%s = svc.(%s)\n\t}\n", call, field.Name, typeText))
}

// writeCollectionAssignment renders multi-result resolution for slice, array
// and sequence fields. Collections never fail resolution: an empty result
// leaves a growable list empty, an array untouched and a sequence that
// yields nothing.
func (g *Generator) writeCollectionAssignment(b *strings.Builder, field models.FieldInjection, imports *importSet, runtimeQual string) {
	elemType := renderType(field.Shape.Elem, imports)
	identity := field.Shape.Elem.Identity()

	var query string
	if field.Key.Present() {
		query = fmt.Sprintf("p.GetKeyedServices(%q, %s)", identity, formatKey(field.Key, runtimeQual))
	} else {
		query = fmt.Sprintf("p.GetServices(%q)", identity)
	}

	switch field.Shape.Materialization {
	case models.MaterializeGrowableList:
		listVar := lowerFirst(field.Name) + "List"
		b.WriteString(fmt.Sprintf("\t%s := make([]%s, 0)\n", listVar, elemType))
		b.WriteString(fmt.Sprintf("\tfor _, svc := range %s {\n", query))
		b.WriteString(fmt.Sprintf("\t\t%s = append(%s, svc.(%s))\n", listVar, listVar, elemType))
		b.WriteString("\t}\n")
		b.WriteString(fmt.Sprintf("\tt.%s = %s\n", field.Name, listVar))

	case models.MaterializeFixedArray:
		b.WriteString(fmt.Sprintf("\tfor i, svc := range %s {\n", query))
		b.WriteString(fmt.Sprintf("\t\tif i >= len(t.%s) {\n\t\t\tbreak\n\t\t}\n", field.Name))
		b.WriteString(fmt.Sprintf("\t\tt.%s[i] = svc.(%s)\n", field.Name, elemType))
		b.WriteString("\t}\n")

	case models.MaterializeNone:
		b.WriteString(fmt.Sprintf("\tt.%s = func(yield func(%s) bool) {\n", field.Name, elemType))
		b.WriteString(fmt.Sprintf("\t\tfor _, svc := range %s {\n", query))
		b.WriteString(fmt.Sprintf("\t\t\tif !yield(svc.(%s)) {\n\t\t\t\treturn\n\t\t\t}\n", elemType))
		b.WriteString("\t\t}\n\t}\n")
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
