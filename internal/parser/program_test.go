package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/injectgen/internal/models"
)

func TestProgram_AddSourceAndLookup(t *testing.T) {
	prog := NewProgram()
	err := prog.AddSource("example.com/app", "app.go", `package app

type Database struct{}

type Cache struct{}
`)
	require.NoError(t, err)

	decl, ok := prog.Lookup("example.com/app.Database")
	require.True(t, ok)
	assert.Equal(t, "Database", decl.Name)
	assert.Equal(t, "app", decl.PkgName)
	assert.Equal(t, "example.com/app.Database", decl.Identity())

	_, ok = prog.Lookup("example.com/app.Missing")
	assert.False(t, ok)
}

func TestProgram_DuplicateIdentityFirstWins(t *testing.T) {
	prog := NewProgram()
	require.NoError(t, prog.AddSource("example.com/app", "a.go", `package app

type Service struct{ First bool }
`))
	require.NoError(t, prog.AddSource("example.com/app", "b.go", `package app

type Service struct{ Second bool }
`))

	decl, ok := prog.Lookup("example.com/app.Service")
	require.True(t, ok)
	assert.Equal(t, "a.go", decl.FileName)
}

func TestProgram_TypesSortedByIdentity(t *testing.T) {
	prog := NewProgram()
	require.NoError(t, prog.AddSource("example.com/zeta", "z.go", `package zeta

type Worker struct{}
`))
	require.NoError(t, prog.AddSource("example.com/alpha", "a.go", `package alpha

type Worker struct{}

type Broker struct{}
`))

	var identities []string
	for _, decl := range prog.Types() {
		identities = append(identities, decl.Identity())
	}

	assert.Equal(t, []string{
		"example.com/alpha.Broker",
		"example.com/alpha.Worker",
		"example.com/zeta.Worker",
	}, identities)
}

func TestDerivesFrom(t *testing.T) {
	prog := NewProgram()
	require.NoError(t, prog.AddSource("example.com/app", "app.go", `package app

import (
	di "github.com/toyz/injectgen/pkg/inject"
)

type Base struct {
	di.Entity
}

type Middle struct {
	Base
}

type Leaf struct {
	*Middle
}

type Unrelated struct{}
`))

	lookup := func(identity string) *TypeDecl {
		decl, ok := prog.Lookup(identity)
		require.True(t, ok)
		return decl
	}

	assert.True(t, prog.DerivesFrom(lookup("example.com/app.Base"), RuntimePkgPath, EntityTypeName))
	assert.True(t, prog.DerivesFrom(lookup("example.com/app.Middle"), RuntimePkgPath, EntityTypeName))
	assert.True(t, prog.DerivesFrom(lookup("example.com/app.Leaf"), RuntimePkgPath, EntityTypeName))
	assert.False(t, prog.DerivesFrom(lookup("example.com/app.Unrelated"), RuntimePkgPath, EntityTypeName))
}

func TestDerivesFrom_CycleTerminates(t *testing.T) {
	prog := NewProgram()
	require.NoError(t, prog.AddSource("example.com/app", "app.go", `package app

type A struct {
	B
}

type B struct {
	A
}
`))

	decl, ok := prog.Lookup("example.com/app.A")
	require.True(t, ok)
	assert.False(t, prog.DerivesFrom(decl, RuntimePkgPath, EntityTypeName))
}

func TestResolveType(t *testing.T) {
	prog := NewProgram()
	require.NoError(t, prog.AddSource("example.com/app", "app.go", `package app

import (
	"iter"

	storage "example.com/other/store"
)

type Holder struct {
	A string
	B *storage.Client
	C []storage.Client
	D [4]storage.Client
	E iter.Seq[storage.Client]
	F map[string]int
	G chan int
	H func() error
	I <-chan int
}
`))

	decl, ok := prog.Lookup("example.com/app.Holder")
	require.True(t, ok)

	refs := make(map[string]*models.TypeRef)
	for _, field := range decl.Struct.Fields.List {
		refs[field.Names[0].Name] = prog.resolveType(decl.File, decl.PkgPath, field.Type)
	}

	assert.Equal(t, models.NamedRef, refs["A"].Kind)
	assert.Equal(t, "string", refs["A"].Identity())

	assert.Equal(t, models.PointerRef, refs["B"].Kind)
	assert.Equal(t, "*example.com/other/store.Client", refs["B"].Identity())

	assert.Equal(t, models.SliceRef, refs["C"].Kind)
	assert.Equal(t, "[]example.com/other/store.Client", refs["C"].Identity())

	assert.Equal(t, models.ArrayRef, refs["D"].Kind)
	assert.Equal(t, "4", refs["D"].Len)
	assert.Equal(t, "[4]example.com/other/store.Client", refs["D"].Identity())

	assert.Equal(t, models.SeqRef, refs["E"].Kind)
	assert.Equal(t, "iter.Seq[example.com/other/store.Client]", refs["E"].Identity())

	assert.Equal(t, models.MapRef, refs["F"].Kind)
	assert.Equal(t, "map[string]int", refs["F"].Identity())

	assert.Equal(t, models.ChanRef, refs["G"].Kind)
	assert.Equal(t, "chan int", refs["G"].Identity())

	assert.Equal(t, models.OpaqueRef, refs["H"].Kind)
	assert.Equal(t, "func() error", refs["H"].Identity())

	assert.Equal(t, models.OpaqueRef, refs["I"].Kind)
}

func TestClassifyShape(t *testing.T) {
	elem := &models.TypeRef{Kind: models.NamedRef, PkgPath: "example.com/app", Name: "Service"}

	tests := []struct {
		name            string
		ref             *models.TypeRef
		collection      bool
		materialization models.Materialization
	}{
		{"scalar named", elem, false, models.MaterializeNone},
		{"pointer is scalar", &models.TypeRef{Kind: models.PointerRef, Elem: elem}, false, models.MaterializeNone},
		{"map falls back to scalar", &models.TypeRef{Kind: models.MapRef, Key: elem, Elem: elem}, false, models.MaterializeNone},
		{"slice", &models.TypeRef{Kind: models.SliceRef, Elem: elem}, true, models.MaterializeGrowableList},
		{"array", &models.TypeRef{Kind: models.ArrayRef, Len: "3", Elem: elem}, true, models.MaterializeFixedArray},
		{"seq", &models.TypeRef{Kind: models.SeqRef, Elem: elem}, true, models.MaterializeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := ClassifyShape(tt.ref)
			assert.Equal(t, tt.collection, shape.Collection)
			if tt.collection {
				assert.Equal(t, tt.materialization, shape.Materialization)
				assert.Equal(t, tt.ref.Elem, shape.Elem)
			}
		})
	}
}

func TestHasUnexportedNamed(t *testing.T) {
	exported := &models.TypeRef{Kind: models.NamedRef, PkgPath: "example.com/app", Name: "Service"}
	unexported := &models.TypeRef{Kind: models.NamedRef, PkgPath: "example.com/app", Name: "service"}
	builtin := &models.TypeRef{Kind: models.NamedRef, Name: "string"}

	assert.False(t, hasUnexportedNamed(exported))
	assert.False(t, hasUnexportedNamed(builtin))
	assert.True(t, hasUnexportedNamed(unexported))
	assert.True(t, hasUnexportedNamed(&models.TypeRef{Kind: models.SliceRef, Elem: unexported}))
	assert.False(t, hasUnexportedNamed(&models.TypeRef{Kind: models.PointerRef, Elem: exported}))
}
