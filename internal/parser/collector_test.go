package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collectorFixture = `package app

import "github.com/toyz/injectgen/pkg/inject"

type Database struct{}

type Repository struct {
	inject.Entity

	//injectgen::inject
	DB *Database
}

type Empty struct {
	inject.Entity
}

//injectgen::exclude
type OptedOut struct {
	inject.Entity

	//injectgen::inject
	DB *Database
}

type Generic[T any] struct {
	inject.Entity
}

type Plain struct {
	//injectgen::inject
	DB *Database
}

type AppContext struct {
	inject.Resolver
}

type GenericContext[T any] struct {
	inject.Resolver
}
`

func TestCollector_Collect(t *testing.T) {
	prog := NewProgram()
	require.NoError(t, prog.AddSource("example.com/app", "app.go", collectorFixture))

	candidates, diags := NewCollector(prog).Collect()
	require.Empty(t, diags)

	var identities []string
	for _, candidate := range candidates {
		identities = append(identities, candidate.Identity())
	}

	// Sorted by identity; exclusion, genericity and the missing base each
	// remove their type, while the field-less type stays eligible.
	assert.Equal(t, []string{
		"example.com/app.Empty",
		"example.com/app.Repository",
	}, identities)

	require.Len(t, candidates[1].Fields, 1)
	assert.Equal(t, "DB", candidates[1].Fields[0].Name)
	assert.Empty(t, candidates[0].Fields)
}

func TestCollector_CollectContexts(t *testing.T) {
	prog := NewProgram()
	require.NoError(t, prog.AddSource("example.com/app", "app.go", collectorFixture))

	contexts := NewCollector(prog).CollectContexts()
	require.Len(t, contexts, 2)

	assert.Equal(t, "AppContext", contexts[0].Name)
	assert.Equal(t, 0, contexts[0].TypeParams)
	assert.Equal(t, "GenericContext", contexts[1].Name)
	assert.Equal(t, 1, contexts[1].TypeParams)
}

func TestCollector_TransitiveEligibility(t *testing.T) {
	prog := NewProgram()
	require.NoError(t, prog.AddSource("example.com/app", "base.go", `package app

import "github.com/toyz/injectgen/pkg/inject"

type Base struct {
	inject.Entity
}
`))
	require.NoError(t, prog.AddSource("example.com/app", "leaf.go", `package app

type Leaf struct {
	Base
}
`))

	candidates, diags := NewCollector(prog).Collect()
	require.Empty(t, diags)
	require.Len(t, candidates, 2)
	assert.Equal(t, "example.com/app.Base", candidates[0].Identity())
	assert.Equal(t, "example.com/app.Leaf", candidates[1].Identity())
}

func TestCollector_DiagnosticsAccumulate(t *testing.T) {
	prog := NewProgram()
	require.NoError(t, prog.AddSource("example.com/app", "app.go", `package app

import "github.com/toyz/injectgen/pkg/inject"

type Database struct{}

type Service struct {
	inject.Entity

	//injectgen::inject
	db *Database
	//injectgen::inject
	DB *Database
}
`))

	candidates, diags := NewCollector(prog).Collect()
	require.Len(t, candidates, 1)
	require.Len(t, candidates[0].Fields, 1)
	assert.Equal(t, "DB", candidates[0].Fields[0].Name)
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags.CountBySeverity(diags[0].Severity))
}
