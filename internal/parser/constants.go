package parser

const (
	// RuntimePkgPath is the import path of the runtime package whose marker
	// types anchor eligibility and provider passthrough.
	RuntimePkgPath = "github.com/toyz/injectgen/pkg/inject"

	// EntityTypeName is the embeddable base that makes a struct eligible.
	EntityTypeName = "Entity"

	// ResolverTypeName is the embeddable base that marks a resolver context.
	ResolverTypeName = "Resolver"

	// ProviderTypeName is the service-provider type; fields declared with it
	// receive the provider itself instead of a resolved service.
	ProviderTypeName = "Provider"

	// GeneratedFileSuffix is the file name suffix of generated artifacts.
	// The scan skips these files so generation is idempotent.
	GeneratedFileSuffix = "_inject.gen.go"
)
