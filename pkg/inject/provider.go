package inject

// Provider resolves service instances by fully-qualified type identity.
// Identities use the form "<import path>.<TypeName>", matching the strings
// emitted into generated dispatch tables.
type Provider interface {
	// GetService returns the service registered for typeName, or ok=false
	// when nothing is registered.
	GetService(typeName string) (any, bool)

	// GetRequiredService returns the service registered for typeName and
	// panics with an *UnresolvedError when nothing is registered.
	GetRequiredService(typeName string) any

	// GetKeyedService returns the service registered for typeName under the
	// given key, or ok=false when nothing is registered.
	GetKeyedService(typeName string, key any) (any, bool)

	// GetRequiredKeyedService returns the keyed service and panics with an
	// *UnresolvedError when nothing is registered.
	GetRequiredKeyedService(typeName string, key any) any

	// GetServices returns every service registered for typeName, in
	// registration order. The result may be empty but is never nil for a
	// registered type.
	GetServices(typeName string) []any

	// GetKeyedServices returns every service registered for typeName under
	// the given key, in registration order.
	GetKeyedServices(typeName string, key any) []any
}

// Injector assigns all injectable fields of exactly one target type from the
// provider. Target is always a pointer to the concrete type the injector was
// generated for.
type Injector func(p Provider, target any)

// NoopInjector is the shared injector used for eligible types that declare no
// injectable fields. It is emitted into dispatch tables instead of a bespoke
// empty function per type.
func NoopInjector(Provider, any) {}

// UnsupportedKey is the sentinel emitted in place of a service key whose
// literal kind the generator does not understand. Resolution against it never
// matches a real registration.
var UnsupportedKey = unsupportedKey{}

type unsupportedKey struct{}

func (unsupportedKey) String() string { return "<unsupported key type>" }
