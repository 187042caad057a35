package inject

import "context"

// Entity is the base type for structs that receive generated field injection.
// The generator considers a struct eligible when it embeds Entity, directly
// or through a chain of embedded structs.
type Entity struct{}

// Starter is implemented by entities that need to run startup logic once
// their fields have been injected.
type Starter interface {
	Start(ctx context.Context) error
}

// Stopper is implemented by entities that need to release resources on
// shutdown.
type Stopper interface {
	Stop(ctx context.Context) error
}

// Resolver is the base type for resolver-context structs. The generator
// completes every struct embedding Resolver with an InjectorFor method that
// maps a type identity to its generated injector.
type Resolver struct{}

// InjectorSource is the interface satisfied by resolver contexts after code
// generation.
type InjectorSource interface {
	// InjectorFor returns the generated injector for a fully-qualified type
	// identity, or nil when no injector was generated for it. A nil result
	// signals that the caller should fall back to reflection.
	InjectorFor(typeName string) Injector
}

// Apply runs the generated injector for typeName against target. It reports
// false when the source has no injector for the type, leaving target
// untouched so the caller can fall back to reflection.
func Apply(src InjectorSource, p Provider, typeName string, target any) bool {
	injector := src.InjectorFor(typeName)
	if injector == nil {
		return false
	}
	injector(p, target)
	return true
}
