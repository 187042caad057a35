package inject

import (
	"fmt"
	"sync"
)

// UnresolvedError is the panic value raised by the required resolution
// methods when no service is registered for the requested identity.
type UnresolvedError struct {
	TypeName string
	Key      any
	Keyed    bool
}

func (e *UnresolvedError) Error() string {
	if e.Keyed {
		return fmt.Sprintf("inject: no service registered for %s with key %v", e.TypeName, e.Key)
	}
	return fmt.Sprintf("inject: no service registered for %s", e.TypeName)
}

// Registry is a reference Provider implementation backed by in-memory maps.
// It is intentionally read-mostly: register everything up front, then hand it
// to generated injectors. All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	plain map[string][]any
	keyed map[string]map[any][]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plain: make(map[string][]any),
		keyed: make(map[string]map[any][]any),
	}
}

// Register stores a service under a type identity and returns the registry
// for chaining. Registering the same identity again appends; GetService
// returns the first registration, GetServices returns all of them in order.
func (r *Registry) Register(typeName string, svc any) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plain[typeName] = append(r.plain[typeName], svc)
	return r
}

// RegisterKeyed stores a service under a type identity qualified by a key and
// returns the registry for chaining. Registering the same identity and key
// again appends; GetKeyedService returns the first registration.
func (r *Registry) RegisterKeyed(typeName string, key any, svc any) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	services, exists := r.keyed[typeName]
	if !exists {
		services = make(map[any][]any)
		r.keyed[typeName] = services
	}
	services[key] = append(services[key], svc)
	return r
}

// GetService implements Provider.
func (r *Registry) GetService(typeName string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services := r.plain[typeName]
	if len(services) == 0 {
		return nil, false
	}
	return services[0], true
}

// GetRequiredService implements Provider.
func (r *Registry) GetRequiredService(typeName string) any {
	svc, ok := r.GetService(typeName)
	if !ok {
		panic(&UnresolvedError{TypeName: typeName})
	}
	return svc
}

// GetKeyedService implements Provider.
func (r *Registry) GetKeyedService(typeName string, key any) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services, exists := r.keyed[typeName]
	if !exists {
		return nil, false
	}
	keyed := services[key]
	if len(keyed) == 0 {
		return nil, false
	}
	return keyed[0], true
}

// GetRequiredKeyedService implements Provider.
func (r *Registry) GetRequiredKeyedService(typeName string, key any) any {
	svc, ok := r.GetKeyedService(typeName, key)
	if !ok {
		panic(&UnresolvedError{TypeName: typeName, Key: key, Keyed: true})
	}
	return svc
}

// GetServices implements Provider.
func (r *Registry) GetServices(typeName string) []any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services := r.plain[typeName]
	out := make([]any, len(services))
	copy(out, services)
	return out
}

// GetKeyedServices implements Provider.
func (r *Registry) GetKeyedServices(typeName string, key any) []any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services, exists := r.keyed[typeName]
	if !exists {
		return nil
	}
	keyed := services[key]
	out := make([]any, len(keyed))
	copy(out, keyed)
	return out
}
