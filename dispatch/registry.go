package dispatch

import "github.com/console-tools/console/usage"

// Registry is an ordered collection of flag or command specs. Flag names
// and command names live in independent registries; a program holds one
// of each. Registration order is preserved for help listing. Lookup is
// exact-match and case-sensitive.
type Registry struct {
	order    []*Spec
	byName   map[string]*Spec
	values   map[string]Value
	fallback Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Spec),
		values: make(map[string]Value),
	}
}

// SetFallback installs the handler used for specs registered with a nil
// Handler.
func (r *Registry) SetFallback(h Handler) {
	r.fallback = h
}

// Register adds a spec. The name must be non-empty and neither the name
// nor the short alias may collide with an existing entry.
func (r *Registry) Register(spec Spec) (*Spec, error) {
	if spec.Name == "" {
		return nil, usage.Empty()
	}
	if _, ok := r.byName[spec.Name]; ok {
		return nil, usage.Duplicate(spec.Name)
	}
	if spec.Short != "" {
		if _, ok := r.byName[spec.Short]; ok {
			return nil, usage.Duplicate(spec.Short)
		}
	}

	s := &spec
	r.order = append(r.order, s)
	r.byName[spec.Name] = s
	if spec.Short != "" {
		r.byName[spec.Short] = s
	}
	r.values[spec.Name] = spec.Default
	return s, nil
}

// Lookup resolves a token to its spec by name or short alias. Returns
// nil when the token is not registered.
func (r *Registry) Lookup(name string) *Spec {
	return r.byName[name]
}

// All returns every spec in registration order.
func (r *Registry) All() []*Spec {
	out := make([]*Spec, len(r.order))
	copy(out, r.order)
	return out
}

// Value returns the current value for a spec: the last value dispatch
// coerced for it, or its registered default if it never fired. The bool
// reports whether the name is registered at all.
func (r *Registry) Value(name string) (Value, bool) {
	spec := r.byName[name]
	if spec == nil {
		return Value{}, false
	}
	v, ok := r.values[spec.Name]
	if !ok {
		return spec.Default, true
	}
	return v, true
}

// Names returns all primary names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	for i, s := range r.order {
		out[i] = s.Name
	}
	return out
}

func (r *Registry) setValue(name string, v Value) {
	r.values[name] = v
}

func (r *Registry) handlerFor(spec *Spec) Handler {
	if spec.Handler != nil {
		return spec.Handler
	}
	return r.fallback
}
