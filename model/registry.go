package model

// A Registry is the static variable metadata table of one loaded model. It
// is built once from the model description, immediately after loading and
// before instantiation, and is never mutated afterward.
type Registry struct {
	vars  map[string]*VariableDescriptor
	names []string
}

// BuildRegistry builds a registry from a parsed model description.
func BuildRegistry(desc *Description) *Registry {
	r := &Registry{
		vars: make(map[string]*VariableDescriptor, len(desc.Variables)),
	}

	for i := range desc.Variables {
		v := &desc.Variables[i]
		r.vars[v.Name] = v
		r.names = append(r.names, v.Name)
	}

	return r
}

// Resolve returns the descriptor of a named variable. A name the model does
// not declare is a configuration error, never recovered automatically.
func (r *Registry) Resolve(name string) (*VariableDescriptor, error) {
	d, found := r.vars[name]
	if !found {
		return nil, &UnknownVariableError{Name: name}
	}

	return d, nil
}

// Has tells if the registry declares the named variable.
func (r *Registry) Has(name string) bool {
	_, found := r.vars[name]
	return found
}

// Names returns all declared variable names in declaration order.
func (r *Registry) Names() []string {
	return r.names
}

// Len returns the number of declared variables.
func (r *Registry) Len() int {
	return len(r.names)
}
