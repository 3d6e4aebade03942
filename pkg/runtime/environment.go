package runtime

import "sort"

// Environment is one frame in the scope chain of an algorithm invocation.
// Lookup walks outward through parents; writes always target the current
// frame, so a callee that rebinds an inherited name shadows it without
// mutating the caller's frame.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new frame, optionally chained under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the enclosing frame (nil at the globals root).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define inserts or shadows a binding in the current frame.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, &NameResolutionError{What: "variable", Name: name}
}

// Has reports whether the name resolves anywhere in the chain.
func (e *Environment) Has(name string) bool {
	_, err := e.Get(name)
	return err == nil
}

// Snapshot returns a copy of the current frame's own bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the current frame's bindings in sorted order (useful for
// determinism in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extend creates a child frame chained under the current one.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
