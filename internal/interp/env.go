package interp

// Env is a lexical scope chain.
type Env struct {
	vars   map[string]Value
	parent *Env
}

// NewEnv returns a scope nested inside parent. A nil parent makes a
// root scope.
func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[string]Value), parent: parent}
}

// Define binds name in this scope, shadowing any outer binding.
func (e *Env) Define(name string, v Value) { e.vars[name] = v }

// Get resolves name through the scope chain.
func (e *Env) Get(name string) (Value, bool) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set rebinds the nearest existing binding of name and reports whether
// one was found.
func (e *Env) Set(name string, v Value) bool {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.vars[name]; ok {
			s.vars[name] = v
			return true
		}
	}
	return false
}
