package minipy

// Env is the session's variable namespace: one flat mapping from name to
// value, no scoping, no shadowing, no deletion. It is owned by exactly
// one Interpreter and mutated only by assignment evaluation.
type Env struct {
	table map[string]Value
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{table: make(map[string]Value)}
}

// Set binds name to v, overwriting any previous binding. Keys are created
// lazily on first assignment.
func (e *Env) Set(name string, v Value) {
	e.table[name] = v
}

// Get retrieves the binding for name, reporting whether it exists.
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.table[name]
	return v, ok
}

// Len reports the number of bound names.
func (e *Env) Len() int { return len(e.table) }
