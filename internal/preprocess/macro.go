package preprocess

import "svlang/internal/source"

// Macro is one `define'd text macro. Params is nil for an object-like
// macro and also for a function-like one with zero parameters
// ("`FOO()"); FnLike is what actually distinguishes the two.
type Macro struct {
	Name     string
	Params   []string
	Variadic bool // last parameter is "..." / __VA_ARGS__
	FnLike   bool
	Body     string
	DefSpan  source.Span
}

// Table holds the live `define bindings for one compilation unit.
type Table struct {
	macros map[string]*Macro
}

func NewTable() *Table {
	return &Table{macros: make(map[string]*Macro)}
}

// Define installs m, reporting whether it replaced an existing macro with
// a textually different definition (LRM 22.5.2 calls this an error).
func (t *Table) Define(m *Macro) (redefinedDifferently bool) {
	old, existed := t.macros[m.Name]
	t.macros[m.Name] = m
	return existed && !sameDefinition(old, m)
}

func sameDefinition(a, b *Macro) bool {
	if a.Body != b.Body || a.FnLike != b.FnLike || a.Variadic != b.Variadic {
		return false
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	return true
}

func (t *Table) Undef(name string) { delete(t.macros, name) }

func (t *Table) UndefAll() { t.macros = make(map[string]*Macro) }

func (t *Table) Lookup(name string) (*Macro, bool) {
	m, ok := t.macros[name]
	return m, ok
}

func (t *Table) Defined(name string) bool {
	_, ok := t.macros[name]
	return ok
}
