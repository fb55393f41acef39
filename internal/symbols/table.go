package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"svlang/internal/diag"
	"svlang/internal/source"
)

// Hints provide optional capacity suggestions for the table's arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates the scope/symbol arenas for one Compilation, which owns
// all symbols; cross-references between them are raw, non-owning
// references valid for the Compilation's lifetime.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner

	Reporter diag.Reporter

	// Unit is the single $unit compilation-unit scope shared by every
	// file in the compilation ("$unit::" reaches the
	// enclosing compilation unit").
	Unit ScopeID

	packages map[string]ScopeID // package name -> its ScopePackage
	modules  map[string]ScopeID // module/interface/program name -> its definition scope
}

// NewTable builds a fresh table, including its $unit scope. If strings is
// nil a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner, reporter diag.Reporter) *Table {
	if strings == nil {
		strings = source.NewInterner()
	}
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("symbols: scope capacity hint overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbols: symbol capacity hint overflow: %w", err))
	}
	t := &Table{
		Scopes:   NewScopes(scopeCap),
		Symbols:  NewSymbols(symCap),
		Strings:  strings,
		Reporter: reporter,
		packages: make(map[string]ScopeID),
		modules:  make(map[string]ScopeID),
	}
	t.Unit = t.Scopes.New(ScopeCompilationUnit, NoScopeID, Owner{}, source.Span{})
	return t
}

// NewScope allocates a child scope under parent (or under $unit, if parent
// is invalid) and returns its ID.
func (t *Table) NewScope(kind ScopeKind, parent ScopeID, owner Owner, span source.Span) ScopeID {
	if !parent.IsValid() {
		parent = t.Unit
	}
	return t.Scopes.New(kind, parent, owner, span)
}

// RegisterModule records a module/interface/program's definition scope
// under its name, for hierarchical-instantiation lookup.
func (t *Table) RegisterModule(name string, scope ScopeID) {
	if name == "" {
		return
	}
	t.modules[name] = scope
}

// ModuleScope returns a previously registered module/interface/program
// definition scope by name.
func (t *Table) ModuleScope(name string) (ScopeID, bool) {
	s, ok := t.modules[name]
	return s, ok
}

// RegisterPackage records a package's scope under its name, for
// `pkg::name` qualified lookup.
func (t *Table) RegisterPackage(name string, scope ScopeID) {
	if name == "" {
		return
	}
	t.packages[name] = scope
}

// PackageScope returns a previously registered package scope by name.
func (t *Table) PackageScope(name string) (ScopeID, bool) {
	s, ok := t.packages[name]
	return s, ok
}

// Declare installs a symbol into scope, assigning it the next monotonic
// index and threading it onto the scope's ordered sibling list. Returns
// (NoSymbolID, false) if a non-overloadable name clash exists (a bare
// "duplicate declaration" diagnostic is reported in that case).
func (t *Table) Declare(scope ScopeID, name source.StringID, span source.Span, kind Kind, flags Flags, decl Decl) (SymbolID, bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID, false
	}
	if name != source.NoStringID {
		if existing := sc.NameIndex[name]; len(existing) > 0 {
			prev := t.Symbols.Get(existing[len(existing)-1])
			t.reportDuplicate(name, span, prev)
			return NoSymbolID, false
		}
	}
	id := t.declareWithoutChecks(scope, name, span, kind, flags, decl)
	return id, true
}

// DeclareAnonymous installs an unnamed symbol (e.g. an unlabeled begin/end
// block) into scope; it can never clash and is never looked up by name.
func (t *Table) DeclareAnonymous(scope ScopeID, span source.Span, kind Kind, flags Flags, decl Decl) SymbolID {
	return t.declareWithoutChecks(scope, source.NoStringID, span, kind, flags, decl)
}

func (t *Table) declareWithoutChecks(scope ScopeID, name source.StringID, span source.Span, kind Kind, flags Flags, decl Decl) SymbolID {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID
	}
	sym := Symbol{
		Name:  name,
		Kind:  kind,
		Scope: scope,
		Span:  span,
		Index: sc.nextIndex,
		Flags: flags,
		Decl:  decl,
	}
	sc.nextIndex++
	id := t.Symbols.New(sym)

	if sc.last.IsValid() {
		if prev := t.Symbols.Get(sc.last); prev != nil {
			prev.Next = id
		}
	} else {
		sc.first = id
	}
	sc.last = id

	sc.Symbols = append(sc.Symbols, id)
	if name != source.NoStringID {
		sc.NameIndex[name] = append(sc.NameIndex[name], id)
	}
	return id
}

func (t *Table) reportDuplicate(name source.StringID, span source.Span, prev *Symbol) {
	if t.Reporter == nil {
		return
	}
	nameStr := t.Strings.MustLookup(name)
	msg := fmt.Sprintf("duplicate declaration of '%s'", nameStr)
	builder := diag.ReportError(t.Reporter, diag.SemaDuplicateSymbol, span, msg)
	if builder == nil {
		return
	}
	if prev != nil && prev.Span != (source.Span{}) {
		builder.WithNote(prev.Span, "previous declaration here")
	}
	builder.Emit()
}
