package symbols

import "svlang/internal/source"

// Location marks a point in the innermost scope of a lookup, for
// index-bounded visibility: a symbol is visible at lookup
// location L iff its index ≤ L or it is in an enclosing scope."
type Location int32

// Unbounded disables the index check: every member of the innermost scope
// is visible regardless of declaration order. Used for hierarchical and
// package-scoped lookup, and for re-elaboration passes that need to see a
// scope as a whole (nothing orders visibility outside the single
// scope a lookup location sits in).
const Unbounded Location = -1

// LookupUnqualified resolves a bare name starting at scope and walking up
// the parent chain ("unqualified resolves up the scope
// chain"). Index-bounded visibility applies only to scope itself; every
// enclosing scope is consulted in full regardless of at.
func (t *Table) LookupUnqualified(scope ScopeID, name source.StringID, at Location) (SymbolID, bool) {
	innermost := true
	for scope.IsValid() {
		t.ensureMembers(scope)
		sc := t.Scopes.Get(scope)
		if sc == nil {
			return NoSymbolID, false
		}
		if id, ok := lookupVisible(t, sc.NameIndex[name], innermost, at); ok {
			return id, true
		}
		scope = sc.Parent
		innermost = false
	}
	return NoSymbolID, false
}

func lookupVisible(t *Table, candidates []SymbolID, boundIndex bool, at Location) (SymbolID, bool) {
	for i := len(candidates) - 1; i >= 0; i-- {
		sym := t.Symbols.Get(candidates[i])
		if sym == nil {
			continue
		}
		if boundIndex && at != Unbounded && sym.Index > int32(at) {
			continue
		}
		return candidates[i], true
	}
	return NoSymbolID, false
}

// LookupDirect resolves name declared directly in scope, with no walk up
// the parent chain and no index bound. Used for package-scoped (`pkg::name`)
// and `$unit::name` lookup, both of which ignore declaration order.
func (t *Table) LookupDirect(scope ScopeID, name source.StringID) (SymbolID, bool) {
	t.ensureMembers(scope)
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID, false
	}
	ids := sc.NameIndex[name]
	if len(ids) == 0 {
		return NoSymbolID, false
	}
	return ids[len(ids)-1], true
}

// LookupPackageScoped resolves `pkgName::member` by going straight to the
// registered package scope; package-scoped lookup goes direct.
func (t *Table) LookupPackageScoped(pkgName string, member source.StringID) (SymbolID, bool) {
	scope, ok := t.PackageScope(pkgName)
	if !ok {
		return NoSymbolID, false
	}
	return t.LookupDirect(scope, member)
}

// LookupUnit resolves `$unit::name` directly in the compilation unit scope.
func (t *Table) LookupUnit(name source.StringID) (SymbolID, bool) {
	return t.LookupDirect(t.Unit, name)
}

// LookupHierarchical resolves a dotted name (`a.b.c`) by walking the
// instance tree (hierarchical "a.b.c" walks the instance
// tree"). The first component is resolved unqualified from startScope at
// the given location; each subsequent component is resolved directly
// (Unbounded) in the Body scope of the previous component's symbol.
// Non-instance/non-scope-owning intermediate components fail the walk.
func (t *Table) LookupHierarchical(startScope ScopeID, at Location, path []source.StringID) (SymbolID, bool) {
	if len(path) == 0 {
		return NoSymbolID, false
	}
	id, ok := t.LookupUnqualified(startScope, path[0], at)
	if !ok {
		return NoSymbolID, false
	}
	for _, comp := range path[1:] {
		sym := t.Symbols.Get(id)
		if sym == nil || !sym.Body.IsValid() {
			return NoSymbolID, false
		}
		id, ok = t.LookupDirect(sym.Body, comp)
		if !ok {
			return NoSymbolID, false
		}
	}
	return id, true
}
