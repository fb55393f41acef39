package symbols

// ensureMembers runs scope's deferred producers, if it has any and hasn't
// already run them. Called by every lookup/iteration entry point so that
// generate-construct and package-import members materialize on first
// access rather than at scope-population time.
//
// deferredDone is set before the producers run: a producer that itself
// looks up or iterates this same scope (e.g. a self-referential generate
// body) sees an already-"done" scope instead of recursing forever.
func (t *Table) ensureMembers(id ScopeID) {
	sc := t.Scopes.Get(id)
	if sc == nil || sc.deferredDone {
		return
	}
	sc.deferredDone = true
	producers := sc.deferred
	sc.deferred = nil
	for _, p := range producers {
		p(t, id)
	}
}

// Members returns every symbol declared directly in scope, in declaration
// order, materializing deferred members first.
func (t *Table) Members(scope ScopeID) []SymbolID {
	t.ensureMembers(scope)
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return nil
	}
	return sc.Symbols
}

// First returns the head of scope's ordered sibling list (Symbol.Next
// chain), materializing deferred members first.
func (t *Table) First(scope ScopeID) SymbolID {
	t.ensureMembers(scope)
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID
	}
	return sc.first
}
