package symbols

import (
	"svlang/internal/ast"
	"svlang/internal/source"
)

// ScopeKind enumerates the lexical scope categories of §3.5/§4.5.
type ScopeKind uint8

const (
	ScopeInvalid ScopeKind = iota
	ScopeCompilationUnit
	ScopeModule
	ScopeInterface
	ScopeProgram
	ScopePackage
	ScopeClass
	ScopeSubroutine
	ScopeBlock
	ScopeGenerate
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeCompilationUnit:
		return "compilation unit"
	case ScopeModule:
		return "module"
	case ScopeInterface:
		return "interface"
	case ScopeProgram:
		return "program"
	case ScopePackage:
		return "package"
	case ScopeClass:
		return "class"
	case ScopeSubroutine:
		return "subroutine"
	case ScopeBlock:
		return "block"
	case ScopeGenerate:
		return "generate"
	default:
		return "invalid"
	}
}

// Owner identifies the syntax construct that introduced a scope.
type Owner struct {
	File    source.FileID
	ASTFile ast.FileID
	Item    ast.ItemID
	Stmt    ast.StmtID
}

// DeferredProducer materializes additional members into a scope the first
// time that scope is looked up in or iterated (generate
// constructs and package imports register deferred members this way). The
// binder supplies producers; the symbols package only runs them.
type DeferredProducer func(t *Table, scope ScopeID)

// Scope owns a name→symbol map populated lazily and a parent/child
// hierarchy mirroring lexical nesting.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Owner     Owner
	Span      source.Span
	NameIndex map[source.StringID][]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID

	nextIndex int32
	first     SymbolID
	last      SymbolID

	deferred     []DeferredProducer
	deferredDone bool
}

// Defer registers a producer to run the first time this scope's members
// are consulted (ensureMembers in deferred.go triggers it).
func (s *Scope) Defer(p DeferredProducer) {
	if p == nil {
		return
	}
	s.deferred = append(s.deferred, p)
}
