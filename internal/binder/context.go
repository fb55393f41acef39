package binder

import (
	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/source"
	"svlang/internal/symbols"
	"svlang/internal/types"
)

// BindFlags adjusts binding rules for the context an expression/statement
// is bound in: constant contexts forbid hierarchical/net
// references, and disabled lookup suppresses name resolution entirely
// (used while re-binding an already-elaborated default expression just to
// recompute its type).
type BindFlags uint8

const (
	FlagInsideConstant BindFlags = 1 << iota
	FlagNoHierarchical
	FlagDisableLookup
)

func (f BindFlags) Has(bit BindFlags) bool { return f&bit != 0 }

// ConstFolder evaluates expr (declared in scope) to a constant int64,
// reporting false if it is not a constant expression. The binder uses
// it for generate-if conditions, generate-for bounds, array/queue
// dimension sizes, replication counts, and select bounds; it is supplied by whichever package wires
// internal/consteval to this binder (internal/compilation), so that
// internal/binder itself never imports internal/consteval: consteval
// depends on binder to walk bound trees, and a dependency back the other
// way would cycle.
type ConstFolder func(b *Binder, scope symbols.ScopeID, expr ast.ExprID) (int64, bool)

// Binder walks a parsed file's AST and populates a symbols.Table and a
// parallel bound tree (Exprs/Stmts), resolving ast.TypeSyntax against a
// types.Interner as it goes.
type Binder struct {
	Files        *ast.Files
	Items        *ast.Items
	Exprs        *ast.Exprs
	Stmts        *ast.Stmts
	TypeSyntaxes *ast.TypeSyntaxes

	Table   *symbols.Table
	Types   *types.Interner
	Strings *source.Interner

	Bound      *Exprs
	BoundStmts *Stmts

	Reporter diag.Reporter

	ConstFolder ConstFolder

	// AllowHierarchicalInConst relaxes the constant-expression
	// restriction on hierarchical names (option
	// allow_hierarchical_in_const).
	AllowHierarchicalInConst bool

	// Inits maps a declared symbol to its bound initializer/default
	// expression; SubBodies maps a subroutine symbol to its bound body
	// statements. Both are the memoized results of the lazy per-symbol
	// elaboration pass, consumed by internal/consteval.
	Inits     map[symbols.SymbolID]BoundExprID
	SubBodies map[symbols.SymbolID][]BoundStmtID

	// GenvarValues holds the constant value of each per-iteration genvar
	// symbol materialized by a generate-for's deferred producer.
	GenvarValues map[symbols.SymbolID]int64
}

// New builds a Binder over an already-parsed file's arenas and a fresh
// symbol table/bound-tree pair.
func New(files *ast.Files, items *ast.Items, exprs *ast.Exprs, stmts *ast.Stmts, typeSyntaxes *ast.TypeSyntaxes, table *symbols.Table, ty *types.Interner, strings *source.Interner, reporter diag.Reporter) *Binder {
	return &Binder{
		Files:        files,
		Items:        items,
		Exprs:        exprs,
		Stmts:        stmts,
		TypeSyntaxes: typeSyntaxes,
		Table:        table,
		Types:        ty,
		Strings:      strings,
		Bound:        NewExprs(256),
		BoundStmts:   NewStmts(256),
		Reporter:     reporter,
		Inits:        make(map[symbols.SymbolID]BoundExprID),
		SubBodies:    make(map[symbols.SymbolID][]BoundStmtID),
		GenvarValues: make(map[symbols.SymbolID]int64),
	}
}

func (b *Binder) intern(name string) source.StringID {
	if name == "" {
		return source.NoStringID
	}
	return b.Strings.Intern(name)
}
