package ast

import (
	"svlang/internal/source"
	"svlang/internal/token"
)

// ExprKind tags one expression-node shape. Expressions are kept in a
// single generic arena (rather than one arena per kind, as Items does)
// because most expression kinds share the same small field set — this
// trades Items' per-kind density for a simpler, single Expr
// struct, which is enough for a recursive-descent binder to walk.
type ExprKind uint8

const (
	ExprIntLit ExprKind = iota
	ExprRealLit
	ExprTimeLit
	ExprStringLit
	ExprUnbasedUnsized
	ExprIdent
	ExprScopedName // Base::Member or Base.Member (hierarchical/package access)
	ExprUnary
	ExprBinary
	ExprTernary
	ExprConcat
	ExprReplicate
	ExprCall
	ExprIndex      // Base[Index]
	ExprPartSelect // Base[Left:Right] or Base[Left+:Right]/[Left-:Right]
	ExprAssignPattern
)

// PartSelectMode distinguishes the three part-select syntaxes.
type PartSelectMode uint8

const (
	PartSelectRange    PartSelectMode = iota // [left:right]
	PartSelectPlusDyn                        // [left+:width]
	PartSelectMinusDyn                       // [left-:width]
)

// Expr is the single generic expression node. Not every field is
// meaningful for every Kind; see the ExprKind constant's comment for
// which fields it uses.
type Expr struct {
	Kind ExprKind
	Span source.Span

	Op     token.Kind // ExprUnary/ExprBinary operator
	Number *token.Number
	Text   string // ident/scoped-member name, string-literal value, call callee

	A, B, C ExprID   // operand slots: unary operand; binary/ternary cond/then/else via A=cond,B=then,C=else; index base=A,index=B; part-select base=A,left=B,right=C
	List    []ExprID // concat/replication elements, call args, assignment-pattern elements
	Mode    PartSelectMode
}

type Exprs struct {
	Arena *Arena[Expr]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{Arena: NewArena[Expr](capHint)}
}

func (e *Exprs) Get(id ExprID) *Expr { return e.Arena.Get(uint32(id)) }

func (e *Exprs) New(ex Expr) ExprID {
	return ExprID(e.Arena.Allocate(ex))
}
