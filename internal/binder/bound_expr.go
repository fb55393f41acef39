package binder

import (
	"svlang/internal/ast"
	"svlang/internal/source"
	"svlang/internal/symbols"
	"svlang/internal/token"
	"svlang/internal/types"
)

// ExprKind tags one bound-expression shape. It mirrors ast.ExprKind one
// for one (a bound tree is the same shape with names resolved and types
// attached), plus EConvert, which has no syntax counterpart: it is
// inserted by the binder itself wherever the binding rules require an
// implicit conversion between a self-determined operand and its
// context-determined target type.
type ExprKind uint8

const (
	EIntLit ExprKind = iota
	ERealLit
	ETimeLit
	EStringLit
	EUnbasedUnsized
	EIdent
	EHierarchical // resolved Base.Member / Base::Member chain; Symbol is the final component
	EUnary
	EBinary
	ETernary
	EConcat
	EReplicate
	ECall
	EIndex
	EPartSelect
	EAssignPattern
	EConvert
	EError // a node that failed to bind; Type is the error sentinel
)

// ConvKind explains why an EConvert node exists, for diagnostics and the
// pretty-printer; it carries no behavior of its own.
type ConvKind uint8

const (
	ConvNone ConvKind = iota
	ConvWiden
	ConvTruncate
	ConvSignChange
	ConvIntToReal
	ConvRealToInt
	ConvToArray
)

// Expr is the single generic bound-expression node, following the same
// flat-arena approach internal/ast uses for its own Expr (internal/ast's
// doc comment on ExprKind explains the rationale; the bound tree keeps it
// for consistency rather than adopting a pointer+interface IR).
//
// Number/Text carry the literal's original syntax through unevaluated
// (the binder does not fold constants); internal/consteval computes the
// value of an EIntLit/ERealLit/ETimeLit/EUnbasedUnsized node each time it
// evaluates one, so a literal's four-state value is never stored on Expr.
type Expr struct {
	Kind ExprKind
	Type types.TypeID
	Span source.Span

	Op     token.Kind
	Number *token.Number
	Text   string

	Symbol symbols.SymbolID // EIdent/EHierarchical (final component)/ECall (callee, if resolved)

	A, B, C BoundExprID
	List    []BoundExprID
	Mode    ast.PartSelectMode
	Conv    ConvKind // meaningful only for EConvert; A is the wrapped operand
}

type Exprs struct {
	arena *ast.Arena[Expr]
}

func NewExprs(capHint uint) *Exprs { return &Exprs{arena: ast.NewArena[Expr](capHint)} }

func (e *Exprs) Get(id BoundExprID) *Expr { return e.arena.Get(uint32(id)) }

func (e *Exprs) New(ex Expr) BoundExprID { return BoundExprID(e.arena.Allocate(ex)) }
