package consteval

import (
	"svlang/internal/ast"
	"svlang/internal/binder"
	"svlang/internal/symbols"
)

// Folder adapts an Evaluator into the binder's ConstFolder hook, closing
// the loop between the two packages without a direct import cycle: the
// binder needs constants for generate conditions and dimension bounds,
// and those constants come from evaluating trees the binder itself built.
func Folder(ev *Evaluator) binder.ConstFolder {
	return func(b *binder.Binder, scope symbols.ScopeID, expr ast.ExprID) (int64, bool) {
		if !expr.IsValid() {
			return 0, false
		}
		bound := b.BindExpr(scope, symbols.Unbounded, binder.FlagInsideConstant, expr)
		v := ev.Eval(bound)
		if v.Kind != VInt {
			return 0, false
		}
		return v.Int.Int64()
	}
}

// EvalInt is a convenience wrapper for callers that need an int64 result
// directly (dimension bounds, replication counts).
func (ev *Evaluator) EvalInt(id binder.BoundExprID) (int64, bool) {
	v := ev.Eval(id)
	if v.Kind != VInt {
		return 0, false
	}
	return v.Int.Int64()
}
