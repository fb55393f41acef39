// Package session implements a scripting surface: a
// REPL-style sequence of textual inputs, each parsed either as a complete
// compilation unit (declarations) or as an expression, elaborated against
// the cumulative scope, and — for expressions — constant-evaluated.
package session

import (
	"fmt"

	"svlang/internal/ast"
	"svlang/internal/compilation"
	"svlang/internal/consteval"
	"svlang/internal/diag"
	"svlang/internal/parser"
	"svlang/internal/preprocess"
	"svlang/internal/symbols"
)

// Session accumulates declarations across Eval calls; every expression
// input sees everything declared before it.
type Session struct {
	Comp  *compilation.Compilation
	count int
}

// New starts a session on a fresh compilation.
func New(opts compilation.Options) *Session {
	return &Session{Comp: compilation.New(opts, nil)}
}

// Result is one input's outcome: Value is meaningful only when the input
// was an expression (IsDecl false).
type Result struct {
	Value  consteval.Value
	IsDecl bool
}

// Eval processes one input. Declarations extend the cumulative scope and
// return an empty value; expressions evaluate to a ConstantValue.
func (s *Session) Eval(text string) (Result, *diag.Bag) {
	s.count++
	name := fmt.Sprintf("<eval-%d>", s.count)

	if expr, ok := s.tryExpression(name, text); ok {
		bound := s.Comp.Binder.BindExpr(s.Comp.Table.Unit, symbols.Unbounded, 0, expr)
		v := s.Comp.Eval.Eval(bound)
		return Result{Value: v}, s.Comp.Diagnostics(false)
	}

	s.Comp.AddText(name, text)
	return Result{Value: consteval.VoidValue(), IsDecl: true}, s.Comp.Diagnostics(false)
}

// EvalExpr is the one-shot convenience form: it evaluates
// text as an expression and returns the constant.
func (s *Session) EvalExpr(text string) consteval.Value {
	r, _ := s.Eval(text)
	return r.Value
}

// tryExpression trial-parses text as a standalone expression against a
// scratch reporter; only a clean full-input parse counts. The scratch
// parse writes CST nodes into the shared arenas, which is harmless: the
// nodes are simply never bound if the trial is rejected.
func (s *Session) tryExpression(name, text string) (exprID ast.ExprID, ok bool) {
	buf := s.Comp.Manager.AddVirtual(name, []byte(text))
	file := s.Comp.Manager.Get(buf)
	if file == nil {
		return 0, false
	}
	scratch := diag.BagReporter{Bag: diag.NewBag(0)}
	pp := preprocess.New(file, preprocess.Options{
		Manager:  s.Comp.Manager,
		Reporter: scratch,
		Version:  s.Comp.Version(),
	})
	expr, clean := parser.ParseExpression(s.Comp.Manager, pp, s.Comp.Arenas, parser.Options{Reporter: scratch})
	if !clean || !expr.IsValid() {
		return 0, false
	}
	return expr, true
}
