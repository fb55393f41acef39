package consteval

import (
	"svlang/internal/ast"
	"svlang/internal/binder"
	"svlang/internal/diag"
	"svlang/internal/svint"
	"svlang/internal/symbols"
)

// evalCall executes a constant function call: a fresh frame, arguments
// bound by copy to the subroutine's ports in declaration order, the body
// run under the recursion limit, and the return slot read out.
func (ev *Evaluator) evalCall(e *binder.Expr) Value {
	if !e.Symbol.IsValid() {
		return ErrorValue()
	}
	if ev.depth >= ev.Opts.MaxDepth {
		return ev.err(diag.EvalRecursionLimit, e.Span, "constant function recursion limit exceeded")
	}
	s := ev.B.Table.Symbols.Get(e.Symbol)
	if s == nil || s.Kind != symbols.KindSubroutine {
		return ErrorValue()
	}
	body, ok := ev.B.SubBodies[e.Symbol]
	if !ok {
		return ev.err(diag.EvalNotConstant, e.Span, "subroutine has no constant-evaluable body")
	}

	ports := ev.subroutinePortSymbols(s.Body)
	if len(e.List) != len(ports) {
		return ev.err(diag.EvalArgumentCount, e.Span, "wrong number of arguments in constant function call")
	}
	fr := &frame{locals: make(map[string]Value, len(ports)+4)}
	for i, arg := range e.List {
		v := ev.Eval(arg)
		if v.IsError() {
			return v
		}
		ps := ev.B.Table.Symbols.Get(ports[i])
		name, _ := ev.B.Strings.Lookup(ps.Name)
		fr.locals[name] = v
	}

	ev.depth++
	ev.frames = append(ev.frames, fr)
	steps := 0
	for _, st := range body {
		if sig := ev.exec(st, fr, &steps); sig == sigReturn {
			break
		}
	}
	ev.frames = ev.frames[:len(ev.frames)-1]
	ev.depth--

	if !fr.hasRet {
		return VoidValue()
	}
	ret := fr.ret
	if w, signed, ok := ev.typeInfo(s.Type); ok && ret.Kind == VInt {
		out := ret.Int.WithWidth(w)
		out.Signed = signed
		ret = IntValue(out)
	}
	return ret
}

func (ev *Evaluator) subroutinePortSymbols(scope symbols.ScopeID) []symbols.SymbolID {
	sc := ev.B.Table.Scopes.Get(scope)
	if sc == nil {
		return nil
	}
	var out []symbols.SymbolID
	for _, id := range sc.Symbols {
		if s := ev.B.Table.Symbols.Get(id); s != nil && s.Flags.Has(symbols.FlagPort) {
			out = append(out, id)
		}
	}
	return out
}

// exec runs one bound statement in frame fr, threading the break/
// continue/return signal explicitly (an explicit per-frame
// state machine instead of language-level suspension).
func (ev *Evaluator) exec(id binder.BoundStmtID, fr *frame, steps *int) signal {
	s := ev.B.BoundStmts.Get(id)
	if s == nil {
		return sigNone
	}
	*steps++
	if *steps > ev.Opts.MaxSteps {
		ev.err(diag.EvalLoopLimit, s.Span, "constant evaluation iteration limit exceeded")
		return sigReturn
	}
	switch s.Kind {
	case binder.SBlock:
		for _, child := range s.List {
			if sig := ev.exec(child, fr, steps); sig != sigNone {
				return sig
			}
		}
	case binder.SVarDecl:
		for i, name := range s.VarNames {
			var v Value
			if i < len(s.VarInits) && s.VarInits[i].IsValid() {
				v = ev.Eval(s.VarInits[i])
			} else if w, signed, ok := ev.typeInfo(s.VarType); ok {
				init := svint.Zero(w, signed)
				v = IntValue(init)
			} else {
				v = ErrorValue()
			}
			fr.locals[name] = v
		}
	case binder.SAssignBlocking, binder.SAssignNonBlocking:
		ev.assign(s.LHS, ev.Eval(s.RHS), fr)
	case binder.SExprStmt:
		ev.Eval(s.RHS)
	case binder.SIf:
		switch ev.condTruth(s.Cond) {
		case svint.TruthTrue:
			return ev.exec(s.Then, fr, steps)
		case svint.TruthFalse:
			if s.Else.IsValid() {
				return ev.exec(s.Else, fr, steps)
			}
		default:
			// An unknown condition takes neither branch in a constant
			// context.
		}
	case binder.SCase:
		return ev.execCase(s, fr, steps)
	case binder.SFor:
		for _, init := range s.Init {
			if sig := ev.exec(init, fr, steps); sig != sigNone {
				return sig
			}
		}
		for !s.Cond.IsValid() || ev.condTruth(s.Cond) == svint.TruthTrue {
			sig := ev.exec(s.Body, fr, steps)
			if sig == sigBreak {
				break
			}
			if sig == sigReturn {
				return sig
			}
			for _, step := range s.Step {
				ev.Eval(step)
			}
			*steps++
			if *steps > ev.Opts.MaxSteps {
				ev.err(diag.EvalLoopLimit, s.Span, "constant evaluation iteration limit exceeded")
				return sigReturn
			}
		}
	case binder.SWhile:
		for ev.condTruth(s.Cond) == svint.TruthTrue {
			sig := ev.exec(s.Body, fr, steps)
			if sig == sigBreak {
				break
			}
			if sig == sigReturn {
				return sig
			}
			*steps++
			if *steps > ev.Opts.MaxSteps {
				ev.err(diag.EvalLoopLimit, s.Span, "constant evaluation iteration limit exceeded")
				return sigReturn
			}
		}
	case binder.SDoWhile:
		for {
			sig := ev.exec(s.Body, fr, steps)
			if sig == sigBreak {
				break
			}
			if sig == sigReturn {
				return sig
			}
			if ev.condTruth(s.Cond) != svint.TruthTrue {
				break
			}
			*steps++
			if *steps > ev.Opts.MaxSteps {
				ev.err(diag.EvalLoopLimit, s.Span, "constant evaluation iteration limit exceeded")
				return sigReturn
			}
		}
	case binder.SForever:
		// A forever loop in a constant context can only terminate via
		// break or return; the step guard bounds runaways.
		for {
			sig := ev.exec(s.Body, fr, steps)
			if sig == sigBreak {
				break
			}
			if sig == sigReturn {
				return sig
			}
			*steps++
			if *steps > ev.Opts.MaxSteps {
				ev.err(diag.EvalLoopLimit, s.Span, "constant evaluation iteration limit exceeded")
				return sigReturn
			}
		}
	case binder.SReturn:
		if s.RHS.IsValid() {
			fr.ret = ev.Eval(s.RHS)
		} else {
			fr.ret = VoidValue()
		}
		fr.hasRet = true
		return sigReturn
	case binder.SBreak:
		return sigBreak
	case binder.SContinue:
		return sigContinue
	case binder.SNull:
	case binder.STimingControl:
		// Timing controls are inert in constant evaluation; the body
		// still runs.
		return ev.exec(s.Body, fr, steps)
	}
	return sigNone
}

func (ev *Evaluator) condTruth(id binder.BoundExprID) svint.TruthState {
	v := ev.Eval(id)
	switch v.Kind {
	case VInt:
		return v.Int.Truth()
	case VReal:
		if v.Real != 0 {
			return svint.TruthTrue
		}
		return svint.TruthFalse
	default:
		return svint.TruthUnknown
	}
}

// execCase evaluates case/casez/casex arm by arm in order; the default
// arm (empty label list) runs only if nothing matched.
func (ev *Evaluator) execCase(s *binder.Stmt, fr *frame, steps *int) signal {
	cond := ev.Eval(s.Cond)
	var defaultBody binder.BoundStmtID
	for _, item := range s.Cases {
		if len(item.Labels) == 0 {
			defaultBody = item.Body
			continue
		}
		for _, labelID := range item.Labels {
			label := ev.Eval(labelID)
			if ev.caseMatches(cond, label, s.CKind) {
				return ev.exec(item.Body, fr, steps)
			}
		}
	}
	if defaultBody.IsValid() {
		return ev.exec(defaultBody, fr, steps)
	}
	return sigNone
}

func (ev *Evaluator) caseMatches(cond, label Value, kind ast.CaseKind) bool {
	if cond.Kind != VInt || label.Kind != VInt {
		return false
	}
	switch kind {
	case ast.CaseExact:
		r := svint.CaseEq(cond.Int, label.Int, false)
		return r.Truth() == svint.TruthTrue
	case ast.CaseZ:
		return caseCompareWildcard(cond.Int, label.Int, false)
	case ast.CaseX:
		return caseCompareWildcard(cond.Int, label.Int, true)
	default:
		return false
	}
}

// caseCompareWildcard compares two values bit-string-wise, treating Z (and
// for casex also X) in either operand as don't-care.
func caseCompareWildcard(a, b svint.SVInt, xWild bool) bool {
	width := a.Width
	if b.Width > width {
		width = b.Width
	}
	da := a.WithWidth(width).Digits()
	db := b.WithWidth(width).Digits()
	for i := range da {
		ca, cb := da[i], db[i]
		if ca == 'z' || cb == 'z' {
			continue
		}
		if xWild && (ca == 'x' || cb == 'x') {
			continue
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// assign writes a value through a bound lvalue into the current frame.
// Only whole-variable assignment and single-bit-select assignment to
// frame locals participate in constant evaluation; any other lvalue
// (a part-select among them) leaves the frame unchanged.
func (ev *Evaluator) assign(lhs binder.BoundExprID, v Value, fr *frame) {
	e := ev.B.Bound.Get(lhs)
	if e == nil || v.IsError() {
		return
	}
	switch e.Kind {
	case binder.EIdent:
		if w, signed, ok := ev.typeInfo(e.Type); ok && v.Kind == VInt {
			out := v.Int.WithWidth(w)
			out.Signed = signed
			v = IntValue(out)
		}
		for i := len(ev.frames) - 1; i >= 0; i-- {
			if _, ok := ev.frames[i].locals[e.Text]; ok {
				ev.frames[i].locals[e.Text] = v
				return
			}
		}
		fr.locals[e.Text] = v
	case binder.EIndex:
		base := ev.B.Bound.Get(e.A)
		if base == nil || base.Kind != binder.EIdent {
			return
		}
		cur, ok := ev.lookupLocal(base.Text)
		if !ok || cur.Kind != VInt || v.Kind != VInt {
			return
		}
		idx := ev.Eval(e.B)
		if idx.Kind != VInt {
			return
		}
		i, iok := idx.Int.Int64()
		if !iok || i < 0 || i >= int64(cur.Int.Width) {
			return
		}
		lowPart := svint.Extract(cur.Int, 0, uint32(i))
		highPart := svint.Extract(cur.Int, i+1, cur.Int.Width-uint32(i)-1)
		updated := svint.Concat(highPart, v.Int.WithWidth(1), lowPart)
		updated.Signed = cur.Int.Signed
		ev.setLocal(base.Text, IntValue(updated), fr)
	}
}

func (ev *Evaluator) lookupLocal(name string) (Value, bool) {
	for i := len(ev.frames) - 1; i >= 0; i-- {
		if v, ok := ev.frames[i].locals[name]; ok {
			return v, true
		}
	}
	return ErrorValue(), false
}

func (ev *Evaluator) setLocal(name string, v Value, fr *frame) {
	for i := len(ev.frames) - 1; i >= 0; i-- {
		if _, ok := ev.frames[i].locals[name]; ok {
			ev.frames[i].locals[name] = v
			return
		}
	}
	fr.locals[name] = v
}
