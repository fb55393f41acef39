package binder

import (
	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/source"
	"svlang/internal/svint"
	"svlang/internal/symbols"
	"svlang/internal/token"
	"svlang/internal/types"
)

// BindExpr binds one CST expression against scope, producing a typed
// bound-tree node. Implicit conversions between
// self-determined operands and their context-determined target widths
// become explicit EConvert nodes; the constant evaluator never re-widens.
func (b *Binder) BindExpr(scope symbols.ScopeID, at symbols.Location, flags BindFlags, id ast.ExprID) BoundExprID {
	e := b.Exprs.Get(id)
	if e == nil {
		return b.errorExpr(source.Span{})
	}
	switch e.Kind {
	case ast.ExprIntLit:
		return b.bindIntLit(e)
	case ast.ExprUnbasedUnsized:
		return b.bindUnbasedUnsized(e)
	case ast.ExprRealLit:
		return b.Bound.New(Expr{Kind: ERealLit, Type: b.Types.Builtins().Real, Span: e.Span, Number: e.Number})
	case ast.ExprTimeLit:
		return b.Bound.New(Expr{Kind: ETimeLit, Type: b.Types.Builtins().RealTime, Span: e.Span, Number: e.Number})
	case ast.ExprStringLit:
		return b.Bound.New(Expr{Kind: EStringLit, Type: b.Types.Builtins().String, Span: e.Span, Text: e.Text})
	case ast.ExprIdent:
		return b.bindIdent(scope, at, flags, e)
	case ast.ExprScopedName:
		return b.bindScopedName(scope, at, flags, id, e)
	case ast.ExprUnary:
		return b.bindUnary(scope, at, flags, e)
	case ast.ExprBinary:
		return b.bindBinary(scope, at, flags, e)
	case ast.ExprTernary:
		return b.bindTernary(scope, at, flags, e)
	case ast.ExprConcat:
		return b.bindConcat(scope, at, flags, e)
	case ast.ExprReplicate:
		return b.bindReplicate(scope, at, flags, e)
	case ast.ExprCall:
		return b.bindCall(scope, at, flags, e)
	case ast.ExprIndex:
		return b.bindIndex(scope, at, flags, e)
	case ast.ExprPartSelect:
		return b.bindPartSelect(scope, at, flags, e)
	case ast.ExprAssignPattern:
		return b.bindAssignPattern(scope, at, flags, e)
	default:
		return b.errorExpr(e.Span)
	}
}

func (b *Binder) errorExpr(sp source.Span) BoundExprID {
	return b.Bound.New(Expr{Kind: EError, Type: b.Types.Builtins().Error, Span: sp})
}

func (b *Binder) semaErr(code diag.Code, sp source.Span, msg string) BoundExprID {
	if b.Reporter != nil {
		diag.ReportError(b.Reporter, code, sp, msg).Emit()
	}
	return b.errorExpr(sp)
}

// integralInfo resolves a (possibly aliased) type to its packed width,
// signedness, and four-stateness. ok is false for non-packed types.
func (b *Binder) integralInfo(id types.TypeID) (width uint32, signed, fourState, ok bool) {
	id = b.Types.Resolve(id)
	t, found := b.Types.Lookup(id)
	if !found {
		return 0, false, false, false
	}
	switch t.Kind {
	case types.KindIntegral:
		return uint32(t.Width), t.Signed, t.FourState, true
	case types.KindPackedArray, types.KindPackedStruct, types.KindPackedUnion:
		bits, err := b.Types.Bits(id)
		if err != nil || bits < 0 {
			return 0, false, false, false
		}
		_, _, fs := b.packedLeafAttrs(id, 0)
		return uint32(bits), false, fs, true
	case types.KindEnum:
		info, found := b.Types.EnumInfo(id)
		if !found {
			return 0, false, false, false
		}
		return b.integralInfo(info.Base)
	default:
		return 0, false, false, false
	}
}

// packedLeafAttrs walks to the integral element underneath packed
// arrays/structs to learn whether the composite is four-state.
func (b *Binder) packedLeafAttrs(id types.TypeID, depth int) (width uint32, signed, fourState bool) {
	if depth > 64 {
		return 0, false, true
	}
	id = b.Types.Resolve(id)
	t, found := b.Types.Lookup(id)
	if !found {
		return 0, false, true
	}
	switch t.Kind {
	case types.KindIntegral:
		return uint32(t.Width), t.Signed, t.FourState
	case types.KindPackedArray:
		return b.packedLeafAttrs(t.Elem, depth+1)
	case types.KindPackedStruct, types.KindPackedUnion:
		info, found := b.Types.StructInfo(id)
		if !found || len(info.Fields) == 0 {
			return 0, false, true
		}
		for _, f := range info.Fields {
			if _, _, fs := b.packedLeafAttrs(f.Type, depth+1); fs {
				return 0, false, true
			}
		}
		return 0, false, false
	default:
		return 0, false, true
	}
}

// vectorType interns the logic/bit vector of the given shape. Four-state
// vectors canonicalize on logic, two-state on bit, matching the interned
// builtins so relation checks reduce to ID equality.
func (b *Binder) vectorType(width uint32, signed, fourState bool) types.TypeID {
	sub := types.SubBit
	if fourState {
		sub = types.SubLogic
	}
	if width > 0xFFFF {
		width = 0xFFFF
	}
	return b.Types.Intern(types.MakeIntegral(sub, uint16(width), signed, fourState))
}

func (b *Binder) bindIntLit(e *ast.Expr) BoundExprID {
	v := svint.FromNumber(e.Number)
	if v.IsError() {
		return b.semaErr(diag.SemaNotConstant, e.Span, "invalid integer literal '"+e.Text+"'")
	}
	var ty types.TypeID
	if e.Number != nil && !e.Number.HasSize && e.Number.Base == token.BaseNone {
		ty = b.Types.Builtins().Int
	} else {
		ty = b.vectorType(v.Width, v.Signed, v.IsUnknown())
	}
	return b.Bound.New(Expr{Kind: EIntLit, Type: ty, Span: e.Span, Number: e.Number, Text: e.Text})
}

func (b *Binder) bindUnbasedUnsized(e *ast.Expr) BoundExprID {
	digit := ""
	if e.Number != nil {
		digit = e.Number.Digits
	}
	fourState := digit == "x" || digit == "X" || digit == "z" || digit == "Z"
	ty := b.vectorType(1, false, fourState)
	return b.Bound.New(Expr{Kind: EUnbasedUnsized, Type: ty, Span: e.Span, Number: e.Number, Text: digit})
}

func (b *Binder) bindIdent(scope symbols.ScopeID, at symbols.Location, flags BindFlags, e *ast.Expr) BoundExprID {
	if flags.Has(FlagDisableLookup) {
		return b.errorExpr(e.Span)
	}
	name := b.intern(e.Text)
	sym, ok := b.Table.LookupUnqualified(scope, name, at)
	if !ok {
		return b.semaErr(diag.SemaUnresolvedSymbol, e.Span, "use of undeclared identifier '"+e.Text+"'")
	}
	s := b.Table.Symbols.Get(sym)
	ty := s.Type
	if !ty.IsValid() {
		switch s.Kind {
		case symbols.KindParameter, symbols.KindLocalParam, symbols.KindGenvar:
			// Untyped parameters default to the 32-bit signed shape of
			// their (not yet evaluated) initializer.
			ty = b.Types.Builtins().Int
		default:
			ty = b.Types.Builtins().Error
		}
	}
	return b.Bound.New(Expr{Kind: EIdent, Type: ty, Span: e.Span, Text: e.Text, Symbol: sym})
}

// bindScopedName resolves a dotted/`::` chain. The chain is flattened to a
// component path; a leading package name goes through package-scoped
// lookup, `$unit` goes to the compilation unit, and everything else walks
// the instance tree hierarchically.
func (b *Binder) bindScopedName(scope symbols.ScopeID, at symbols.Location, flags BindFlags, id ast.ExprID, e *ast.Expr) BoundExprID {
	if flags.Has(FlagNoHierarchical) || flags.Has(FlagInsideConstant) && !b.AllowHierarchicalInConst {
		return b.semaErr(diag.SemaHierarchicalInConst, e.Span, "hierarchical name is not allowed in a constant expression")
	}
	parts, ok := b.scopedPath(id)
	if !ok || len(parts) < 2 {
		return b.errorExpr(e.Span)
	}
	interned := make([]source.StringID, len(parts))
	for i, p := range parts {
		interned[i] = b.intern(p)
	}
	// Walk component by component, keeping every intermediate symbol:
	// the evaluator needs the instance chain to apply per-instance
	// parameter overrides when it reaches the final symbol.
	var sym symbols.SymbolID
	path := make([]symbols.SymbolID, 0, len(interned))
	switch {
	case parts[0] == "$unit":
		ok = len(parts) == 2
		if ok {
			sym, ok = b.Table.LookupUnit(interned[1])
		}
		if ok {
			path = append(path, sym)
		}
	default:
		if _, isPkg := b.Table.PackageScope(parts[0]); isPkg {
			sym, ok = b.Table.LookupPackageScoped(parts[0], interned[1])
			if ok {
				path = append(path, sym)
			}
			for i := 2; ok && i < len(interned); i++ {
				sym, ok = b.stepInto(sym, interned[i])
				if ok {
					path = append(path, sym)
				}
			}
		} else {
			sym, ok = b.Table.LookupUnqualified(scope, interned[0], at)
			if ok {
				path = append(path, sym)
			}
			for i := 1; ok && i < len(interned); i++ {
				sym, ok = b.stepInto(sym, interned[i])
				if ok {
					path = append(path, sym)
				}
			}
		}
	}
	if !ok {
		return b.semaErr(diag.SemaUnresolvedSymbol, e.Span, "unresolved name '"+joinPath(parts)+"'")
	}
	s := b.Table.Symbols.Get(sym)
	ty := s.Type
	if !ty.IsValid() {
		ty = b.Types.Builtins().Error
	}
	components := make([]BoundExprID, 0, len(path))
	for i, ps := range path {
		pt := b.Table.Symbols.Get(ps).Type
		if !pt.IsValid() {
			pt = b.Types.Builtins().Error
		}
		components = append(components, b.Bound.New(Expr{Kind: EIdent, Type: pt, Span: e.Span, Text: parts[i], Symbol: ps}))
	}
	return b.Bound.New(Expr{Kind: EHierarchical, Type: ty, Span: e.Span, Text: joinPath(parts), Symbol: sym, List: components})
}

// stepInto resolves one hierarchical component inside the Body scope of
// the previous component's symbol (hierarchical lookup
// walks the instance tree; it does not respect textual order).
func (b *Binder) stepInto(prev symbols.SymbolID, name source.StringID) (symbols.SymbolID, bool) {
	s := b.Table.Symbols.Get(prev)
	if s == nil || !s.Body.IsValid() {
		return symbols.NoSymbolID, false
	}
	return b.Table.LookupDirect(s.Body, name)
}

func (b *Binder) scopedPath(id ast.ExprID) ([]string, bool) {
	e := b.Exprs.Get(id)
	if e == nil {
		return nil, false
	}
	switch e.Kind {
	case ast.ExprIdent:
		return []string{e.Text}, true
	case ast.ExprScopedName:
		base, ok := b.scopedPath(e.A)
		if !ok {
			return nil, false
		}
		return append(base, e.Text), true
	default:
		return nil, false
	}
}

func joinPath(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "." + p
	}
	return out
}

func (b *Binder) bindUnary(scope symbols.ScopeID, at symbols.Location, flags BindFlags, e *ast.Expr) BoundExprID {
	operand := b.BindExpr(scope, at, flags, e.A)
	op := b.Bound.Get(operand)
	switch e.Op {
	case token.Plus, token.Minus, token.Tilde:
		// Result shape follows the operand (context-determined from
		// above; standalone it is the operand's own shape).
		return b.Bound.New(Expr{Kind: EUnary, Type: op.Type, Span: e.Span, Op: e.Op, A: operand})
	case token.Bang:
		return b.Bound.New(Expr{Kind: EUnary, Type: b.vectorType(1, false, true), Span: e.Span, Op: e.Op, A: operand})
	case token.Amp, token.Pipe, token.Caret, token.TildeCaret:
		// Reduction operators collapse to a single bit.
		return b.Bound.New(Expr{Kind: EUnary, Type: b.vectorType(1, false, true), Span: e.Span, Op: e.Op, A: operand})
	default:
		return b.semaErr(diag.SemaInvalidUnaryOperand, e.Span, "invalid unary operator")
	}
}

func isShiftOp(k token.Kind) bool {
	switch k {
	case token.Shl, token.Shr, token.AShl, token.AShr, token.StarStar:
		return true
	}
	return false
}

func isComparisonOp(k token.Kind) bool {
	switch k {
	case token.EqEq, token.BangEq, token.CaseEq, token.CaseNeq, token.WildEq, token.WildNeq,
		token.Lt, token.LtEq, token.Gt, token.GtEq:
		return true
	}
	return false
}

func isLogicalOp(k token.Kind) bool {
	return k == token.AndAnd || k == token.OrOr
}

func (b *Binder) bindBinary(scope symbols.ScopeID, at symbols.Location, flags BindFlags, e *ast.Expr) BoundExprID {
	lhs := b.BindExpr(scope, at, flags, e.A)
	rhs := b.BindExpr(scope, at, flags, e.B)
	lt := b.Bound.Get(lhs).Type
	rt := b.Bound.Get(rhs).Type

	switch {
	case isLogicalOp(e.Op):
		// Operands are self-determined truth values.
		return b.Bound.New(Expr{Kind: EBinary, Type: b.vectorType(1, false, true), Span: e.Span, Op: e.Op, A: lhs, B: rhs})

	case isShiftOp(e.Op):
		// The shift count / exponent is self-determined; the result takes
		// the left operand's shape (IEEE 1800 §11.6.1: shift counts are self-determined).
		return b.Bound.New(Expr{Kind: EBinary, Type: lt, Span: e.Span, Op: e.Op, A: lhs, B: rhs})

	case isComparisonOp(e.Op):
		lw, ls, lf, lok := b.integralInfo(lt)
		rw, rs, rf, rok := b.integralInfo(rt)
		if lok && rok {
			w, s := commonShape(lw, ls, rw, rs)
			target := b.vectorType(w, s, lf || rf)
			lhs = b.convertTo(lhs, target)
			rhs = b.convertTo(rhs, target)
		}
		return b.Bound.New(Expr{Kind: EBinary, Type: b.vectorType(1, false, true), Span: e.Span, Op: e.Op, A: lhs, B: rhs})

	default:
		// Arithmetic and bitwise: context-determined operands widen to
		// the expression's effective width, and the common signedness is
		// signed only if both operands are signed.
		if b.isFloating(lt) || b.isFloating(rt) {
			real := b.Types.Builtins().Real
			lhs = b.convertTo(lhs, real)
			rhs = b.convertTo(rhs, real)
			return b.Bound.New(Expr{Kind: EBinary, Type: real, Span: e.Span, Op: e.Op, A: lhs, B: rhs})
		}
		lw, ls, lf, lok := b.integralInfo(lt)
		rw, rs, rf, rok := b.integralInfo(rt)
		if !lok || !rok {
			if b.isErrorType(lt) || b.isErrorType(rt) {
				return b.errorExpr(e.Span)
			}
			return b.semaErr(diag.SemaInvalidBinaryOperands, e.Span,
				"invalid operands to binary operator ("+types.Label(b.Types, lt)+" and "+types.Label(b.Types, rt)+")")
		}
		w, s := commonShape(lw, ls, rw, rs)
		target := b.vectorType(w, s, lf || rf)
		lhs = b.convertTo(lhs, target)
		rhs = b.convertTo(rhs, target)
		return b.Bound.New(Expr{Kind: EBinary, Type: target, Span: e.Span, Op: e.Op, A: lhs, B: rhs})
	}
}

func commonShape(lw uint32, ls bool, rw uint32, rs bool) (uint32, bool) {
	w := lw
	if rw > w {
		w = rw
	}
	return w, ls && rs
}

func (b *Binder) isFloating(id types.TypeID) bool {
	t, ok := b.Types.Lookup(b.Types.Resolve(id))
	return ok && t.Kind == types.KindFloating
}

func (b *Binder) isErrorType(id types.TypeID) bool {
	t, ok := b.Types.Lookup(b.Types.Resolve(id))
	return !ok || t.Kind == types.KindError
}

func (b *Binder) bindTernary(scope symbols.ScopeID, at symbols.Location, flags BindFlags, e *ast.Expr) BoundExprID {
	cond := b.BindExpr(scope, at, flags, e.A) // self-determined
	thenE := b.BindExpr(scope, at, flags, e.B)
	elseE := b.BindExpr(scope, at, flags, e.C)
	tt := b.Bound.Get(thenE).Type
	et := b.Bound.Get(elseE).Type
	if b.isFloating(tt) || b.isFloating(et) {
		real := b.Types.Builtins().Real
		thenE = b.convertTo(thenE, real)
		elseE = b.convertTo(elseE, real)
		return b.Bound.New(Expr{Kind: ETernary, Type: real, Span: e.Span, A: cond, B: thenE, C: elseE})
	}
	tw, ts, tf, tok := b.integralInfo(tt)
	ew, es, ef, eok := b.integralInfo(et)
	if !tok || !eok {
		// Non-integral branches (strings, arrays): require equivalence
		// and keep the then-branch type.
		return b.Bound.New(Expr{Kind: ETernary, Type: tt, Span: e.Span, A: cond, B: thenE, C: elseE})
	}
	w, s := commonShape(tw, ts, ew, es)
	target := b.vectorType(w, s, tf || ef)
	thenE = b.convertTo(thenE, target)
	elseE = b.convertTo(elseE, target)
	return b.Bound.New(Expr{Kind: ETernary, Type: target, Span: e.Span, A: cond, B: thenE, C: elseE})
}

func (b *Binder) bindConcat(scope symbols.ScopeID, at symbols.Location, flags BindFlags, e *ast.Expr) BoundExprID {
	elems := make([]BoundExprID, 0, len(e.List))
	total := uint32(0)
	fourState := false
	for _, el := range e.List {
		be := b.BindExpr(scope, at, flags, el)
		elems = append(elems, be)
		w, _, fs, ok := b.integralInfo(b.Bound.Get(be).Type)
		if !ok {
			return b.semaErr(diag.SemaInvalidConcatOperand, b.Bound.Get(be).Span,
				"concatenation operand must be an integral type, not "+types.Label(b.Types, b.Bound.Get(be).Type))
		}
		total += w
		fourState = fourState || fs
	}
	// Concatenation results are always unsigned (IEEE 1800 §11.4.12).
	return b.Bound.New(Expr{Kind: EConcat, Type: b.vectorType(total, false, fourState), Span: e.Span, List: elems})
}

func (b *Binder) bindReplicate(scope symbols.ScopeID, at symbols.Location, flags BindFlags, e *ast.Expr) BoundExprID {
	count := b.BindExpr(scope, at, flags|FlagInsideConstant, e.A)
	n, known := int64(0), false
	if b.ConstFolder != nil {
		n, known = b.ConstFolder(b, scope, e.A)
	}
	if !known {
		if v, ok := foldLiteralInt(b.Exprs, e.A); ok {
			n, known = v, true
		}
	}
	if known && n < 0 {
		return b.semaErr(diag.SemaReplicationCount, e.Span, "replication count must be non-negative")
	}
	elems := make([]BoundExprID, 0, len(e.List))
	width := uint32(0)
	fourState := false
	for _, el := range e.List {
		be := b.BindExpr(scope, at, flags, el)
		elems = append(elems, be)
		w, _, fs, ok := b.integralInfo(b.Bound.Get(be).Type)
		if !ok {
			return b.semaErr(diag.SemaInvalidConcatOperand, b.Bound.Get(be).Span, "replication operand must be an integral type")
		}
		width += w
		fourState = fourState || fs
	}
	total := uint32(0)
	if known {
		total = uint32(n) * width
	}
	return b.Bound.New(Expr{Kind: EReplicate, Type: b.vectorType(total, false, fourState), Span: e.Span, A: count, List: elems})
}

func (b *Binder) bindCall(scope symbols.ScopeID, at symbols.Location, flags BindFlags, e *ast.Expr) BoundExprID {
	args := make([]BoundExprID, 0, len(e.List))
	for _, a := range e.List {
		args = append(args, b.BindExpr(scope, at, flags, a))
	}
	if e.Text == "" {
		return b.semaErr(diag.SemaUnresolvedSymbol, e.Span, "called expression is not a subroutine name")
	}
	name := b.intern(e.Text)
	sym, ok := b.Table.LookupUnqualified(scope, name, at)
	if !ok {
		return b.semaErr(diag.SemaUnresolvedSymbol, e.Span, "call of undeclared subroutine '"+e.Text+"'")
	}
	s := b.Table.Symbols.Get(sym)
	if s.Kind != symbols.KindSubroutine {
		return b.semaErr(diag.SemaNotASubroutine, e.Span, "'"+e.Text+"' is not a function or task")
	}
	// Arguments convert to the declared port types where both sides are
	// packed shapes.
	if s.Body.IsValid() {
		ports := b.subroutinePorts(s.Body)
		for i := range args {
			if i < len(ports) {
				if pt := b.Table.Symbols.Get(ports[i]).Type; pt.IsValid() {
					args[i] = b.convertTo(args[i], pt)
				}
			}
		}
	}
	ret := s.Type
	if !ret.IsValid() {
		ret = b.Types.Builtins().Void
	}
	return b.Bound.New(Expr{Kind: ECall, Type: ret, Span: e.Span, Text: e.Text, Symbol: sym, List: args})
}

// subroutinePorts returns the argument symbols of a subroutine body scope
// in declaration order.
func (b *Binder) subroutinePorts(scope symbols.ScopeID) []symbols.SymbolID {
	sc := b.Table.Scopes.Get(scope)
	if sc == nil {
		return nil
	}
	var ports []symbols.SymbolID
	for _, id := range sc.Symbols {
		if s := b.Table.Symbols.Get(id); s != nil && s.Flags.Has(symbols.FlagPort) {
			ports = append(ports, id)
		}
	}
	return ports
}

func (b *Binder) bindIndex(scope symbols.ScopeID, at symbols.Location, flags BindFlags, e *ast.Expr) BoundExprID {
	base := b.BindExpr(scope, at, flags, e.A)
	index := b.BindExpr(scope, at, flags, e.B) // self-determined
	bt := b.Types.Resolve(b.Bound.Get(base).Type)
	t, ok := b.Types.Lookup(bt)
	if !ok {
		return b.errorExpr(e.Span)
	}
	var elem types.TypeID
	switch t.Kind {
	case types.KindFixedUnpackedArray, types.KindDynamicArray, types.KindQueue, types.KindAssociativeArray:
		elem = t.Elem
	case types.KindPackedArray:
		elem = t.Elem
	case types.KindIntegral:
		_, _, fs, _ := b.integralInfo(bt)
		elem = b.vectorType(1, false, fs)
	case types.KindString:
		elem = b.Types.Builtins().Byte
	case types.KindError:
		return b.errorExpr(e.Span)
	default:
		return b.semaErr(diag.SemaNotIndexable, e.Span, types.Label(b.Types, bt)+" is not an array or packed type")
	}
	return b.Bound.New(Expr{Kind: EIndex, Type: elem, Span: e.Span, A: base, B: index})
}

func (b *Binder) bindPartSelect(scope symbols.ScopeID, at symbols.Location, flags BindFlags, e *ast.Expr) BoundExprID {
	base := b.BindExpr(scope, at, flags, e.A)
	left := b.BindExpr(scope, at, flags, e.B)
	right := b.BindExpr(scope, at, flags, e.C)
	_, _, fs, ok := b.integralInfo(b.Bound.Get(base).Type)
	if !ok {
		return b.semaErr(diag.SemaNotIndexable, e.Span, "part-select base must be an integral type")
	}
	width := uint32(0)
	switch e.Mode {
	case ast.PartSelectRange:
		l, lok := b.foldSelectBound(scope, e.B)
		r, rok := b.foldSelectBound(scope, e.C)
		if lok && rok {
			d := l - r
			if d < 0 {
				d = -d
			}
			width = uint32(d) + 1
		}
	case ast.PartSelectPlusDyn, ast.PartSelectMinusDyn:
		if w, ok := b.foldSelectBound(scope, e.C); ok && w > 0 {
			width = uint32(w)
		}
	}
	return b.Bound.New(Expr{Kind: EPartSelect, Type: b.vectorType(width, false, fs), Span: e.Span, A: base, B: left, C: right, Mode: e.Mode})
}

func (b *Binder) foldSelectBound(scope symbols.ScopeID, id ast.ExprID) (int64, bool) {
	if b.ConstFolder != nil {
		if v, ok := b.ConstFolder(b, scope, id); ok {
			return v, true
		}
	}
	return foldLiteralInt(b.Exprs, id)
}

func (b *Binder) bindAssignPattern(scope symbols.ScopeID, at symbols.Location, flags BindFlags, e *ast.Expr) BoundExprID {
	elems := make([]BoundExprID, 0, len(e.List))
	for _, el := range e.List {
		elems = append(elems, b.BindExpr(scope, at, flags, el))
	}
	return b.Bound.New(Expr{Kind: EAssignPattern, Type: b.Types.Builtins().Untyped, Span: e.Span, List: elems})
}

// convertTo wraps expr in an EConvert node unless it already has the
// target type. The conversion kind is diagnostic-only metadata.
func (b *Binder) convertTo(expr BoundExprID, target types.TypeID) BoundExprID {
	e := b.Bound.Get(expr)
	if e == nil || e.Type == target || b.isErrorType(e.Type) || b.isErrorType(target) {
		return expr
	}
	if b.Types.IsMatching(e.Type, target) {
		return expr
	}
	kind := ConvNone
	fw, _, _, fok := b.integralInfo(e.Type)
	tw, _, _, tok := b.integralInfo(target)
	switch {
	case b.isFloating(target) && fok:
		kind = ConvIntToReal
	case tok && b.isFloating(e.Type):
		kind = ConvRealToInt
	case fok && tok && tw > fw:
		kind = ConvWiden
	case fok && tok && tw < fw:
		kind = ConvTruncate
	case fok && tok:
		kind = ConvSignChange
	}
	return b.Bound.New(Expr{Kind: EConvert, Type: target, Span: e.Span, A: expr, Conv: kind})
}
