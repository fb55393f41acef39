package binder

import (
	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/symbols"
	"svlang/internal/token"
	"svlang/internal/types"
)

// ResolveType resolves an ast.TypeSyntax node into an interned types.TypeID:
// integral type syntaxes become interned built-ins; packed
// arrays dimension-wrap their element; an implicit type is a one-bit
// logic, widened by whatever packed dimensions it carries.
func (b *Binder) ResolveType(scope symbols.ScopeID, at symbols.Location, id ast.TypeID) types.TypeID {
	ts := b.TypeSyntaxes.Get(id)
	if ts == nil {
		return b.Types.Builtins().Error
	}
	switch ts.Kind {
	case ast.TSBuiltin:
		return b.resolveBuiltin(scope, at, ts)
	case ast.TSImplicit:
		return b.wrapPackedDims(scope, at, b.Types.Builtins().Logic, ts.PackedDims)
	case ast.TSNamed:
		return b.resolveNamed(scope, at, ts)
	case ast.TSStructUnion:
		return b.resolveStructUnion(scope, at, ts)
	case ast.TSEnum:
		return b.resolveEnum(scope, at, ts)
	default:
		return b.Types.Builtins().Error
	}
}

func (b *Binder) resolveBuiltin(scope symbols.ScopeID, at symbols.Location, ts *ast.TypeSyntax) types.TypeID {
	var base types.TypeID
	bi := b.Types.Builtins()
	switch ts.Keyword {
	case token.KwLogic:
		base = b.Types.Intern(types.MakeIntegral(types.SubLogic, 0, ts.Signed, true))
	case token.KwReg:
		base = b.Types.Intern(types.MakeIntegral(types.SubReg, 0, ts.Signed, true))
	case token.KwBit:
		base = b.Types.Intern(types.MakeIntegral(types.SubBit, 0, ts.Signed, false))
	case token.KwByte:
		base = bi.Byte
	case token.KwShortint:
		base = bi.ShortInt
	case token.KwInt:
		base = bi.Int
	case token.KwLongint:
		base = bi.LongInt
	case token.KwInteger:
		base = bi.Integer
	case token.KwTime:
		base = bi.Time
	case token.KwShortreal:
		return bi.ShortReal
	case token.KwReal:
		return bi.Real
	case token.KwRealtime:
		return bi.RealTime
	case token.KwString:
		return bi.String
	case token.KwEvent:
		return bi.Event
	case token.KwChandle:
		return bi.CHandle
	case token.KwVoid:
		return bi.Void
	default:
		base = bi.Logic
	}
	return b.wrapPackedDims(scope, at, base, ts.PackedDims)
}

// wrapPackedDims applies any explicit packed dimensions outermost-first,
// left to right as written (the first bracket is the outermost array
// dimension), and folds a single [left:right] (or bare
// [width-1:0]-shaped) first dimension directly into the element's own
// width/signedness rather than nesting a trivial one-element array.
func (b *Binder) wrapPackedDims(scope symbols.ScopeID, at symbols.Location, elem types.TypeID, dims []ast.PackedDim) types.TypeID {
	if len(dims) == 0 {
		return elem
	}
	t, ok := b.Types.Lookup(elem)
	if ok && t.Kind == types.KindIntegral && len(dims) == 1 {
		left, lok := b.foldDimBound(scope, at, dims[0].Left)
		right, rok := b.foldDimBound(scope, at, dims[0].Right)
		if lok && rok {
			width := left - right
			if width < 0 {
				width = -width
			}
			width++
			return b.Types.Intern(types.MakeIntegral(types.IntegralSubKind(t.SubKind), uint16(width), t.Signed, t.FourState))
		}
	}
	result := elem
	for i := len(dims) - 1; i >= 0; i-- {
		left, lok := b.foldDimBound(scope, at, dims[i].Left)
		right, rok := b.foldDimBound(scope, at, dims[i].Right)
		if !lok || !rok {
			left, right = 0, 0
		}
		result = b.Types.Intern(types.MakePackedArray(result, left, right))
	}
	return result
}

func (b *Binder) foldDimBound(scope symbols.ScopeID, at symbols.Location, expr ast.ExprID) (int32, bool) {
	if !expr.IsValid() {
		return 0, true
	}
	if b.ConstFolder != nil {
		if v, ok := b.ConstFolder(b, scope, expr); ok {
			return int32(v), true
		}
	}
	if v, ok := foldLiteralInt(b.Exprs, expr); ok {
		return int32(v), true
	}
	return 0, false
}

// foldLiteralInt handles the common `[7:0]`-shaped case (a bare decimal
// integer literal) without needing a full constant evaluator wired in;
// anything more elaborate (a parameter reference, an arithmetic
// expression) goes through ConstFolder once internal/consteval is wired.
func foldLiteralInt(exprs *ast.Exprs, id ast.ExprID) (int64, bool) {
	e := exprs.Get(id)
	if e == nil || e.Kind != ast.ExprIntLit || e.Number == nil {
		return 0, false
	}
	var v int64
	for _, ch := range e.Number.Digits {
		if ch == '_' {
			continue
		}
		d, ok := decimalDigit(ch)
		if !ok {
			return 0, false
		}
		v = v*10 + int64(d)
	}
	return v, true
}

func decimalDigit(ch rune) (int, bool) {
	if ch < '0' || ch > '9' {
		return 0, false
	}
	return int(ch - '0'), true
}

func (b *Binder) resolveNamed(scope symbols.ScopeID, at symbols.Location, ts *ast.TypeSyntax) types.TypeID {
	name := b.intern(ts.Name)
	sym, ok := b.Table.LookupUnqualified(scope, name, at)
	if !ok {
		if b.Reporter != nil {
			diag.ReportError(b.Reporter, diag.SemaUnresolvedSymbol, ts.Span, "unresolved type '"+ts.Name+"'").Emit()
		}
		return b.Types.Builtins().Error
	}
	s := b.Table.Symbols.Get(sym)
	if s == nil {
		return b.Types.Builtins().Error
	}
	return b.wrapPackedDims(scope, at, s.Type, ts.PackedDims)
}

func (b *Binder) resolveStructUnion(scope symbols.ScopeID, at symbols.Location, ts *ast.TypeSyntax) types.TypeID {
	fields := make([]types.StructField, len(ts.Fields))
	for i, f := range ts.Fields {
		fields[i] = types.StructField{Name: f.Name, Type: b.ResolveType(scope, at, f.Type)}
	}
	if ts.IsUnion {
		return b.Types.RegisterPackedUnion("", ts.Span, fields, ts.IsTagged)
	}
	return b.Types.RegisterPackedStruct("", ts.Span, fields)
}

func (b *Binder) resolveEnum(scope symbols.ScopeID, at symbols.Location, ts *ast.TypeSyntax) types.TypeID {
	base := b.Types.Builtins().Int
	if ts.EnumBase.IsValid() {
		base = b.ResolveType(scope, at, ts.EnumBase)
	}
	members := make([]types.EnumMember, len(ts.EnumMembers))
	next := int64(0)
	for i, m := range ts.EnumMembers {
		val := next
		if m.Value.IsValid() {
			if v, ok := b.foldDimBound(scope, at, m.Value); ok {
				val = int64(v)
			}
		}
		members[i] = types.EnumMember{Name: m.Name, Value: val}
		next = val + 1
	}
	return b.Types.RegisterEnum("", ts.Span, base, members)
}
