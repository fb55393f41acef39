package binder

import (
	"svlang/internal/ast"
	"svlang/internal/symbols"
	"svlang/internal/types"
)

// BindStmt binds one CST statement, declaring any statement-local
// variables into scope as it goes. Block statements introduce a nested
// scope so their locals don't leak.
func (b *Binder) BindStmt(scope symbols.ScopeID, at symbols.Location, flags BindFlags, id ast.StmtID) BoundStmtID {
	s := b.Stmts.Get(id)
	if s == nil {
		return NoBoundStmtID
	}
	switch s.Kind {
	case ast.StmtBlock:
		return b.bindBlock(scope, at, flags, id, s)
	case ast.StmtIf:
		return b.BoundStmts.New(Stmt{
			Kind: SIf, Span: s.Span, Label: s.Label,
			Cond: b.BindExpr(scope, at, flags, s.Cond),
			Then: b.BindStmt(scope, at, flags, s.Then),
			Else: b.BindStmt(scope, at, flags, s.Else),
		})
	case ast.StmtCase:
		return b.bindCase(scope, at, flags, s)
	case ast.StmtFor:
		return b.bindFor(scope, at, flags, id, s)
	case ast.StmtWhile:
		return b.BoundStmts.New(Stmt{
			Kind: SWhile, Span: s.Span, Label: s.Label,
			Cond: b.BindExpr(scope, at, flags, s.Cond),
			Body: b.BindStmt(scope, at, flags, s.Body),
		})
	case ast.StmtDoWhile:
		return b.BoundStmts.New(Stmt{
			Kind: SDoWhile, Span: s.Span, Label: s.Label,
			Cond: b.BindExpr(scope, at, flags, s.Cond),
			Body: b.BindStmt(scope, at, flags, s.Body),
		})
	case ast.StmtForever:
		return b.BoundStmts.New(Stmt{
			Kind: SForever, Span: s.Span, Label: s.Label,
			Body: b.BindStmt(scope, at, flags, s.Body),
		})
	case ast.StmtAssignBlocking, ast.StmtAssignNonBlocking:
		kind := SAssignBlocking
		if s.Kind == ast.StmtAssignNonBlocking {
			kind = SAssignNonBlocking
		}
		lhs := b.BindExpr(scope, at, flags, s.LHS)
		rhs := b.BindExpr(scope, at, flags, s.RHS)
		if lt := b.Bound.Get(lhs).Type; lt.IsValid() {
			if _, _, _, ok := b.integralInfo(lt); ok {
				rhs = b.convertTo(rhs, lt)
			}
		}
		return b.BoundStmts.New(Stmt{Kind: kind, Span: s.Span, Label: s.Label, LHS: lhs, RHS: rhs})
	case ast.StmtExprStmt:
		return b.BoundStmts.New(Stmt{
			Kind: SExprStmt, Span: s.Span, Label: s.Label,
			RHS: b.BindExpr(scope, at, flags, s.RHS),
		})
	case ast.StmtReturn:
		st := Stmt{Kind: SReturn, Span: s.Span, Label: s.Label}
		if s.RHS.IsValid() {
			st.RHS = b.BindExpr(scope, at, flags, s.RHS)
			if ret := b.enclosingReturnType(scope); ret.IsValid() {
				st.RHS = b.convertTo(st.RHS, ret)
			}
		}
		return b.BoundStmts.New(st)
	case ast.StmtBreak:
		return b.BoundStmts.New(Stmt{Kind: SBreak, Span: s.Span, Label: s.Label})
	case ast.StmtContinue:
		return b.BoundStmts.New(Stmt{Kind: SContinue, Span: s.Span, Label: s.Label})
	case ast.StmtNull:
		return b.BoundStmts.New(Stmt{Kind: SNull, Span: s.Span, Label: s.Label})
	case ast.StmtVarDecl:
		return b.bindVarDeclStmt(scope, at, flags, id, s)
	case ast.StmtTimingControl:
		st := Stmt{Kind: STimingControl, Span: s.Span, Label: s.Label}
		for _, ev := range s.EventExprs {
			st.EventExprs = append(st.EventExprs, b.BindExpr(scope, at, flags, ev))
		}
		st.Body = b.BindStmt(scope, at, flags, s.Body)
		return b.BoundStmts.New(st)
	default:
		return b.BoundStmts.New(Stmt{Kind: SNull, Span: s.Span})
	}
}

func (b *Binder) bindBlock(scope symbols.ScopeID, at symbols.Location, flags BindFlags, id ast.StmtID, s *ast.Stmt) BoundStmtID {
	blockScope := b.Table.NewScope(symbols.ScopeBlock, scope, symbols.Owner{Stmt: id}, s.Span)
	if s.Label != "" {
		name := b.intern(s.Label)
		if sym, ok := b.Table.Declare(scope, name, s.Span, symbols.KindBlock, 0, symbols.Decl{Stmt: id}); ok {
			b.Table.Symbols.Get(sym).Body = blockScope
		}
	}
	list := make([]BoundStmtID, 0, len(s.List))
	for _, child := range s.List {
		list = append(list, b.BindStmt(blockScope, symbols.Unbounded, flags, child))
	}
	return b.BoundStmts.New(Stmt{Kind: SBlock, Span: s.Span, Label: s.Label, List: list})
}

func (b *Binder) bindCase(scope symbols.ScopeID, at symbols.Location, flags BindFlags, s *ast.Stmt) BoundStmtID {
	st := Stmt{Kind: SCase, Span: s.Span, Label: s.Label, CKind: s.CKind}
	st.Cond = b.BindExpr(scope, at, flags, s.Cond)
	for _, item := range s.Cases {
		ci := CaseItem{Body: b.BindStmt(scope, at, flags, item.Body)}
		for _, l := range item.Labels {
			ci.Labels = append(ci.Labels, b.BindExpr(scope, at, flags, l))
		}
		st.Cases = append(st.Cases, ci)
	}
	return b.BoundStmts.New(st)
}

func (b *Binder) bindFor(scope symbols.ScopeID, at symbols.Location, flags BindFlags, id ast.StmtID, s *ast.Stmt) BoundStmtID {
	// A for loop's init declarations live in their own scope enclosing
	// the body.
	loopScope := b.Table.NewScope(symbols.ScopeBlock, scope, symbols.Owner{Stmt: id}, s.Span)
	st := Stmt{Kind: SFor, Span: s.Span, Label: s.Label}
	for _, init := range s.Init {
		st.Init = append(st.Init, b.BindStmt(loopScope, symbols.Unbounded, flags, init))
	}
	st.Cond = b.BindExpr(loopScope, symbols.Unbounded, flags, s.Cond)
	for _, step := range s.Step {
		st.Step = append(st.Step, b.BindExpr(loopScope, symbols.Unbounded, flags, step))
	}
	st.Body = b.BindStmt(loopScope, symbols.Unbounded, flags, s.Body)
	return b.BoundStmts.New(st)
}

func (b *Binder) bindVarDeclStmt(scope symbols.ScopeID, at symbols.Location, flags BindFlags, id ast.StmtID, s *ast.Stmt) BoundStmtID {
	ty := b.ResolveType(scope, at, s.VarType)
	st := Stmt{Kind: SVarDecl, Span: s.Span, Label: s.Label, VarType: ty, VarNames: s.VarNames}
	for i, nm := range s.VarNames {
		name := b.intern(nm)
		sym, ok := b.Table.Declare(scope, name, s.Span, symbols.KindVariable, 0, symbols.Decl{Stmt: id})
		if ok {
			b.Table.Symbols.Get(sym).Type = ty
		}
		var init BoundExprID
		if i < len(s.VarInits) && s.VarInits[i].IsValid() {
			init = b.BindExpr(scope, at, flags, s.VarInits[i])
			if _, _, _, intg := b.integralInfo(ty); intg {
				init = b.convertTo(init, ty)
			}
			if ok {
				b.Inits[sym] = init
			}
		}
		st.VarInits = append(st.VarInits, init)
	}
	return b.BoundStmts.New(st)
}

// enclosingReturnType finds the subroutine symbol owning scope (if any)
// and reports its declared return type.
func (b *Binder) enclosingReturnType(scope symbols.ScopeID) (ret types.TypeID) {
	for scope.IsValid() {
		sc := b.Table.Scopes.Get(scope)
		if sc == nil {
			return types.NoTypeID
		}
		if sc.Kind == symbols.ScopeSubroutine {
			// The subroutine symbol lives in the parent scope with this
			// scope as its body.
			parent := b.Table.Scopes.Get(sc.Parent)
			if parent == nil {
				return types.NoTypeID
			}
			for _, symID := range parent.Symbols {
				if s := b.Table.Symbols.Get(symID); s != nil && s.Body == scope {
					return s.Type
				}
			}
			return types.NoTypeID
		}
		scope = sc.Parent
	}
	return types.NoTypeID
}
