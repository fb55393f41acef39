package binder

import (
	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/symbols"
	"svlang/internal/types"
)

// BindFile populates the compilation unit scope with every top-level
// design element of file. Members are declared in source order, each at
// the next scope index, so that later binding sees
// index-bounded visibility.
func (b *Binder) BindFile(id ast.FileID) {
	f := b.Files.Get(id)
	if f == nil {
		return
	}
	b.bindItems(b.Table.Unit, f.Items)
}

func (b *Binder) bindItems(scope symbols.ScopeID, list []ast.ItemID) {
	for _, itemID := range list {
		b.bindItem(scope, itemID)
	}
}

func (b *Binder) bindItem(scope symbols.ScopeID, id ast.ItemID) {
	it := b.Items.Get(id)
	if it == nil {
		return
	}
	switch it.Kind {
	case ast.ItemModule, ast.ItemInterface, ast.ItemProgram:
		b.bindModuleLike(scope, id, it)
	case ast.ItemPackage:
		b.bindPackage(scope, id, it)
	case ast.ItemPort:
		b.bindPort(scope, id, it)
	case ast.ItemParam:
		b.bindParam(scope, id, it)
	case ast.ItemNet:
		b.bindNet(scope, id, it)
	case ast.ItemVar:
		b.bindVar(scope, id, it)
	case ast.ItemTypedef:
		b.bindTypedef(scope, id, it)
	case ast.ItemContinuousAssign:
		b.bindContinuousAssignItem(scope, id, it)
	case ast.ItemProceduralBlock:
		b.bindProceduralBlockItem(scope, id, it)
	case ast.ItemGenerateIf:
		b.bindGenerateIf(scope, id, it)
	case ast.ItemGenerateFor:
		b.bindGenerateFor(scope, id, it)
	case ast.ItemInstance:
		b.bindInstance(scope, id, it)
	case ast.ItemFunction, ast.ItemTask:
		b.bindSubroutine(scope, id, it)
	}
}

func (b *Binder) bindModuleLike(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	decl := b.Items.Module(id)
	if decl == nil {
		return
	}
	kind := symbols.KindModule
	scopeKind := symbols.ScopeModule
	switch it.Kind {
	case ast.ItemInterface:
		kind, scopeKind = symbols.KindInterface, symbols.ScopeInterface
	case ast.ItemProgram:
		kind, scopeKind = symbols.KindProgram, symbols.ScopeProgram
	}
	modScope := b.Table.NewScope(scopeKind, scope, symbols.Owner{Item: id}, it.Span)
	b.Table.RegisterModule(decl.Name, modScope)

	name := b.intern(decl.Name)
	sym, ok := b.Table.Declare(scope, name, it.Span, kind, 0, symbols.Decl{Item: id})
	if ok {
		b.Table.Symbols.Get(sym).Body = modScope
	}

	b.bindItems(modScope, decl.ParamPorts)
	b.bindItems(modScope, decl.Ports)
	b.bindItems(modScope, decl.Body)
}

func (b *Binder) bindPackage(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	decl := b.Items.Package(id)
	if decl == nil {
		return
	}
	pkgScope := b.Table.NewScope(symbols.ScopePackage, scope, symbols.Owner{Item: id}, it.Span)
	b.Table.RegisterPackage(decl.Name, pkgScope)

	name := b.intern(decl.Name)
	sym, ok := b.Table.Declare(scope, name, it.Span, symbols.KindPackage, 0, symbols.Decl{Item: id})
	if ok {
		b.Table.Symbols.Get(sym).Body = pkgScope
	}

	b.bindItems(pkgScope, decl.Body)
}

func (b *Binder) bindPort(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	p := b.Items.Port(id)
	if p == nil {
		return
	}
	ty := b.ResolveType(scope, symbols.Unbounded, p.Type)
	name := b.intern(p.Name)
	sym, ok := b.Table.Declare(scope, name, it.Span, symbols.KindPort, symbols.FlagPort, symbols.Decl{Item: id})
	if !ok {
		return
	}
	b.Table.Symbols.Get(sym).Type = ty
	if p.Default.IsValid() {
		b.Inits[sym] = b.BindExpr(scope, symbols.Unbounded, 0, p.Default)
	}
}

func (b *Binder) bindParam(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	p := b.Items.Param(id)
	if p == nil {
		return
	}
	// An untyped parameter takes the type of whatever overrides or
	// initializes it; leave the symbol's type open rather than pinning a
	// 1-bit implicit type.
	var ty types.TypeID
	if p.Type.IsValid() {
		ty = b.ResolveType(scope, symbols.Unbounded, p.Type)
	}
	kind := symbols.KindParameter
	if p.IsLocal {
		kind = symbols.KindLocalParam
	}
	name := b.intern(p.Name)
	sym, ok := b.Table.Declare(scope, name, it.Span, kind, 0, symbols.Decl{Item: id})
	if !ok {
		return
	}
	b.Table.Symbols.Get(sym).Type = ty
	if p.Default.IsValid() {
		b.Inits[sym] = b.BindExpr(scope, symbols.Unbounded, FlagInsideConstant, p.Default)
	}
}

func (b *Binder) bindNet(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	n := b.Items.Net(id)
	if n == nil {
		return
	}
	ty := b.ResolveType(scope, symbols.Unbounded, n.Type)
	for i, nm := range n.Names {
		name := b.intern(nm)
		sym, ok := b.Table.Declare(scope, name, it.Span, symbols.KindNet, 0, symbols.Decl{Item: id})
		if !ok {
			continue
		}
		b.Table.Symbols.Get(sym).Type = b.wrapUnpacked(scope, ty, unpackedAt(n.UnpackedSz, i))
		if i < len(n.Inits) && n.Inits[i].IsValid() {
			b.Inits[sym] = b.BindExpr(scope, symbols.Unbounded, 0, n.Inits[i])
		}
	}
}

func (b *Binder) bindVar(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	v := b.Items.Var(id)
	if v == nil {
		return
	}
	ty := b.ResolveType(scope, symbols.Unbounded, v.Type)
	for i, nm := range v.Names {
		name := b.intern(nm)
		sym, ok := b.Table.Declare(scope, name, it.Span, symbols.KindVariable, 0, symbols.Decl{Item: id})
		if !ok {
			continue
		}
		b.Table.Symbols.Get(sym).Type = b.wrapUnpacked(scope, ty, unpackedAt(v.UnpackedSz, i))
		if i < len(v.Inits) && v.Inits[i].IsValid() {
			b.Inits[sym] = b.BindExpr(scope, symbols.Unbounded, 0, v.Inits[i])
		}
	}
}

func unpackedAt(dims [][]ast.ExprID, i int) []ast.ExprID {
	if i < len(dims) {
		return dims[i]
	}
	return nil
}

// wrapUnpacked applies unpacked dimension bounds outermost-first; each
// bound is a constant size expression (the parser keeps only the sizing
// bound of a [hi:lo] bracket).
func (b *Binder) wrapUnpacked(scope symbols.ScopeID, elem types.TypeID, bounds []ast.ExprID) types.TypeID {
	for i := len(bounds) - 1; i >= 0; i-- {
		size, ok := b.foldDimBound(scope, symbols.Unbounded, bounds[i])
		if !ok || size < 0 {
			size = 0
		}
		elem = b.Types.Intern(types.MakeFixedUnpackedArray(elem, uint32(size)+1))
	}
	return elem
}

func (b *Binder) bindTypedef(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	td := b.Items.Typedef(id)
	if td == nil {
		return
	}
	alias := b.Types.RegisterAlias(td.Name, it.Span)
	target := b.ResolveType(scope, symbols.Unbounded, td.Type)
	b.Types.SetAliasTarget(alias, target)

	name := b.intern(td.Name)
	sym, ok := b.Table.Declare(scope, name, it.Span, symbols.KindTypedef, 0, symbols.Decl{Item: id})
	if ok {
		b.Table.Symbols.Get(sym).Type = alias
	}
}

func (b *Binder) bindContinuousAssignItem(scope symbols.ScopeID, id ast.ItemID, _ *ast.Item) {
	ca := b.Items.Assign(id)
	if ca == nil {
		return
	}
	b.BindExpr(scope, symbols.Unbounded, 0, ca.LHS)
	b.BindExpr(scope, symbols.Unbounded, 0, ca.RHS)
}

func (b *Binder) bindProceduralBlockItem(scope symbols.ScopeID, id ast.ItemID, _ *ast.Item) {
	pb := b.Items.Proc(id)
	if pb == nil {
		return
	}
	for _, ev := range pb.EventExprs {
		b.BindExpr(scope, symbols.Unbounded, 0, ev)
	}
	b.BindStmt(scope, symbols.Unbounded, 0, pb.Body)
}

// bindGenerateIf registers the branch choice as a deferred producer: it
// only materializes scope members once something actually looks inside
// the generate region (the deferred-members rule), which is
// also the point at which the if-condition is guaranteed constant-
// foldable.
func (b *Binder) bindGenerateIf(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	gi := b.Items.GenIf(id)
	if gi == nil {
		return
	}
	genScope := b.Table.NewScope(symbols.ScopeGenerate, scope, symbols.Owner{Item: id}, it.Span)
	var cond ast.ExprID
	if len(gi.Cond) > 0 {
		cond = gi.Cond[0]
	}
	b.Table.Scopes.Get(genScope).Defer(func(t *symbols.Table, sc symbols.ScopeID) {
		branch := gi.Then
		if cond.IsValid() && b.ConstFolder != nil {
			if v, ok := b.ConstFolder(b, scope, cond); ok && v == 0 {
				branch = gi.Else
			}
		}
		b.bindItems(sc, branch)
	})
}

func (b *Binder) bindGenerateFor(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	gf := b.Items.GenFor(id)
	if gf == nil {
		return
	}
	genScope := b.Table.NewScope(symbols.ScopeGenerate, scope, symbols.Owner{Item: id}, it.Span)
	genvarName := b.intern(gf.GenvarName)
	b.Table.Scopes.Get(genScope).Defer(func(t *symbols.Table, sc symbols.ScopeID) {
		if b.ConstFolder == nil {
			return
		}
		i, ok := b.ConstFolder(b, scope, gf.Init)
		if !ok {
			return
		}
		const maxIterations = 4096
		for n := 0; n < maxIterations; n++ {
			iterScope := t.NewScope(symbols.ScopeGenerate, sc, symbols.Owner{Item: id}, it.Span)
			sym, declared := t.Declare(iterScope, genvarName, it.Span, symbols.KindGenvar, symbols.FlagGenerate, symbols.Decl{Item: id})
			if !declared {
				return
			}
			t.Symbols.Get(sym).Type = b.Types.Builtins().Int
			b.GenvarValues[sym] = i
			cont, ok := b.ConstFolder(b, iterScope, gf.Cond)
			if !ok || cont == 0 {
				break
			}
			b.bindItems(iterScope, gf.Body)
			next, ok := b.ConstFolder(b, iterScope, gf.Step)
			if !ok {
				break
			}
			i = next
		}
	})
}

func (b *Binder) bindInstance(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	inst := b.Items.Instance(id)
	if inst == nil {
		return
	}
	for _, c := range inst.ParamConns {
		if c.Value.IsValid() {
			b.BindExpr(scope, symbols.Unbounded, FlagInsideConstant, c.Value)
		}
	}
	for _, c := range inst.PortConns {
		if c.Value.IsValid() {
			b.BindExpr(scope, symbols.Unbounded, 0, c.Value)
		}
	}
	name := b.intern(inst.InstName)
	sym, ok := b.Table.Declare(scope, name, it.Span, symbols.KindInstance, 0, symbols.Decl{Item: id})
	if !ok {
		return
	}
	if modScope, found := b.Table.ModuleScope(inst.ModuleName); found {
		b.Table.Symbols.Get(sym).Body = modScope
	} else if b.Reporter != nil {
		diag.ReportError(b.Reporter, diag.SemaUnresolvedSymbol, it.Span, "unresolved module '"+inst.ModuleName+"'").Emit()
	}
}

func (b *Binder) bindSubroutine(scope symbols.ScopeID, id ast.ItemID, it *ast.Item) {
	sub := b.Items.Sub(id)
	if sub == nil {
		return
	}
	subScope := b.Table.NewScope(symbols.ScopeSubroutine, scope, symbols.Owner{Item: id}, it.Span)

	name := b.intern(sub.Name)
	sym, ok := b.Table.Declare(scope, name, it.Span, symbols.KindSubroutine, 0, symbols.Decl{Item: id})
	if !ok {
		return
	}
	b.Table.Symbols.Get(sym).Body = subScope
	if sub.ReturnType.IsValid() {
		b.Table.Symbols.Get(sym).Type = b.ResolveType(scope, symbols.Unbounded, sub.ReturnType)
	}

	b.bindItems(subScope, sub.Params)
	body := make([]BoundStmtID, 0, len(sub.Body))
	for _, s := range sub.Body {
		body = append(body, b.BindStmt(subScope, symbols.Unbounded, 0, s))
	}
	b.SubBodies[sym] = body
}
