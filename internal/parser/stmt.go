package parser

import (
	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/token"
)

// parseEventControl parses `@(event_expr {or|, event_expr})`, `@*`, or
// `@(*)`. A `*`/`(*)` sensitivity list is returned as an empty slice; no
// implicit sensitivity list is derived from the body.
func (p *Parser) parseEventControl() []ast.ExprID {
	p.advance() // '@'
	if p.at(token.Star) {
		p.advance()
		return nil
	}
	if !p.at(token.LParen) {
		return nil
	}
	p.advance()
	if p.at(token.Star) {
		p.advance()
		p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' after '*' sensitivity list")
		return nil
	}
	var events []ast.ExprID
	for {
		events = append(events, p.parseEventExpr())
		if p.at(token.Ident) && p.cur.Text == "or" {
			p.advance()
			continue
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close event control")
	return events
}

func (p *Parser) parseEventExpr() ast.ExprID {
	start := p.cur.Span
	switch p.cur.Kind {
	case token.KwPosedge, token.KwNegedge, token.KwEdge:
		op := p.advance().Kind
		operand := p.parseExpr()
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprUnary, Span: p.span(start), Op: op, A: operand})
	default:
		return p.parseExpr()
	}
}

// parseStmt parses one statement, including block/if/case/loop forms.
func (p *Parser) parseStmt() ast.StmtID {
	start := p.cur.Span
	switch p.cur.Kind {
	case token.KwBegin:
		return p.parseBlockStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwCase, token.KwCasex, token.KwCasez:
		return p.parseCaseStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwDo:
		return p.parseDoWhileStmt()
	case token.KwForever:
		p.advance()
		body := p.parseStmt()
		return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtForever, Span: p.span(start), Body: body})
	case token.KwBreak:
		p.advance()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after break")
		return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtBreak, Span: p.span(start)})
	case token.KwContinue:
		p.advance()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after continue")
		return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtContinue, Span: p.span(start)})
	case token.KwReturn:
		p.advance()
		var rhs ast.ExprID = ast.NoExprID
		if !p.at(token.Semicolon) {
			rhs = p.parseExpr()
		}
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return")
		return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtReturn, Span: p.span(start), RHS: rhs})
	case token.Semicolon:
		p.advance()
		return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtNull, Span: p.span(start)})
	case token.At, token.Hash:
		return p.parseTimingControlStmt()
	case token.KwDisable:
		p.advance()
		name, _ := p.parseIdent()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after disable")
		return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtExprStmt, Span: p.span(start), LHS: p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprIdent, Span: p.lastSpan, Text: name})})
	default:
		if p.startsVarDeclStmt() {
			return p.parseVarDeclStmt()
		}
		return p.parseExprOrAssignStmt()
	}
}

func (p *Parser) parseBlockStmt() ast.StmtID {
	start := p.cur.Span
	p.advance() // begin
	if p.at(token.Colon) {
		p.advance()
		p.parseIdent()
	}
	var list []ast.StmtID
	for !p.at(token.KwEnd) && !p.at(token.EOF) {
		list = append(list, p.parseStmt())
	}
	p.expect(token.KwEnd, diag.SynExpectKeyword, "expected 'end' to close block")
	if p.at(token.Colon) {
		p.advance()
		p.parseIdent()
	}
	return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtBlock, Span: p.span(start), List: list})
}

func (p *Parser) parseIfStmt() ast.StmtID {
	start := p.cur.Span
	p.advance() // if
	p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' after if condition")
	then := p.parseStmt()
	var els ast.StmtID
	if p.at(token.KwElse) {
		p.advance()
		els = p.parseStmt()
	}
	return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtIf, Span: p.span(start), Cond: cond, Then: then, Else: els})
}

func (p *Parser) parseCaseStmt() ast.StmtID {
	start := p.cur.Span
	ckind := ast.CaseExact
	switch p.advance().Kind {
	case token.KwCasex:
		ckind = ast.CaseX
	case token.KwCasez:
		ckind = ast.CaseZ
	}
	p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' after case keyword")
	sel := p.parseExpr()
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' after case selector")
	var items []ast.CaseItem
	sawDefault := false
	for !p.at(token.KwEndcase) && !p.at(token.EOF) {
		if p.at(token.KwDefault) {
			if sawDefault {
				p.report(diag.SynDuplicateDefault, diag.SevError, p.cur.Span, "duplicate 'default' case arm")
			}
			sawDefault = true
			p.advance()
			if p.at(token.Colon) {
				p.advance()
			}
			body := p.parseStmt()
			items = append(items, ast.CaseItem{Body: body})
			continue
		}
		var labels []ast.ExprID
		labels = append(labels, p.parseExpr())
		for p.at(token.Comma) {
			p.advance()
			labels = append(labels, p.parseExpr())
		}
		p.expect(token.Colon, diag.SynExpectCaseArrow, "expected ':' after case item labels")
		body := p.parseStmt()
		items = append(items, ast.CaseItem{Labels: labels, Body: body})
	}
	p.expect(token.KwEndcase, diag.SynExpectKeyword, "expected 'endcase'")
	return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtCase, Span: p.span(start), Cond: sel, Cases: items, CKind: ckind})
}

func (p *Parser) parseForStmt() ast.StmtID {
	start := p.cur.Span
	p.advance() // for
	p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' after 'for'")
	var init []ast.StmtID
	if !p.at(token.Semicolon) {
		init = append(init, p.parseForInitClause())
		for p.at(token.Comma) {
			p.advance()
			init = append(init, p.parseForInitClause())
		}
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for-loop initializer")
	var cond ast.ExprID = ast.NoExprID
	if !p.at(token.Semicolon) {
		cond = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for-loop condition")
	var step []ast.ExprID
	if !p.at(token.RParen) {
		step = append(step, p.parseExpr())
		for p.at(token.Comma) {
			p.advance()
			step = append(step, p.parseExpr())
		}
	}
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' after for-loop header")
	body := p.parseStmt()
	return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtFor, Span: p.span(start), Init: init, Cond: cond, Step: step, Body: body})
}

// parseForInitClause parses one `[type] name = expr` entry of a for-loop
// initializer list, folding a `genvar`/type-led declaration and a plain
// assignment into the same StmtVarDecl/StmtAssignBlocking shapes used
// elsewhere.
func (p *Parser) parseForInitClause() ast.StmtID {
	start := p.cur.Span
	if p.at(token.KwGenvar) {
		p.advance()
	}
	if p.startsDataType() {
		typ := p.parseDataType()
		name, _ := p.parseIdent()
		init := ast.NoExprID
		if p.at(token.Assign) {
			p.advance()
			init = p.parseExpr()
		}
		return p.arenas.Stmts.New(ast.Stmt{
			Kind: ast.StmtVarDecl, Span: p.span(start),
			VarType: typ, VarNames: []string{name}, VarInits: []ast.ExprID{init},
		})
	}
	lhs := p.parseLValue()
	p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in for-loop initializer")
	rhs := p.parseExpr()
	return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtAssignBlocking, Span: p.span(start), LHS: lhs, RHS: rhs})
}

func (p *Parser) parseWhileStmt() ast.StmtID {
	start := p.cur.Span
	p.advance() // while
	p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' after while condition")
	body := p.parseStmt()
	return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtWhile, Span: p.span(start), Cond: cond, Body: body})
}

func (p *Parser) parseDoWhileStmt() ast.StmtID {
	start := p.cur.Span
	p.advance() // do
	body := p.parseStmt()
	p.expect(token.KwWhile, diag.SynExpectKeyword, "expected 'while' after do-block")
	p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' after do-while condition")
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after do-while")
	return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtDoWhile, Span: p.span(start), Cond: cond, Body: body})
}

// parseTimingControlStmt parses a standalone `@(...) stmt;` or `#delay
// stmt;` timing control, stored as its own statement kind so the binder
// can tell a delay/event wait apart from the statement it gates.
func (p *Parser) parseTimingControlStmt() ast.StmtID {
	start := p.cur.Span
	var events []ast.ExprID
	if p.at(token.At) {
		events = p.parseEventControl()
	} else {
		p.advance() // '#'
		events = []ast.ExprID{p.parseExpr()}
	}
	body := p.parseStmt()
	return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtTimingControl, Span: p.span(start), EventExprs: events, Body: body})
}

// startsVarDeclStmt reports whether the current position begins a local
// variable declaration inside a statement/function body.
func (p *Parser) startsVarDeclStmt() bool {
	switch {
	case isBuiltinTypeKeyword(p.cur.Kind):
		return true
	case p.atOr(token.KwSigned, token.KwUnsigned, token.KwStruct, token.KwUnion, token.KwEnum):
		return true
	case p.atOr(token.KwAutomatic, token.KwStatic, token.KwConst):
		return true
	case p.atOr(token.Ident, token.EscapedIdent):
		next := p.peekAt(1).Kind
		return next == token.Ident || next == token.EscapedIdent
	default:
		return false
	}
}

func (p *Parser) parseVarDeclStmt() ast.StmtID {
	start := p.cur.Span
	for p.atOr(token.KwAutomatic, token.KwStatic, token.KwConst) {
		p.advance()
	}
	typ := p.parseDataType()
	var names []string
	var inits []ast.ExprID
	for {
		name, ok := p.parseIdent()
		if !ok {
			break
		}
		names = append(names, name)
		p.parseUnpackedDimList()
		init := ast.NoExprID
		if p.at(token.Assign) {
			p.advance()
			init = p.parseExpr()
		}
		inits = append(inits, init)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after variable declaration")
	return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtVarDecl, Span: p.span(start), VarType: typ, VarNames: names, VarInits: inits})
}

// assignOps are the compound-assignment operators, each desugared to a
// StmtAssignBlocking whose RHS rebuilds `lhs OP= rhs` as `lhs OP rhs`.
var assignOps = map[token.Kind]token.Kind{
	token.PlusAssign:    token.Plus,
	token.MinusAssign:   token.Minus,
	token.StarAssign:    token.Star,
	token.SlashAssign:   token.Slash,
	token.PercentAssign: token.Percent,
	token.AmpAssign:     token.Amp,
	token.PipeAssign:    token.Pipe,
	token.CaretAssign:   token.Caret,
	token.ShlAssign:     token.Shl,
	token.ShrAssign:     token.Shr,
	token.AShlAssign:    token.AShl,
	token.AShrAssign:    token.AShr,
}

// parseLValue parses an assignment target or bare call/task statement:
// postfix-level only (ident/index/select/member/call), stopping before
// any binary operator. This keeps `<=` from being swallowed as the
// relational operator when it's actually introducing a non-blocking
// assignment.
func (p *Parser) parseLValue() ast.ExprID {
	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) parseExprOrAssignStmt() ast.StmtID {
	start := p.cur.Span
	lhs := p.parseLValue()
	switch {
	case p.at(token.Assign):
		p.advance()
		rhs := p.parseExpr()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after assignment")
		return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtAssignBlocking, Span: p.span(start), LHS: lhs, RHS: rhs})
	case p.at(token.LtEq):
		p.advance()
		rhs := p.parseExpr()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after non-blocking assignment")
		return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtAssignNonBlocking, Span: p.span(start), LHS: lhs, RHS: rhs})
	default:
		if base, ok := assignOps[p.cur.Kind]; ok {
			p.advance()
			operand := p.parseExpr()
			rhs := p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprBinary, Span: p.spanOf(operand), Op: base, A: lhs, B: operand})
			p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after compound assignment")
			return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtAssignBlocking, Span: p.span(start), LHS: lhs, RHS: rhs})
		}
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression statement")
		return p.arenas.Stmts.New(ast.Stmt{Kind: ast.StmtExprStmt, Span: p.span(start), LHS: lhs})
	}
}
