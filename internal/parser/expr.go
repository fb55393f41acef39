package parser

import (
	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/source"
	"svlang/internal/token"
)

func (p *Parser) spanOf(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return p.cur.Span
}

// binPrec maps a binary operator token to its precedence level; higher
// binds tighter. Returns 0 for anything that isn't a binary operator.
func binPrec(k token.Kind) int {
	switch k {
	case token.OrOr:
		return 1
	case token.AndAnd:
		return 2
	case token.Pipe:
		return 3
	case token.Caret, token.TildeCaret:
		return 4
	case token.Amp:
		return 5
	case token.EqEq, token.BangEq, token.CaseEq, token.CaseNeq, token.WildEq, token.WildNeq:
		return 6
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return 7
	case token.Shl, token.Shr, token.AShl, token.AShr:
		return 8
	case token.Plus, token.Minus:
		return 9
	case token.Star, token.Slash, token.Percent:
		return 10
	default:
		return 0
	}
}

// parseExpr is the top-level entry point: the right-associative `?:`
// conditional operator, the loosest-binding construct in the grammar.
func (p *Parser) parseExpr() ast.ExprID {
	cond := p.parseBinary(1)
	if p.at(token.Question) {
		start := p.spanOf(cond)
		p.advance()
		thenE := p.parseExpr()
		p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression")
		elseE := p.parseExpr()
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprTernary, Span: p.span(start), A: cond, B: thenE, C: elseE})
	}
	return cond
}

// parseBinary implements precedence climbing over binPrec's table. The
// `+`/`-` additive operators stop early when immediately followed by `:`
// so that `a[i+:8]`'s indexed part-select can be recognized by the caller
// instead of being swallowed as an addition with a missing right operand.
func (p *Parser) parseBinary(minPrec int) ast.ExprID {
	left := p.parsePower()
	for {
		prec := binPrec(p.cur.Kind)
		if prec == 0 || prec < minPrec {
			return left
		}
		if (p.cur.Kind == token.Plus || p.cur.Kind == token.Minus) && p.peekAt(1).Kind == token.Colon {
			return left
		}
		op := p.cur.Kind
		start := p.spanOf(left)
		p.advance()
		right := p.parseBinary(prec + 1)
		left = p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprBinary, Span: p.spanOf(right).Cover(start), Op: op, A: left, B: right})
	}
}

// parsePower handles the right-associative `**`, which binds tighter than
// any binary operator but looser than unary prefix operators.
func (p *Parser) parsePower() ast.ExprID {
	left := p.parseUnary()
	if p.at(token.StarStar) {
		start := p.spanOf(left)
		p.advance()
		right := p.parsePower()
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprBinary, Span: p.span(start), Op: token.StarStar, A: left, B: right})
	}
	return left
}

func (p *Parser) parseUnary() ast.ExprID {
	switch p.cur.Kind {
	case token.Plus, token.Minus, token.Bang, token.Tilde, token.Amp, token.Pipe, token.Caret, token.TildeCaret:
		op := p.cur.Kind
		start := p.cur.Span
		p.advance()
		operand := p.parseUnary()
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprUnary, Span: p.span(start), Op: op, A: operand})
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

// parsePostfix handles the tightest-binding operators: indexing/select,
// call, and scoped/hierarchical member access, left to right.
func (p *Parser) parsePostfix(base ast.ExprID) ast.ExprID {
	for {
		switch p.cur.Kind {
		case token.LBracket:
			base = p.parseIndexOrSelect(base)
		case token.LParen:
			base = p.parseCall(base)
		case token.Dot, token.ColonColon:
			p.advance()
			start := p.spanOf(base)
			name, _ := p.parseIdent()
			base = p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprScopedName, Span: p.span(start), Text: name, A: base})
		default:
			return base
		}
	}
}

// parseIndexOrSelect parses a bracketed suffix: `[i]` bit-select,
// `[hi:lo]` range part-select, or `[base+:width]`/`[base-:width]` indexed
// part-select.
func (p *Parser) parseIndexOrSelect(base ast.ExprID) ast.ExprID {
	start := p.spanOf(base)
	p.advance() // '['
	first := p.parseExpr()
	switch {
	case p.at(token.Colon):
		p.advance()
		right := p.parseExpr()
		p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' to close part-select")
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprPartSelect, Span: p.span(start), A: base, B: first, C: right, Mode: ast.PartSelectRange})
	case p.at(token.Plus) && p.peekAt(1).Kind == token.Colon:
		p.advance()
		p.advance()
		width := p.parseExpr()
		p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' to close indexed part-select")
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprPartSelect, Span: p.span(start), A: base, B: first, C: width, Mode: ast.PartSelectPlusDyn})
	case p.at(token.Minus) && p.peekAt(1).Kind == token.Colon:
		p.advance()
		p.advance()
		width := p.parseExpr()
		p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' to close indexed part-select")
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprPartSelect, Span: p.span(start), A: base, B: first, C: width, Mode: ast.PartSelectMinusDyn})
	default:
		p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' to close index")
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprIndex, Span: p.span(start), A: base, B: first})
	}
}

func (p *Parser) parseCall(base ast.ExprID) ast.ExprID {
	start := p.spanOf(base)
	p.advance() // '('
	var args []ast.ExprID
	if !p.at(token.RParen) {
		args = append(args, p.parseExpr())
		for p.at(token.Comma) {
			p.advance()
			args = append(args, p.parseExpr())
		}
	}
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close call arguments")
	callee := ""
	if e := p.arenas.Exprs.Get(base); e != nil && e.Kind == ast.ExprIdent {
		callee = e.Text
	}
	return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprCall, Span: p.span(start), Text: callee, A: base, List: args})
}

func (p *Parser) parsePrimary() ast.ExprID {
	switch p.cur.Kind {
	case token.IntegerLit:
		tok := p.advance()
		kind := ast.ExprIntLit
		if tok.Number != nil && tok.Number.Unsized {
			kind = ast.ExprUnbasedUnsized
		}
		return p.arenas.Exprs.New(ast.Expr{Kind: kind, Span: tok.Span, Number: tok.Number, Text: tok.Text})
	case token.RealLit:
		tok := p.advance()
		// The lexer only flags out-of-range reals; lifting them to a
		// diagnostic is this layer's job.
		if tok.Number != nil && tok.Number.RealOverflow {
			p.report(diag.LexRealLiteralOverflow, diag.SevWarning, tok.Span, "real literal rounds to infinity")
		}
		if tok.Number != nil && tok.Number.RealUnderflow {
			p.report(diag.LexRealLiteralUnderflow, diag.SevWarning, tok.Span, "nonzero real literal rounds to zero")
		}
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprRealLit, Span: tok.Span, Number: tok.Number, Text: tok.Text})
	case token.TimeLit:
		tok := p.advance()
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprTimeLit, Span: tok.Span, Number: tok.Number, Text: tok.Text})
	case token.StringLit:
		tok := p.advance()
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprStringLit, Span: tok.Span, Text: tok.Text})
	case token.Ident, token.EscapedIdent, token.SystemIdent:
		tok := p.advance()
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprIdent, Span: tok.Span, Text: tok.Text})
	case token.LParen:
		p.advance()
		e := p.parseExpr()
		p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close parenthesized expression")
		return e
	case token.LBrace:
		return p.parseBraceExpr()
	case token.TickLBrace:
		return p.parseAssignmentPattern()
	default:
		sp := p.diagSpan()
		p.err(diag.SynExpectExpression, "expected expression, got \""+p.cur.Text+"\"")
		if !p.at(token.EOF) {
			p.advance()
		}
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprIdent, Span: sp})
	}
}

// parseBraceExpr disambiguates `{a, b, c}` concatenation from
// `{count{a, b}}` replication: the first parsed expression is the
// replication count only if it's immediately followed by another `{`.
func (p *Parser) parseBraceExpr() ast.ExprID {
	start := p.cur.Span
	p.advance() // outer '{'
	first := p.parseExpr()
	if p.at(token.LBrace) {
		p.advance()
		elems := []ast.ExprID{p.parseExpr()}
		for p.at(token.Comma) {
			p.advance()
			elems = append(elems, p.parseExpr())
		}
		p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close replication list")
		p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close replication")
		return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprReplicate, Span: p.span(start), A: first, List: elems})
	}
	elems := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		elems = append(elems, p.parseExpr())
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close concatenation")
	return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprConcat, Span: p.span(start), List: elems})
}

// parseAssignmentPattern parses `'{...}` with positional elements only,
// each a plain expression in source order. Keyed entries (`'{default: 0}`,
// `'{idx: val}`) are not accepted: they end in a syntax diagnostic.
func (p *Parser) parseAssignmentPattern() ast.ExprID {
	start := p.cur.Span
	p.advance() // '{
	var elems []ast.ExprID
	if !p.at(token.RBrace) {
		elems = append(elems, p.parseExpr())
		for p.at(token.Comma) {
			p.advance()
			elems = append(elems, p.parseExpr())
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close assignment pattern")
	return p.arenas.Exprs.New(ast.Expr{Kind: ast.ExprAssignPattern, Span: p.span(start), List: elems})
}
