package parser

import (
	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/token"
)

// parseSubroutineItem parses a function or task declaration. A function
// carries its explicit return type; an omitted return type is left as
// NoTypeID, the same as `void`. Tasks never carry one.
func (p *Parser) parseSubroutineItem(kind ast.ItemKind) (ast.ItemID, bool) {
	start := p.cur.Span
	endKw := token.KwEndtask
	if kind == ast.ItemFunction {
		endKw = token.KwEndfunction
	}
	p.advance() // function/task
	for p.atOr(token.KwAutomatic, token.KwStatic) {
		p.advance()
	}
	retType := ast.NoTypeID
	if kind == ast.ItemFunction {
		switch {
		case p.at(token.KwVoid):
			p.advance()
		case p.startsDataType():
			retType = p.parseDataType()
		}
	}
	name, _ := p.parseIdent()
	var params []ast.ItemID
	if p.at(token.LParen) {
		p.advance()
		if !p.at(token.RParen) {
			lastDir := ast.DirInput
			lastType := ast.NoTypeID
			for {
				id, dir, typ := p.parsePort(lastDir, lastType)
				params = append(params, id)
				lastDir, lastType = dir, typ
				if !p.at(token.Comma) {
					break
				}
				p.advance()
			}
		}
		p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close parameter list")
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after subroutine header")
	var body []ast.StmtID
	for !p.at(endKw) && !p.at(token.EOF) {
		body = append(body, p.parseStmt())
	}
	p.expect(endKw, diag.SynExpectKeyword, "expected matching end keyword")
	p.parseOptionalEndLabel(name)
	return p.arenas.Items.NewSubroutine(kind, p.span(start), ast.Subroutine{
		Name: name, ReturnType: retType, Params: params, Body: body,
	}), true
}
