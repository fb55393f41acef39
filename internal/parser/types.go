package parser

import (
	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/token"
)

func isBuiltinTypeKeyword(k token.Kind) bool {
	switch k {
	case token.KwLogic, token.KwReg, token.KwBit, token.KwByte, token.KwShortint, token.KwInt,
		token.KwLongint, token.KwInteger, token.KwTime, token.KwShortreal, token.KwReal,
		token.KwRealtime, token.KwString, token.KwEvent, token.KwChandle, token.KwVoid:
		return true
	default:
		return false
	}
}

// startsDataType peeks whether the current position begins a data type.
// A leading plain identifier is ambiguous with a declarator name, so it's
// only treated as a type when a second identifier follows it.
func (p *Parser) startsDataType() bool {
	switch {
	case isBuiltinTypeKeyword(p.cur.Kind):
		return true
	case p.atOr(token.KwSigned, token.KwUnsigned, token.KwStruct, token.KwUnion, token.KwEnum):
		return true
	case p.atOr(token.Ident, token.EscapedIdent):
		next := p.peekAt(1).Kind
		return next == token.Ident || next == token.EscapedIdent
	default:
		return false
	}
}

// parseDataType parses a type reference, assuming the caller already
// knows one is present (see startsDataType for the optional-context check).
func (p *Parser) parseDataType() ast.TypeID {
	start := p.cur.Span
	switch {
	case isBuiltinTypeKeyword(p.cur.Kind):
		kw := p.advance().Kind
		explicit4S := kw == token.KwLogic || kw == token.KwReg
		signed := false
		if p.at(token.KwSigned) {
			p.advance()
			signed = true
		} else if p.at(token.KwUnsigned) {
			p.advance()
		}
		dims := p.parsePackedDims()
		return p.arenas.Types.New(ast.TypeSyntax{
			Kind: ast.TSBuiltin, Span: p.span(start), Keyword: kw,
			Signed: signed, Explicit4S: explicit4S, PackedDims: dims,
		})
	case p.atOr(token.KwSigned, token.KwUnsigned):
		signed := p.at(token.KwSigned)
		p.advance()
		dims := p.parsePackedDims()
		return p.arenas.Types.New(ast.TypeSyntax{
			Kind: ast.TSBuiltin, Span: p.span(start), Keyword: token.KwLogic,
			Signed: signed, PackedDims: dims,
		})
	case p.atOr(token.KwStruct, token.KwUnion):
		return p.parseStructUnion()
	case p.at(token.KwEnum):
		return p.parseEnum()
	case p.atOr(token.Ident, token.EscapedIdent):
		name := p.advance().Text
		for p.at(token.ColonColon) {
			p.advance()
			seg, _ := p.parseIdent()
			name += "::" + seg
		}
		dims := p.parsePackedDims()
		return p.arenas.Types.New(ast.TypeSyntax{Kind: ast.TSNamed, Span: p.span(start), Name: name, PackedDims: dims})
	default:
		p.err(diag.SynExpectType, "expected a data type, got \""+p.cur.Text+"\"")
		return p.arenas.Types.New(ast.TypeSyntax{Kind: ast.TSImplicit, Span: p.diagSpan()})
	}
}

// parsePackedDims parses zero or more `[left:right]` (or `[left]`)
// dimensions glued directly onto a type.
func (p *Parser) parsePackedDims() []ast.PackedDim {
	var dims []ast.PackedDim
	for p.at(token.LBracket) {
		p.advance()
		left := p.parseExpr()
		right := ast.NoExprID
		if p.at(token.Colon) {
			p.advance()
			right = p.parseExpr()
		}
		p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' to close dimension")
		dims = append(dims, ast.PackedDim{Left: left, Right: right})
	}
	return dims
}

// parseUnpackedDimList parses the unpacked dimensions trailing a
// declarator name (`reg a [0:7];`). A `[hi:lo]` range's low bound is
// parsed but folded away: only the bound expression needed to size the
// array is kept, matching Port.UnpackedSz's one-ExprID-per-bracket shape.
func (p *Parser) parseUnpackedDimList() []ast.ExprID {
	var dims []ast.ExprID
	for p.at(token.LBracket) {
		p.advance()
		e := p.parseExpr()
		if p.at(token.Colon) {
			p.advance()
			p.parseExpr()
		}
		p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' to close unpacked dimension")
		dims = append(dims, e)
	}
	return dims
}

func (p *Parser) parseStructUnion() ast.TypeID {
	start := p.cur.Span
	isUnion := p.at(token.KwUnion)
	p.advance() // struct/union
	tagged := false
	if p.at(token.KwTagged) {
		p.advance()
		tagged = true
	}
	if p.at(token.KwPacked) {
		p.advance()
		if p.atOr(token.KwSigned, token.KwUnsigned) {
			p.advance()
		}
	}
	p.expect(token.LBrace, diag.SynTypeExpectBody, "expected '{' to open struct/union body")
	var fields []ast.StructField
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fieldType := p.parseDataType()
		for {
			name, ok := p.parseIdent()
			if !ok {
				break
			}
			fields = append(fields, ast.StructField{Type: fieldType, Name: name})
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after struct/union member")
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close struct/union body")
	return p.arenas.Types.New(ast.TypeSyntax{
		Kind: ast.TSStructUnion, Span: p.span(start), IsUnion: isUnion, IsTagged: tagged, Fields: fields,
	})
}

func (p *Parser) parseEnum() ast.TypeID {
	start := p.cur.Span
	p.advance() // enum
	base := ast.NoTypeID
	if p.startsDataType() {
		base = p.parseDataType()
	}
	p.expect(token.LBrace, diag.SynEnumExpectBody, "expected '{' to open enum body")
	var members []ast.EnumMember
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, _ := p.parseIdent()
		val := ast.NoExprID
		if p.at(token.Assign) {
			p.advance()
			val = p.parseExpr()
		}
		members = append(members, ast.EnumMember{Name: name, Value: val})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RBrace, diag.SynEnumExpectRBrace, "expected '}' to close enum body")
	return p.arenas.Types.New(ast.TypeSyntax{Kind: ast.TSEnum, Span: p.span(start), EnumBase: base, EnumMembers: members})
}
