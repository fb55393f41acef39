package parser

import (
	"slices"

	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/source"
	"svlang/internal/token"
)

var topLevelStarters = []token.Kind{
	token.KwModule, token.KwInterface, token.KwProgram, token.KwPackage, token.KwTypedef,
	token.KwParameter, token.KwLocalparam, token.KwGenvar,
	token.KwWire, token.KwWand, token.KwWor, token.KwTri, token.KwTri0, token.KwTri1,
	token.KwTriand, token.KwTrior, token.KwTrireg, token.KwUwire, token.KwSupply0, token.KwSupply1,
	token.KwAssign, token.KwAlways, token.KwAlwaysComb, token.KwAlwaysFF, token.KwAlwaysLatch,
	token.KwInitial, token.KwFinal, token.KwGenerate, token.KwIf, token.KwFor,
	token.KwFunction, token.KwTask, token.KwInput, token.KwOutput, token.KwInout, token.KwRef,
	token.KwLogic, token.KwReg, token.KwBit, token.KwByte, token.KwShortint, token.KwInt,
	token.KwLongint, token.KwInteger, token.KwTime, token.KwShortreal, token.KwReal,
	token.KwRealtime, token.KwString, token.KwEvent, token.KwChandle, token.KwVoid,
	token.KwStruct, token.KwUnion, token.KwEnum, token.Ident,
}

func isTopLevelStarter(k token.Kind) bool { return slices.Contains(topLevelStarters, k) }

// parseItems is the file-level loop: parse item after item until EOF,
// resyncing to the next recognizable starter on failure.
func (p *Parser) parseItems() {
	for !p.at(token.EOF) {
		id, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			continue
		}
		p.arenas.PushItem(p.file, id)
	}
}

func (p *Parser) resyncTop() {
	p.resyncUntil(append([]token.Kind{token.Semicolon}, topLevelStarters...)...)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// parseItem dispatches on the current token's keyword to the matching
// top-level/member construct.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	switch p.cur.Kind {
	case token.KwModule:
		return p.parseModuleDecl(ast.ItemModule, token.KwEndmodule)
	case token.KwInterface:
		return p.parseModuleDecl(ast.ItemInterface, token.KwEndinterface)
	case token.KwProgram:
		return p.parseModuleDecl(ast.ItemProgram, token.KwEndprogram)
	case token.KwPackage:
		return p.parsePackageDecl()
	case token.KwTypedef:
		return p.parseTypedefItem()
	case token.KwParameter, token.KwLocalparam:
		return p.parseParamDeclItem()
	case token.KwGenvar:
		return p.parseGenvarItem()
	case token.KwWire, token.KwWand, token.KwWor, token.KwTri, token.KwTri0, token.KwTri1,
		token.KwTriand, token.KwTrior, token.KwTrireg, token.KwUwire, token.KwSupply0, token.KwSupply1:
		return p.parseNetDeclItem()
	case token.KwAssign:
		return p.parseContinuousAssignItem()
	case token.KwAlways, token.KwAlwaysComb, token.KwAlwaysFF, token.KwAlwaysLatch, token.KwInitial, token.KwFinal:
		return p.parseProceduralBlockItem()
	case token.KwIf:
		return p.parseGenerateIfItem()
	case token.KwFor:
		return p.parseGenerateForItem()
	case token.KwFunction:
		return p.parseSubroutineItem(ast.ItemFunction)
	case token.KwTask:
		return p.parseSubroutineItem(ast.ItemTask)
	case token.KwLogic, token.KwReg, token.KwBit, token.KwByte, token.KwShortint, token.KwInt,
		token.KwLongint, token.KwInteger, token.KwTime, token.KwShortreal, token.KwReal,
		token.KwRealtime, token.KwString, token.KwEvent, token.KwChandle, token.KwVoid,
		token.KwSigned, token.KwUnsigned, token.KwStruct, token.KwUnion, token.KwEnum:
		return p.parseVarDeclItem()
	case token.Ident, token.EscapedIdent:
		return p.parseIdentLedItem()
	default:
		p.report(diag.SynUnexpectedTopLevel, diag.SevError, p.cur.Span, "unexpected top-level construct")
		return ast.NoItemID, false
	}
}

// parseBodyItems parses the member list of a module/interface/program/
// package body up to end. `generate`/`endgenerate` are transparent: they
// group members without introducing a node of their own. Non-ANSI port
// re-declarations (`input logic a;`) can name several ports in one
// statement, so they're expanded here rather than through parseItem's
// single-ItemID contract.
func (p *Parser) parseBodyItems(end token.Kind) []ast.ItemID {
	var items []ast.ItemID
	for !p.at(end) && !p.at(token.EOF) {
		if p.atOr(token.KwGenerate, token.KwEndgenerate) {
			p.advance()
			continue
		}
		if p.atOr(token.KwInput, token.KwOutput, token.KwInout, token.KwRef) {
			ids, ok := p.parseNonANSIPortItems()
			if !ok {
				p.resyncBody(end)
				continue
			}
			items = append(items, ids...)
			continue
		}
		id, ok := p.parseItem()
		if !ok {
			p.resyncBody(end)
			continue
		}
		items = append(items, id)
	}
	return items
}

// resyncBody skips to the next member boundary inside a design-element
// body: a ';', the element's own end keyword, or any recognizable member
// starter.
func (p *Parser) resyncBody(end token.Kind) {
	p.resyncUntil(append([]token.Kind{token.Semicolon, end}, topLevelStarters...)...)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func (p *Parser) parseModuleDecl(kind ast.ItemKind, endKw token.Kind) (ast.ItemID, bool) {
	start := p.cur.Span
	p.advance() // module/interface/program
	name, _ := p.parseIdent()
	var paramPorts []ast.ItemID
	if p.at(token.Hash) {
		paramPorts = p.parseParamPortList()
	}
	var ports []ast.ItemID
	if p.at(token.LParen) {
		ports = p.parsePortList()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after module header")
	body := p.parseBodyItems(endKw)
	p.expect(endKw, diag.SynExpectKeyword, "expected matching end keyword")
	endName := p.parseOptionalEndLabel(name)
	id := p.arenas.Items.NewModule(kind, p.span(start), ast.ModuleDecl{
		Name: name, ParamPorts: paramPorts, Ports: ports, Body: body, EndName: endName,
	})
	return id, true
}

func (p *Parser) parsePackageDecl() (ast.ItemID, bool) {
	start := p.cur.Span
	p.advance() // package
	name, _ := p.parseIdent()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after package header")
	body := p.parseBodyItems(token.KwEndpackage)
	p.expect(token.KwEndpackage, diag.SynExpectKeyword, "expected 'endpackage'")
	p.parseOptionalEndLabel(name)
	return p.arenas.Items.NewPackage(p.span(start), ast.PackageDecl{Name: name, Body: body}), true
}

// parseOptionalEndLabel consumes a trailing `: name` after an end
// keyword, warning if it doesn't match declName.
func (p *Parser) parseOptionalEndLabel(declName string) string {
	if !p.at(token.Colon) {
		return ""
	}
	p.advance()
	endName, _ := p.parseIdent()
	if endName != "" && endName != declName {
		p.report(diag.SynEndLabelMismatch, diag.SevWarning, p.lastSpan,
			"end label \""+endName+"\" does not match \""+declName+"\"")
	}
	return endName
}

func (p *Parser) parseParamPortList() []ast.ItemID {
	p.advance() // '#'
	p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' after '#'")
	var params []ast.ItemID
	if !p.at(token.RParen) {
		for {
			params = append(params, p.parseParamDecl())
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close parameter port list")
	return params
}

func (p *Parser) parseParamDecl() ast.ItemID {
	start := p.cur.Span
	isLocal := false
	if p.at(token.KwParameter) {
		p.advance()
	} else if p.at(token.KwLocalparam) {
		p.advance()
		isLocal = true
	}
	typ := ast.NoTypeID
	if p.startsDataType() {
		typ = p.parseDataType()
	}
	name, _ := p.parseIdent()
	def := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		def = p.parseExpr()
	}
	return p.arenas.Items.NewParam(p.span(start), ast.ParamDecl{IsLocal: isLocal, Type: typ, Name: name, Default: def})
}

// parseParamDeclItem handles a standalone `parameter`/`localparam`
// declaration statement (one name per statement; additional names need
// their own statement, same as the non-ANSI port case).
func (p *Parser) parseParamDeclItem() (ast.ItemID, bool) {
	id := p.parseParamDecl()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after parameter declaration")
	return id, true
}

func (p *Parser) parseGenvarItem() (ast.ItemID, bool) {
	start := p.cur.Span
	p.advance() // genvar
	typ := p.arenas.Types.New(ast.TypeSyntax{Kind: ast.TSBuiltin, Span: start, Keyword: token.KwGenvar})
	names, unpacked, inits := p.parseDeclaratorList()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after genvar declaration")
	return p.arenas.Items.NewVar(p.span(start), ast.VarDecl{Type: typ, Names: names, UnpackedSz: unpacked, Inits: inits}), true
}

func (p *Parser) parseNetDeclItem() (ast.ItemID, bool) {
	start := p.cur.Span
	netType := p.advance().Text
	typ := ast.NoTypeID
	if p.startsDataType() {
		typ = p.parseDataType()
	}
	names, unpacked, inits := p.parseDeclaratorList()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after net declaration")
	return p.arenas.Items.NewNet(p.span(start), ast.NetDecl{NetType: netType, Type: typ, Names: names, UnpackedSz: unpacked, Inits: inits}), true
}

func (p *Parser) parseVarDeclItem() (ast.ItemID, bool) {
	start := p.cur.Span
	typ := p.parseDataType()
	names, unpacked, inits := p.parseDeclaratorList()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after variable declaration")
	return p.arenas.Items.NewVar(p.span(start), ast.VarDecl{Type: typ, Names: names, UnpackedSz: unpacked, Inits: inits}), true
}

// parseDeclaratorList parses `name [dims] [= init] {, name [dims] [= init]}`,
// the comma-separated declarator tail shared by net, variable, and genvar
// declarations.
func (p *Parser) parseDeclaratorList() (names []string, unpacked [][]ast.ExprID, inits []ast.ExprID) {
	for {
		name, ok := p.parseIdent()
		if !ok {
			break
		}
		names = append(names, name)
		unpacked = append(unpacked, p.parseUnpackedDimList())
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
	return
}

func (p *Parser) parseTypedefItem() (ast.ItemID, bool) {
	start := p.cur.Span
	p.advance() // typedef
	typ := p.parseDataType()
	name, _ := p.parseIdent()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after typedef")
	return p.arenas.Items.NewTypedef(p.span(start), ast.TypedefDecl{Name: name, Type: typ}), true
}

func (p *Parser) parseContinuousAssignItem() (ast.ItemID, bool) {
	start := p.cur.Span
	p.advance() // assign
	lhs := p.parseLValue()
	p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in continuous assignment")
	rhs := p.parseExpr()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after continuous assignment")
	return p.arenas.Items.NewAssign(p.span(start), ast.ContinuousAssign{LHS: lhs, RHS: rhs}), true
}

func (p *Parser) parseProceduralBlockItem() (ast.ItemID, bool) {
	start := p.cur.Span
	var kind ast.ProceduralBlockKind
	switch p.advance().Kind {
	case token.KwAlways:
		kind = ast.ProcAlways
	case token.KwAlwaysComb:
		kind = ast.ProcAlwaysComb
	case token.KwAlwaysFF:
		kind = ast.ProcAlwaysFF
	case token.KwAlwaysLatch:
		kind = ast.ProcAlwaysLatch
	case token.KwInitial:
		kind = ast.ProcInitial
	case token.KwFinal:
		kind = ast.ProcFinal
	}
	var events []ast.ExprID
	if p.at(token.At) {
		events = p.parseEventControl()
	}
	body := p.parseStmt()
	return p.arenas.Items.NewProc(p.span(start), ast.ProceduralBlock{Kind: kind, EventExprs: events, Body: body}), true
}

func (p *Parser) parseGenerateBlock() []ast.ItemID {
	if p.at(token.KwBegin) {
		p.advance()
		if p.at(token.Colon) {
			p.advance()
			p.parseIdent()
		}
		var items []ast.ItemID
		for !p.at(token.KwEnd) && !p.at(token.EOF) {
			if p.atOr(token.KwGenerate, token.KwEndgenerate) {
				p.advance()
				continue
			}
			id, ok := p.parseItem()
			if !ok {
				p.resyncTop()
				continue
			}
			items = append(items, id)
		}
		p.expect(token.KwEnd, diag.SynExpectKeyword, "expected 'end' to close generate block")
		if p.at(token.Colon) {
			p.advance()
			p.parseIdent()
		}
		return items
	}
	id, ok := p.parseItem()
	if !ok {
		return nil
	}
	return []ast.ItemID{id}
}

func (p *Parser) parseGenerateIfItem() (ast.ItemID, bool) {
	start := p.cur.Span
	p.advance() // if
	p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' after generate-if condition")
	thenItems := p.parseGenerateBlock()
	var elseItems []ast.ItemID
	if p.at(token.KwElse) {
		p.advance()
		if p.at(token.KwIf) {
			id, ok := p.parseGenerateIfItem()
			if ok {
				elseItems = []ast.ItemID{id}
			}
		} else {
			elseItems = p.parseGenerateBlock()
		}
	}
	return p.arenas.Items.NewGenerateIf(p.span(start), ast.GenerateIf{Cond: []ast.ExprID{cond}, Then: thenItems, Else: elseItems}), true
}

func (p *Parser) parseGenerateForItem() (ast.ItemID, bool) {
	start := p.cur.Span
	p.advance() // for
	p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' after 'for'")
	if p.at(token.KwGenvar) {
		p.advance()
	}
	genvarName, _ := p.parseIdent()
	p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in generate-for initializer")
	init := p.parseExpr()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after generate-for initializer")
	cond := p.parseExpr()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after generate-for condition")
	// The step clause is usually `i = i + 1`; only the value expression
	// is kept, the redundant `i =` prefix is consumed here.
	if p.at(token.Ident) && p.peekAt(1).Kind == token.Assign {
		p.advance()
		p.advance()
	}
	step := p.parseExpr()
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' after generate-for header")
	body := p.parseGenerateBlock()
	return p.arenas.Items.NewGenerateFor(p.span(start), ast.GenerateFor{
		GenvarName: genvarName, Init: init, Cond: cond, Step: step, Body: body,
	}), true
}

// parseIdentLedItem disambiguates a leading plain identifier between a
// module instantiation (`Adder #(8) u1 (.a(x), .b(y));`) and a
// user-type-named declaration (`counter_t st;`): a following '#', or a
// second identifier directly followed by '(' or '[', means instantiation.
func (p *Parser) parseIdentLedItem() (ast.ItemID, bool) {
	start := p.cur.Span
	typeName, _ := p.parseIdent()
	for p.at(token.ColonColon) {
		p.advance()
		seg, _ := p.parseIdent()
		typeName += "::" + seg
	}
	if p.at(token.Hash) {
		return p.finishInstanceItem(start, typeName, true)
	}
	if p.atOr(token.Ident, token.EscapedIdent) {
		next := p.peekAt(1).Kind
		if next == token.LParen || next == token.LBracket {
			return p.finishInstanceItem(start, typeName, false)
		}
	}
	dims := p.parsePackedDims()
	typ := p.arenas.Types.New(ast.TypeSyntax{Kind: ast.TSNamed, Span: p.span(start), Name: typeName, PackedDims: dims})
	names, unpacked, inits := p.parseDeclaratorList()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after variable declaration")
	return p.arenas.Items.NewVar(p.span(start), ast.VarDecl{Type: typ, Names: names, UnpackedSz: unpacked, Inits: inits}), true
}

// finishInstanceItem parses the rest of a module instantiation after its
// module type name has already been consumed. Only a single instance per
// statement is supported (comma-separated multi-instance statements need
// their own statement, same simplification as parameter declarations).
func (p *Parser) finishInstanceItem(start source.Span, moduleName string, hasParams bool) (ast.ItemID, bool) {
	var paramConns []ast.Conn
	if hasParams {
		p.advance() // '#'
		p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' after '#'")
		paramConns = p.parseConnList()
		p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close parameter connections")
	}
	instName, _ := p.parseIdent()
	arraySize := ast.NoExprID
	if p.at(token.LBracket) {
		p.advance()
		arraySize = p.parseExpr()
		p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' after instance array size")
	}
	p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' to open port connections")
	portConns := p.parseConnList()
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close port connections")
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after module instantiation")
	return p.arenas.Items.NewInstance(p.span(start), ast.Instance{
		ModuleName: moduleName, ParamConns: paramConns, PortConns: portConns, InstName: instName, ArraySize: arraySize,
	}), true
}

func (p *Parser) parseConnList() []ast.Conn {
	var conns []ast.Conn
	if p.at(token.RParen) {
		return conns
	}
	for {
		conns = append(conns, p.parseConn())
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return conns
}

// parseConn parses one `.name(expr)` named connection or a bare
// positional expression. `.*` implicit connections are not supported.
func (p *Parser) parseConn() ast.Conn {
	if p.at(token.Dot) {
		p.advance()
		name, _ := p.parseIdent()
		p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' after named connection")
		value := ast.NoExprID
		if !p.at(token.RParen) {
			value = p.parseExpr()
		}
		p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close named connection")
		return ast.Conn{Name: name, Value: value}
	}
	return ast.Conn{Value: p.parseExpr()}
}

func (p *Parser) parsePortList() []ast.ItemID {
	p.advance() // '('
	var ports []ast.ItemID
	lastDir := ast.DirInput
	lastType := ast.NoTypeID
	if !p.at(token.RParen) {
		for {
			id, dir, typ := p.parsePort(lastDir, lastType)
			ports = append(ports, id)
			lastDir, lastType = dir, typ
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close port list")
	return ports
}

// parsePort parses one ANSI port declaration, inheriting the previous
// port's direction/type when both are omitted (`input a, b, c`).
func (p *Parser) parsePort(inheritDir ast.PortDirection, inheritType ast.TypeID) (ast.ItemID, ast.PortDirection, ast.TypeID) {
	start := p.cur.Span
	dir := inheritDir
	sawDir := false
	switch p.cur.Kind {
	case token.KwInput:
		dir, sawDir = ast.DirInput, true
		p.advance()
	case token.KwOutput:
		dir, sawDir = ast.DirOutput, true
		p.advance()
	case token.KwInout:
		dir, sawDir = ast.DirInout, true
		p.advance()
	case token.KwRef:
		dir, sawDir = ast.DirRef, true
		p.advance()
	}
	typ := inheritType
	if p.startsDataType() {
		typ = p.parseDataType()
	} else if sawDir && typ == ast.NoTypeID {
		typ = p.arenas.Types.New(ast.TypeSyntax{Kind: ast.TSImplicit, Span: p.cur.Span})
	}
	name, _ := p.parseIdent()
	unpacked := p.parseUnpackedDimList()
	def := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		def = p.parseExpr()
	}
	id := p.arenas.Items.NewPort(p.span(start), ast.Port{Direction: dir, Type: typ, Name: name, UnpackedSz: unpacked, Default: def})
	return id, dir, typ
}

// parseNonANSIPortItems parses a body-level port re-declaration
// (`input logic [7:0] a, b;`), which can name several ports at once.
func (p *Parser) parseNonANSIPortItems() ([]ast.ItemID, bool) {
	start := p.cur.Span
	var dir ast.PortDirection
	switch p.advance().Kind {
	case token.KwInput:
		dir = ast.DirInput
	case token.KwOutput:
		dir = ast.DirOutput
	case token.KwInout:
		dir = ast.DirInout
	case token.KwRef:
		dir = ast.DirRef
	}
	typ := ast.NoTypeID
	if p.startsDataType() {
		typ = p.parseDataType()
	}
	names, unpacked, inits := p.parseDeclaratorList()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after port declaration")
	if len(names) == 0 {
		return nil, false
	}
	sp := p.span(start)
	items := make([]ast.ItemID, len(names))
	for i, name := range names {
		items[i] = p.arenas.Items.NewPort(sp, ast.Port{Direction: dir, Type: typ, Name: name, UnpackedSz: unpacked[i], Default: inits[i]})
	}
	return items, true
}
