// Package parser implements a recursive-descent parser that turns the
// token stream produced by internal/preprocess into the arena-allocated
// CST defined in internal/ast.
package parser

import (
	"slices"

	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/preprocess"
	"svlang/internal/source"
	"svlang/internal/token"
)

// Options configures one ParseFile call.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget for this parse has been spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result is everything ParseFile hands back: the parsed file node and,
// when the reporter is a *diag.BagReporter, the diagnostics it collected.
type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds the state of parsing a single compilation unit. It reads
// from a *preprocess.Preprocessor rather than a bare lexer so that macro
// expansion and conditional compilation have already been applied to
// every token it sees.
type Parser struct {
	pp     *preprocess.Preprocessor
	arenas *ast.Builder
	file   ast.FileID
	fs     *source.Manager
	opts   Options

	cur      token.Token
	buf      []token.Token
	lastSpan source.Span
}

// ParseFile is the entry point: parse one preprocessed token stream into
// a top-level ast.File of design-unit items.
func ParseFile(fs *source.Manager, pp *preprocess.Preprocessor, arenas *ast.Builder, opts Options) Result {
	p := &Parser{
		pp:       pp,
		arenas:   arenas,
		fs:       fs,
		opts:     opts,
		lastSpan: pp.EmptySpan(),
	}
	p.cur = p.pp.Next()
	p.file = arenas.Files.New(p.cur.Span)

	p.parseItems()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{File: p.file, Bag: bag}
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) atOr(kinds ...token.Kind) bool { return slices.Contains(kinds, p.cur.Kind) }

// peekAt returns the token n slots ahead of the current one; peekAt(0)
// is equivalent to p.cur.
func (p *Parser) peekAt(n int) token.Token {
	if n == 0 {
		return p.cur
	}
	for len(p.buf) < n {
		p.buf = append(p.buf, p.pp.Next())
	}
	return p.buf[n-1]
}

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	prev := p.cur
	if prev.Kind != token.EOF && prev.Kind != token.Invalid {
		p.lastSpan = prev.Span
	}
	if len(p.buf) > 0 {
		p.cur = p.buf[0]
		p.buf = p.buf[1:]
	} else {
		p.cur = p.pp.Next()
	}
	return prev
}

func (p *Parser) diagSpan() source.Span {
	if (p.cur.Kind == token.EOF || p.cur.Kind == token.Invalid) && p.cur.Span.Empty() && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return p.cur.Span
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
	return true
}

func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.diagSpan(), msg)
}

// expect consumes the current token if it matches k; otherwise it reports
// code and returns an Invalid token without advancing.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.cur.Text}, false
}

// resyncUntil advances past tokens until one of stop (or EOF) is current.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(stop...) {
		p.advance()
	}
}

// parseIdent expects an identifier (plain or escaped) and returns its
// text; on failure it reports SynExpectIdentifier and returns "".
func (p *Parser) parseIdent() (string, bool) {
	if p.atOr(token.Ident, token.EscapedIdent) {
		return p.advance().Text, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.cur.Text+"\"")
	return "", false
}

func (p *Parser) span(from source.Span) source.Span { return from.Cover(p.lastSpan) }
