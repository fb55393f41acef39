package parser

import (
	"svlang/internal/ast"
	"svlang/internal/preprocess"
	"svlang/internal/source"
	"svlang/internal/token"
)

// ParseExpression parses one standalone expression from the preprocessed
// stream. clean reports whether the parse consumed every token up to EOF
// without a diagnostic; callers (the script session) use it to decide
// whether an input was an expression at all or a declaration to re-parse
// as a compilation unit.
func ParseExpression(fs *source.Manager, pp *preprocess.Preprocessor, arenas *ast.Builder, opts Options) (expr ast.ExprID, clean bool) {
	p := &Parser{
		pp:       pp,
		arenas:   arenas,
		fs:       fs,
		opts:     opts,
		lastSpan: pp.EmptySpan(),
	}
	p.cur = p.pp.Next()
	if p.at(token.EOF) {
		return ast.NoExprID, false
	}
	before := p.opts.CurrentErrors
	expr = p.parseExpr()
	return expr, p.at(token.EOF) && p.opts.CurrentErrors == before
}
