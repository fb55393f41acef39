package lexer

import (
	"svlang/internal/diag"
	"svlang/internal/source"
	"svlang/internal/token"
)

// Options configures a Lexer. Reporter may be nil, in which case lexical
// errors are swallowed and scanning continues best-effort.
type Options struct {
	Reporter diag.Reporter
	// Version gates which reserved words LookupKeyword recognizes. Zero
	// value resolves to token.Latest.
	Version token.LanguageVersion
}

func (lx *Lexer) version() token.LanguageVersion {
	if lx.opts.Version == 0 {
		return token.Latest
	}
	return lx.opts.Version
}

// errLex reports a lexical diagnostic through the configured Reporter.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
