package lexer

import (
	"svlang/internal/diag"
	"svlang/internal/token"
)

const utf8RuneSelf = 0x80

// maxTokenLength bounds how long a single identifier/number/string token may
// be before the lexer gives up and reports LexTokenTooLong, guarding against
// pathological input (e.g. a file with no whitespace at all) blowing up
// downstream buffers.
const maxTokenLength = 4096

// scanIdentOrKeyword scans a simple [Ident] and resolves it against
// LookupKeyword for the configured language version. Keywords are
// case-sensitive (always lowercase).
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if sp.End-sp.Start > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, sp, "identifier exceeds maximum token length")
		lx.cursor.Off = lx.cursor.limit()
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text, lx.version()); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}

	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanEscapedIdent scans a \-escaped identifier (IEEE 1800 §5.6.2): it
// starts at the backslash and runs up to, but not including, the next
// whitespace character, which terminates it and is left for trivia.
func (lx *Lexer) scanEscapedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'

	for {
		b := lx.cursor.Peek()
		if lx.cursor.EOF() || isLexWhitespace(b) {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// The terminating whitespace belongs to trivia, not the token; it is
	// left in place so the next token's leading-trivia collector sees it.

	if len(text) <= 1 {
		lx.errLex(diag.LexBadEscapedIdent, sp, "empty escaped identifier")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: token.EscapedIdent, Span: sp, Text: text}
}

// scanSystemIdentOrDollar scans a $-prefixed system task/function name
// ($display, $bits, ...), or falls back to scanning '$' alone as a
// standalone token when no identifier characters follow (used bare in
// some net/constraint contexts).
func (lx *Lexer) scanSystemIdentOrDollar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'

	if !isIdentStartByte(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.SystemIdent, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.SystemIdent, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func isLexWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
