package lexer

import (
	"svlang/internal/diag"
	"svlang/internal/token"
)

// collectLeadingTrivia gathers the run of trivia preceding the next
// significant token:
//   - ' ' and '\t' coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline
//   - //... up to \n becomes TriviaLineComment
//   - /* ... */ becomes TriviaBlockComment (SystemVerilog block comments do
//     NOT nest, unlike C's; the first "*/" closes it)
//   - a `` ` `` anywhere on a line (a directive or a macro use) becomes
//     TriviaDirective, carrying the directive name and the rest of the
//     line as Payload for the preprocessor to parse
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '\r' {
			lx.cursor.Bump()
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		if b == '`' {
			lx.scanDirectiveLineIntoHold()
			continue
		}

		break
	}
}

// scanCommentIntoHold scans "// ..." or "/* ... */" into lx.hold, returning
// false (and leaving the cursor untouched) if the leading '/' is not the
// start of a comment.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}

	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaLineComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true

	case '*':
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaBlockComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}

// scanDirectiveLineIntoHold scans a compiler directive line, from the
// backtick through end of line (directives do not span lines except via an
// explicit trailing backslash-newline continuation, which is included
// verbatim in Payload for the preprocessor to unescape). The directive name
// and payload are split out so the preprocessor doesn't have to re-lex.
func (lx *Lexer) scanDirectiveLineIntoHold() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`'

	nameStart := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	nameSp := lx.cursor.SpanFrom(nameStart)
	name := string(lx.file.Content[nameSp.Start:nameSp.End])

	if name == "" {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadDirectiveLine, sp, "expected directive name after '`'")
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaDirective,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return
	}

	payloadStart := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '\n' {
			break
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\\' && b1 == '\n' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	payloadSp := lx.cursor.SpanFrom(payloadStart)
	payload := string(lx.file.Content[payloadSp.Start:payloadSp.End])

	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaDirective,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Directive: &token.Directive{
			Name:    name,
			Payload: payload,
		},
	})
}
