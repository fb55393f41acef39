package token

import "svlang/internal/source"

// Directive captures one backtick-directive's raw name and unparsed
// payload text, as collected by the lexer. The preprocessor is what
// actually interprets Name/Payload into macro table or conditional-stack
// effects; the lexer only slices the text.
type Directive struct {
	Name    string // "define", "ifdef", "include", "line", ...
	Payload string // remaining text on the directive's logical line
}

// TriviaKind classifies one piece of non-semantic text attached to a token.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaDirective    // a `directive line, consumed by the preprocessor
	TriviaDisabledText // text inside a false `ifdef/`ifndef branch
)

// Trivia is one span of non-semantic source text (whitespace, comments,
// directives, disabled conditional text) attached to the following token's
// Leading list. Every input byte not claimed by a Token.Text is accounted
// for by exactly one Trivia, which is what lets the lexer reconstruct the
// original source byte-for-byte from tokens plus trivia.
type Trivia struct {
	Kind      TriviaKind
	Span      source.Span
	Text      string
	Directive *Directive // non-nil only when Kind == TriviaDirective
}
