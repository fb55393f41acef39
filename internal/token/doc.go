// Package token defines lexical token kinds and trivia for the SystemVerilog
// front end.
// Invariants:
//   - Token.Text is the exact source text of the token (a copy of those bytes).
//   - Token.Span matches Text exactly (Start..End).
//   - `directives (`ifdef, `define, `include, ...) are represented as
//     leading Trivia (TriviaDirective) and never appear in the main token
//     stream; the preprocessor consumes them before the parser sees anything.
//   - Keyword recognition is versioned: LookupKeyword takes a LanguageVersion
//     so reserved words introduced by a later standard revision don't shadow
//     identifiers in code targeting an earlier one.
package token
