package token_test

import (
	"testing"

	"svlang/internal/source"
	"svlang/internal/token"
)

func TestDirectiveTriviaShape(t *testing.T) {
	dir := &token.Directive{
		Name:    "define",
		Payload: "WIDTH 8",
	}
	tv := token.Trivia{
		Kind:      token.TriviaDirective,
		Span:      source.Span{Start: 0, End: 10},
		Text:      "`define WIDTH 8",
		Directive: dir,
	}
	tok := token.Token{
		Kind:    token.KwModule,
		Span:    source.Span{Start: 42, End: 48},
		Text:    "module",
		Leading: []token.Trivia{tv},
	}
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaDirective || tok.Leading[0].Directive == nil {
		t.Fatalf("directive trivia must be present and structured")
	}
}

func TestDisabledTextTrivia(t *testing.T) {
	tv := token.Trivia{
		Kind: token.TriviaDisabledText,
		Span: source.Span{Start: 0, End: 20},
		Text: "wire unused_signal;\n",
	}
	if tv.Directive != nil {
		t.Fatalf("disabled-text trivia must not carry a Directive")
	}
}
