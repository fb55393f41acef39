package token_test

import (
	"testing"

	"svlang/internal/source"
	"svlang/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntegerLit, token.RealLit, token.TimeLit, token.StringLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwIf, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Star, token.StarStar, token.Slash, token.Percent,
		token.Assign, token.PlusAssign, token.MinusAssign,
		token.EqEq, token.CaseEq, token.WildEq, token.Bang, token.BangEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.Shl, token.Shr, token.AShl, token.AShr,
		token.Amp, token.Pipe, token.Caret, token.Tilde, token.TildeCaret,
		token.AndAnd, token.OrOr, token.TripleAmp,
		token.Question, token.Colon, token.ColonColon,
		token.Semicolon, token.Comma,
		token.Dot, token.DotStar, token.Arrow, token.FatArrow,
		token.LParen, token.RParen, token.LBrace, token.RBrace, token.LBracket, token.RBracket,
		token.At, token.Hash, token.TickLBrace,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwIf, token.IntegerLit}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if !tok(token.SystemIdent).IsIdent() {
		t.Fatalf("SystemIdent should be ident")
	}
	if tok(token.KwModule).IsIdent() {
		t.Fatalf("KwModule must not be ident")
	}
}

func TestIsKeyword(t *testing.T) {
	keywords := []token.Kind{
		token.KwModule, token.KwEndmodule, token.KwLogic, token.KwAlwaysFF,
		token.KwBegin, token.KwEnd, token.KwIf, token.KwElse, token.KwForeach,
		token.KwTrue, token.KwFalse, token.KwClass, token.KwEndclass,
	}
	for _, k := range keywords {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	non := []token.Kind{token.Ident, token.Plus, token.IntegerLit}
	for _, k := range non {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
}
