package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"svlang/internal/diag"
	"svlang/internal/lexer"
	"svlang/internal/source"
	"svlang/internal/token"
)

// testReporter collects every diagnostic emitted by the lexer under test.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sv", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind {
		t.Errorf("expected kind %v, got %v", kind, tok.Kind)
	}
	if tok.Text != text {
		t.Errorf("expected text %q, got %q", text, tok.Text)
	}
	return tok
}

// ====== identifiers ======

func TestIdentifiers_Plain(t *testing.T) {
	tests := []struct{ input, text string }{
		{"foo", "foo"},
		{"_bar", "_bar"},
		{"__sig", "__sig"},
		{"wire1", "wire1"},
		{"CamelCase", "CamelCase"},
	}
	for _, tt := range tests {
		expectSingleToken(t, tt.input, token.Ident, tt.text)
	}
}

func TestIdentifiers_Escaped(t *testing.T) {
	tok := expectSingleToken(t, `\my-signal[3] rest`, token.EscapedIdent, `\my-signal[3]`)
	if tok.Kind != token.EscapedIdent {
		t.Fatalf("expected EscapedIdent")
	}
}

func TestIdentifiers_System(t *testing.T) {
	expectSingleToken(t, "$display", token.SystemIdent, "$display")
	expectSingleToken(t, "$bits", token.SystemIdent, "$bits")
}

func TestKeywords_CaseSensitive(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"module", token.KwModule},
		{"endmodule", token.KwEndmodule},
		{"always_ff", token.KwAlwaysFF},
		{"always_comb", token.KwAlwaysComb},
		{"logic", token.KwLogic},
		{"begin", token.KwBegin},
		{"end", token.KwEnd},
		{"if", token.KwIf},
		{"else", token.KwElse},
		{"foreach", token.KwForeach},
		{"unique0", token.KwUnique0},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"class", token.KwClass},
		{"endclass", token.KwEndclass},
	}
	for _, tt := range tests {
		expectSingleToken(t, tt.input, tt.kind, tt.input)
	}

	// Uppercase spellings are never keywords.
	expectSingleToken(t, "MODULE", token.Ident, "MODULE")
	expectSingleToken(t, "Logic", token.Ident, "Logic")
}

// ====== numbers ======

func TestNumbers_PlainDecimal(t *testing.T) {
	tok := expectSingleToken(t, "42", token.IntegerLit, "42")
	if tok.Number == nil || tok.Number.Base != token.BaseDec || tok.Number.Digits != "42" {
		t.Fatalf("unexpected Number payload: %+v", tok.Number)
	}
}

func TestNumbers_SizedBased(t *testing.T) {
	tok := expectSingleToken(t, "8'hFF", token.IntegerLit, "8'hFF")
	n := tok.Number
	if n == nil || !n.HasSize || n.Size != 8 || n.Base != token.BaseHex || n.Digits != "FF" {
		t.Fatalf("unexpected Number payload: %+v", n)
	}
}

func TestNumbers_SizedSignedBinary(t *testing.T) {
	tok := expectSingleToken(t, "4'sb1x0z", token.IntegerLit, "4'sb1x0z")
	n := tok.Number
	if n == nil || !n.Signed || n.Base != token.BaseBin || n.Digits != "1x0z" {
		t.Fatalf("unexpected Number payload: %+v", n)
	}
}

func TestNumbers_BaseOnlyNoSize(t *testing.T) {
	tok := expectSingleToken(t, "'d12", token.IntegerLit, "'d12")
	n := tok.Number
	if n == nil || n.HasSize || n.Base != token.BaseDec || n.Digits != "12" {
		t.Fatalf("unexpected Number payload: %+v", n)
	}
}

func TestNumbers_UnbasedUnsized(t *testing.T) {
	for _, in := range []string{"'0", "'1", "'x", "'z"} {
		tok := expectSingleToken(t, in, token.IntegerLit, in)
		if tok.Number == nil || !tok.Number.Unsized {
			t.Fatalf("%q: expected Unsized integer literal, got %+v", in, tok.Number)
		}
	}
}

func TestNumbers_Real(t *testing.T) {
	tok := expectSingleToken(t, "1.5", token.RealLit, "1.5")
	if tok.Number == nil || tok.Number.RealValue != 1.5 {
		t.Fatalf("unexpected Number payload: %+v", tok.Number)
	}
	tok2 := expectSingleToken(t, "2.0e10", token.RealLit, "2.0e10")
	if tok2.Number == nil || tok2.Number.RealValue != 2.0e10 {
		t.Fatalf("unexpected Number payload: %+v", tok2.Number)
	}
}

func TestNumbers_Time(t *testing.T) {
	tok := expectSingleToken(t, "10ns", token.TimeLit, "10ns")
	if tok.Number == nil || tok.Number.TimeUnit != "ns" {
		t.Fatalf("unexpected Number payload: %+v", tok.Number)
	}
}

func TestNumbers_AssignmentPatternOpen(t *testing.T) {
	expectSingleToken(t, "'{", token.TickLBrace, "'{")
}

// ====== strings ======

func TestString_Simple(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, `"hello"`)
}

func TestString_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer(`"abc`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid token for unterminated string, got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", reporter.ErrorCount(), reporter.ErrorMessages())
	}
}

// ====== operators ======

func TestOperators_Greedy(t *testing.T) {
	expectTokens(t, "a === b", []token.Kind{token.Ident, token.CaseEq, token.Ident})
	expectTokens(t, "a !== b", []token.Kind{token.Ident, token.CaseNeq, token.Ident})
	expectTokens(t, "a ==? b", []token.Kind{token.Ident, token.WildEq, token.Ident})
	expectTokens(t, "a <<<= 1", []token.Kind{token.Ident, token.AShlAssign, token.IntegerLit})
	expectTokens(t, "a >>>= 1", []token.Kind{token.Ident, token.AShrAssign, token.IntegerLit})
	expectTokens(t, "a <<< 1", []token.Kind{token.Ident, token.AShl, token.IntegerLit})
	expectTokens(t, "a ~^ b", []token.Kind{token.Ident, token.TildeCaret, token.Ident})
	expectTokens(t, "a ^~ b", []token.Kind{token.Ident, token.TildeCaret, token.Ident})
	expectTokens(t, "a -> b", []token.Kind{token.Ident, token.Arrow, token.Ident})
	expectTokens(t, "a --> b", []token.Kind{token.Ident, token.ArrowArrow, token.Ident})
	expectTokens(t, "a <-> b", []token.Kind{token.Ident, token.IffArrow, token.Ident})
	expectTokens(t, "##2", []token.Kind{token.HashHash, token.IntegerLit})
}

func TestOperators_SingleChar(t *testing.T) {
	expectTokens(t, "a+b", []token.Kind{token.Ident, token.Plus, token.Ident})
	expectTokens(t, "a.b", []token.Kind{token.Ident, token.Dot, token.Ident})
	expectTokens(t, ".*", []token.Kind{token.DotStar})
}

// ====== trivia ======

func TestTrivia_LineComment(t *testing.T) {
	lx, _ := makeTestLexer("// a comment\nmodule")
	tok := lx.Next()
	if tok.Kind != token.KwModule {
		t.Fatalf("expected KwModule, got %v", tok.Kind)
	}
	if len(tok.Leading) < 1 || tok.Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("expected leading line-comment trivia, got %+v", tok.Leading)
	}
}

func TestTrivia_BlockCommentDoesNotNest(t *testing.T) {
	// SystemVerilog block comments are not nestable: the first "*/" closes.
	lx, _ := makeTestLexer("/* outer /* inner */ endmodule")
	tok := lx.Next()
	if tok.Kind != token.KwEndmodule {
		t.Fatalf("expected KwEndmodule immediately after the first closing */, got %v (%q)", tok.Kind, tok.Text)
	}
}

func TestTrivia_Directive(t *testing.T) {
	lx, _ := makeTestLexer("`define WIDTH 8\nmodule")
	tok := lx.Next()
	if len(tok.Leading) != 2 {
		t.Fatalf("expected directive + newline trivia, got %d: %+v", len(tok.Leading), tok.Leading)
	}
	d := tok.Leading[0]
	if d.Kind != token.TriviaDirective || d.Directive == nil {
		t.Fatalf("expected TriviaDirective, got %+v", d)
	}
	if d.Directive.Name != "define" || d.Directive.Payload != " WIDTH 8" {
		t.Fatalf("unexpected directive split: %+v", d.Directive)
	}
}
