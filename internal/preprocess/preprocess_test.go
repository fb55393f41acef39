package preprocess_test

import (
	"fmt"
	"testing"

	"svlang/internal/diag"
	"svlang/internal/preprocess"
	"svlang/internal/source"
	"svlang/internal/token"
)

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

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return messages
}

func (r *testReporter) ErrorCount() int {
	n := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			n++
		}
	}
	return n
}

func makePreprocessor(input string) (*preprocess.Preprocessor, *testReporter, *source.Manager) {
	mgr := source.NewFileSet()
	id := mgr.AddVirtual("test.sv", []byte(input))
	file := mgr.Get(id)
	rep := &testReporter{}
	pp := preprocess.New(file, preprocess.Options{Manager: mgr, Reporter: rep})
	return pp, rep, mgr
}

func collectText(pp *preprocess.Preprocessor) []string {
	var out []string
	for {
		tok := pp.Next()
		if tok.Kind == token.EOF {
			break
		}
		out = append(out, tok.Text)
	}
	return out
}

func TestObjectLikeMacro(t *testing.T) {
	pp, rep, _ := makePreprocessor("`define WIDTH 8\nassign w = `WIDTH - 1;\n")
	texts := collectText(pp)
	if rep.ErrorCount() != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.ErrorMessages())
	}
	want := []string{"assign", "w", "=", "8", "-", "1", ";"}
	assertTexts(t, texts, want)
}

func TestFunctionLikeMacro(t *testing.T) {
	pp, rep, _ := makePreprocessor("`define MAX(a,b) ((a) > (b) ? (a) : (b))\nwire x = `MAX(1, 2);\n")
	texts := collectText(pp)
	if rep.ErrorCount() != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.ErrorMessages())
	}
	want := []string{
		"wire", "x", "=", "(", "(", "1", ")", ">", "(", "2", ")", "?", "(", "1", ")", ":", "(", "2", ")", ")", ";",
	}
	assertTexts(t, texts, want)
}

func TestIfdefSkipsInactiveBranch(t *testing.T) {
	src := "`define FOO\n`ifdef FOO\nwire a;\n`else\nwire b;\n`endif\n"
	pp, rep, _ := makePreprocessor(src)
	texts := collectText(pp)
	if rep.ErrorCount() != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.ErrorMessages())
	}
	assertTexts(t, texts, []string{"wire", "a", ";"})
}

func TestIfndefTakesPrimaryBranchWhenUndefined(t *testing.T) {
	src := "`ifndef FOO\nwire a;\n`else\nwire b;\n`endif\n"
	pp, _, _ := makePreprocessor(src)
	texts := collectText(pp)
	assertTexts(t, texts, []string{"wire", "a", ";"})
}

func TestUndefinedMacroReportsDiagnostic(t *testing.T) {
	pp, rep, _ := makePreprocessor("wire x = `NOPE;\n")
	collectText(pp)
	if rep.ErrorCount() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", rep.ErrorMessages())
	}
}

func TestSelfRecursiveMacroDoesNotLoop(t *testing.T) {
	pp, rep, _ := makePreprocessor("`define LOOP `LOOP\nwire x;\n`LOOP\n")
	texts := collectText(pp)
	if rep.ErrorCount() == 0 {
		t.Fatalf("expected a self-recursion diagnostic")
	}
	assertTexts(t, texts, []string{"wire", "x", ";"})
}

func TestElsifChain(t *testing.T) {
	src := "`define B\n`ifdef A\nwire a;\n`elsif B\nwire b;\n`else\nwire c;\n`endif\n"
	pp, _, _ := makePreprocessor(src)
	texts := collectText(pp)
	assertTexts(t, texts, []string{"wire", "b", ";"})
}

func TestUnbalancedEndifReportsDiagnostic(t *testing.T) {
	pp, rep, _ := makePreprocessor("`endif\nwire a;\n")
	collectText(pp)
	if rep.ErrorCount() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", rep.ErrorMessages())
	}
}

func assertTexts(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestErrorDirective(t *testing.T) {
	pp, rep, _ := makePreprocessor("`error bad configuration\nwire x;\n")
	texts := collectText(pp)
	if rep.ErrorCount() != 1 {
		t.Fatalf("expected exactly one `error diagnostic, got %v", rep.ErrorMessages())
	}
	assertTexts(t, texts, []string{"wire", "x", ";"})
}

func TestLineDirectiveRemapsReportedLines(t *testing.T) {
	src := "wire a;\n`line 100 \"other.sv\" 0\nwire b;\n"
	pp, rep, mgr := makePreprocessor(src)
	var bLoc source.Span
	for {
		tok := pp.Next()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Text == "b" {
			bLoc = tok.Span
		}
	}
	if rep.ErrorCount() != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.ErrorMessages())
	}
	loc := source.LocationOf(bLoc)
	if got := mgr.GetLineNumber(loc); got != 100 {
		t.Errorf("line after `line 100 should report 100, got %d", got)
	}
	if got := mgr.CurrentFileName(loc); got != "other.sv" {
		t.Errorf("file after `line should report other.sv, got %q", got)
	}
}

func TestUnterminatedConditionalAtEOF(t *testing.T) {
	pp, rep, _ := makePreprocessor("`ifdef NEVER\nwire a;\n")
	collectText(pp)
	if rep.ErrorCount() != 1 {
		t.Fatalf("expected one unterminated-conditional diagnostic, got %v", rep.ErrorMessages())
	}
}

func TestMacroDepthLimit(t *testing.T) {
	src := "`define A `B\n`define B `A\nwire x = `A;\n"
	pp, rep, _ := makePreprocessor(src)
	collectText(pp)
	if rep.ErrorCount() == 0 {
		t.Fatal("mutually recursive macros must be diagnosed")
	}
}
