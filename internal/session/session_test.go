package session

import (
	"testing"

	"svlang/internal/compilation"
	"svlang/internal/consteval"
	"svlang/internal/svint"
)

func evalInt(t *testing.T, s *Session, text string) svint.SVInt {
	t.Helper()
	r, bag := s.Eval(text)
	if bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Logf("diag: [%s] %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("eval %q produced errors", text)
	}
	if r.IsDecl {
		t.Fatalf("eval %q parsed as a declaration, expected an expression", text)
	}
	if r.Value.Kind != consteval.VInt {
		t.Fatalf("eval %q produced %v, expected an integer", text, r.Value.Kind)
	}
	return r.Value.Int
}

func declare(t *testing.T, s *Session, text string) {
	t.Helper()
	r, bag := s.Eval(text)
	if bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Logf("diag: [%s] %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("declaration %q produced errors", text)
	}
	if !r.IsDecl {
		t.Fatalf("input %q evaluated as an expression, expected a declaration", text)
	}
}

func TestVariableDeclarationAndUse(t *testing.T) {
	s := New(compilation.Options{})
	declare(t, s, "int i = 4;")
	v := evalInt(t, s, "i + 9")
	if v.Width != 32 || !v.Signed {
		t.Errorf("i + 9 should be 32-bit signed, got %d-bit signed=%v", v.Width, v.Signed)
	}
	if got, _ := v.Int64(); got != 13 {
		t.Errorf("i + 9 = %d, want 13", got)
	}
}

func TestConstantFunctionCall(t *testing.T) {
	s := New(compilation.Options{})
	declare(t, s, "function logic [15:0] foo(int a, int b); return a + b; endfunction")
	v := evalInt(t, s, "foo(3, 4)")
	if v.Width != 16 || v.Signed {
		t.Errorf("foo(3,4) should be 16-bit unsigned, got %d-bit signed=%v", v.Width, v.Signed)
	}
	if got, _ := v.Uint64(); got != 7 {
		t.Errorf("foo(3, 4) = %d, want 7", got)
	}
}

func TestConcatenation(t *testing.T) {
	s := New(compilation.Options{})
	v := evalInt(t, s, "{2'b11, 3'b101}")
	if v.Width != 5 {
		t.Errorf("width = %d, want 5", v.Width)
	}
	if v.IsUnknown() {
		t.Error("result must be two-state")
	}
	if got, _ := v.Uint64(); got != 0b11101 {
		t.Errorf("got %s, want 5'b11101", v)
	}
}

func TestReplication(t *testing.T) {
	s := New(compilation.Options{})
	v := evalInt(t, s, "{4 {2'b10}}")
	if v.Width != 8 {
		t.Errorf("width = %d, want 8", v.Width)
	}
	if got, _ := v.Uint64(); got != 0b10101010 {
		t.Errorf("got %s, want 8'b10101010", v)
	}
}

func TestWideArithmeticShift(t *testing.T) {
	s := New(compilation.Options{})
	v := evalInt(t, s, "-65'sd4 >>> 1")
	if v.Width != 65 {
		t.Fatalf("width = %d, want 65", v.Width)
	}
	if got, ok := v.Int64(); !ok || got != -2 {
		t.Errorf("-65'sd4 >>> 1 = %d (ok=%v), want -2", got, ok)
	}
}

func TestUnknownConditionMergesBranches(t *testing.T) {
	s := New(compilation.Options{})
	v := evalInt(t, s, "(1/0) ? 128'b101 : 128'b110")
	if v.Width != 128 {
		t.Fatalf("width = %d, want 128", v.Width)
	}
	d := v.Digits()
	if d[len(d)-3:] != "1xx" {
		t.Errorf("bottom bits = %s, want 1xx", d[len(d)-3:])
	}
}

func TestWildcardEqualityExpression(t *testing.T) {
	s := New(compilation.Options{})
	v := evalInt(t, s, "{1'b1 / 1'b0, 4'b1001} ==? 5'b11001")
	if v.Width != 1 {
		t.Fatalf("width = %d, want 1", v.Width)
	}
	if got, ok := v.Uint64(); !ok || got != 1 {
		t.Errorf("wildcard equality = %s, want 1'b1", v)
	}
}

func TestParameterizedInstanceLookup(t *testing.T) {
	s := New(compilation.Options{})
	declare(t, s, "module A #(parameter int P); localparam LP = P + 3; endmodule")
	declare(t, s, "A #(.P(2)) a0();")
	v := evalInt(t, s, "a0.LP")
	if v.Width != 32 || !v.Signed {
		t.Errorf("a0.LP should be 32-bit signed, got %d-bit signed=%v", v.Width, v.Signed)
	}
	if got, _ := v.Int64(); got != 5 {
		t.Errorf("a0.LP = %d, want 5", got)
	}
}

func TestUnsizedLiteralInWideContext(t *testing.T) {
	s := New(compilation.Options{})
	v := evalInt(t, s, "'1 + 65'b0")
	want, _ := svint.Parse("65'h1ffffffffffffffff")
	got := v
	got.Signed = want.Signed
	if !svint.ExactEqual(got, want) {
		t.Errorf("'1 + 65'b0 = %s, want %s", v, want)
	}
}

func TestSelfDeterminedShiftCount(t *testing.T) {
	s := New(compilation.Options{})
	v := evalInt(t, s, "1 << '1")
	if got, _ := v.Int64(); got != 2 {
		t.Errorf("1 << '1 = %d, want 2", got)
	}
}

func TestConditionalKnownBranches(t *testing.T) {
	s := New(compilation.Options{})
	if got, _ := evalInt(t, s, "2 == 2 ? 5 : 4").Int64(); got != 5 {
		t.Errorf("true conditional = %d, want 5", got)
	}
	if got, _ := evalInt(t, s, "(2 * 2) == 3 ? 5 : 4").Int64(); got != 4 {
		t.Errorf("false conditional = %d, want 4", got)
	}
}

func TestRecursiveFunctionDepthLimit(t *testing.T) {
	s := New(compilation.Options{MaxConstexprDepth: 16})
	declare(t, s, "function int boom(int n); return boom(n) + 1; endfunction")
	r, bag := s.Eval("boom(1)")
	if !bag.HasErrors() {
		t.Error("unbounded recursion must produce a diagnostic")
	}
	if r.Value.Kind == consteval.VInt {
		t.Error("unbounded recursion must not produce an integer value")
	}
}

func TestUndeclaredIdentifierIsDiagnosed(t *testing.T) {
	s := New(compilation.Options{})
	_, bag := s.Eval("nope + 1")
	if !bag.HasErrors() {
		t.Error("expected an unresolved-symbol diagnostic")
	}
}
