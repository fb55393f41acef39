package parser_test

import (
	"testing"

	"svlang/internal/ast"
	"svlang/internal/diag"
	"svlang/internal/parser"
	"svlang/internal/preprocess"
	"svlang/internal/source"
)

func parseText(t *testing.T, text string) (*ast.Builder, ast.FileID, *diag.Bag) {
	t.Helper()
	mgr := source.NewManager()
	id := mgr.AddVirtual("test.sv", []byte(text))
	file := mgr.Get(id)
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	pp := preprocess.New(file, preprocess.Options{Manager: mgr, Reporter: rep})
	arenas := ast.NewBuilder(ast.Hints{})
	result := parser.ParseFile(mgr, pp, arenas, parser.Options{Reporter: rep})
	return arenas, result.File, bag
}

func requireClean(t *testing.T, bag *diag.Bag) {
	t.Helper()
	if bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Logf("diag: [%s] %s", d.Code.ID(), d.Message)
		}
		t.Fatal("parse produced errors")
	}
}

func TestParseModuleStructure(t *testing.T) {
	arenas, fileID, bag := parseText(t, `
module alu #(parameter int WIDTH = 8) (
  input  logic [WIDTH-1:0] a,
  input  logic [WIDTH-1:0] b,
  output logic [WIDTH-1:0] y
);
  localparam int ZERO = 0;
  wire carry;
  assign y = a + b;
  always_comb begin
    if (a > b) carry = 1'b0;
  end
endmodule : alu
`)
	requireClean(t, bag)

	f := arenas.Files.Get(fileID)
	if len(f.Items) != 1 {
		t.Fatalf("expected 1 top-level item, got %d", len(f.Items))
	}
	it := arenas.Items.Get(f.Items[0])
	if it.Kind != ast.ItemModule {
		t.Fatalf("expected a module item, got kind %d", it.Kind)
	}
	decl := arenas.Items.Module(f.Items[0])
	if decl.Name != "alu" || decl.EndName != "alu" {
		t.Errorf("module name/end label = %q/%q", decl.Name, decl.EndName)
	}
	if len(decl.ParamPorts) != 1 {
		t.Errorf("expected 1 parameter port, got %d", len(decl.ParamPorts))
	}
	if len(decl.Ports) != 3 {
		t.Errorf("expected 3 ports, got %d", len(decl.Ports))
	}

	kinds := make(map[ast.ItemKind]int)
	for _, id := range decl.Body {
		kinds[arenas.Items.Get(id).Kind]++
	}
	if kinds[ast.ItemParam] != 1 || kinds[ast.ItemNet] != 1 ||
		kinds[ast.ItemContinuousAssign] != 1 || kinds[ast.ItemProceduralBlock] != 1 {
		t.Errorf("unexpected body item mix: %v", kinds)
	}
}

func TestParseEndLabelMismatchIsDiagnosedNotRejected(t *testing.T) {
	arenas, fileID, bag := parseText(t, "module m; endmodule : wrong\n")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynEndLabelMismatch {
			found = true
		}
	}
	if !found {
		t.Error("mismatched end label must be diagnosed")
	}
	f := arenas.Files.Get(fileID)
	if len(f.Items) != 1 {
		t.Error("the module must still be produced despite the bad label")
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	arenas, fileID, bag := parseText(t, "int x = 1 + 2 * 3;\n")
	requireClean(t, bag)

	f := arenas.Files.Get(fileID)
	v := arenas.Items.Var(f.Items[0])
	if v == nil || len(v.Inits) != 1 {
		t.Fatal("expected one initialized variable")
	}
	root := arenas.Exprs.Get(v.Inits[0])
	if root.Kind != ast.ExprBinary {
		t.Fatalf("initializer must be a binary expression")
	}
	// 1 + (2 * 3): the multiplication binds tighter.
	rhs := arenas.Exprs.Get(root.B)
	if rhs.Kind != ast.ExprBinary {
		t.Errorf("rhs of + must be the * subexpression")
	}
}

func TestParseCaseStatement(t *testing.T) {
	_, _, bag := parseText(t, `
function int pick(int s);
  case (s)
    0: return 10;
    1, 2: return 20;
    default: return 30;
  endcase
endfunction
`)
	requireClean(t, bag)
}

func TestParseInstanceVsDeclarationDisambiguation(t *testing.T) {
	arenas, fileID, bag := parseText(t, `
module sub; endmodule
module top;
  sub u0();
  sub #(.X(1)) u1();
endmodule
`)
	requireClean(t, bag)
	f := arenas.Files.Get(fileID)
	top := arenas.Items.Module(f.Items[1])
	if len(top.Body) != 2 {
		t.Fatalf("expected 2 instances, got %d items", len(top.Body))
	}
	for _, id := range top.Body {
		if arenas.Items.Get(id).Kind != ast.ItemInstance {
			t.Errorf("body item is not an instance")
		}
	}
}

func TestParseRecoversAfterBadItem(t *testing.T) {
	arenas, fileID, bag := parseText(t, "module m1; ??? endmodule\nmodule m2; endmodule\n")
	if !bag.HasErrors() {
		t.Error("garbage inside m1 must be diagnosed")
	}
	f := arenas.Files.Get(fileID)
	names := make([]string, 0, 2)
	for _, id := range f.Items {
		if d := arenas.Items.Module(id); d != nil {
			names = append(names, d.Name)
		}
	}
	if len(names) != 2 || names[1] != "m2" {
		t.Errorf("parser must recover and still produce m2, got %v", names)
	}
}
