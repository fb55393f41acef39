package serialize

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"svlang/internal/compilation"
	"svlang/internal/svint"
)

func buildComp(t *testing.T) *compilation.Compilation {
	t.Helper()
	comp := compilation.New(compilation.Options{}, nil)
	comp.AddText("design.sv", `
module counter;
  parameter int WIDTH = 8;
  localparam int MAX = WIDTH * 2;
  wire clk;
endmodule
`)
	if comp.Bag.HasErrors() {
		for _, d := range comp.Bag.Items() {
			t.Logf("diag: [%s] %s", d.Code.ID(), d.Message)
		}
		t.Fatal("test design failed to elaborate")
	}
	return comp
}

func TestJSONDump(t *testing.T) {
	comp := buildComp(t)
	var buf bytes.Buffer
	if err := New(comp).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if tree["kind"] != "CompilationUnit" {
		t.Errorf("root kind = %v", tree["kind"])
	}
	members, _ := tree["members"].([]any)
	if len(members) != 1 {
		t.Fatalf("expected 1 top-level member, got %d", len(members))
	}
	mod, _ := members[0].(map[string]any)
	if mod["kind"] != "module" || mod["name"] != "counter" {
		t.Errorf("unexpected module node: %v", mod)
	}
	inner, _ := mod["members"].([]any)
	found := false
	for _, raw := range inner {
		m, _ := raw.(map[string]any)
		if m["name"] == "MAX" {
			found = true
			val, _ := m["value"].(map[string]any)
			if val == nil {
				t.Fatal("localparam MAX should carry an evaluated value")
			}
			if val["width"] != float64(32) || val["signed"] != true || val["four_state"] != false {
				t.Errorf("MAX value shape = %v", val)
			}
		}
	}
	if !found {
		t.Error("localparam MAX missing from dump")
	}
}

func TestMsgpackDumpRoundTrips(t *testing.T) {
	comp := buildComp(t)
	var buf bytes.Buffer
	if err := New(comp).WriteMsgpack(&buf); err != nil {
		t.Fatalf("WriteMsgpack: %v", err)
	}
	var tree map[string]any
	if err := msgpack.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("invalid msgpack: %v", err)
	}
	if tree["kind"] != "CompilationUnit" {
		t.Errorf("root kind = %v", tree["kind"])
	}
}

func TestIntConstantShape(t *testing.T) {
	v, _ := svint.Parse("12'b1010xxxxzzzz")
	node := IntConstant(v)
	if node["width"] != uint32(12) {
		t.Errorf("width = %v", node["width"])
	}
	if node["four_state"] != true {
		t.Error("value with x/z bits must report four_state")
	}
	if node["bits"] != "1010xxxxzzzz" {
		t.Errorf("bits = %v", node["bits"])
	}
}
