package compilation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"svlang/internal/diag"
	"svlang/internal/source"
)

func TestMissingIncludeEmitsOneDiagnostic(t *testing.T) {
	comp := New(Options{}, nil)
	comp.AddText("top.sv", "`include \"does_not_exist.svh\"\nmodule top; endmodule\n")

	count := 0
	for _, d := range comp.Bag.Items() {
		if d.Code == diag.PreIncludeNotFound {
			count++
		}
	}
	if count != 1 {
		t.Errorf("missing include produced %d diagnostics, want exactly 1", count)
	}
}

func TestInMemoryIncludeResolves(t *testing.T) {
	comp := New(Options{}, nil)
	comp.Manager.AssignText("defs.svh", []byte("`define W 4\n"), source.NoLocation)
	comp.AddText("top.sv", "`include \"defs.svh\"\nmodule top; wire [`W-1:0] bus; endmodule\n")

	if comp.Bag.HasErrors() {
		for _, d := range comp.Bag.Items() {
			t.Logf("diag: [%s] %s", d.Code.ID(), d.Message)
		}
		t.Error("include of a registered in-memory header must succeed")
	}
}

func TestAddFilesConcurrentLoad(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 3)
	designs := []string{
		"module m0; endmodule\n",
		"module m1; m0 u0(); endmodule\n",
		"package p0; parameter int K = 3; endpackage\n",
	}
	for i, text := range designs {
		p := filepath.Join(dir, "f"+string(rune('0'+i))+".sv")
		if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	comp := New(Options{}, nil)
	if err := comp.AddFiles(context.Background(), paths); err != nil {
		t.Fatalf("AddFiles: %v", err)
	}
	if len(comp.Files) != 3 {
		t.Errorf("parsed %d files, want 3", len(comp.Files))
	}
	if comp.Bag.HasErrors() {
		for _, d := range comp.Bag.Items() {
			t.Logf("diag: [%s] %s", d.Code.ID(), d.Message)
		}
		t.Error("clean designs must elaborate without errors")
	}
	if _, ok := comp.Table.ModuleScope("m1"); !ok {
		t.Error("module m1 must be registered")
	}
	if _, ok := comp.Table.PackageScope("p0"); !ok {
		t.Error("package p0 must be registered")
	}
}

func TestDirectiveStateSnapshot(t *testing.T) {
	comp := New(Options{}, nil)
	comp.AddText("t.sv", "`timescale 1ns/1ps\n`default_nettype none\nmodule t; endmodule\n")
	if comp.Timescale != "1ns/1ps" {
		t.Errorf("timescale = %q, want 1ns/1ps", comp.Timescale)
	}
	if comp.DefaultNetType != "none" {
		t.Errorf("default nettype = %q, want none", comp.DefaultNetType)
	}
}

func TestLanguageVersionParsing(t *testing.T) {
	for _, name := range []string{"1800-2005", "1800-2009", "1800-2012", "1800-2017", "1800-2023"} {
		if _, err := ParseLanguageVersion(name); err != nil {
			t.Errorf("ParseLanguageVersion(%q): %v", name, err)
		}
	}
	if _, err := ParseLanguageVersion("1800-1999"); err == nil {
		t.Error("unknown revision must be rejected")
	}
}
