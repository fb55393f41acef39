package source

import (
	"testing"
)

func TestLineAndColumnNumbers(t *testing.T) {
	m := NewManager()
	id := m.AddVirtual("a.sv", []byte("module a;\n  wire w;\nendmodule\n"))

	loc := MakeLocation(id, 0)
	if m.GetLineNumber(loc) != 1 || m.GetColumnNumber(loc) != 1 {
		t.Errorf("offset 0 should be 1:1, got %d:%d", m.GetLineNumber(loc), m.GetColumnNumber(loc))
	}
	// "  wire w;" starts at offset 10; the 'w' of wire is offset 12.
	loc = MakeLocation(id, 12)
	if m.GetLineNumber(loc) != 2 || m.GetColumnNumber(loc) != 3 {
		t.Errorf("offset 12 should be 2:3, got %d:%d", m.GetLineNumber(loc), m.GetColumnNumber(loc))
	}
}

func TestLocationPacking(t *testing.T) {
	loc := MakeLocation(BufferID(5), 1234)
	if loc.Buffer() != 5 || loc.Offset() != 1234 {
		t.Errorf("round-trip lost data: buffer=%d offset=%d", loc.Buffer(), loc.Offset())
	}
	if NoLocation.Valid() {
		t.Error("the sentinel must not be a valid location")
	}
	if !loc.Valid() {
		t.Error("a real location must be valid")
	}
}

func TestLineDirectiveRemap(t *testing.T) {
	m := NewManager()
	content := []byte("line one\nline two\nline three\nline four\n")
	id := m.AddVirtual("real.sv", content)

	// A `line directive on line 2 claiming the next line is 100 of
	// "other.sv": new_line = 100 + (raw - 2) - 1.
	m.AddLineDirective(MakeLocation(id, 9), 100, "other.sv", 0)

	if got := m.GetLineNumber(MakeLocation(id, 0)); got != 1 {
		t.Errorf("line before the directive must stay raw, got %d", got)
	}
	// Offset 18 is the start of "line three" (raw line 3).
	if got := m.GetLineNumber(MakeLocation(id, 18)); got != 100 {
		t.Errorf("first line after the directive should report 100, got %d", got)
	}
	// Offset 29 is "line four" (raw line 4).
	if got := m.GetLineNumber(MakeLocation(id, 29)); got != 101 {
		t.Errorf("second line after the directive should report 101, got %d", got)
	}
	if got := m.CurrentFileName(MakeLocation(id, 18)); got != "other.sv" {
		t.Errorf("remapped file name = %q, want other.sv", got)
	}
}

func TestExpansionProvenance(t *testing.T) {
	m := NewManager()
	id := m.AddVirtual("m.sv", []byte("`define FOO 1+2\nwire w = `FOO;\n"))

	original := MakeLocation(id, 12) // inside the macro body
	invokeStart := MakeLocation(id, 25)
	invokeEnd := MakeLocation(id, 29)
	expLoc := m.CreateExpansionLoc(original, NewRange(invokeStart, invokeEnd), []byte("1+2"), "FOO", false)

	if !m.IsMacroLoc(expLoc) {
		t.Error("expansion location must report as a macro location")
	}
	if m.IsFileLoc(expLoc) {
		t.Error("expansion location must not report as a file location")
	}
	if got := m.GetMacroName(expLoc); got != "FOO" {
		t.Errorf("macro name = %q, want FOO", got)
	}
	orig := m.GetFullyOriginalLoc(expLoc)
	if orig.Buffer() != id {
		t.Error("fully-original location must land back in the file buffer")
	}
	exp := m.GetFullyExpandedLoc(expLoc)
	if exp.Buffer() != id {
		t.Error("fully-expanded location must land at the invocation site")
	}
}

func TestIsBeforeInCompilationUnit(t *testing.T) {
	m := NewManager()
	id := m.AddVirtual("m.sv", []byte("abcdef\nghijkl\n"))

	a := MakeLocation(id, 1)
	b := MakeLocation(id, 8)
	if !m.IsBeforeInCompilationUnit(a, b) {
		t.Error("earlier offset must order before later offset")
	}
	if m.IsBeforeInCompilationUnit(b, a) {
		t.Error("ordering must be asymmetric")
	}
	if m.IsBeforeInCompilationUnit(a, a) {
		t.Error("ordering must be irreflexive")
	}

	// A location inside a macro expansion orders by its expansion site.
	exp := m.CreateExpansionLoc(MakeLocation(id, 2), NewRange(MakeLocation(id, 10), MakeLocation(id, 12)), []byte("xy"), "M", false)
	if !m.IsBeforeInCompilationUnit(a, exp) {
		t.Error("expansion at offset 10 must order after offset 1")
	}
	if !m.IsBeforeInCompilationUnit(exp, MakeLocation(id, 13)) {
		t.Error("expansion at offset 10 must order before offset 13")
	}
}

func TestReadHeaderSearchesIncludeDirs(t *testing.T) {
	m := NewManager()
	// In-memory headers are found by AssignText's registered name.
	m.AssignText("inc/defs.svh", []byte("`define WIDTH 8\n"), NoLocation)
	root := m.AddVirtual("top.sv", []byte("`include \"inc/defs.svh\"\n"))

	sb := m.ReadHeader("inc/defs.svh", MakeLocation(root, 0), false)
	if !sb.Valid() {
		t.Fatal("in-memory header should resolve")
	}
	if m.GetIncludedFrom(MakeLocation(sb.ID, 0)).Buffer() != root {
		t.Error("included-from chain must point at the including buffer")
	}

	missing := m.ReadHeader("no/such/file.svh", MakeLocation(root, 0), false)
	if missing.Valid() {
		t.Error("a missing header must come back boolean-false")
	}
}
