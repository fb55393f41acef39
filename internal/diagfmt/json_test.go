package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"svlang/internal/diag"
	"svlang/internal/source"
)

func testBag(fs *source.FileSet) (*diag.Bag, source.FileID) {
	content := []byte("module top;\n  wire w = \"unterminated\nendmodule\n")
	fileID := fs.AddVirtual("top.sv", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 23, End: 37},
		"unterminated string literal",
	))
	return bag, fileID
}

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput: %s", err, buf.String())
	}

	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got count=%d len=%d", output.Count, len(output.Diagnostics))
	}
	d := output.Diagnostics[0]
	if d.Severity != "ERROR" {
		t.Errorf("expected severity=ERROR, got %s", d.Severity)
	}
	if d.Code != "LEX1002" {
		t.Errorf("expected code=LEX1002, got %s", d.Code)
	}
	if d.Location.File != "top.sv" {
		t.Errorf("expected file=top.sv, got %s", d.Location.File)
	}
	if d.Location.StartByte != 23 || d.Location.EndByte != 37 {
		t.Errorf("unexpected byte span %d..%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 2 {
		t.Errorf("expected start_line=2, got %d", d.Location.StartLine)
	}
}

func TestJSONNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.sv", []byte("module a; endmodule\n"))

	bag := diag.NewBag(10)
	d := diag.New(diag.SevError, diag.SemaDuplicateSymbol,
		source.Span{File: fileID, Start: 7, End: 8}, "duplicate symbol 'a'")
	d = d.WithNote(source.Span{File: fileID, Start: 0, End: 6}, "previous declaration here")
	bag.Add(d)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludeNotes: true}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(output.Diagnostics[0].Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(output.Diagnostics[0].Notes))
	}
	if output.Diagnostics[0].Notes[0].Message != "previous declaration here" {
		t.Errorf("wrong note message: %q", output.Diagnostics[0].Notes[0].Message)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("b.sv", []byte("wire w;\n"))

	bag := diag.NewBag(10)
	for range 5 {
		bag.Add(diag.New(diag.SevWarning, diag.SynUnexpectedToken,
			source.Span{File: fileID, Start: 0, End: 4}, "unexpected token"))
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if output.Count != 2 {
		t.Errorf("expected truncation to 2, got %d", output.Count)
	}
}

func TestPrettyOutput(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()

	if !strings.Contains(out, "top.sv:2:") {
		t.Errorf("expected path:line:col prefix, got:\n%s", out)
	}
	if !strings.Contains(out, "ERROR LEX1002") {
		t.Errorf("expected severity and code, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("expected caret underline, got:\n%s", out)
	}
}

func TestSarifOutput(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var buf bytes.Buffer
	err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "svlang", ToolVersion: "0.1.0"})
	if err != nil {
		t.Fatalf("Sarif() error: %v", err)
	}
	var log map[string]any
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("invalid SARIF JSON: %v", err)
	}
	if log["version"] != "2.1.0" {
		t.Errorf("expected SARIF 2.1.0, got %v", log["version"])
	}
}
