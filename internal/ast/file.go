package ast

import "svlang/internal/source"

// File is one compilation-unit-contributing source file: an ordered list
// of top-level design elements (modules, interfaces, programs, packages,
// $unit-scope declarations).
type File struct {
	Span  source.Span
	Items []ItemID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[File](capHint)}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: sp}))
}

func (f *Files) Get(id FileID) *File { return f.Arena.Get(uint32(id)) }
