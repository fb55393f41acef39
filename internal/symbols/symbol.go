package symbols

import (
	"svlang/internal/ast"
	"svlang/internal/source"
	"svlang/internal/types"
)

// Kind classifies what a Symbol denotes. The set is closed over the named
// entities a compilation unit can produce: design
// elements, their members, and the scope-owning constructs nested inside.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindCompilationUnit
	KindModule
	KindInterface
	KindProgram
	KindPackage
	KindClass
	KindPort
	KindNet
	KindVariable
	KindParameter
	KindLocalParam
	KindGenvar
	KindTypedef
	KindInstance
	KindSubroutine
	KindSubroutinePort
	KindBlock
	KindGenerateBlock
	KindClassProperty
	KindModport
	KindEnumMember
	KindImport
)

func (k Kind) String() string {
	switch k {
	case KindCompilationUnit:
		return "compilation unit"
	case KindModule:
		return "module"
	case KindInterface:
		return "interface"
	case KindProgram:
		return "program"
	case KindPackage:
		return "package"
	case KindClass:
		return "class"
	case KindPort:
		return "port"
	case KindNet:
		return "net"
	case KindVariable:
		return "variable"
	case KindParameter:
		return "parameter"
	case KindLocalParam:
		return "localparam"
	case KindGenvar:
		return "genvar"
	case KindTypedef:
		return "typedef"
	case KindInstance:
		return "instance"
	case KindSubroutine:
		return "subroutine"
	case KindSubroutinePort:
		return "subroutine argument"
	case KindBlock:
		return "block"
	case KindGenerateBlock:
		return "generate block"
	case KindClassProperty:
		return "class property"
	case KindModport:
		return "modport"
	case KindEnumMember:
		return "enum member"
	case KindImport:
		return "package import"
	default:
		return "invalid"
	}
}

// Flags encode misc per-symbol attributes for quick checks.
type Flags uint16

const (
	// FlagBuiltin marks a symbol installed by the compilation itself
	// rather than sourced from a declaration (e.g. $unit's predefined
	// system tasks/functions, once those are wired in).
	FlagBuiltin Flags = 1 << iota
	// FlagDeferred marks a symbol that was materialized by a
	// DeferredProducer rather than by eager scope population.
	FlagDeferred
	// FlagPort marks a variable/net symbol that is also a port of its
	// enclosing module/interface/subroutine.
	FlagPort
	// FlagGenerate marks a symbol produced inside a generate construct.
	FlagGenerate
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// Decl anchors a symbol back to the syntax it was declared by, for
// diagnostics and for the binder's first-elaboration lookup.
type Decl struct {
	File    source.FileID
	ASTFile ast.FileID
	Item    ast.ItemID
	Stmt    ast.StmtID
}

// Symbol describes a named (or anonymous, for unlabeled blocks) entity
// visible in a Scope. Index is assigned monotonically as
// members are added to Scope, and Next threads every symbol declared in
// that scope into one ordered singly-linked list, independent of name.
type Symbol struct {
	Name  source.StringID
	Kind  Kind
	Scope ScopeID
	Span  source.Span
	Index int32
	Next  SymbolID
	Flags Flags
	Decl  Decl
	Type  types.TypeID
	// Body is the scope this symbol owns, if any: a module/interface/
	// program/package/class definition, a subroutine body, a named or
	// generate block, or the scope of the module an Instance binds to.
	// NoScopeID for symbols that don't introduce a nested scope.
	Body ScopeID
}
