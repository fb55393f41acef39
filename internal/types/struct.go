package types

import (
	"fmt"

	"fortio.org/safecast"

	"svlang/internal/source"
)

// StructField is one ordered member of a struct/union type.
type StructField struct {
	Name string
	Type TypeID
}

// StructInfo holds the out-of-line detail for a packed/unpacked struct or
// union: identity (declaration site) plus its ordered field list. Unions
// additionally carry the `tagged` flag.
type StructInfo struct {
	Name   string
	Decl   source.Span
	Fields []StructField
	Tagged bool // meaningful for unions only
}

// RegisterPackedStruct/RegisterPackedUnion/RegisterUnpackedStruct/
// RegisterUnpackedUnion each allocate a fresh nominal type slot; unlike
// Intern, these never dedup against an existing entry — two struct
// declarations with identical field lists are still distinct types,
// because struct/union identity in SystemVerilog is the declaration, not
// the shape.
func (in *Interner) RegisterPackedStruct(name string, decl source.Span, fields []StructField) TypeID {
	return in.internRaw(Type{Kind: KindPackedStruct, Payload: in.appendStructInfo(StructInfo{Name: name, Decl: decl, Fields: cloneFields(fields)})})
}

func (in *Interner) RegisterPackedUnion(name string, decl source.Span, fields []StructField, tagged bool) TypeID {
	return in.internRaw(Type{Kind: KindPackedUnion, Payload: in.appendStructInfo(StructInfo{Name: name, Decl: decl, Fields: cloneFields(fields), Tagged: tagged})})
}

func (in *Interner) RegisterUnpackedStruct(name string, decl source.Span, fields []StructField) TypeID {
	return in.internRaw(Type{Kind: KindUnpackedStruct, Payload: in.appendStructInfo(StructInfo{Name: name, Decl: decl, Fields: cloneFields(fields)})})
}

func (in *Interner) RegisterUnpackedUnion(name string, decl source.Span, fields []StructField, tagged bool) TypeID {
	return in.internRaw(Type{Kind: KindUnpackedUnion, Payload: in.appendStructInfo(StructInfo{Name: name, Decl: decl, Fields: cloneFields(fields), Tagged: tagged})})
}

// StructInfo returns the field-list metadata for a struct/union TypeID.
func (in *Interner) StructInfo(id TypeID) (*StructInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok {
		return nil, false
	}
	switch t.Kind {
	case KindPackedStruct, KindPackedUnion, KindUnpackedStruct, KindUnpackedUnion:
	default:
		return nil, false
	}
	if int(t.Payload) >= len(in.structs) {
		return nil, false
	}
	return &in.structs[t.Payload], true
}

func (in *Interner) appendStructInfo(info StructInfo) uint32 {
	in.structs = append(in.structs, info)
	slot, err := safecast.Conv[uint32](len(in.structs) - 1)
	if err != nil {
		panic(fmt.Errorf("types: struct info table overflow: %w", err))
	}
	return slot
}

func cloneFields(fields []StructField) []StructField {
	if len(fields) == 0 {
		return nil
	}
	out := make([]StructField, len(fields))
	copy(out, fields)
	return out
}
