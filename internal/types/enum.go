package types

import (
	"fmt"

	"fortio.org/safecast"

	"svlang/internal/source"
)

// EnumMember is one ordered (name, constant_value) pair of an enum
// declaration.
type EnumMember struct {
	Name  string
	Value int64
}

// EnumInfo holds an enum type's declaration site, base integral type, and
// ordered member list.
type EnumInfo struct {
	Name    string
	Decl    source.Span
	Base    TypeID
	Members []EnumMember
}

// RegisterEnum allocates a fresh nominal enum type slot.
func (in *Interner) RegisterEnum(name string, decl source.Span, base TypeID, members []EnumMember) TypeID {
	return in.internRaw(Type{Kind: KindEnum, Payload: in.appendEnumInfo(EnumInfo{Name: name, Decl: decl, Base: base, Members: cloneMembers(members)})})
}

// EnumInfo returns the metadata for an enum TypeID.
func (in *Interner) EnumInfo(id TypeID) (*EnumInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindEnum || int(t.Payload) >= len(in.enums) {
		return nil, false
	}
	return &in.enums[t.Payload], true
}

func (in *Interner) appendEnumInfo(info EnumInfo) uint32 {
	in.enums = append(in.enums, info)
	slot, err := safecast.Conv[uint32](len(in.enums) - 1)
	if err != nil {
		panic(fmt.Errorf("types: enum info table overflow: %w", err))
	}
	return slot
}

func cloneMembers(members []EnumMember) []EnumMember {
	if len(members) == 0 {
		return nil
	}
	out := make([]EnumMember, len(members))
	copy(out, members)
	return out
}
