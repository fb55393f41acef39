package types

import (
	"fmt"

	"fortio.org/safecast"

	"svlang/internal/source"
)

// ClassMember is one member (property or method) of a class type. Method
// signatures are checked structurally by the binder (the method-
// override rule); this table just records enough to drive that check.
type ClassMember struct {
	Name       string
	Type       TypeID // property type, or method return type
	IsMethod   bool
	ParamTypes []TypeID // method parameter types, in order
}

// ClassInfo holds a class type's declaration site, single base class (if
// any), implemented interface set, member list, and virtual/abstract/
// interface-class flags.
type ClassInfo struct {
	Name       string
	Decl       source.Span
	Base       TypeID // NoTypeID for a root class
	Interfaces []TypeID
	Members    []ClassMember
	Virtual    bool
	Abstract   bool
	Interface  bool // true for `interface class`
}

// RegisterClass allocates a fresh nominal class type slot.
func (in *Interner) RegisterClass(info ClassInfo) TypeID {
	return in.internRaw(Type{Kind: KindClass, Payload: in.appendClassInfo(info)})
}

// ClassInfo returns the metadata for a class TypeID.
func (in *Interner) ClassInfo(id TypeID) (*ClassInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindClass || int(t.Payload) >= len(in.classes) {
		return nil, false
	}
	return &in.classes[t.Payload], true
}

// IsClassDescendant reports whether sub's inheritance chain includes sup
// (sup itself counts, so IsClassDescendant(c, c) is true).
func (in *Interner) IsClassDescendant(sub, sup TypeID) bool {
	for cur := sub; cur != NoTypeID; {
		if cur == sup {
			return true
		}
		info, ok := in.ClassInfo(cur)
		if !ok {
			return false
		}
		cur = info.Base
	}
	return false
}

func (in *Interner) appendClassInfo(info ClassInfo) uint32 {
	info.Interfaces = cloneTypeIDs(info.Interfaces)
	info.Members = cloneClassMembers(info.Members)
	in.classes = append(in.classes, info)
	slot, err := safecast.Conv[uint32](len(in.classes) - 1)
	if err != nil {
		panic(fmt.Errorf("types: class info table overflow: %w", err))
	}
	return slot
}

func cloneTypeIDs(ids []TypeID) []TypeID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]TypeID, len(ids))
	copy(out, ids)
	return out
}

func cloneClassMembers(members []ClassMember) []ClassMember {
	if len(members) == 0 {
		return nil
	}
	out := make([]ClassMember, len(members))
	copy(out, members)
	return out
}
