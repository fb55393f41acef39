package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins holds the TypeIDs of every scalar singleton and canonical
// integral/floating shape, interned once per Interner so most comparisons
// against them reduce to pointer (TypeID) equality.
type Builtins struct {
	Invalid TypeID

	Bit, Logic, Reg, Byte, ShortInt, Int, LongInt, Integer, Time TypeID
	ShortReal, Real, RealTime                                    TypeID

	Void, Null, CHandle, String, Event, Unbounded, TypeRef, Untyped,
	Sequence, Property, Error TypeID
}

// Interner provides stable, structurally hash-consed TypeIDs for the
// primitive (integral/floating/array/scalar) shapes, plus append-only Info
// arenas for the nominal (struct/union/enum/class/virtual-interface/alias)
// variants, whose identity is "which declaration", not "which shape".
type Interner struct {
	types []Type
	index map[typeKey]TypeID

	builtins Builtins

	structs []StructInfo
	enums   []EnumInfo
	classes []ClassInfo
	vifaces []VirtualInterfaceInfo
	aliases []*AliasInfo
}

// NewInterner constructs an Interner seeded with every scalar singleton
// and canonical integral/floating shape.
func NewInterner() *Interner {
	in := &Interner{index: make(map[typeKey]TypeID, 64)}
	in.structs = append(in.structs, StructInfo{})   // reserve 0
	in.enums = append(in.enums, EnumInfo{})          // reserve 0
	in.classes = append(in.classes, ClassInfo{})     // reserve 0
	in.vifaces = append(in.vifaces, VirtualInterfaceInfo{})
	in.aliases = append(in.aliases, &AliasInfo{}) // reserve 0

	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})

	in.builtins.Bit = in.Intern(MakeIntegral(SubBit, 0, false, false))
	in.builtins.Logic = in.Intern(MakeIntegral(SubLogic, 0, false, false))
	in.builtins.Reg = in.Intern(MakeIntegral(SubReg, 0, false, false))
	in.builtins.Byte = in.Intern(MakeIntegral(SubByte, 0, false, false))
	in.builtins.ShortInt = in.Intern(MakeIntegral(SubShortInt, 0, false, false))
	in.builtins.Int = in.Intern(MakeIntegral(SubInt, 0, false, false))
	in.builtins.LongInt = in.Intern(MakeIntegral(SubLongInt, 0, false, false))
	in.builtins.Integer = in.Intern(MakeIntegral(SubInteger, 0, false, false))
	in.builtins.Time = in.Intern(MakeIntegral(SubTime, 0, false, false))

	in.builtins.ShortReal = in.Intern(MakeFloating(SubShortReal))
	in.builtins.Real = in.Intern(MakeFloating(SubReal))
	in.builtins.RealTime = in.Intern(MakeFloating(SubRealTime))

	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Null = in.Intern(Type{Kind: KindNull})
	in.builtins.CHandle = in.Intern(Type{Kind: KindCHandle})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Event = in.Intern(Type{Kind: KindEvent})
	in.builtins.Unbounded = in.Intern(Type{Kind: KindUnbounded})
	in.builtins.TypeRef = in.Intern(Type{Kind: KindTypeRef})
	in.builtins.Untyped = in.Intern(Type{Kind: KindUntyped})
	in.builtins.Sequence = in.Intern(Type{Kind: KindSequence})
	in.builtins.Property = in.Intern(Type{Kind: KindProperty})
	in.builtins.Error = in.Intern(Type{Kind: KindError})
	return in
}

// Builtins returns the interned scalar/canonical-shape TypeIDs.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Intern hash-conses a structural (non-nominal) type descriptor, returning
// the existing TypeID if an identical one was already interned.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := newTypeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw always allocates a fresh TypeID, used both by Intern (on a
// cache miss) and by the nominal Register* constructors, whose Payload
// distinguishes otherwise-identical Type shells.
func (in *Interner) internRaw(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: type table overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	in.index[newTypeKey(t)] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics on an invalid TypeID; reserved for call sites that
// have already validated id came from this Interner.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

// typeKey is the hash-consing key: every field of Type that matters to
// structural identity for the shapes Intern is used with (nominal shapes
// always go through internRaw directly and are never looked up by key).
type typeKey struct {
	Kind      Kind
	Elem      TypeID
	SubKind   uint8
	Width     uint16
	Signed    bool
	FourState bool
	Left      int32
	Right     int32
	Size      uint32
	MaxBound  int32
	IndexType TypeID
	Payload   uint32
}

func newTypeKey(t Type) typeKey {
	return typeKey{
		Kind: t.Kind, Elem: t.Elem, SubKind: t.SubKind, Width: t.Width,
		Signed: t.Signed, FourState: t.FourState, Left: t.Left, Right: t.Right,
		Size: t.Size, MaxBound: t.MaxBound, IndexType: t.IndexType, Payload: t.Payload,
	}
}
