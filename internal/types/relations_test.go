package types

import (
	"testing"

	"svlang/internal/source"
)

func TestMatchingIsInterned(t *testing.T) {
	in := NewInterner()
	a := in.Intern(MakeIntegral(SubLogic, 8, false, true))
	b := in.Intern(MakeIntegral(SubLogic, 8, false, true))
	if a != b {
		t.Fatal("identical shapes must intern to one TypeID")
	}
	if !in.IsMatching(a, b) {
		t.Error("interned shapes must match")
	}
}

func TestMatchingReflexiveSymmetricTransitive(t *testing.T) {
	in := NewInterner()
	bi := in.Builtins()
	ids := []TypeID{bi.Int, bi.Logic, bi.Real, bi.String,
		in.Intern(MakePackedArray(bi.Logic, 7, 0)),
		in.Intern(MakeFixedUnpackedArray(bi.Int, 4)),
	}
	for _, a := range ids {
		if !in.IsMatching(a, a) {
			t.Errorf("matching must be reflexive for %s", Label(in, a))
		}
		for _, b := range ids {
			if in.IsMatching(a, b) != in.IsMatching(b, a) {
				t.Errorf("matching must be symmetric for %s/%s", Label(in, a), Label(in, b))
			}
		}
	}
}

func TestEquivalentIntegral(t *testing.T) {
	in := NewInterner()
	// int and a 32-bit signed bit vector: same width/signedness/
	// two-stateness, so equivalent without matching.
	intT := in.Builtins().Int
	bitVec := in.Intern(MakeIntegral(SubBit, 32, true, false))
	if in.IsMatching(intT, bitVec) {
		t.Error("int and bit[31:0] signed are distinct canonical shapes")
	}
	if !in.IsEquivalent(intT, bitVec) {
		t.Error("int and 32-bit signed two-state vector must be equivalent")
	}
	logicVec := in.Intern(MakeIntegral(SubLogic, 32, true, true))
	if in.IsEquivalent(intT, logicVec) {
		t.Error("two-state and four-state vectors are not equivalent")
	}
}

func TestEquivalentUnpackedArrays(t *testing.T) {
	in := NewInterner()
	bi := in.Builtins()
	a := in.Intern(MakeFixedUnpackedArray(bi.Int, 4))
	b := in.Intern(MakeFixedUnpackedArray(bi.Int, 4))
	c := in.Intern(MakeFixedUnpackedArray(bi.Int, 5))
	if !in.IsEquivalent(a, b) {
		t.Error("same-size same-element fixed arrays must be equivalent")
	}
	if in.IsEquivalent(a, c) {
		t.Error("different-size fixed arrays must not be equivalent")
	}
	d := in.Intern(MakeDynamicArray(bi.Int))
	e := in.Intern(MakeDynamicArray(bi.Int))
	if !in.IsEquivalent(d, e) {
		t.Error("dynamic arrays of equivalent elements must be equivalent")
	}
}

func TestAssignmentCompatibility(t *testing.T) {
	in := NewInterner()
	bi := in.Builtins()
	if !in.IsAssignmentCompatible(bi.Real, bi.Int) {
		t.Error("int assigns to real")
	}
	if !in.IsAssignmentCompatible(bi.Int, bi.Real) {
		t.Error("real assigns to int")
	}
	if !in.IsAssignmentCompatible(bi.CHandle, bi.Null) {
		t.Error("null assigns to chandle")
	}
	if !in.IsAssignmentCompatible(bi.Event, bi.Null) {
		t.Error("null assigns to event")
	}
	if in.IsAssignmentCompatible(bi.String, bi.Int) {
		t.Error("int does not assign to string without a cast")
	}
}

func TestCastCompatibility(t *testing.T) {
	in := NewInterner()
	bi := in.Builtins()
	enum := in.RegisterEnum("color_t", source.Span{}, bi.Int, []EnumMember{
		{Name: "RED", Value: 0}, {Name: "GREEN", Value: 1},
	})
	if in.IsAssignmentCompatible(enum, bi.Int) {
		t.Error("int needs a cast to become an enum")
	}
	if !in.IsCastCompatible(enum, bi.Int) {
		t.Error("int casts to enum")
	}
	if !in.IsCastCompatible(bi.Int, bi.String) {
		t.Error("string casts to integral")
	}
}

func TestAliasTransparency(t *testing.T) {
	in := NewInterner()
	bi := in.Builtins()
	alias := in.RegisterAlias("word_t", source.Span{})
	in.SetAliasTarget(alias, bi.Int)

	if !in.IsMatching(alias, bi.Int) {
		t.Error("an alias must match its target")
	}
	if !in.IsEquivalent(alias, bi.Int) || !in.IsAssignmentCompatible(alias, bi.Int) {
		t.Error("relations must look through aliases")
	}

	second := in.RegisterAlias("dword_t", source.Span{})
	in.SetAliasTarget(second, alias)
	if !in.IsMatching(second, bi.Int) {
		t.Error("alias chains must resolve transitively")
	}
}

func TestNominalStructIdentity(t *testing.T) {
	in := NewInterner()
	bi := in.Builtins()
	fields := []StructField{{Name: "a", Type: bi.Int}, {Name: "b", Type: bi.Logic}}
	s1 := in.RegisterPackedStruct("s1", source.Span{}, fields)
	s2 := in.RegisterPackedStruct("s2", source.Span{}, fields)
	if in.IsMatching(s1, s2) {
		t.Error("independently declared structs are distinct types even with identical fields")
	}
	if !in.IsMatching(s1, s1) {
		t.Error("a struct matches itself")
	}
}

func TestClassUpcast(t *testing.T) {
	in := NewInterner()
	base := in.RegisterClass(ClassInfo{Name: "base"})
	derived := in.RegisterClass(ClassInfo{Name: "derived", Base: base})
	if !in.IsAssignmentCompatible(base, derived) {
		t.Error("derived handle assigns to base handle")
	}
	if in.IsAssignmentCompatible(derived, base) {
		t.Error("base handle does not assign to derived handle")
	}
	if !in.IsAssignmentCompatible(base, in.Builtins().Null) {
		t.Error("null assigns to any class handle")
	}
}

func TestBitsComputation(t *testing.T) {
	in := NewInterner()
	bi := in.Builtins()
	arr := in.Intern(MakePackedArray(in.Intern(MakeIntegral(SubLogic, 8, false, true)), 3, 0))
	bits, err := in.Bits(arr)
	if err != nil {
		t.Fatalf("Bits: %v", err)
	}
	if bits != 32 {
		t.Errorf("logic[7:0][3:0] packed width = %d, want 32", bits)
	}

	s := in.RegisterPackedStruct("", source.Span{}, []StructField{
		{Name: "hi", Type: in.Intern(MakeIntegral(SubLogic, 8, false, true))},
		{Name: "lo", Type: in.Intern(MakeIntegral(SubLogic, 24, false, true))},
	})
	bits, err = in.Bits(s)
	if err != nil {
		t.Fatalf("Bits(struct): %v", err)
	}
	if bits != 32 {
		t.Errorf("packed struct width = %d, want 32", bits)
	}

	if _, err := in.Bits(bi.String); err == nil {
		t.Error("string has no packed width")
	}
}
