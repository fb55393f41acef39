package layout

import (
	"testing"

	"svlang/internal/source"
	"svlang/internal/types"
)

func TestIntegralAndPackedArrayBits(t *testing.T) {
	in := types.NewInterner()
	e := New(in)

	logic8 := in.Intern(types.MakeIntegral(types.SubLogic, 8, false, true))
	if bits, err := e.BitsOf(logic8); err != nil || bits != 8 {
		t.Errorf("logic[7:0] = %d bits (err %v), want 8", bits, err)
	}

	arr := in.Intern(types.MakePackedArray(logic8, 3, 0))
	if bits, err := e.BitsOf(arr); err != nil || bits != 32 {
		t.Errorf("logic[3:0][7:0] = %d bits (err %v), want 32", bits, err)
	}
}

func TestPackedStructFieldOffsets(t *testing.T) {
	in := types.NewInterner()
	e := New(in)

	logic8 := in.Intern(types.MakeIntegral(types.SubLogic, 8, false, true))
	logic24 := in.Intern(types.MakeIntegral(types.SubLogic, 24, false, true))
	s := in.RegisterPackedStruct("hdr_t", source.Span{}, []types.StructField{
		{Name: "hi", Type: logic8},
		{Name: "lo", Type: logic24},
	})

	l, err := e.LayoutOf(s)
	if err != nil {
		t.Fatalf("LayoutOf: %v", err)
	}
	if l.Bits != 32 {
		t.Errorf("total bits = %d, want 32", l.Bits)
	}
	// First-declared field occupies the MSBs: hi at offset 24, lo at 0.
	if len(l.FieldOffsets) != 2 || l.FieldOffsets[0] != 24 || l.FieldOffsets[1] != 0 {
		t.Errorf("field offsets = %v, want [24 0]", l.FieldOffsets)
	}
}

func TestPackedUnionIsWidthOfWidest(t *testing.T) {
	in := types.NewInterner()
	e := New(in)
	logic8 := in.Intern(types.MakeIntegral(types.SubLogic, 8, false, true))
	logic16 := in.Intern(types.MakeIntegral(types.SubLogic, 16, false, true))
	u := in.RegisterPackedUnion("u_t", source.Span{}, []types.StructField{
		{Name: "b", Type: logic8},
		{Name: "h", Type: logic16},
	}, false)

	l, err := e.LayoutOf(u)
	if err != nil {
		t.Fatalf("LayoutOf: %v", err)
	}
	if l.Bits != 16 {
		t.Errorf("union bits = %d, want 16", l.Bits)
	}
	if len(l.FieldOffsets) != 2 || l.FieldOffsets[0] != 0 || l.FieldOffsets[1] != 0 {
		t.Errorf("union field offsets = %v, want [0 0]", l.FieldOffsets)
	}
}

func TestUnpackedTypeHasNoLayout(t *testing.T) {
	in := types.NewInterner()
	e := New(in)
	if _, err := e.LayoutOf(in.Builtins().String); err == nil {
		t.Error("string must have no packed layout")
	}
	dyn := in.Intern(types.MakeDynamicArray(in.Builtins().Int))
	if _, err := e.LayoutOf(dyn); err == nil {
		t.Error("dynamic array must have no packed layout")
	}
}

func TestAliasCycleIsAnError(t *testing.T) {
	in := types.NewInterner()
	e := New(in)
	a := in.RegisterAlias("a_t", source.Span{})
	b := in.RegisterAlias("b_t", source.Span{})
	in.SetAliasTarget(a, b)
	in.SetAliasTarget(b, a)

	if _, err := e.LayoutOf(a); err == nil {
		t.Error("a typedef cycle must surface as an error, not loop")
	}
}
