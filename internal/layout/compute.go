package layout

import (
	"svlang/internal/types"
)

func (e *LayoutEngine) computeLayout(id types.TypeID, state *layoutState) (TypeLayout, *LayoutError) {
	tt, ok := e.Types.Lookup(id)
	if !ok {
		return TypeLayout{}, &LayoutError{Kind: LayoutErrNotPacked, Type: id}
	}

	switch tt.Kind {
	case types.KindIntegral:
		return TypeLayout{Bits: int64(tt.Width)}, nil

	case types.KindPackedArray:
		elem, err := e.layoutOf(tt.Elem, state)
		if err != nil {
			return TypeLayout{}, err
		}
		length := int64(tt.Left - tt.Right)
		if length < 0 {
			length = -length
		}
		length++
		return TypeLayout{Bits: elem.Bits * length}, nil

	case types.KindPackedStruct:
		info, found := e.Types.StructInfo(id)
		if !found {
			return TypeLayout{}, &LayoutError{Kind: LayoutErrNotPacked, Type: id}
		}
		widths := make([]int64, len(info.Fields))
		total := int64(0)
		for i, f := range info.Fields {
			fl, err := e.layoutOf(f.Type, state)
			if err != nil {
				return TypeLayout{}, err
			}
			widths[i] = fl.Bits
			total += fl.Bits
		}
		// First-declared field sits in the most significant bits, so
		// offsets accumulate from the end of the field list.
		offsets := make([]int64, len(widths))
		off := int64(0)
		for i := len(widths) - 1; i >= 0; i-- {
			offsets[i] = off
			off += widths[i]
		}
		return TypeLayout{Bits: total, FieldOffsets: offsets}, nil

	case types.KindPackedUnion:
		info, found := e.Types.StructInfo(id)
		if !found {
			return TypeLayout{}, &LayoutError{Kind: LayoutErrNotPacked, Type: id}
		}
		max := int64(0)
		offsets := make([]int64, len(info.Fields))
		for i, f := range info.Fields {
			fl, err := e.layoutOf(f.Type, state)
			if err != nil {
				return TypeLayout{}, err
			}
			if fl.Bits > max {
				max = fl.Bits
			}
			offsets[i] = 0
		}
		return TypeLayout{Bits: max, FieldOffsets: offsets}, nil

	case types.KindEnum:
		info, found := e.Types.EnumInfo(id)
		if !found {
			return TypeLayout{}, &LayoutError{Kind: LayoutErrNotPacked, Type: id}
		}
		return e.layoutOf(info.Base, state)

	default:
		return TypeLayout{}, &LayoutError{Kind: LayoutErrNotPacked, Type: id}
	}
}
