package types

import "fmt"

// BitsError reports a packed type whose width can't be computed: a cyclic
// typedef chain, or a request against a type family with no fixed bit
// width (dynamic array, queue, class, ...).
type BitsError struct {
	Type  TypeID
	Cycle []TypeID // non-nil only for a cyclic alias chain
}

func (e *BitsError) Error() string {
	if len(e.Cycle) > 0 {
		return fmt.Sprintf("types: cyclic typedef chain computing bit width of type %d", e.Type)
	}
	return fmt.Sprintf("types: type %d has no fixed bit width", e.Type)
}

// Bits computes a packed type's total bit width ($bits(), and any constant
// folding, and any packed-array/struct/union element spacing the binder
// needs). Only the packed type families and the floating types carry a
// fixed width; unpacked arrays, classes, and the scalar reference/handle
// singletons do not and report a BitsError.
func (in *Interner) Bits(id TypeID) (int64, error) {
	return in.bitsOf(id, nil)
}

func (in *Interner) bitsOf(id TypeID, stack []TypeID) (int64, error) {
	id = in.Resolve(id)
	for _, s := range stack {
		if s == id {
			cycle := append(append([]TypeID(nil), stack...), id)
			return 0, &BitsError{Type: id, Cycle: cycle}
		}
	}
	stack = append(stack, id)

	t, ok := in.Lookup(id)
	if !ok {
		return 0, &BitsError{Type: id}
	}
	switch t.Kind {
	case KindIntegral:
		return int64(t.Width), nil
	case KindFloating:
		return int64(t.Width), nil
	case KindPackedArray:
		elemBits, err := in.bitsOf(t.Elem, stack)
		if err != nil {
			return 0, err
		}
		return elemBits * int64(packedDimLen(t.Left, t.Right)), nil
	case KindEnum:
		info, ok := in.EnumInfo(id)
		if !ok {
			return 0, &BitsError{Type: id}
		}
		return in.bitsOf(info.Base, stack)
	case KindPackedStruct, KindPackedUnion:
		info, ok := in.StructInfo(id)
		if !ok {
			return 0, &BitsError{Type: id}
		}
		if t.Kind == KindPackedUnion {
			var maxBits int64
			for _, f := range info.Fields {
				b, err := in.bitsOf(f.Type, stack)
				if err != nil {
					return 0, err
				}
				if b > maxBits {
					maxBits = b
				}
			}
			return maxBits, nil
		}
		var total int64
		for _, f := range info.Fields {
			b, err := in.bitsOf(f.Type, stack)
			if err != nil {
				return 0, err
			}
			total += b
		}
		return total, nil
	default:
		return 0, &BitsError{Type: id}
	}
}

func packedDimLen(left, right int32) int32 {
	if left >= right {
		return left - right + 1
	}
	return right - left + 1
}
