package svint

import "svlang/internal/bignum"

// toBigInt decodes the two's-complement value of a known (non-unknown)
// operand, honoring its signedness. Works at any width by carrying the
// magnitude's limbs directly, never routing through a fixed-size integer.
func (v SVInt) toBigInt() bignum.BigInt {
	if !v.Signed || v.Width == 0 || v.bitAt(v.Width-1) != bit1 {
		return bignum.BigInt{Limbs: v.Value.Limbs}
	}
	pow2, _ := bignum.UintAddSmall(onesMask(v.Width), 1)
	mag, _ := bignum.UintSub(pow2, v.Value)
	return bignum.BigInt{Neg: true, Limbs: mag.Limbs}
}

// relational implements <, <=, >, >= with four-state propagation: any
// unknown operand makes the comparison result itself unknown (a single X
// bit of a 1-bit value).
func relational(a, b SVInt, cmp func(int) bool) SVInt {
	if a.IsUnknown() || b.IsUnknown() {
		return allX(1, false)
	}
	var c int
	if a.Signed && b.Signed {
		c = a.toBigInt().Cmp(b.toBigInt())
	} else {
		c = a.Value.Cmp(b.Value)
	}
	return boolBit(cmp(c))
}

func Lt(a, b SVInt) SVInt { return relational(a, b, func(c int) bool { return c < 0 }) }
func Le(a, b SVInt) SVInt { return relational(a, b, func(c int) bool { return c <= 0 }) }
func Gt(a, b SVInt) SVInt { return relational(a, b, func(c int) bool { return c > 0 }) }
func Ge(a, b SVInt) SVInt { return relational(a, b, func(c int) bool { return c >= 0 }) }

func boolBit(b bool) SVInt {
	if b {
		return FromUint64(1, 1, false)
	}
	return Zero(1, false)
}

// LogicalEq implements == / !=: any unknown operand propagates X; known
// operands compare structurally after width-equalizing.
func LogicalEq(a, b SVInt, negate bool) SVInt {
	width := a.Width
	if b.Width > width {
		width = b.Width
	}
	a, b = a.WithWidth(width), b.WithWidth(width)
	if a.IsUnknown() || b.IsUnknown() {
		return allX(1, false)
	}
	eq := a.Value.Cmp(b.Value) == 0
	if negate {
		eq = !eq
	}
	return boolBit(eq)
}

// CaseEq implements === / !==: bit-exact comparison over all four states,
// result is always two-state.
func CaseEq(a, b SVInt, negate bool) SVInt {
	width := a.Width
	if b.Width > width {
		width = b.Width
	}
	a, b = a.WithWidth(width), b.WithWidth(width)
	eq := a.Value.Cmp(b.Value) == 0 && a.Unknown.Cmp(b.Unknown) == 0
	if negate {
		eq = !eq
	}
	return boolBit(eq)
}

// WildcardEq implements ==? / !=?: bit positions holding X or Z in either
// operand compare as don't-care; every remaining position must match
// exactly, and the result is always two-state ({1'bx, 4'b1001} ==?
// 5'b11001 is 1).
func WildcardEq(a, b SVInt, negate bool) SVInt {
	width := a.Width
	if b.Width > width {
		width = b.Width
	}
	a, b = a.WithWidth(width), b.WithWidth(width)
	result := true
	for i := uint32(0); i < width; i++ {
		bb := b.bitAt(i)
		ab := a.bitAt(i)
		if isUnknownBit(bb) || isUnknownBit(ab) {
			continue
		}
		if ab != bb {
			result = false
		}
	}
	if negate {
		result = !result
	}
	return boolBit(result)
}

// LogicalNot, LogicalAnd, LogicalOr implement !, &&, || by reducing each
// operand to a single truth bit first (0 if all bits are 0, 1 if any bit is
// known 1, X otherwise), then combining per the four-state truth tables
// used for bitwise AND/OR on 1-bit operands.
func LogicalNot(a SVInt) SVInt {
	t := truthBit(a)
	switch t {
	case bit0:
		return boolBit(true)
	case bit1:
		return boolBit(false)
	default:
		return allX(1, false)
	}
}

func LogicalAnd(a, b SVInt) SVInt { return And(reduce1(a), reduce1(b)) }
func LogicalOr(a, b SVInt) SVInt  { return Or(reduce1(a), reduce1(b)) }

func reduce1(a SVInt) SVInt {
	out := SVInt{Width: 1}
	setBit(&out, 0, truthBit(a))
	return mask(out)
}

func truthBit(a SVInt) Bit {
	anyKnown1 := false
	anyUnknown := false
	for i := uint32(0); i < a.Width; i++ {
		switch a.bitAt(i) {
		case bit1:
			anyKnown1 = true
		case bitX, bitZ:
			anyUnknown = true
		}
	}
	switch {
	case anyKnown1:
		return bit1
	case anyUnknown:
		return bitX
	default:
		return bit0
	}
}
