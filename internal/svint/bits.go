package svint

import "svlang/internal/bignum"

// Concat lays out operands MSB-first: the first operand occupies the
// highest bits of the result. Result width is the sum of operand widths.
func Concat(parts ...SVInt) SVInt {
	total := uint32(0)
	for _, p := range parts {
		total += p.Width
	}
	out := SVInt{Width: total}
	shift := total
	for _, p := range parts {
		shift -= p.Width
		if p.Width == 0 {
			continue
		}
		v, _ := bignum.UintShl(p.Value, int(shift))
		u, _ := bignum.UintShl(p.Unknown, int(shift))
		out.Value = bignum.UintOr(out.Value, v)
		out.Unknown = bignum.UintOr(out.Unknown, u)
	}
	return mask(out)
}

// Replicate repeats v exactly n times, concatenated MSB-first. n must be a
// non-negative constant; n == 0 yields a legal zero-width value.
func Replicate(v SVInt, n int) SVInt {
	if n <= 0 {
		return SVInt{Width: 0}
	}
	parts := make([]SVInt, n)
	for i := range parts {
		parts[i] = v
	}
	return Concat(parts...)
}

// Shl is a logical left shift; vacated low bits fill with 0.
func Shl(v SVInt, amount uint32) SVInt {
	if amount >= v.Width {
		return SVInt{Width: v.Width, Signed: v.Signed}
	}
	val, _ := bignum.UintShl(v.Value, int(amount))
	unk, _ := bignum.UintShl(v.Unknown, int(amount))
	return mask(SVInt{Value: val, Unknown: unk, Width: v.Width, Signed: v.Signed})
}

// Shr is a logical right shift; vacated high bits fill with 0.
func Shr(v SVInt, amount uint32) SVInt {
	if amount >= v.Width {
		return SVInt{Width: v.Width, Signed: v.Signed}
	}
	val, _ := bignum.UintShr(v.Value, int(amount))
	unk, _ := bignum.UintShr(v.Unknown, int(amount))
	return mask(SVInt{Value: val, Unknown: unk, Width: v.Width, Signed: v.Signed})
}

// Ashr is an arithmetic right shift: for a signed operand, vacated high
// bits are filled by replicating the original sign bit (which may be X/Z);
// for an unsigned operand it behaves identically to Shr.
func Ashr(v SVInt, amount uint32) SVInt {
	if !v.Signed {
		return Shr(v, amount)
	}
	if v.Width == 0 {
		return v
	}
	sign := v.bitAt(v.Width - 1)
	shifted := Shr(v, amount)
	if amount >= v.Width {
		amount = v.Width
	}
	fillWidth := amount
	if fillWidth == 0 {
		return shifted
	}
	fillShift := v.Width - fillWidth
	fill := onesMask(fillWidth)
	hiMask, _ := bignum.UintShl(fill, int(fillShift))
	switch sign {
	case bit1:
		shifted.Value = bignum.UintOr(shifted.Value, hiMask)
	case bitX:
		shifted.Unknown = bignum.UintOr(shifted.Unknown, hiMask)
	case bitZ:
		shifted.Value = bignum.UintOr(shifted.Value, hiMask)
		shifted.Unknown = bignum.UintOr(shifted.Unknown, hiMask)
	}
	return mask(shifted)
}

// And, Or, Xor, Not implement four-state bitwise logic per bit:
//
//	known & known  -> normal boolean op
//	anything with X/Z involved follows the standard's truth tables, which
//	for AND/OR reduce to the non-absorbing-unknown cases and otherwise X.
func And(a, b SVInt) SVInt { return bitwise(a, b, andBit) }
func Or(a, b SVInt) SVInt  { return bitwise(a, b, orBit) }
func Xor(a, b SVInt) SVInt { return bitwise(a, b, xorBit) }

func andBit(x, y Bit) Bit {
	if x == bit0 || y == bit0 {
		return bit0
	}
	if x == bit1 && y == bit1 {
		return bit1
	}
	return bitX
}

func orBit(x, y Bit) Bit {
	if x == bit1 || y == bit1 {
		return bit1
	}
	if x == bit0 && y == bit0 {
		return bit0
	}
	return bitX
}

func xorBit(x, y Bit) Bit {
	if isUnknownBit(x) || isUnknownBit(y) {
		return bitX
	}
	if x == y {
		return bit0
	}
	return bit1
}

func isUnknownBit(b Bit) bool { return b == bitX || b == bitZ }

func bitwise(a, b SVInt, op func(Bit, Bit) Bit) SVInt {
	width := a.Width
	if b.Width > width {
		width = b.Width
	}
	a = a.WithWidth(width)
	b = b.WithWidth(width)
	out := SVInt{Width: width, Signed: a.Signed && b.Signed}
	for i := uint32(0); i < width; i++ {
		r := op(a.bitAt(i), b.bitAt(i))
		setBit(&out, i, r)
	}
	return mask(out)
}

func setBit(v *SVInt, i uint32, b Bit) {
	limb := i / 32
	off := i % 32
	for uint32(len(v.Value.Limbs)) <= limb {
		v.Value.Limbs = append(v.Value.Limbs, 0)
	}
	for uint32(len(v.Unknown.Limbs)) <= limb {
		v.Unknown.Limbs = append(v.Unknown.Limbs, 0)
	}
	switch b {
	case bit0:
	case bit1:
		v.Value.Limbs[limb] |= 1 << off
	case bitX:
		v.Unknown.Limbs[limb] |= 1 << off
	case bitZ:
		v.Value.Limbs[limb] |= 1 << off
		v.Unknown.Limbs[limb] |= 1 << off
	}
}

// Not is bitwise negation: 0<->1, X and Z both yield X.
func Not(a SVInt) SVInt {
	out := SVInt{Width: a.Width, Signed: a.Signed}
	for i := uint32(0); i < a.Width; i++ {
		b := a.bitAt(i)
		var r Bit
		switch b {
		case bit0:
			r = bit1
		case bit1:
			r = bit0
		default:
			r = bitX
		}
		setBit(&out, i, r)
	}
	return mask(out)
}

// Merge implements the bitwise merge used when a conditional's condition is
// unknown: bits that agree between t and f keep their value, bits that
// disagree become X.
func Merge(t, f SVInt) SVInt {
	width := t.Width
	if f.Width > width {
		width = f.Width
	}
	t = t.WithWidth(width)
	f = f.WithWidth(width)
	out := SVInt{Width: width, Signed: t.Signed && f.Signed}
	for i := uint32(0); i < width; i++ {
		tb, fb := t.bitAt(i), f.bitAt(i)
		if tb == fb {
			setBit(&out, i, tb)
		} else {
			setBit(&out, i, bitX)
		}
	}
	return mask(out)
}
