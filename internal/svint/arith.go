package svint

import "svlang/internal/bignum"

// allX returns an unknown value of the given width (every bit X), used as
// the result of any arithmetic/relational/logical op touching an unknown
// operand, and as the defined result of division or modulo by zero.
func allX(width uint32, signed bool) SVInt {
	return mask(SVInt{Unknown: onesMask(width), Width: width, Signed: signed})
}

// Add, Sub, Mul operate on operands the binder has already widened to a
// common effective width; the evaluator asserts equal widths rather than
// re-widening.
func Add(a, b SVInt) SVInt { return arith(a, b, bignum.UintAdd) }
func Sub(a, b SVInt) SVInt { return arith(a, b, bignum.UintSub) }
func Mul(a, b SVInt) SVInt { return arith(a, b, bignum.UintMul) }

func arith(a, b SVInt, op func(bignum.BigUint, bignum.BigUint) (bignum.BigUint, error)) SVInt {
	width := a.Width
	if a.IsUnknown() || b.IsUnknown() {
		return allX(width, a.Signed && b.Signed)
	}
	v, err := op(a.Value, b.Value)
	if err != nil {
		// Sub underflow: wrap modulo 2^width, matching two's-complement
		// arithmetic on a fixed-width register.
		pow2, _ := bignum.UintAddSmall(onesMask(width), 1)
		biased, _ := bignum.UintAdd(a.Value, pow2)
		v, _ = bignum.UintSub(biased, b.Value)
	}
	return mask(SVInt{Value: v, Width: width, Signed: a.Signed && b.Signed})
}

// DivMod implements / and %; division or modulo by zero yields an all-X
// result of the dividend's width rather than an exception (IEEE 1800 §11.4.3).
// Signed operands divide by signed magnitude with truncation toward zero,
// the remainder taking the dividend's sign.
func DivMod(a, b SVInt) (q, r SVInt) {
	width := a.Width
	signed := a.Signed && b.Signed
	if a.IsUnknown() || b.IsUnknown() || b.Value.IsZero() {
		return allX(width, signed), allX(width, signed)
	}
	if signed {
		qi, ri, err := bignum.IntDivMod(a.toBigInt(), b.toBigInt())
		if err != nil {
			return allX(width, signed), allX(width, signed)
		}
		return fromBigInt(qi, width, signed), fromBigInt(ri, width, signed)
	}
	qv, rv, err := bignum.UintDivMod(a.Value, b.Value)
	if err != nil {
		return allX(width, signed), allX(width, signed)
	}
	return mask(SVInt{Value: qv, Width: width, Signed: signed}),
		mask(SVInt{Value: rv, Width: width, Signed: signed})
}

// fromBigInt re-encodes a signed-magnitude result as two's complement at
// the given width.
func fromBigInt(v bignum.BigInt, width uint32, signed bool) SVInt {
	mag := bignum.BigUint{Limbs: v.Limbs}
	if !v.Neg {
		return mask(SVInt{Value: mag, Width: width, Signed: signed})
	}
	pow2, _ := bignum.UintAddSmall(onesMask(width), 1)
	val, _ := bignum.UintSub(pow2, maskWord(mag, width))
	return mask(SVInt{Value: val, Width: width, Signed: signed})
}

// Neg computes two's-complement negation (0 - v) at the operand's width.
func Neg(v SVInt) SVInt {
	return Sub(Zero(v.Width, v.Signed), v)
}
