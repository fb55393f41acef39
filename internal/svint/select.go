package svint

// Extract returns width bits of v starting at bit lo (LSB-indexed), the
// primitive behind bit-selects and part-selects. Bits addressed past v's
// width read as X, matching out-of-range select semantics.
func Extract(v SVInt, lo int64, width uint32) SVInt {
	out := SVInt{Width: width}
	for i := uint32(0); i < width; i++ {
		pos := lo + int64(i)
		if pos < 0 || pos >= int64(v.Width) {
			setBit(&out, i, bitX)
			continue
		}
		setBit(&out, i, v.bitAt(uint32(pos)))
	}
	return mask(out)
}

// BitSelect returns the single bit at index i as a 1-bit value.
func BitSelect(v SVInt, i int64) SVInt { return Extract(v, i, 1) }

// ReduceAnd, ReduceOr, ReduceXor implement the unary reduction operators,
// folding every bit of the operand into one four-state bit.
func ReduceAnd(v SVInt) SVInt { return reduceBits(v, bit1, andBit) }
func ReduceOr(v SVInt) SVInt  { return reduceBits(v, bit0, orBit) }
func ReduceXor(v SVInt) SVInt { return reduceBits(v, bit0, xorBit) }

func reduceBits(v SVInt, unit Bit, op func(Bit, Bit) Bit) SVInt {
	acc := unit
	for i := uint32(0); i < v.Width; i++ {
		acc = op(acc, v.bitAt(i))
	}
	out := SVInt{Width: 1}
	setBit(&out, 0, acc)
	return mask(out)
}

// Int64 decodes a known value into an int64 honoring two's-complement
// signedness; ok is false if any bit is unknown or the value does not fit.
func (v SVInt) Int64() (int64, bool) {
	if v.IsUnknown() {
		return 0, false
	}
	return v.toBigInt().Int64()
}

// Uint64 decodes a known value into a uint64; ok is false if any bit is
// unknown, the value is negative under signed interpretation, or it does
// not fit.
func (v SVInt) Uint64() (uint64, bool) {
	if v.IsUnknown() {
		return 0, false
	}
	if v.Signed && v.Width > 0 && v.bitAt(v.Width-1) == bit1 {
		return 0, false
	}
	return v.Value.Uint64()
}

// IsZero reports whether every bit is a known 0.
func (v SVInt) IsZero() bool {
	return v.Value.IsZero() && v.Unknown.IsZero()
}

// TruthState classifies the value as a condition: 1 if any bit is a known
// one, 0 if all bits are known zero, and unknown otherwise.
type TruthState uint8

const (
	TruthFalse TruthState = iota
	TruthTrue
	TruthUnknown
)

func (v SVInt) Truth() TruthState {
	switch truthBit(v) {
	case bit1:
		return TruthTrue
	case bit0:
		return TruthFalse
	default:
		return TruthUnknown
	}
}

// Pow computes a ** b at a's width with SystemVerilog integer power
// semantics: any unknown operand gives all-X; a negative exponent gives 1
// for base 1, 1 or -1 (by exponent parity) for base -1, all-X for base 0,
// and 0 for any other base.
func Pow(a, b SVInt) SVInt {
	if a.IsUnknown() || b.IsUnknown() {
		return allX(a.Width, a.Signed)
	}
	exp, expOK := b.Int64()
	if !expOK {
		return allX(a.Width, a.Signed)
	}
	if exp < 0 {
		base, ok := a.Int64()
		if !ok {
			return allX(a.Width, a.Signed)
		}
		switch base {
		case 1:
			return FromInt64(1, a.Width)
		case -1:
			if exp%2 == 0 {
				return FromInt64(1, a.Width)
			}
			return FromInt64(-1, a.Width)
		case 0:
			return allX(a.Width, a.Signed)
		default:
			return Zero(a.Width, a.Signed)
		}
	}
	result := FromUint64(1, a.Width, a.Signed)
	for i := int64(0); i < exp; i++ {
		result = Mul(result, a)
		if result.IsZero() {
			break
		}
	}
	return result
}
