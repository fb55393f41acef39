// Package svint implements the four-state arbitrary-precision integer value
// that underlies constant evaluation and elaboration throughout the front
// end: bit width, signedness, and a pair of words (value and
// unknown) encoding per-bit 0/1/X/Z.
package svint

import (
	"svlang/internal/bignum"
)

// SVInt is a four-state integer of a fixed bit width. A bit's state is
// determined by the corresponding pair of bits in Value and Unknown:
//
//	Unknown=0, Value=0 -> 0
//	Unknown=0, Value=1 -> 1
//	Unknown=1, Value=0 -> X
//	Unknown=1, Value=1 -> Z
//
// Both words are always masked so that bits at index >= Width are zero; a
// value is two-state iff Unknown is entirely zero.
type SVInt struct {
	Value   bignum.BigUint
	Unknown bignum.BigUint
	Width   uint32
	Signed  bool
}

// Zero returns the two-state zero value of the given width.
func Zero(width uint32, signed bool) SVInt {
	return SVInt{Width: width, Signed: signed}
}

// FromUint64 builds a two-state value from a uint64, masked to width.
func FromUint64(v uint64, width uint32, signed bool) SVInt {
	return mask(SVInt{Value: bignum.UintFromUint64(v), Width: width, Signed: signed})
}

// FromInt64 builds a two-state signed value from an int64, masked to width
// using two's complement.
func FromInt64(v int64, width uint32) SVInt {
	if v >= 0 {
		return FromUint64(uint64(v), width, true)
	}
	// two's complement of a negative v at `width` bits is (2^width - |v|).
	pow2, _ := bignum.UintAddSmall(onesMask(width), 1)
	mag := bignum.UintFromUint64(uint64(-v))
	diff, _ := bignum.UintSub(pow2, mag)
	return mask(SVInt{Value: diff, Width: width, Signed: true})
}

// FromUnbasedUnsized expands an unsized literal bit ('0,'1,'x,'z) to width
// copies of that single four-state bit.
func FromUnbasedUnsized(text string, width uint32) SVInt {
	var v, u bool
	switch text {
	case "0":
		v, u = false, false
	case "1":
		v, u = true, false
	case "x", "X":
		v, u = false, true
	case "z", "Z":
		v, u = true, true
	}
	r := SVInt{Width: width}
	if v {
		r.Value = onesMask(width)
	}
	if u {
		r.Unknown = onesMask(width)
	}
	return mask(r)
}

// IsUnknown reports whether any bit of the value is X or Z.
func (v SVInt) IsUnknown() bool {
	return !v.Unknown.IsZero()
}

// IsError reports whether v represents the sentinel error value (width 0).
func (v SVInt) IsError() bool { return v.Width == 0 }

// Error is the sentinel four-state value substituted when evaluation fails
// (division by zero aside, which yields all-X of the original width).
var Error = SVInt{}

// onesMask returns a BigUint with exactly the low `width` bits set.
func onesMask(width uint32) bignum.BigUint {
	if width == 0 {
		return bignum.UintZero()
	}
	nLimbs := (width + 31) / 32
	limbs := make([]uint32, nLimbs)
	for i := range limbs {
		limbs[i] = 0xFFFFFFFF
	}
	rem := width % 32
	if rem != 0 {
		limbs[nLimbs-1] = (1 << rem) - 1
	}
	return bignum.BigUint{Limbs: limbs}
}

// maskWord clears bits at index >= width.
func maskWord(u bignum.BigUint, width uint32) bignum.BigUint {
	if width == 0 {
		return bignum.UintZero()
	}
	nLimbs := (width + 31) / 32
	limbs := make([]uint32, 0, nLimbs)
	for i, l := range u.Limbs {
		if uint32(i) >= nLimbs {
			break
		}
		limbs = append(limbs, l)
	}
	for len(limbs) < int(nLimbs) {
		limbs = append(limbs, 0)
	}
	rem := width % 32
	if rem != 0 && len(limbs) > 0 {
		limbs[len(limbs)-1] &= (1 << rem) - 1
	}
	return bignum.BigUint{Limbs: trimTrailingZeroLimbs(limbs)}
}

func trimTrailingZeroLimbs(limbs []uint32) []uint32 {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

// mask clears Value/Unknown bits beyond Width, and folds any bit that is
// simultaneously flagged X-pattern impossible combos (there are none; the
// two words are independent) — it exists purely to normalize width.
func mask(v SVInt) SVInt {
	v.Value = maskWord(v.Value, v.Width)
	v.Unknown = maskWord(v.Unknown, v.Width)
	return v
}

// WithWidth returns v zero/sign/X-extended or truncated to the new width.
// Extension of a signed value replicates its sign bit (which may itself be
// X or Z, per the standard's four-state extension rule); extension of an
// unsigned value pads with known zero.
func (v SVInt) WithWidth(width uint32) SVInt {
	if width == v.Width {
		return v
	}
	if width < v.Width {
		return mask(SVInt{Value: v.Value, Unknown: v.Unknown, Width: width, Signed: v.Signed})
	}
	// extension
	out := SVInt{Width: width, Signed: v.Signed}
	out.Value = v.Value
	out.Unknown = v.Unknown
	if v.Width == 0 {
		return mask(out)
	}
	signBit := v.bitAt(v.Width - 1)
	if v.Signed && signBit != bit0 {
		fill := onesMask(width - v.Width)
		hi, _ := bignum.UintShl(fill, int(v.Width))
		switch signBit {
		case bit1:
			out.Value = bignum.UintOr(out.Value, hi)
		case bitX:
			out.Unknown = bignum.UintOr(out.Unknown, hi)
		case bitZ:
			out.Value = bignum.UintOr(out.Value, hi)
			out.Unknown = bignum.UintOr(out.Unknown, hi)
		}
	}
	return mask(out)
}

// Bit is a single four-state digit.
type Bit uint8

const (
	bit0 Bit = iota
	bit1
	bitX
	bitZ
)

func (v SVInt) bitAt(i uint32) Bit {
	val := limbBit(v.Value, i)
	unk := limbBit(v.Unknown, i)
	switch {
	case !unk && !val:
		return bit0
	case !unk && val:
		return bit1
	case unk && !val:
		return bitX
	default:
		return bitZ
	}
}

func limbBit(u bignum.BigUint, i uint32) bool {
	limb := i / 32
	if int(limb) >= len(u.Limbs) {
		return false
	}
	return u.Limbs[limb]&(1<<(i%32)) != 0
}
