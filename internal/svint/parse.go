package svint

import (
	"strconv"
	"strings"

	"svlang/internal/bignum"
	"svlang/internal/token"
)

// FromNumber builds the four-state value of an integer literal from its
// staged parse. Plain decimal literals are 32-bit signed two-state; based
// literals are unsigned 32-bit unless the literal carried an explicit
// <size>' prefix or an `s` flag. Unbased unsized literals come out at
// width 1 with their Unsized flag handled by the caller (the binder
// expands them to the context width, IEEE 1800 §5.7.1).
func FromNumber(n *token.Number) SVInt {
	if n == nil {
		return Error
	}
	if n.Unsized {
		return FromUnbasedUnsized(n.Digits, 1)
	}
	width := uint32(32)
	signed := false
	switch {
	case n.HasSize:
		if n.Size == 0 || n.OutOfRange {
			return Error
		}
		width = n.Size
		signed = n.Signed
	case n.Base == token.BaseNone:
		signed = true
	default:
		signed = n.Signed
	}
	return FromDigits(n.Base, n.Digits, width, signed)
}

// FromDigits assembles a value of the given width from a vector-digit run
// in the given base. Four-state digits x/z/? are accepted in binary,
// octal, and hex; a decimal literal accepts x or z only as a whole-value
// filler.
func FromDigits(base token.NumberBase, digits string, width uint32, signed bool) SVInt {
	switch base {
	case token.BaseNone, token.BaseDec:
		return fromDecimalDigits(digits, width, signed)
	case token.BaseBin:
		return fromVectorDigits(digits, 1, width, signed)
	case token.BaseOct:
		return fromVectorDigits(digits, 3, width, signed)
	case token.BaseHex:
		return fromVectorDigits(digits, 4, width, signed)
	default:
		return Error
	}
}

func fromDecimalDigits(digits string, width uint32, signed bool) SVInt {
	clean := strings.ReplaceAll(digits, "_", "")
	switch strings.ToLower(clean) {
	case "x":
		return SVInt{Width: width, Signed: signed, Unknown: onesMask(width)}
	case "z", "?":
		return SVInt{Width: width, Signed: signed, Value: onesMask(width), Unknown: onesMask(width)}
	}
	acc := bignum.UintZero()
	for _, ch := range clean {
		if ch < '0' || ch > '9' {
			return Error
		}
		var err error
		acc, err = bignum.UintMulSmall(acc, 10)
		if err != nil {
			return Error
		}
		acc, err = bignum.UintAddSmall(acc, uint32(ch-'0'))
		if err != nil {
			return Error
		}
	}
	return mask(SVInt{Value: acc, Width: width, Signed: signed})
}

func fromVectorDigits(digits string, bitsPerDigit uint32, width uint32, signed bool) SVInt {
	value := bignum.UintZero()
	unknown := bignum.UintZero()
	digitMask := bignum.UintFromUint32((1 << bitsPerDigit) - 1)
	for _, ch := range digits {
		if ch == '_' {
			continue
		}
		var dv, du bignum.BigUint
		switch {
		case ch == 'x' || ch == 'X':
			du = digitMask
		case ch == 'z' || ch == 'Z' || ch == '?':
			dv, du = digitMask, digitMask
		default:
			d, ok := hexDigit(ch)
			if !ok || d >= (1<<bitsPerDigit) {
				return Error
			}
			dv = bignum.UintFromUint32(d)
		}
		var err error
		if value, err = bignum.UintShl(value, int(bitsPerDigit)); err != nil {
			return Error
		}
		if unknown, err = bignum.UintShl(unknown, int(bitsPerDigit)); err != nil {
			return Error
		}
		if value, err = bignum.UintAdd(value, dv); err != nil {
			return Error
		}
		if unknown, err = bignum.UintAdd(unknown, du); err != nil {
			return Error
		}
	}
	return mask(SVInt{Value: value, Unknown: unknown, Width: width, Signed: signed})
}

func hexDigit(ch rune) (uint32, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return uint32(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return uint32(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return uint32(ch-'A') + 10, true
	}
	return 0, false
}

// Parse is the inverse of String: it reads the canonical
// `<width>'<s?><base><digits>` form. Any of the
// four bases is accepted even though String always emits binary.
func Parse(text string) (SVInt, bool) {
	tick := strings.IndexByte(text, '\'')
	if tick <= 0 {
		return Error, false
	}
	w, err := strconv.ParseUint(text[:tick], 10, 32)
	if err != nil || w == 0 {
		return Error, false
	}
	rest := text[tick+1:]
	signed := false
	if len(rest) > 0 && (rest[0] == 's' || rest[0] == 'S') {
		signed = true
		rest = rest[1:]
	}
	if len(rest) < 2 {
		return Error, false
	}
	var base token.NumberBase
	switch rest[0] {
	case 'b', 'B':
		base = token.BaseBin
	case 'o', 'O':
		base = token.BaseOct
	case 'd', 'D':
		base = token.BaseDec
	case 'h', 'H':
		base = token.BaseHex
	default:
		return Error, false
	}
	v := FromDigits(base, rest[1:], uint32(w), signed)
	if v.IsError() {
		return Error, false
	}
	return v, true
}

// ExactEqual reports bit-exact four-state equality including width and
// signedness, the relation round-trip tests check.
func ExactEqual(a, b SVInt) bool {
	return a.Width == b.Width && a.Signed == b.Signed &&
		a.Value.Cmp(b.Value) == 0 && a.Unknown.Cmp(b.Unknown) == 0
}
