package svint

import (
	"fmt"
	"strings"
)

// String renders the canonical textual form `<width>'<s?><base><digits>`
// used for diagnostics and round-trip tests. Base
// is always binary so every four-state digit is representable losslessly.
func (v SVInt) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d'", v.Width)
	if v.Signed {
		sb.WriteByte('s')
	}
	sb.WriteByte('b')
	if v.Width == 0 {
		return sb.String()
	}
	for i := int(v.Width) - 1; i >= 0; i-- {
		switch v.bitAt(uint32(i)) {
		case bit0:
			sb.WriteByte('0')
		case bit1:
			sb.WriteByte('1')
		case bitX:
			sb.WriteByte('x')
		case bitZ:
			sb.WriteByte('z')
		}
	}
	return sb.String()
}

// Digits renders just the bit string (no width/base prefix), MSB first.
func (v SVInt) Digits() string {
	s := v.String()
	if i := strings.IndexByte(s, 'b'); i >= 0 {
		return s[i+1:]
	}
	return s
}
