package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/rangetable"
)

// identRunes merges the Unicode categories IEEE 1800 §5.6.1 permits past
// the ASCII fast path in non-escaped identifiers (letters and digits; '_'
// and '$' are handled separately since they're not covered by either
// category).
var identRunes = rangetable.Merge(unicode.Letter, unicode.Digit)

// ===== Rune access over Cursor =====

func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Classifiers =====

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9') || b == '$'
}
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.Is(identRunes, r)
}
func isIdentContinueRune(r rune) bool {
	return r == '_' || r == '$' || unicode.Is(identRunes, r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
func isOctal(b byte) bool { return b >= '0' && b <= '7' }
func isXZFiller(b byte) bool {
	return b == 'x' || b == 'X' || b == 'z' || b == 'Z' || b == '?'
}

// ===== Greedy sequence matchers =====

func (lx *Lexer) try4(a, b, c, d byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c || lx.peekAt(3) != d {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) peekAt(n int) byte {
	off := lx.cursor.Off + uint32(n)
	if off >= lx.cursor.limit() {
		return 0
	}
	return lx.file.Content[off]
}

func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
