package lexer

import (
	"strconv"

	"svlang/internal/diag"
	"svlang/internal/token"
)

// scanNumber handles every numeric literal that starts on a decimal digit:
// a plain unsized decimal integer, a real literal (1.5, 2e10), a time
// literal (10ns), or the <size> prefix of a sized based literal (8'hFF).
// Based literals with no size prefix ('d12, '0, 'x, ...) are scanned by
// scanApostrophe instead.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	digitsStart := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
	digitsSp := lx.cursor.SpanFrom(digitsStart)
	leadingDigits := string(lx.file.Content[digitsSp.Start:digitsSp.End])

	if lx.cursor.Peek() == '\'' {
		return lx.finishBasedLiteral(start, true, leadingDigits)
	}

	isReal := false

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		isReal = true
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if lx.hasExponentTail() {
			isReal = true
			lx.cursor.Bump() // e/E
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

	if isReal {
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		num := &token.Number{}
		clean := stripDigitSeparators(text)
		if v, err := strconv.ParseFloat(clean, 64); err != nil {
			if isRangeErr(err) {
				if v > 0 {
					num.RealOverflow = true
					num.RealValue = v
				} else {
					num.RealUnderflow = true
				}
			} else {
				lx.errLex(diag.LexBadNumber, sp, "malformed real literal")
			}
		} else {
			num.RealValue = v
		}
		if unit, ok := lx.tryTimeUnit(); ok {
			num.TimeUnit = unit
			sp = lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.TimeLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End]), Number: num}
		}
		return token.Token{Kind: token.RealLit, Span: sp, Text: text, Number: num}
	}

	if unit, ok := lx.tryTimeUnit(); ok {
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		return token.Token{Kind: token.TimeLit, Span: sp, Text: text, Number: &token.Number{TimeUnit: unit}}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	return token.Token{
		Kind: token.IntegerLit,
		Span: sp,
		Text: text,
		Number: &token.Number{
			Base:   token.BaseDec,
			Digits: leadingDigits,
		},
	}
}

// scanApostrophe dispatches tokens that begin with a bare '\''. SystemVerilog
// overloads this byte three ways: the assignment-pattern opener '{, an
// unbased unsized literal ('0, '1, 'x, 'z), and a base-only literal
// ('d12, 'sh1F) with no size prefix.
func (lx *Lexer) scanApostrophe() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\'' && b1 == '{' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.TickLBrace, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\'' && (b1 == 'x' || b1 == 'X' || b1 == 'z' || b1 == 'Z') {
		lx.cursor.Bump() // '\''
		lx.cursor.Bump() // x/z digit
		sp := lx.cursor.SpanFrom(start)
		digit := string(lx.file.Content[sp.Start+1 : sp.End])
		return token.Token{Kind: token.IntegerLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End]),
			Number: &token.Number{Unsized: true, Digits: digit}}
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\'' && (b1 == '0' || b1 == '1') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		digit := string(lx.file.Content[sp.Start+1 : sp.End])
		return token.Token{Kind: token.IntegerLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End]),
			Number: &token.Number{Unsized: true, Digits: digit}}
	}

	return lx.finishBasedLiteral(start, false, "")
}

// finishBasedLiteral parses the '<s?><base><digits> tail shared by sized
// (8'hFF) and base-only ('d12) literals. start marks the beginning of the
// whole token (including any size digits already consumed by the caller).
func (lx *Lexer) finishBasedLiteral(start Mark, hasSize bool, sizeDigits string) token.Token {
	lx.cursor.Bump() // '\''

	signed := false
	if b := lx.cursor.Peek(); b == 's' || b == 'S' {
		signed = true
		lx.cursor.Bump()
	}

	var base token.NumberBase
	switch lx.cursor.Peek() {
	case 'b', 'B':
		base = token.BaseBin
	case 'o', 'O':
		base = token.BaseOct
	case 'd', 'D':
		base = token.BaseDec
	case 'h', 'H':
		base = token.BaseHex
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "expected b/o/d/h base specifier after '")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	lx.cursor.Bump() // base letter

	for b := lx.cursor.Peek(); b == ' ' || b == '\t'; b = lx.cursor.Peek() {
		lx.cursor.Bump()
	}

	digitsStart := lx.cursor.Mark()
	for validBaseDigit(base, lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	digitsSp := lx.cursor.SpanFrom(digitsStart)
	digits := string(lx.file.Content[digitsSp.Start:digitsSp.End])

	sp := lx.cursor.SpanFrom(start)
	if digits == "" {
		lx.errLex(diag.LexBadNumber, sp, "expected digits after base specifier")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	num := &token.Number{
		HasSize: hasSize,
		Signed:  signed,
		Base:    base,
		Digits:  digits,
	}
	if hasSize {
		if sz, err := strconv.ParseUint(stripDigitSeparators(sizeDigits), 10, 32); err != nil {
			num.OutOfRange = true
		} else {
			num.Size = uint32(sz)
		}
	}

	return token.Token{Kind: token.IntegerLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End]), Number: num}
}

func validBaseDigit(base token.NumberBase, b byte) bool {
	if b == '_' || isXZFiller(b) {
		return true
	}
	switch base {
	case token.BaseBin:
		return b == '0' || b == '1'
	case token.BaseOct:
		return isOctal(b)
	case token.BaseHex:
		return isHex(b)
	case token.BaseDec:
		return isDec(b)
	default:
		return false
	}
}

// hasExponentTail reports whether the byte at the cursor (expected 'e'/'E')
// is genuinely followed by an exponent, not e.g. the start of a trailing
// identifier glued onto a number by a macro expansion.
func (lx *Lexer) hasExponentTail() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok {
		return false
	}
	if b0 != 'e' && b0 != 'E' {
		return false
	}
	if b1 == '+' || b1 == '-' {
		return isDec(lx.peekAt(2))
	}
	return isDec(b1)
}

var timeUnits = []string{"fs", "ps", "ns", "us", "ms", "s"}

// tryTimeUnit consumes a time-literal unit suffix glued directly onto a
// numeric literal (10ns, 1.5ps) with no intervening whitespace.
func (lx *Lexer) tryTimeUnit() (string, bool) {
	for _, u := range timeUnits {
		if lx.matchLiteral(u) {
			return u, true
		}
	}
	return "", false
}

func (lx *Lexer) matchLiteral(s string) bool {
	for i := 0; i < len(s); i++ {
		if lx.peekAt(i) != s[i] {
			return false
		}
	}
	// must not be the prefix of a longer identifier (e.g. "10nsomething").
	if isIdentContinueByte(lx.peekAt(len(s))) {
		return false
	}
	for i := 0; i < len(s); i++ {
		lx.cursor.Bump()
	}
	return true
}

func stripDigitSeparators(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
