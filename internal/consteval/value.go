// Package consteval interprets bound expression/statement trees into
// ConstantValues: four-state integers, reals, strings, and
// aggregate values, with SystemVerilog's X/Z propagation rules. It is the
// engine behind parameter elaboration, generate-construct evaluation, and
// the script session's eval entry point.
package consteval

import (
	"strconv"

	"svlang/internal/svint"
)

// ValueKind tags one variant of the ConstantValue sum.
type ValueKind uint8

const (
	VError ValueKind = iota
	VInt
	VReal
	VShortReal
	VString
	VNull
	VUnbounded
	VArray
	VQueue
	VAssoc
	VStruct
	VUnion
	VVoid
)

// Value is one constant. Not every field is meaningful for every Kind.
type Value struct {
	Kind  ValueKind
	Int   svint.SVInt
	Real  float64
	Str   string
	Elems []Value          // VArray/VQueue/VStruct: ordered elements/fields
	Assoc map[string]Value // VAssoc
}

func ErrorValue() Value            { return Value{Kind: VError} }
func IntValue(v svint.SVInt) Value { return Value{Kind: VInt, Int: v} }
func RealValue(v float64) Value    { return Value{Kind: VReal, Real: v} }
func StringValue(s string) Value   { return Value{Kind: VString, Str: s} }
func VoidValue() Value             { return Value{Kind: VVoid} }

func (v Value) IsError() bool { return v.Kind == VError }

// String renders a value for diagnostics and the script session's
// transcript: integers in their canonical sized-binary form, reals in Go's
// shortest round-trip notation.
func (v Value) String() string {
	switch v.Kind {
	case VInt:
		return v.Int.String()
	case VReal:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	case VShortReal:
		return strconv.FormatFloat(v.Real, 'g', -1, 32)
	case VString:
		return strconv.Quote(v.Str)
	case VNull:
		return "null"
	case VUnbounded:
		return "$"
	case VArray, VQueue, VStruct:
		out := "'{"
		for i, e := range v.Elems {
			if i > 0 {
				out += ", "
			}
			out += e.String()
		}
		return out + "}"
	case VVoid:
		return "void"
	default:
		return "<error>"
	}
}
