package lexdata

import "math/big"

// ValueKind discriminates the variant held by a Value.
type ValueKind int

const (
	KindText ValueKind = iota + 1
	KindBigInt
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBool
)

// Value is the tagged variant Encode and Decode operate over: exactly one
// of Text, BigIntVal, Int32Val, Int64Val, Float32Val, Float64Val, or
// BoolVal is meaningful, selected by Kind. Fractional
// decimals and date-times both travel as Text, distinguished only by the
// Aspect passed alongside them (Decimal, DateTime).
//
// This is a plain discriminated struct rather than an interface with one
// implementation per variant: Value is a small, closed, non-recursive set
// of cases with no per-variant behavior beyond holding data, so a Kind tag
// plus one field per variant is the idiomatic Go shape, not an interface
// hierarchy.
type Value struct {
	Kind       ValueKind
	Text       string
	BigIntVal  *big.Int
	Int32Val   int32
	Int64Val   int64
	Float32Val float32
	Float64Val float64
	BoolVal    bool
}

func TextValue(s string) Value     { return Value{Kind: KindText, Text: s} }
func BigIntValue(v *big.Int) Value { return Value{Kind: KindBigInt, BigIntVal: v} }
func Int32Value(v int32) Value     { return Value{Kind: KindInt32, Int32Val: v} }
func Int64Value(v int64) Value     { return Value{Kind: KindInt64, Int64Val: v} }
func Float32Value(v float32) Value { return Value{Kind: KindFloat32, Float32Val: v} }
func Float64Value(v float64) Value { return Value{Kind: KindFloat64, Float64Val: v} }
func BoolValue(v bool) Value       { return Value{Kind: KindBool, BoolVal: v} }
