package minipy

import "strconv"

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTInt ValueTag = iota // int64
	VTNum                 // float64
)

// Value is the numeric runtime carrier. The tag determines which kind of
// payload Data holds, and the tag alone decides the textual rendering:
// integers print without a fractional part, reals in natural decimal
// form. Division is the only operation that can introduce a VTNum from
// integer operands.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// IntVal wraps an int64 as a Value.
func IntVal(n int64) Value { return Value{Tag: VTInt, Data: n} }

// NumVal wraps a float64 as a Value.
func NumVal(f float64) Value { return Value{Tag: VTNum, Data: f} }

// String renders the value the way print shows it.
func (v Value) String() string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	default:
		return "<unknown>"
	}
}

// asFloat widens either payload to float64 for mixed arithmetic.
func asFloat(v Value) float64 {
	if v.Tag == VTInt {
		return float64(v.Data.(int64))
	}
	return v.Data.(float64)
}
