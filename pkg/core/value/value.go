package value

import (
	"fmt"
	"math"
	"strconv"
)

// Type represents the tag in the Value tagged union.
type Type uint8

const (
	TypeVoid Type = iota
	TypeFloat
	TypeFloat32
	TypeTag
)

func (t Type) String() string {
	switch t {
	case TypeVoid:
		return "void"
	case TypeFloat:
		return "float64"
	case TypeFloat32:
		return "float32"
	case TypeTag:
		return "tag"
	}
	return "unknown"
}

// Value is a tagged union. Numbers keep their float64 bits in Data, a
// float32 is widened exactly before it is stored. Tags keep their text in
// Opaque.
type Value struct {
	Type   Type
	Data   uint64
	Opaque any
}

// Void is the result of an operation that produces nothing.
var Void = Value{}

// Float returns a 64-bit number.
func Float(f float64) Value {
	return Value{Type: TypeFloat, Data: math.Float64bits(f)}
}

// Float32 returns a 32-bit number.
func Float32(f float32) Value {
	return Value{Type: TypeFloat32, Data: math.Float64bits(float64(f))}
}

// Number returns f as a number of type t, rounding to float32 when t is
// TypeFloat32.
func Number(f float64, t Type) Value {
	if t == TypeFloat32 {
		return Float32(float32(f))
	}
	return Float(f)
}

// Tag returns a type or format tag value such as "int" or "hex".
func Tag(name string) Value {
	return Value{Type: TypeTag, Opaque: name}
}

// IsNumber reports whether v holds a float of either width.
func (v Value) IsNumber() bool {
	return v.Type == TypeFloat || v.Type == TypeFloat32
}

// Float returns the numeric value as float64.
func (v Value) Float() float64 {
	return math.Float64frombits(v.Data)
}

// TagName returns the text of a tag value.
func (v Value) TagName() string {
	s, _ := v.Opaque.(string)
	return s
}

// Bool reports truthiness: any non-zero number, NaN included, is true.
func (v Value) Bool() bool {
	return v.IsNumber() && v.Float() != 0
}

// Integer returns the value as int64 when it is a finite number without a
// fractional part that fits in 64 bits.
func (v Value) Integer() (int64, bool) {
	if !v.IsNumber() {
		return 0, false
	}
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// String returns the decimal representation of the value.
func (v Value) String() string {
	switch v.Type {
	case TypeVoid:
		return "None"
	case TypeTag:
		return v.TagName()
	case TypeFloat:
		return FormatFloat(v.Float(), 64)
	case TypeFloat32:
		return FormatFloat(v.Float(), 32)
	default:
		return fmt.Sprintf("%v", v.Data)
	}
}

// FormatFloat renders f with the fewest digits that round-trip at the given
// bit size. Integral values print without a fraction; infinities and NaN use
// the spelling of the calculator's constants.
func FormatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}
