// Package row holds schema-conformant rows of typed values and their
// comma-separated text encoding.
package row

import (
	"strconv"

	"goTable/internal/schema"
)

// Value represents a single cell in a row.
// Only the field matching Type should be read; other fields remain at their
// zero values.
type Value struct {
	Type schema.ColumnType

	I64 int64   // for TypeInt64
	S   string  // for TypeStr
	B   bool    // for TypeBool
	F64 float64 // for TypeFloat
}

func Int64(i int64) Value   { return Value{Type: schema.TypeInt64, I64: i} }
func Str(s string) Value    { return Value{Type: schema.TypeStr, S: s} }
func Bool(b bool) Value     { return Value{Type: schema.TypeBool, B: b} }
func Float(f float64) Value { return Value{Type: schema.TypeFloat, F64: f} }

// String returns the field encoding of v.
func (v Value) String() string { return EncodeValue(v) }

// Any returns the Go value carried by v.
func (v Value) Any() any {
	switch v.Type {
	case schema.TypeInt64:
		return v.I64
	case schema.TypeStr:
		return v.S
	case schema.TypeBool:
		return v.B
	case schema.TypeFloat:
		return v.F64
	default:
		return nil
	}
}

// EncodeValue converts v to its field text: decimal integers, the raw
// string, "t"/"f" for booleans and the shortest decimal form for floats.
func EncodeValue(v Value) string {
	switch v.Type {
	case schema.TypeInt64:
		return strconv.FormatInt(v.I64, 10)
	case schema.TypeStr:
		return v.S
	case schema.TypeBool:
		if v.B {
			return "t"
		}
		return "f"
	case schema.TypeFloat:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	default:
		return ""
	}
}
