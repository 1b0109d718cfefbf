// Package schema defines column types, columns and schemas, and parses them
// from their textual encoding.
package schema

import "strings"

// ColumnType is the logical type of the values in a column.
type ColumnType int

const (
	TypeInt64 ColumnType = iota
	TypeStr
	TypeBool
	TypeFloat
)

// String returns the token used for t in the schema encoding.
func (t ColumnType) String() string {
	switch t {
	case TypeInt64:
		return "i64"
	case TypeStr:
		return "str"
	case TypeBool:
		return "boolean"
	case TypeFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Column describes one named, typed column.
type Column struct {
	Name string
	Type ColumnType
}

// Schema is an ordered list of columns. The zero Schema has no columns.
// A Schema is never modified after construction.
type Schema struct {
	cols []Column
}

// New returns a Schema over a copy of cols.
func New(cols ...Column) Schema {
	return Schema{cols: append([]Column(nil), cols...)}
}

// Len returns the number of columns.
func (s Schema) Len() int { return len(s.cols) }

// Column returns the column at position i (0-based).
func (s Schema) Column(i int) Column { return s.cols[i] }

// Columns returns a copy of the columns.
func (s Schema) Columns() []Column {
	return append([]Column(nil), s.cols...)
}

// Equal reports whether s and o have the same columns in the same order.
func (s Schema) Equal(o Schema) bool {
	if len(s.cols) != len(o.cols) {
		return false
	}
	for i := range s.cols {
		if s.cols[i] != o.cols[i] {
			return false
		}
	}
	return true
}

// String returns the schema encoding, e.g. "name:str,age:i64".
func (s Schema) String() string { return Encode(s) }

// Encode renders s as comma-separated name:type pairs.
func Encode(s Schema) string {
	parts := make([]string, len(s.cols))
	for i, c := range s.cols {
		parts[i] = c.Name + ColumnSep + c.Type.String()
	}
	return strings.Join(parts, FieldSep)
}
