package row

import (
	"fmt"
	"strings"

	"goTable/internal/schema"
)

// Row is a sequence of values conforming to some schema: one value per
// column, each of the column's type. Rows are built by Decode or New and are
// never modified afterwards.
type Row struct {
	vals []Value
}

// New validates vals against s and returns them as a Row.
func New(s schema.Schema, vals ...Value) (Row, error) {
	if len(vals) != s.Len() {
		return Row{}, fmt.Errorf("row: value count %d does not match schema columns %d", len(vals), s.Len())
	}
	for i, v := range vals {
		col := s.Column(i)
		if v.Type != col.Type {
			return Row{}, fmt.Errorf("row: type mismatch for column %q: expected %v, got %v", col.Name, col.Type, v.Type)
		}
	}
	return Row{vals: append([]Value(nil), vals...)}, nil
}

// Len returns the number of values.
func (r Row) Len() int { return len(r.vals) }

// At returns the value at position i (0-based).
func (r Row) At(i int) Value { return r.vals[i] }

// Values returns a copy of the values.
func (r Row) Values() []Value {
	return append([]Value(nil), r.vals...)
}

// Conforms reports whether r has the shape of s.
func (r Row) Conforms(s schema.Schema) bool {
	if len(r.vals) != s.Len() {
		return false
	}
	for i, v := range r.vals {
		if v.Type != s.Column(i).Type {
			return false
		}
	}
	return true
}

// Equal reports whether r and o hold the same values.
func (r Row) Equal(o Row) bool {
	if len(r.vals) != len(o.vals) {
		return false
	}
	for i := range r.vals {
		if r.vals[i] != o.vals[i] {
			return false
		}
	}
	return true
}

// String returns the field encoding of r.
func (r Row) String() string { return Encode(r) }

// Encode joins the encoded values of r with the field separator.
func Encode(r Row) string {
	parts := make([]string, len(r.vals))
	for i, v := range r.vals {
		parts[i] = EncodeValue(v)
	}
	return strings.Join(parts, schema.FieldSep)
}

// GetAt returns the field w points at. w must come from InSchema on the
// schema r conforms to; anything else is a programming error and panics.
func GetAt(r Row, w schema.Witness) Value {
	if w.Pos() >= len(r.vals) || r.vals[w.Pos()].Type != w.Type() {
		panic(fmt.Sprintf("row: witness for column %q does not match row", w.Name()))
	}
	return r.vals[w.Pos()]
}
