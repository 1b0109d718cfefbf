// Package table holds the immutable table value: a schema and the rows
// drawn against it.
package table

import (
	"fmt"

	"goTable/internal/row"
	"goTable/internal/schema"
)

// Table is a schema plus rows conforming to it. Operations return new
// tables and never modify the receiver.
type Table struct {
	schema schema.Schema
	rows   []row.Row
}

// New returns an empty table over s.
func New(s schema.Schema) Table {
	return Table{schema: s}
}

// Schema returns the table's schema.
func (t Table) Schema() schema.Schema { return t.schema }

// Size returns the number of rows.
func (t Table) Size() int { return len(t.rows) }

// Rows returns a copy of the rows, first row first.
func (t Table) Rows() []row.Row {
	return append([]row.Row(nil), t.rows...)
}

// Get returns the row at ix.
func (t Table) Get(ix Index) row.Row {
	t.mustFit(ix)
	return t.rows[ix.pos]
}

// Prepend returns a table with r in front of the existing rows. r must
// conform to the table's schema.
func (t Table) Prepend(r row.Row) Table {
	if !r.Conforms(t.schema) {
		panic(fmt.Sprintf("table: row %q does not conform to schema %q", r, t.schema))
	}
	rows := make([]row.Row, 0, len(t.rows)+1)
	rows = append(rows, r)
	rows = append(rows, t.rows...)
	return Table{schema: t.schema, rows: rows}
}

// Delete returns a table without the row at ix. The remaining rows keep
// their relative order.
func (t Table) Delete(ix Index) Table {
	t.mustFit(ix)
	rows := make([]row.Row, 0, len(t.rows)-1)
	rows = append(rows, t.rows[:ix.pos]...)
	rows = append(rows, t.rows[ix.pos+1:]...)
	return Table{schema: t.schema, rows: rows}
}

// Column returns the value the witness points at for every row, in order.
func (t Table) Column(w schema.Witness) []row.Value {
	out := make([]row.Value, len(t.rows))
	for i, r := range t.rows {
		out[i] = row.GetAt(r, w)
	}
	return out
}

func (t Table) mustFit(ix Index) {
	if ix.bound != len(t.rows) {
		panic(fmt.Sprintf("table: stale index %d (bound %d) used on table of size %d", ix.pos, ix.bound, len(t.rows)))
	}
}
