package command

import (
	"fmt"

	"goTable/internal/errunion"
	"goTable/internal/row"
	"goTable/internal/schema"
)

// NoNat reports a row number that is not a natural number.
type NoNat struct {
	Text string
}

func (e NoNat) Error() string {
	return fmt.Sprintf("%q is not a row number", e.Text)
}

// OutOfBounds reports a 1-based row number outside a table of Size rows.
type OutOfBounds struct {
	Size  int
	Index int
}

func (e OutOfBounds) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("row %d is out of bounds: the table is empty", e.Index)
	}
	return fmt.Sprintf("row %d is out of bounds: expected 1 to %d", e.Index, e.Size)
}

// NoColName reports a column name missing from the schema.
type NoColName struct {
	Text string
}

func (e NoColName) Error() string {
	return fmt.Sprintf("no column named %q", e.Text)
}

// UnknownCommand reports a line that is not a command.
type UnknownCommand struct {
	Text string
}

func (e UnknownCommand) Error() string {
	return fmt.Sprintf("unknown command %q (try help)", e.Text)
}

// Kinds are the errors Parse can return: its own plus those of the schema
// and row decoders it calls.
var Kinds = errunion.NewSet(
	errunion.KindOf[NoNat](),
	errunion.KindOf[OutOfBounds](),
	errunion.KindOf[NoColName](),
	errunion.KindOf[UnknownCommand](),
).Union(schema.Kinds, row.Kinds)
