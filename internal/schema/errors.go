package schema

import (
	"fmt"

	"goTable/internal/errunion"
)

// NoColType reports an unrecognized type token. Pos is the 1-based column
// position, or 0 when the token was parsed on its own.
type NoColType struct {
	Pos  int
	Text string
}

func (e NoColType) Error() string {
	if e.Pos == 0 {
		return fmt.Sprintf("unknown column type %q", e.Text)
	}
	return fmt.Sprintf("column %d: unknown column type %q", e.Pos, e.Text)
}

// InvalidColumn reports a column definition that is not of the form name:type.
type InvalidColumn struct {
	Pos  int
	Text string
}

func (e InvalidColumn) Error() string {
	return fmt.Sprintf("column %d: invalid column definition %q (expected name:type)", e.Pos, e.Text)
}

// DuplicateColumn reports a column name already used earlier in the schema.
type DuplicateColumn struct {
	Pos  int
	Name string
}

func (e DuplicateColumn) Error() string {
	return fmt.Sprintf("column %d: duplicate column name %q", e.Pos, e.Name)
}

// Kinds are the errors Parse can return.
var Kinds = errunion.NewSet(
	errunion.KindOf[NoColType](),
	errunion.KindOf[InvalidColumn](),
	errunion.KindOf[DuplicateColumn](),
)
