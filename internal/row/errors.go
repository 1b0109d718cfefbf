package row

import (
	"fmt"
	"strings"

	"goTable/internal/errunion"
	"goTable/internal/schema"
)

// InvalidField reports a field whose text does not parse as its column type.
// Row and Col are 1-based.
type InvalidField struct {
	Row  int
	Col  int
	Type schema.ColumnType
	Text string
}

func (e InvalidField) Error() string {
	return fmt.Sprintf("row %d, column %d: %q is not a valid %s", e.Row, e.Col, e.Text, e.Type)
}

// UnexpectedEOI reports a row that ran out of fields at column Col.
type UnexpectedEOI struct {
	Row int
	Col int
}

func (e UnexpectedEOI) Error() string {
	return fmt.Sprintf("row %d, column %d: unexpected end of input", e.Row, e.Col)
}

// ExpectedEOI reports a row with a surplus field at column Col.
type ExpectedEOI struct {
	Row int
	Col int
}

func (e ExpectedEOI) Error() string {
	return fmt.Sprintf("row %d, column %d: expected end of input", e.Row, e.Col)
}

// FieldErrors is every InvalidField found in one row, in column order.
type FieldErrors []InvalidField

// Error summarizes the first few failures.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(fe), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe[i].Error())
	}
	if len(fe) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(fe))
	}
	return b.String()
}

// Unwrap exposes each InvalidField to errors.As.
func (fe FieldErrors) Unwrap() []error {
	out := make([]error, len(fe))
	for i, e := range fe {
		out[i] = e
	}
	return out
}

// Merge combines two sets of field failures. It is associative, and the
// empty FieldErrors is its identity.
func Merge(a, b FieldErrors) FieldErrors {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(FieldErrors, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Kinds are the errors Decode can return.
var Kinds = errunion.NewSet(
	errunion.KindOf[FieldErrors](),
	errunion.KindOf[UnexpectedEOI](),
	errunion.KindOf[ExpectedEOI](),
)
