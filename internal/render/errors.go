package render

import (
	"fmt"
	"strings"

	"goTable/internal/command"
	"goTable/internal/errunion"
	"goTable/internal/row"
	"goTable/internal/schema"
)

// ErrorView is the presentation of one rejected command.
type ErrorView struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// errorHandlers covers every command kind except row.FieldErrors, which
// ViewError splits off first.
var errorHandlers = []errunion.Handler[ErrorView]{
	errunion.On(func(e schema.NoColType) ErrorView {
		return ErrorView{
			Kind:    "no_col_type",
			Message: fmt.Sprintf("column %d: unknown type %q (expected i64, str, boolean or float)", e.Pos, e.Text),
		}
	}),
	errunion.On(func(e schema.InvalidColumn) ErrorView {
		return ErrorView{
			Kind:    "invalid_column",
			Message: fmt.Sprintf("column %d: %q is not of the form name:type", e.Pos, e.Text),
		}
	}),
	errunion.On(func(e schema.DuplicateColumn) ErrorView {
		return ErrorView{
			Kind:    "duplicate_column",
			Message: fmt.Sprintf("column %d: %q is already used", e.Pos, e.Name),
		}
	}),
	errunion.On(func(e row.UnexpectedEOI) ErrorView {
		return ErrorView{
			Kind:    "unexpected_eoi",
			Message: fmt.Sprintf("row %d: missing field for column %d", e.Row, e.Col),
		}
	}),
	errunion.On(func(e row.ExpectedEOI) ErrorView {
		return ErrorView{
			Kind:    "expected_eoi",
			Message: fmt.Sprintf("row %d: too many fields, column %d is past the end of the schema", e.Row, e.Col),
		}
	}),
	errunion.On(func(e command.NoNat) ErrorView {
		return ErrorView{Kind: "no_nat", Message: e.Error()}
	}),
	errunion.On(func(e command.OutOfBounds) ErrorView {
		return ErrorView{Kind: "out_of_bounds", Message: e.Error()}
	}),
	errunion.On(func(e command.NoColName) ErrorView {
		return ErrorView{Kind: "no_col_name", Message: e.Error()}
	}),
	errunion.On(func(e command.UnknownCommand) ErrorView {
		return ErrorView{Kind: "unknown_command", Message: e.Error()}
	}),
}

// ViewError turns err into an ErrorView. Errors outside an errunion.Union
// are shown with their Error text.
func ViewError(err error) ErrorView {
	u, ok := errunion.As(err)
	if !ok {
		return ErrorView{Kind: "error", Message: err.Error()}
	}
	fe, rest, ok := errunion.Split[row.FieldErrors](u)
	if ok {
		return viewFieldErrors(fe)
	}
	return errunion.Fold(rest, errorHandlers...)
}

func viewFieldErrors(fe row.FieldErrors) ErrorView {
	details := make([]string, len(fe))
	for i, f := range fe {
		details[i] = f.Error()
	}
	return ErrorView{
		Kind:    "invalid_field",
		Message: fmt.Sprintf("%d invalid field(s)", len(fe)),
		Details: details,
	}
}

func (v ErrorView) lines() []string {
	out := []string{"error: " + v.Message}
	for _, d := range v.Details {
		out = append(out, "  "+d)
	}
	return out
}

func (v ErrorView) String() string { return strings.Join(v.lines(), "\n") }
