package row

import (
	"math"
	"strconv"
	"strings"

	"goTable/internal/errunion"
	"goTable/internal/schema"
)

// DecodeField parses the text of one field as type t. rowNum and colNum are
// only used to position the InvalidField it returns on failure.
func DecodeField(rowNum, colNum int, t schema.ColumnType, text string) (Value, error) {
	invalid := InvalidField{Row: rowNum, Col: colNum, Type: t, Text: text}

	switch t {
	case schema.TypeInt64:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, invalid
		}
		return Int64(i), nil

	case schema.TypeStr:
		return Str(text), nil

	case schema.TypeBool:
		switch text {
		case "t":
			return Bool(true), nil
		case "f":
			return Bool(false), nil
		}
		return Value{}, invalid

	case schema.TypeFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, invalid
		}
		return Float(f), nil

	default:
		return Value{}, invalid
	}
}

// Decode parses one row of comma-separated fields against s.
//
// Too few fields fail with UnexpectedEOI and too many with ExpectedEOI, each
// at the first column that does not line up. Otherwise every field is
// decoded and all failures are merged into one FieldErrors. The error is an
// errunion.Union over Kinds.
func Decode(s schema.Schema, rowNum int, text string) (Row, error) {
	fields := splitFields(s, text)
	n := s.Len()

	if len(fields) < n {
		return Row{}, errunion.Inject(Kinds, UnexpectedEOI{Row: rowNum, Col: len(fields) + 1})
	}
	if len(fields) > n {
		return Row{}, errunion.Inject(Kinds, ExpectedEOI{Row: rowNum, Col: n + 1})
	}

	vals := make([]Value, n)
	var failed FieldErrors
	for i, f := range fields {
		v, err := DecodeField(rowNum, i+1, s.Column(i).Type, f)
		if err != nil {
			failed = Merge(failed, FieldErrors{err.(InvalidField)})
			continue
		}
		vals[i] = v
	}
	if len(failed) > 0 {
		return Row{}, errunion.Inject(Kinds, failed)
	}

	return Row{vals: vals}, nil
}

// splitFields splits text on the field separator. Separators cannot be
// escaped. The empty text is zero fields only for a schema with no columns;
// otherwise it is a single empty field.
func splitFields(s schema.Schema, text string) []string {
	if text == "" && s.Len() == 0 {
		return nil
	}
	return strings.Split(text, schema.FieldSep)
}
