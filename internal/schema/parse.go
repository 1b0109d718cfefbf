package schema

import (
	"strings"

	"goTable/internal/errunion"
)

const (
	// FieldSep separates columns in a schema and fields in a row.
	FieldSep = ","
	// ColumnSep separates a column name from its type.
	ColumnSep = ":"
)

// ParseColumnType maps a type token to its ColumnType. Tokens are
// case-sensitive.
func ParseColumnType(text string) (ColumnType, error) {
	switch text {
	case "i64":
		return TypeInt64, nil
	case "str":
		return TypeStr, nil
	case "boolean":
		return TypeBool, nil
	case "float":
		return TypeFloat, nil
	default:
		return 0, NoColType{Text: text}
	}
}

// Parse parses a schema encoding such as "name:str,age:i64".
//
// A failure is returned as an errunion.Union over Kinds naming the 1-based
// position of the first offending column.
func Parse(text string) (Schema, error) {
	defs := strings.Split(text, FieldSep)
	cols := make([]Column, 0, len(defs))
	seen := make(map[string]bool, len(defs))

	for i, def := range defs {
		pos := i + 1

		name, typeTok, ok := strings.Cut(def, ColumnSep)
		if !ok || name == "" || strings.Contains(typeTok, ColumnSep) {
			return Schema{}, errunion.Inject(Kinds, InvalidColumn{Pos: pos, Text: def})
		}

		ct, err := ParseColumnType(typeTok)
		if err != nil {
			return Schema{}, errunion.Inject(Kinds, NoColType{Pos: pos, Text: typeTok})
		}

		if seen[name] {
			return Schema{}, errunion.Inject(Kinds, DuplicateColumn{Pos: pos, Name: name})
		}
		seen[name] = true

		cols = append(cols, Column{Name: name, Type: ct})
	}

	return Schema{cols: cols}, nil
}
