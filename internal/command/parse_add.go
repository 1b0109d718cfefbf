package command

import (
	"goTable/internal/row"
	"goTable/internal/table"
)

// addedRowNum is the position a prepended row takes, used in error reports.
const addedRowNum = 1

// parseAdd parses:
//
//	add field,field,...
//
// The fields are decoded against the table's schema.
func parseAdd(tbl table.Table, arg string) (Command, error) {
	r, err := row.Decode(tbl.Schema(), addedRowNum, arg)
	if err != nil {
		return nil, widen(err)
	}
	return &Prepend{Row: r}, nil
}
