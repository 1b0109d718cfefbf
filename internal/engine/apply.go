package engine

import (
	"fmt"

	"goTable/internal/command"
	"goTable/internal/table"
)

// Apply returns the table that results from running cmd against tbl.
// cmd must have been parsed against tbl: its row and index arguments are
// trusted, so Apply has no failure path. tbl itself is left untouched.
func Apply(tbl table.Table, cmd command.Command) table.Table {
	switch c := cmd.(type) {
	case *command.PrintSchema, *command.PrintSize, *command.Get,
		*command.ColumnLookup, *command.Help, *command.Quit:
		return tbl

	case *command.NewSchema:
		return table.New(c.Schema)

	case *command.Prepend:
		return tbl.Prepend(c.Row)

	case *command.Delete:
		return tbl.Delete(c.Index)

	default:
		panic(fmt.Sprintf("engine: unsupported command type %T", cmd))
	}
}
