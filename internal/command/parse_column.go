package command

import (
	"goTable/internal/errunion"
	"goTable/internal/schema"
	"goTable/internal/table"
)

// parseColumn parses:
//
//	column name
func parseColumn(tbl table.Table, arg string) (Command, error) {
	w, ok := schema.InSchema(tbl.Schema(), arg)
	if !ok {
		return nil, errunion.Inject(Kinds, NoColName{Text: arg})
	}
	return &ColumnLookup{Name: arg, Type: w.Type(), Witness: w}, nil
}
