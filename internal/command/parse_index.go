package command

import "goTable/internal/table"

// parseGet parses:
//
//	get n
func parseGet(tbl table.Table, arg string) (Command, error) {
	ix, err := parseIndex(tbl, arg)
	if err != nil {
		return nil, err
	}
	return &Get{Index: ix}, nil
}

// parseDelete parses:
//
//	delete n
func parseDelete(tbl table.Table, arg string) (Command, error) {
	ix, err := parseIndex(tbl, arg)
	if err != nil {
		return nil, err
	}
	return &Delete{Index: ix}, nil
}
