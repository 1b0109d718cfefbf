package command

import (
	"strings"

	"goTable/internal/errunion"
	"goTable/internal/table"
)

// Parse parses one input line into a command valid for tbl.
// Errors are returned as an errunion.Union over Kinds; tbl is never
// modified.
func Parse(tbl table.Table, line string) (Command, error) {
	l := strings.TrimSpace(line)
	verb, arg := splitVerb(l)

	switch verb {
	case VerbSchema:
		return nullary(l, arg, &PrintSchema{})
	case VerbSize:
		return nullary(l, arg, &PrintSize{})
	case VerbHelp:
		return nullary(l, arg, &Help{})
	case VerbQuit:
		return nullary(l, arg, &Quit{})
	case VerbNew:
		return parseNew(arg)
	case VerbAdd:
		return parseAdd(tbl, arg)
	case VerbGet:
		return parseGet(tbl, arg)
	case VerbDelete:
		return parseDelete(tbl, arg)
	case VerbColumn:
		return parseColumn(tbl, arg)
	default:
		return nil, unknown(l)
	}
}

func nullary(line, arg string, cmd Command) (Command, error) {
	if arg != "" {
		return nil, unknown(line)
	}
	return cmd, nil
}

func unknown(line string) error {
	return errunion.Inject(Kinds, UnknownCommand{Text: line})
}
