// Package command defines the commands that act on a table and parses them
// from input lines. A parsed command's arguments are already checked against
// the table it was parsed for, so applying it cannot fail.
package command

import (
	"goTable/internal/row"
	"goTable/internal/schema"
	"goTable/internal/table"
)

// Command is the common interface for all commands.
type Command interface {
	// Verb returns the command word the command was parsed from.
	Verb() string
	cmdNode()
}

// PrintSchema shows the table's schema.
type PrintSchema struct{}

// PrintSize shows the number of rows.
type PrintSize struct{}

// NewSchema replaces the table with an empty one over Schema.
type NewSchema struct {
	Schema schema.Schema
}

// Prepend adds Row in front of the existing rows.
type Prepend struct {
	Row row.Row
}

// Get shows the row at Index.
type Get struct {
	Index table.Index
}

// Delete removes the row at Index.
type Delete struct {
	Index table.Index
}

// ColumnLookup shows one column of every row.
type ColumnLookup struct {
	Name    string
	Type    schema.ColumnType
	Witness schema.Witness
}

// Help lists the available commands.
type Help struct{}

// Quit ends the session.
type Quit struct{}

func (*PrintSchema) Verb() string  { return VerbSchema }
func (*PrintSize) Verb() string    { return VerbSize }
func (*NewSchema) Verb() string    { return VerbNew }
func (*Prepend) Verb() string      { return VerbAdd }
func (*Get) Verb() string          { return VerbGet }
func (*Delete) Verb() string       { return VerbDelete }
func (*ColumnLookup) Verb() string { return VerbColumn }
func (*Help) Verb() string         { return VerbHelp }
func (*Quit) Verb() string         { return VerbQuit }

func (*PrintSchema) cmdNode()  {}
func (*PrintSize) cmdNode()    {}
func (*NewSchema) cmdNode()    {}
func (*Prepend) cmdNode()      {}
func (*Get) cmdNode()          {}
func (*Delete) cmdNode()       {}
func (*ColumnLookup) cmdNode() {}
func (*Help) cmdNode()         {}
func (*Quit) cmdNode()         {}

// Command words.
const (
	VerbSchema = "schema"
	VerbSize   = "size"
	VerbNew    = "new"
	VerbAdd    = "add"
	VerbGet    = "get"
	VerbDelete = "delete"
	VerbColumn = "column"
	VerbHelp   = "help"
	VerbQuit   = "quit"
)

// Usage lists the command grammar, one line per verb.
var Usage = []string{
	"schema                 show the current schema",
	"size                   show the number of rows",
	"new <name:type,...>    replace the table with an empty one (types: i64, str, boolean, float)",
	"add <field,...>        add a row in front of the table",
	"get <n>                show row n (1-based)",
	"delete <n>             delete row n (1-based)",
	"column <name>          show one column of every row",
	"help                   show this help",
	"quit                   leave",
}
