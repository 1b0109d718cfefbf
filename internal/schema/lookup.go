package schema

// Witness records where a column was found in a schema. It is only produced
// by InSchema, so a Witness always points at a real column of the schema it
// was looked up in.
type Witness struct {
	name string
	typ  ColumnType
	pos  int
}

// Name returns the column name that was looked up.
func (w Witness) Name() string { return w.name }

// Type returns the resolved column type.
func (w Witness) Type() ColumnType { return w.typ }

// Pos returns the 0-based column position.
func (w Witness) Pos() int { return w.pos }

// InSchema finds the first column called name. Parse rejects duplicate
// names, so for parsed schemas the first match is the only match.
func InSchema(s Schema, name string) (Witness, bool) {
	for i, c := range s.cols {
		if c.Name == name {
			return Witness{name: name, typ: c.Type, pos: i}, true
		}
	}
	return Witness{}, false
}
