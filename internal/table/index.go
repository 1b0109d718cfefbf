package table

// Index is a 0-based row position known to lie in [0, bound). It is only
// built by NewIndex and is tied to the table size it was checked against:
// once the table grows or shrinks the index must be derived again.
type Index struct {
	pos   int
	bound int
}

// NewIndex checks pos against size.
func NewIndex(pos, size int) (Index, bool) {
	if pos < 0 || pos >= size {
		return Index{}, false
	}
	return Index{pos: pos, bound: size}, true
}

// Pos returns the 0-based position.
func (ix Index) Pos() int { return ix.pos }

// Bound returns the table size the index was checked against.
func (ix Index) Bound() int { return ix.bound }
