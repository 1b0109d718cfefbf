package command

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"goTable/internal/errunion"
	"goTable/internal/table"
)

// splitVerb splits a trimmed line at its first run of spaces. The argument
// keeps any inner spacing; field text is taken as typed.
func splitVerb(line string) (verb, arg string) {
	verb, arg, _ = strings.Cut(line, " ")
	return verb, strings.TrimLeft(arg, " ")
}

// parseNat parses a natural number written in decimal digits. Numbers too
// large for an int saturate at math.MaxInt; they are still natural numbers,
// just past the end of any table.
func parseNat(text string) (int, error) {
	if text == "" {
		return 0, NoNat{Text: text}
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, NoNat{Text: text}
		}
	}
	n, err := strconv.Atoi(text)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, nil
	}
	if err != nil {
		return 0, NoNat{Text: text}
	}
	return n, nil
}

// parseIndex turns a 1-based row number into an index into tbl.
func parseIndex(tbl table.Table, arg string) (table.Index, error) {
	n, err := parseNat(arg)
	if err != nil {
		return table.Index{}, errunion.Inject(Kinds, err.(NoNat))
	}

	ix, ok := table.NewIndex(n-1, tbl.Size())
	if !ok {
		return table.Index{}, errunion.Inject(Kinds, OutOfBounds{Size: tbl.Size(), Index: n})
	}
	return ix, nil
}

// widen lifts an error union from a sub-parser into Kinds.
func widen(err error) error {
	u, ok := errunion.As(err)
	if !ok {
		panic("command: sub-parser returned an error outside any union: " + err.Error())
	}
	return u.Widen(Kinds)
}
