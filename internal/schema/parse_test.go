package schema

import (
	"errors"
	"testing"
)

func TestParseColumnType_Tokens(t *testing.T) {
	cases := map[string]ColumnType{
		"i64":     TypeInt64,
		"str":     TypeStr,
		"boolean": TypeBool,
		"float":   TypeFloat,
	}
	for tok, want := range cases {
		got, err := ParseColumnType(tok)
		if err != nil {
			t.Fatalf("ParseColumnType(%q) failed: %v", tok, err)
		}
		if got != want {
			t.Fatalf("ParseColumnType(%q): expected %v, got %v", tok, want, got)
		}
	}
}

func TestParseColumnType_CaseSensitive(t *testing.T) {
	_, err := ParseColumnType("I64")

	var nct NoColType
	if !errors.As(err, &nct) {
		t.Fatalf("expected NoColType, got %v", err)
	}
	if nct.Text != "I64" {
		t.Fatalf("expected offending text %q, got %q", "I64", nct.Text)
	}
}

func TestParse_Basic(t *testing.T) {
	s, err := Parse("name:str,age:i64,active:boolean,score:float")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if s.Len() != 4 {
		t.Fatalf("expected 4 columns, got %d", s.Len())
	}

	assertCol := func(idx int, name string, ct ColumnType) {
		c := s.Column(idx)
		if c.Name != name {
			t.Fatalf("column %d: expected name %q, got %q", idx, name, c.Name)
		}
		if c.Type != ct {
			t.Fatalf("column %d: expected type %v, got %v", idx, ct, c.Type)
		}
	}

	assertCol(0, "name", TypeStr)
	assertCol(1, "age", TypeInt64)
	assertCol(2, "active", TypeBool)
	assertCol(3, "score", TypeFloat)
}

func TestParse_EncodeRoundTrip(t *testing.T) {
	schemas := []Schema{
		New(Column{Name: "a", Type: TypeInt64}),
		New(
			Column{Name: "name", Type: TypeStr},
			Column{Name: "age", Type: TypeInt64},
			Column{Name: "ok", Type: TypeBool},
			Column{Name: "w", Type: TypeFloat},
		),
	}
	for _, s := range schemas {
		text := Encode(s)
		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", text, err)
		}
		if !got.Equal(s) {
			t.Fatalf("round trip of %q: expected %v, got %v", text, s.Columns(), got.Columns())
		}
	}
}

func TestParse_UnknownTypeReportsPosition(t *testing.T) {
	_, err := Parse("name:str,age:int")

	var nct NoColType
	if !errors.As(err, &nct) {
		t.Fatalf("expected NoColType, got %v", err)
	}
	if nct.Pos != 2 || nct.Text != "int" {
		t.Fatalf("unexpected error: %+v", nct)
	}
}

func TestParse_InvalidColumn(t *testing.T) {
	cases := []struct {
		text string
		pos  int
		def  string
	}{
		{"name", 1, "name"},
		{"name:str,:i64", 2, ":i64"},
		{"name:str,age:i64:x", 2, "age:i64:x"},
		{"", 1, ""},
		{"name:str,", 2, ""},
	}
	for _, tc := range cases {
		_, err := Parse(tc.text)

		var ic InvalidColumn
		if !errors.As(err, &ic) {
			t.Fatalf("Parse(%q): expected InvalidColumn, got %v", tc.text, err)
		}
		if ic.Pos != tc.pos || ic.Text != tc.def {
			t.Fatalf("Parse(%q): unexpected error %+v", tc.text, ic)
		}
	}
}

func TestParse_DuplicateColumn(t *testing.T) {
	_, err := Parse("a:str,b:i64,a:float")

	var dc DuplicateColumn
	if !errors.As(err, &dc) {
		t.Fatalf("expected DuplicateColumn, got %v", err)
	}
	if dc.Pos != 3 || dc.Name != "a" {
		t.Fatalf("unexpected error: %+v", dc)
	}
}

func TestInSchema(t *testing.T) {
	s := New(
		Column{Name: "name", Type: TypeStr},
		Column{Name: "age", Type: TypeInt64},
	)

	w, ok := InSchema(s, "age")
	if !ok {
		t.Fatalf("expected to find column age")
	}
	if w.Pos() != 1 || w.Type() != TypeInt64 || w.Name() != "age" {
		t.Fatalf("unexpected witness: pos=%d type=%v name=%q", w.Pos(), w.Type(), w.Name())
	}

	if _, ok := InSchema(s, "Age"); ok {
		t.Fatalf("lookup must be case-sensitive")
	}
}

func TestInSchema_FirstMatchWins(t *testing.T) {
	s := New(
		Column{Name: "x", Type: TypeStr},
		Column{Name: "x", Type: TypeBool},
	)

	w, ok := InSchema(s, "x")
	if !ok || w.Pos() != 0 || w.Type() != TypeStr {
		t.Fatalf("expected first column, got pos=%d type=%v", w.Pos(), w.Type())
	}
}
