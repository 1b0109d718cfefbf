// Package render presents command results and errors as text or JSON.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"goTable/internal/command"
	"goTable/internal/engine"
	"goTable/internal/row"
	"goTable/internal/schema"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text or json)", s)
	}
}

// Renderer writes results and errors in one Format.
type Renderer struct {
	format Format
}

// New returns a Renderer for format.
func New(format Format) *Renderer {
	return &Renderer{format: format}
}

// Result writes the output of an applied command.
func (r *Renderer) Result(w io.Writer, res engine.Result) error {
	if r.format == FormatJSON {
		return writeJSON(w, ViewResult(res))
	}
	return writeLines(w, ResultLines(res))
}

// Error writes a rejected command's error.
func (r *Renderer) Error(w io.Writer, err error) error {
	v := ViewError(err)
	if r.format == FormatJSON {
		return writeJSON(w, struct {
			Error ErrorView `json:"error"`
		}{v})
	}
	return writeLines(w, v.lines())
}

// ResultLines renders res as text lines.
func ResultLines(res engine.Result) []string {
	switch c := res.Command.(type) {
	case *command.PrintSchema:
		return []string{schema.Encode(res.After.Schema())}
	case *command.PrintSize:
		return []string{strconv.Itoa(res.After.Size())}
	case *command.NewSchema, *command.Prepend, *command.Delete:
		return []string{"ok"}
	case *command.Get:
		return []string{row.Encode(res.Before.Get(c.Index))}
	case *command.ColumnLookup:
		vals := res.Before.Column(c.Witness)
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = row.EncodeValue(v)
		}
		return out
	case *command.Help:
		return append([]string(nil), command.Usage...)
	case *command.Quit:
		return []string{"bye"}
	default:
		return nil
	}
}

// ColumnView is the JSON form of a schema column.
type ColumnView struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ResultView is the JSON form of an applied command.
type ResultView struct {
	Command string       `json:"command"`
	Schema  []ColumnView `json:"schema,omitempty"`
	Size    *int         `json:"size,omitempty"`
	Row     []any        `json:"row,omitempty"`
	Column  string       `json:"column,omitempty"`
	Values  *[]any       `json:"values,omitempty"`
	Usage   []string     `json:"usage,omitempty"`
}

// ViewResult builds the JSON form of res.
func ViewResult(res engine.Result) ResultView {
	v := ResultView{Command: res.Command.Verb()}
	size := res.After.Size()

	switch c := res.Command.(type) {
	case *command.PrintSchema, *command.NewSchema:
		v.Schema = viewSchema(res.After.Schema())
	case *command.PrintSize:
		v.Size = &size
	case *command.Prepend:
		v.Row = viewValues(c.Row.Values())
		v.Size = &size
	case *command.Get:
		v.Row = viewValues(res.Before.Get(c.Index).Values())
	case *command.Delete:
		v.Row = viewValues(res.Before.Get(c.Index).Values())
		v.Size = &size
	case *command.ColumnLookup:
		v.Column = c.Name
		vals := viewValues(res.Before.Column(c.Witness))
		if vals == nil {
			vals = []any{}
		}
		v.Values = &vals
	case *command.Help:
		v.Usage = command.Usage
	}
	return v
}

func viewSchema(s schema.Schema) []ColumnView {
	cols := s.Columns()
	out := make([]ColumnView, len(cols))
	for i, c := range cols {
		out[i] = ColumnView{Name: c.Name, Type: c.Type.String()}
	}
	return out
}

func viewValues(vals []row.Value) []any {
	if len(vals) == 0 {
		return nil
	}
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v.Any()
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}
