// Package engine applies parsed commands to tables and keeps the current
// table of an interactive session.
package engine

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"goTable/internal/command"
	"goTable/internal/errunion"
	"goTable/internal/logging"
	"goTable/internal/table"
)

// ErrClosed is returned by Execute once a quit command has been applied.
var ErrClosed = errors.New("session closed")

// Result describes one applied command: the table it was parsed against and
// the table it produced.
type Result struct {
	Command command.Command
	Before  table.Table
	After   table.Table
}

// Session holds the one current table of an interactive session and
// replaces it after each successfully parsed command.
type Session struct {
	id     string
	table  table.Table
	logger *slog.Logger
	closed bool
}

// New creates a session starting from initial. A nil logger uses
// slog.Default().
func New(initial table.Table, logger *slog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:     id,
		table:  initial,
		logger: logging.WithFields(logger, "session_id", id),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Table returns the current table.
func (s *Session) Table() table.Table { return s.table }

// Closed reports whether the session has applied a quit command.
func (s *Session) Closed() bool { return s.closed }

// Execute parses line against the current table and applies it. On a parse
// error the table is left as it was and the error (an errunion.Union over
// command.Kinds) is returned.
func (s *Session) Execute(line string) (Result, error) {
	if s.closed {
		return Result{}, ErrClosed
	}

	cmd, err := command.Parse(s.table, line)
	if err != nil {
		if u, ok := errunion.As(err); ok {
			s.logger.Debug("command rejected", "kind", u.Kind().String(), "error", err)
		}
		return Result{}, err
	}

	before := s.table
	after := Apply(before, cmd)
	s.table = after

	switch c := cmd.(type) {
	case *command.NewSchema:
		s.logger.Info("schema replaced", "schema", c.Schema.String(), "dropped_rows", before.Size())
	case *command.Quit:
		s.closed = true
		s.logger.Info("session closed", "size", after.Size())
	default:
		s.logger.Debug("command applied", "verb", cmd.Verb(), "size", after.Size())
	}

	return Result{Command: cmd, Before: before, After: after}, nil
}
