// Package repl runs the read-execute-print loop of a session.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"goTable/internal/engine"
	"goTable/internal/render"
)

// DefaultMaxLineBytes is the line limit used when Options.MaxLineBytes is 0.
const DefaultMaxLineBytes = 1 << 20

// Options configures Run.
type Options struct {
	// Prompt is written before each line is read. Empty disables it.
	Prompt string

	// MaxLineBytes caps the length of one input line. Longer lines are
	// rejected and skipped; the session continues.
	MaxLineBytes int
}

// LineTooLong reports an input line over the configured limit.
type LineTooLong struct {
	Limit int
}

func (e LineTooLong) Error() string {
	return fmt.Sprintf("line is longer than %d bytes", e.Limit)
}

type inputLine struct {
	text    string
	tooLong bool
	err     error
}

// Run reads commands from in, one per line, until a quit command, end of
// input or cancellation of ctx. Blank lines are skipped. Rejected commands
// are reported on out and leave the session's table unchanged.
//
// Lines are read on a separate goroutine so that cancellation is noticed
// while waiting for input. When ctx is cancelled that goroutine may stay
// blocked in a read on in until in is closed.
func Run(ctx context.Context, in io.Reader, out io.Writer, sess *engine.Session, rnd *render.Renderer, opts Options) error {
	limit := opts.MaxLineBytes
	if limit <= 0 {
		limit = DefaultMaxLineBytes
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, bufio.NewReader(in), limit)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if opts.Prompt != "" {
			if _, err := io.WriteString(out, opts.Prompt); err != nil {
				return fmt.Errorf("write prompt: %w", err)
			}
		}

		var l inputLine
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				return nil
			}
			l = next
		}

		if l.err != nil {
			return fmt.Errorf("read input: %w", l.err)
		}

		if l.tooLong {
			if werr := rnd.Error(out, LineTooLong{Limit: limit}); werr != nil {
				return fmt.Errorf("write error: %w", werr)
			}
			continue
		}

		if strings.TrimSpace(l.text) == "" {
			continue
		}

		res, err := sess.Execute(l.text)
		if err != nil {
			if werr := rnd.Error(out, err); werr != nil {
				return fmt.Errorf("write error: %w", werr)
			}
			continue
		}

		if err := rnd.Result(out, res); err != nil {
			return fmt.Errorf("write result: %w", err)
		}

		if sess.Closed() {
			return nil
		}
	}
}

// readLines feeds lines from br into the returned channel until end of
// input, a read error, or ctx is done. A read error other than io.EOF is
// sent as the last item.
func readLines(ctx context.Context, br *bufio.Reader, limit int) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)
		for {
			text, tooLong, n, err := readLine(br, limit)

			if n > 0 {
				select {
				case lines <- inputLine{text: text, tooLong: tooLong}:
				case <-ctx.Done():
					return
				}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case lines <- inputLine{err: err}:
					case <-ctx.Done():
					}
				}
				return
			}
		}
	}()

	return lines
}

// readLine reads up to and including the next '\n'. A line over limit bytes
// is drained and reported as tooLong without being kept in memory. n is the
// number of bytes consumed, so a final line without a newline is still
// returned alongside io.EOF.
func readLine(br *bufio.Reader, limit int) (text string, tooLong bool, n int, err error) {
	var buf []byte
	for {
		chunk, rerr := br.ReadSlice('\n')
		n += len(chunk)

		if !tooLong {
			size := len(buf) + len(chunk)
			if len(chunk) > 0 && chunk[len(chunk)-1] == '\n' {
				size--
			}
			if size > limit {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		if errors.Is(rerr, bufio.ErrBufferFull) {
			continue
		}

		text = strings.TrimSuffix(string(buf), "\n")
		text = strings.TrimSuffix(text, "\r")
		if tooLong {
			text = ""
		}
		return text, tooLong, n, rerr
	}
}
