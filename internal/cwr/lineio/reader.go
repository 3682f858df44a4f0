// Package lineio implements C6, the line reader: it consumes an 8-bit
// ASCII byte stream and produces a lazy, single-pass, non-restartable
// sequence of (line number, line bytes) pairs, splitting on CR/LF the way
// spec.md §4.6 describes. It plays the same role for the CWR pipeline that
// internal/parser/lexer.Lexer plays for SQL text: advance one unit at a
// time, track position, and hand the next unit to the caller.
package lineio

import (
	"bufio"
	"errors"
	"io"

	"github.com/leengari/cwrkit/internal/cwr/field"
)

// Reader iterates a byte stream as CWR lines. It is not safe for
// concurrent use; CWR files are processed sequentially (spec.md §5).
type Reader struct {
	br      *bufio.Reader
	lineNum int
	err     error
}

// New wraps r for line-at-a-time CWR reading.
func New(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 64*1024)}
}

// Next returns the next line's 1-based line number and its bytes with the
// CR/LF delimiter stripped, plus any Info-severity warnings about the
// delimiter itself (a lone LF, rather than CRLF, is accepted but flagged
// per spec.md §4.6). It returns io.EOF once the stream is exhausted; a
// trailing empty line at EOF (no bytes before the final delimiter) is
// suppressed rather than yielded as an empty record.
//
// CRLF is the expected delimiter; a lone CR not immediately followed by LF
// is ordinary data within the line, not a delimiter — bufio.ReadBytes only
// ever stops at '\n', so that case never needs special handling here.
func (r *Reader) Next() (lineNum int, line []byte, warnings []field.Warning, err error) {
	if r.err != nil {
		return 0, nil, nil, r.err
	}

	raw, readErr := r.br.ReadBytes('\n')
	if len(raw) == 0 {
		r.err = readErr
		return 0, nil, nil, readErr
	}

	hadDelimiter := raw[len(raw)-1] == '\n'
	if !hadDelimiter && readErr != nil {
		// Final line of the stream with no trailing newline at all.
		r.err = readErr
		r.lineNum++
		return r.lineNum, raw, nil, nil
	}

	trimmed, loneLF := stripDelimiter(raw)
	if len(trimmed) == 0 {
		if _, peekErr := r.br.Peek(1); errors.Is(peekErr, io.EOF) {
			// Trailing blank line right before EOF: suppressed, not yielded.
			r.err = io.EOF
			return 0, nil, nil, io.EOF
		}
	}

	r.lineNum++
	if loneLF {
		warnings = append(warnings, field.Warning{
			Field:       "",
			Title:       "",
			Source:      string(raw),
			Severity:    field.Info,
			Description: "line terminated by a lone LF instead of CRLF",
		})
	}
	if readErr != nil && !errors.Is(readErr, io.EOF) {
		r.err = readErr
	}
	return r.lineNum, trimmed, warnings, nil
}

// stripDelimiter removes a trailing "\r\n" or lone trailing "\n" from raw,
// reporting which form was present.
func stripDelimiter(raw []byte) (line []byte, loneLF bool) {
	n := len(raw)
	if n == 0 || raw[n-1] != '\n' {
		return raw, false
	}
	n--
	if n > 0 && raw[n-1] == '\r' {
		return raw[:n-1], false
	}
	return raw[:n], true
}

// All drains the reader into a slice of lines, for tests and small fixture
// files; large inputs should use Next directly to stay in constant memory
// per spec.md §5.
func All(r *Reader) ([][]byte, error) {
	var lines [][]byte
	for {
		_, line, _, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return lines, err
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		lines = append(lines, cp)
	}
}
