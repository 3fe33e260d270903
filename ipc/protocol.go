package ipc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ErrClosed reports that the judge closed the input channel, i.e. the match is over.
var ErrClosed = fmt.Errorf("input channel closed: %w", io.EOF)

// maxLineSize bounds a single input line. Entity lines are ~60 bytes; the
// limit only guards against a runaway stream.
const maxLineSize = 64 * 1024

// LineReader splits the judge's input into whitespace-separated tokens, one
// line at a time.
type LineReader struct {
	scanner *bufio.Scanner
	line    int
}

func NewLineReader(r io.Reader) *LineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &LineReader{scanner: s}
}

// ReadTokens blocks until the next line is available and returns its tokens.
// It returns ErrClosed once the input is exhausted.
func (lr *LineReader) ReadTokens() ([]string, error) {
	if !lr.scanner.Scan() {
		if err := lr.scanner.Err(); err != nil {
			return nil, fmt.Errorf("read line %d: %w", lr.line+1, err)
		}
		return nil, ErrClosed
	}
	lr.line++
	return strings.Fields(lr.scanner.Text()), nil
}

// Line returns the number of lines consumed so far.
func (lr *LineReader) Line() int { return lr.line }

// WriteLine writes one command line. The caller flushes.
func WriteLine(w *bufio.Writer, cmd Command) error {
	if _, err := w.WriteString(cmd.String()); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	return nil
}
