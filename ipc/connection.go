package ipc

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// Connection is the agent's line channel to the judge: tokens in, commands out.
type Connection struct {
	in  *LineReader
	out *bufio.Writer
}

func NewConnection(r io.Reader, w io.Writer) *Connection {
	return &Connection{
		in:  NewLineReader(r),
		out: bufio.NewWriter(w),
	}
}

// ReadTokens blocks for the next input line. See LineReader.ReadTokens.
func (c *Connection) ReadTokens() ([]string, error) {
	return c.in.ReadTokens()
}

// Line returns how many input lines have been consumed.
func (c *Connection) Line() int { return c.in.Line() }

// Send writes one line per command and flushes, so nothing is held back
// across the turn boundary while the judge waits.
func (c *Connection) Send(cmds []Command) error {
	for _, cmd := range cmds {
		if err := WriteLine(c.out, cmd); err != nil {
			return err
		}
	}
	if err := c.out.Flush(); err != nil {
		return fmt.Errorf("flush commands: %w", err)
	}
	slog.Debug("sent commands", "count", len(cmds))
	return nil
}
