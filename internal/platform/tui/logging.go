package tui

import (
	"bytes"
	"io"

	"github.com/charmbracelet/log"
)

// DeferredLog buffers log output while the program owns the terminal.
// Flush it once the terminal has been released.
type DeferredLog struct {
	buf    bytes.Buffer
	Logger *log.Logger
}

// NewDeferredLog creates a buffered logger at the given level.
func NewDeferredLog(level log.Level) *DeferredLog {
	d := &DeferredLog{}
	d.Logger = log.NewWithOptions(&d.buf, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return d
}

// Flush writes everything logged so far to w and empties the buffer.
func (d *DeferredLog) Flush(w io.Writer) error {
	_, err := d.buf.WriteTo(w)
	return err
}
