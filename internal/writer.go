package internal

import (
	"fmt"
	"io"
	"os"
)

// Writer carries the user-facing output of a command. Results go to the
// output stream; progress and warnings go to the error stream so that the
// output stays safe to pipe.
type Writer interface {
	// Println writes a line to the output stream.
	Println(v ...any)

	// Printf writes a formatted message to the output stream.
	Printf(format string, v ...any)

	// Warningf writes a formatted warning to the error stream.
	Warningf(format string, v ...any)

	// Out returns the output stream.
	Out() io.Writer

	// Err returns the error stream, used for progress output.
	Err() io.Writer
}

type StandardWriter struct {
	out io.Writer
	err io.Writer
}

// NewStandardWriter creates a Writer bound to stdout and stderr.
func NewStandardWriter() *StandardWriter {
	return NewCustomWriter(os.Stdout, os.Stderr)
}

// NewCustomWriter creates a Writer with custom output and error streams.
func NewCustomWriter(out, err io.Writer) *StandardWriter {
	return &StandardWriter{
		out: out,
		err: err,
	}
}

func (w *StandardWriter) Println(v ...any) {
	fmt.Fprintln(w.out, v...)
}

func (w *StandardWriter) Printf(format string, v ...any) {
	fmt.Fprintf(w.out, format, v...)
}

// Warningf writes a formatted warning prefixed with "Warning: " and
// terminated by a newline.
func (w *StandardWriter) Warningf(format string, v ...any) {
	fmt.Fprintf(w.err, "Warning: "+format+"\n", v...)
}

func (w *StandardWriter) Out() io.Writer {
	return w.out
}

func (w *StandardWriter) Err() io.Writer {
	return w.err
}
