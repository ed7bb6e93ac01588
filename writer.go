package colreplace

import (
	"bufio"
	"errors"
	"io"
)

var (
	errNilWriter      = errors.New("colreplace: writer is nil")
	errWriterNoTarget = errors.New("colreplace: writer destination cannot be nil")
)

// Writer emits delimited lines through an internal buffer. Fields are written
// verbatim; a field containing the delimiter is not quoted.
type Writer struct {
	dst *bufio.Writer

	// Comma is the field delimiter. Default is ','.
	Comma byte
	// UseCRLF terminates lines with \r\n when set.
	UseCRLF bool

	err error
}

// NewWriter creates a Writer with the default buffer size.
func NewWriter(w io.Writer) *Writer {
	return NewWriterSize(w, defaultBufferSize)
}

// NewWriterSize creates a Writer whose buffer holds at least size bytes.
func NewWriterSize(w io.Writer, size int) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:   bufio.NewWriterSize(w, size),
		Comma: ',',
	}
}

// Write joins fields with the delimiter and terminates the line with the configured newline.
func (w *Writer) Write(fields []string) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	comma := w.Comma
	if comma == 0 {
		comma = ','
	}

	for i := range fields {
		if i > 0 {
			if err := w.dst.WriteByte(comma); err != nil {
				w.err = err
				return err
			}
		}
		if _, err := w.dst.WriteString(fields[i]); err != nil {
			w.err = err
			return err
		}
	}

	if w.UseCRLF {
		if _, err := w.dst.WriteString("\r\n"); err != nil {
			w.err = err
			return err
		}
	} else {
		if err := w.dst.WriteByte('\n'); err != nil {
			w.err = err
			return err
		}
	}
	return nil
}

// WriteAll writes multiple lines, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}
