package colreplace

import (
	"bytes"
	"io"
	"unsafe"
)

const defaultBufferSize = 4 << 10 // 4096 bytes

// Reader splits a stream of newline-terminated lines into fields.
type Reader struct {
	src io.Reader

	// Comma is the field delimiter. Default is ','.
	Comma byte
	// ReuseRecord indicates whether Read may reuse the backing storage of the
	// returned slice and its strings. A reused record is only valid until the next Read.
	ReuseRecord bool

	buf    []byte
	bufPos int
	bufLen int
	bufErr error

	lineBuf  []byte
	record   []string
	finished bool
	line     int
	crlf     bool
}

// NewReader creates a Reader with the default buffer size. It panics if r is nil.
func NewReader(r io.Reader) *Reader {
	return NewReaderSize(r, defaultBufferSize)
}

// NewReaderSize creates a Reader whose read buffer holds size bytes, panicking if r is nil.
// Sizes below 16 bytes are raised to 16.
func NewReaderSize(r io.Reader, size int) *Reader {
	if r == nil {
		panic("colreplace: reader source cannot be nil")
	}
	if size < 16 {
		size = 16
	}

	return &Reader{
		src:     r,
		Comma:   ',',
		buf:     make([]byte, size),
		lineBuf: make([]byte, 0, 256),
		record:  make([]string, 0, 16),
	}
}

// Read returns the fields of the next line; io.EOF signals that no lines remain.
// The terminating "\n" or "\r\n" is not part of the last field. A final line
// without a terminator is still returned.
func (r *Reader) Read() (fields []string, err error) {
	if r == nil || r.src == nil {
		return nil, io.EOF
	}
	if r.finished {
		return nil, io.EOF
	}

	r.lineBuf = r.lineBuf[:0]

	for {
		if r.bufPos >= r.bufLen {
			if r.bufErr != nil {
				err := r.bufErr
				r.bufErr = nil
				if err != io.EOF {
					return nil, err
				}
				r.finished = true
				// Flush a trailing line if data ended without a newline.
				if len(r.lineBuf) > 0 {
					r.line++
					r.crlf = false
					return r.buildRecord(), nil
				}
				return nil, io.EOF
			}

			// Pull the next chunk from the source.
			n, err := r.src.Read(r.buf)
			r.bufPos = 0
			r.bufLen = n
			r.bufErr = err
			continue
		}

		data := r.buf[r.bufPos:r.bufLen]
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			r.lineBuf = append(r.lineBuf, data...)
			r.bufPos = r.bufLen
			continue
		}

		r.lineBuf = append(r.lineBuf, data[:idx]...)
		r.bufPos += idx + 1
		r.line++
		r.crlf = false
		if n := len(r.lineBuf); n > 0 && r.lineBuf[n-1] == '\r' {
			r.lineBuf = r.lineBuf[:n-1]
			r.crlf = true
		}
		return r.buildRecord(), nil
	}
}

// ReadAll exhausts the reader and returns every remaining line's fields. Records
// are never reused here, regardless of ReuseRecord.
func (r *Reader) ReadAll() (records [][]string, err error) {
	if r == nil {
		return nil, nil
	}
	reuse := r.ReuseRecord
	r.ReuseRecord = false
	defer func() { r.ReuseRecord = reuse }()

	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// Line returns the 1-based number of the line most recently returned by Read.
func (r *Reader) Line() int {
	return r.line
}

// CRLF reports whether the line most recently returned by Read ended with "\r\n".
func (r *Reader) CRLF() bool {
	return r.crlf
}

// buildRecord splits the buffered line, sharing one string across all fields.
func (r *Reader) buildRecord() []string {
	comma := r.Comma
	if comma == 0 {
		comma = ','
	}

	var line string
	if r.ReuseRecord {
		if len(r.lineBuf) > 0 {
			// Zero-copy; the fields alias lineBuf until the next Read.
			line = unsafe.String(unsafe.SliceData(r.lineBuf), len(r.lineBuf))
		}
		r.record = AppendSplit(r.record, line, comma)
		return r.record
	}

	line = string(r.lineBuf)
	return Split(line, comma)
}
