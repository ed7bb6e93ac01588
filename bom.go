package colreplace

import (
	"bytes"
	"io"

	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// bomStripper drops a leading UTF-8 byte order mark and passes every other byte
// through unchanged. Invalid UTF-8 is not touched.
type bomStripper struct {
	checked bool
}

// Transform implements transform.Transformer.
func (t *bomStripper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !t.checked {
		// Wait until three bytes are available unless the input is shorter.
		if len(src) < len(utf8BOM) && !atEOF && bytes.HasPrefix(utf8BOM, src) {
			return 0, 0, transform.ErrShortSrc
		}
		t.checked = true
		if bytes.HasPrefix(src, utf8BOM) {
			src = src[len(utf8BOM):]
			nSrc = len(utf8BOM)
		}
	}

	n := copy(dst, src)
	nDst = n
	nSrc += n
	if n < len(src) {
		err = transform.ErrShortDst
	}
	return nDst, nSrc, err
}

// Reset implements transform.Transformer.
func (t *bomStripper) Reset() {
	t.checked = false
}

// newBOMSkippingReader wraps r so a leading UTF-8 BOM is removed.
func newBOMSkippingReader(r io.Reader) io.Reader {
	return transform.NewReader(r, &bomStripper{})
}
