package colreplace

import (
	"strings"
)

// Split breaks line into fields separated by comma. There is no quoting: every
// comma byte ends a field. The returned fields share memory with line.
//
// An empty line yields a single empty field and a trailing comma yields a
// trailing empty field, so Join(Split(line, c), c) == line for every input.
func Split(line string, comma byte) []string {
	return AppendSplit(make([]string, 0, strings.Count(line, string(comma))+1), line, comma)
}

// AppendSplit appends the fields of line to dst[:0] and returns the result,
// reusing dst's backing array when it is large enough.
func AppendSplit(dst []string, line string, comma byte) []string {
	dst = dst[:0]
	for {
		i := strings.IndexByte(line, comma)
		if i < 0 {
			return append(dst, line)
		}
		dst = append(dst, line[:i])
		line = line[i+1:]
	}
}

// Join places comma between consecutive fields. No delimiter is added before the
// first or after the last field, and no newline is appended.
func Join(fields []string, comma byte) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	}

	n := len(fields) - 1
	for _, f := range fields {
		n += len(f)
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(fields[0])
	for _, f := range fields[1:] {
		b.WriteByte(comma)
		b.WriteString(f)
	}
	return b.String()
}
