package colreplace

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestBOMSkippingReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "bom only", in: "\xef\xbb\xbf", want: ""},
		{name: "no bom", in: "A,B\n", want: "A,B\n"},
		{name: "bom header", in: "\xef\xbb\xbfA,B\n1,2\n", want: "A,B\n1,2\n"},
		{name: "partial bom kept", in: "\xef\xbb", want: "\xef\xbb"},
		{name: "bom prefix then text", in: "\xefA,B\n", want: "\xefA,B\n"},
		{name: "second bom kept", in: "\xef\xbb\xbf\xef\xbb\xbfA\n", want: "\xef\xbb\xbfA\n"},
		{name: "invalid utf8 kept", in: "\xef\xbb\xbfA\nJos\xe9,\xff\xfe\n", want: "A\nJos\xe9,\xff\xfe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, mode := range []struct {
				name string
				wrap func(io.Reader) io.Reader
			}{
				{name: "whole", wrap: func(r io.Reader) io.Reader { return r }},
				{name: "one byte", wrap: iotest.OneByteReader},
			} {
				got, err := io.ReadAll(newBOMSkippingReader(mode.wrap(strings.NewReader(tt.in))))
				if err != nil {
					t.Fatalf("%s: ReadAll() error = %v", mode.name, err)
				}
				if string(got) != tt.want {
					t.Fatalf("%s: got %q want %q", mode.name, got, tt.want)
				}
			}
		})
	}
}

func TestBOMSkippingReaderLargeInput(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("London,Jos\xe9\n", 2000)
	got, err := io.ReadAll(newBOMSkippingReader(strings.NewReader("\xef\xbb\xbf" + body)))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != body {
		t.Fatalf("output differs from input without BOM: got %d bytes want %d", len(got), len(body))
	}
}
