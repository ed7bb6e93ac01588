package colreplace

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "empty", line: "", want: []string{""}},
		{name: "single", line: "City", want: []string{"City"}},
		{name: "pair", line: "City,Name", want: []string{"City", "Name"}},
		{name: "trailingComma", line: "a,b,", want: []string{"a", "b", ""}},
		{name: "leadingComma", line: ",a", want: []string{"", "a"}},
		{name: "onlyCommas", line: ",,", want: []string{"", "", ""}},
		{name: "spacesKept", line: " a , b ", want: []string{" a ", " b "}},
		{name: "quotesKept", line: `"x,y",z`, want: []string{`"x`, `y"`, "z"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Split(tc.line, ',')
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Split(%q) = %#v, want %#v", tc.line, got, tc.want)
			}
			if back := Join(got, ','); back != tc.line {
				t.Fatalf("Join(Split(%q)) = %q", tc.line, back)
			}
		})
	}
}

func TestAppendSplitReusesBacking(t *testing.T) {
	t.Parallel()

	dst := make([]string, 0, 8)
	got := AppendSplit(dst, "a,b,c", ',')
	if &got[0] != &dst[:1][0] {
		t.Fatalf("AppendSplit() did not reuse dst backing array")
	}

	got = AppendSplit(got, "x", ',')
	if !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("AppendSplit() = %#v, want [x]", got)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields []string
		comma  byte
		want   string
	}{
		{name: "nil", fields: nil, comma: ',', want: ""},
		{name: "single", fields: []string{"a"}, comma: ',', want: "a"},
		{name: "many", fields: []string{"NYC", "Bob"}, comma: ',', want: "NYC,Bob"},
		{name: "emptyFields", fields: []string{"", ""}, comma: ',', want: ","},
		{name: "semicolon", fields: []string{"a", "b", "c"}, comma: ';', want: "a;b;c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Join(tc.fields, tc.comma); got != tc.want {
				t.Fatalf("Join(%#v) = %q, want %q", tc.fields, got, tc.want)
			}
		})
	}
}
