package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "COLREPLACE_MALFORMED_ROWS", "COLREPLACE_STRIP_BOM", "COLREPLACE_BUFFER_SIZE"} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "error")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSuccess(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", "City,Name\nLondon,Bob\nParis,Ann\n")
	out := filepath.Join(dir, "out.csv")

	var stderr bytes.Buffer
	code := run([]string{in, "City", "NYC", out}, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "City,Name\nNYC,Bob\nNYC,Ann\n", string(got))
	assert.Empty(t, stderr.String())
}

func TestRunReplacementLooksLikeFlag(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", "A,B\n1,2\n")
	out := filepath.Join(dir, "out.csv")

	var stderr bytes.Buffer
	code := run([]string{in, "B", "-1", out}, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "A,B\n1,-1\n", string(got))
}

func TestRunUsage(t *testing.T) {
	setupEnv(t)
	for _, args := range [][]string{nil, {"a", "b", "c"}, {"a", "b", "c", "d", "e"}} {
		var stderr bytes.Buffer
		code := run(args, &stderr)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr.String(), "Usage:")
		assert.Contains(t, stderr.String(), "expected 4 arguments")
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name    string
		input   *string
		column  string
		env     map[string]string
		outDir  string
		code    int
		message string
	}{
		{
			name:    "missingFile",
			column:  "A",
			code:    exitMissingInput,
			message: "input file missing\n",
		},
		{
			name:    "emptyFile",
			input:   ptr(""),
			column:  "A",
			code:    exitMissingInput,
			message: "input file missing\n",
		},
		{
			name:    "unknownColumn",
			input:   ptr("A,B\n1,2\n"),
			column:  "C",
			code:    exitUnknownColumn,
			message: "column name doesn't exist in the input file\n",
		},
		{
			name:   "malformedRowFailPolicy",
			input:  ptr("A,B\n1,2\n3\n"),
			column: "A",
			env:    map[string]string{"COLREPLACE_MALFORMED_ROWS": "fail"},
			code:   exitMalformedRow,
		},
		{
			name:   "outputDirMissing",
			input:  ptr("A,B\n1,2\n"),
			column: "A",
			outDir: "absent",
			code:   exitOutput,
		},
		{
			name:   "badConfig",
			input:  ptr("A,B\n1,2\n"),
			column: "A",
			env:    map[string]string{"COLREPLACE_BUFFER_SIZE": "-4"},
			code:   exitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			dir := t.TempDir()
			in := filepath.Join(dir, "in.csv")
			if tt.input != nil {
				in = writeFile(t, dir, "in.csv", *tt.input)
			}
			out := filepath.Join(dir, tt.outDir, "out.csv")

			var stderr bytes.Buffer
			code := run([]string{in, tt.column, "x", out}, &stderr)
			assert.Equal(t, tt.code, code, stderr.String())
			if tt.message != "" {
				assert.Equal(t, tt.message, stderr.String())
			} else {
				assert.NotEmpty(t, stderr.String())
			}
			assert.NoFileExists(t, out)
		})
	}
}

func ptr(s string) *string { return &s }
