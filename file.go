package colreplace

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// newFilePerm matches os.Create; the process umask is applied on creation.
const newFilePerm = 0o666

// ReplaceFile rewrites the planned columns of inPath into outPath.
//
// Output is staged in a temporary file in outPath's directory. The temporary file
// is created only after the header is parsed and every column resolved, and it
// replaces outPath only when the whole input has been processed. On any failure
// outPath is left exactly as it was, or absent if it did not exist.
//
// A replaced outPath keeps its permission bits. A new outPath gets 0666 minus the
// umask, as os.Create would give it.
func ReplaceFile(inPath, outPath string, plan Plan, opts ...Option) (Stats, error) {
	o := buildOptions(opts)

	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, &InputError{Path: inPath, Err: err}
	}
	defer in.Close()

	var src io.Reader = in
	if o.stripBOM {
		src = newBOMSkippingReader(in)
	}

	var tmp *os.File
	published := false
	defer func() {
		if tmp != nil && !published {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	open := func() (io.Writer, error) {
		name := filepath.Join(filepath.Dir(outPath), "."+filepath.Base(outPath)+"."+uuid.NewString()+".tmp")
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, newFilePerm)
		if err != nil {
			return nil, &OutputError{Path: outPath, Err: err}
		}
		tmp = f
		o.logger.Debug("staging output", "path", outPath, "temp", f.Name())
		return f, nil
	}

	stats, err := NewPipeline(plan, opts...).Run(src, open)
	if err != nil {
		var inErr *InputError
		if errors.As(err, &inErr) && inErr.Path == "" {
			inErr.Path = inPath
		}
		var outErr *OutputError
		if errors.As(err, &outErr) && outErr.Path == "" {
			outErr.Path = outPath
		}
		return stats, err
	}

	if info, err := os.Stat(outPath); err == nil && info.Mode().IsRegular() {
		if err := tmp.Chmod(info.Mode().Perm()); err != nil {
			return stats, &OutputError{Path: outPath, Err: err}
		}
	}
	if err := tmp.Close(); err != nil {
		return stats, &OutputError{Path: outPath, Err: err}
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		os.Remove(tmp.Name())
		published = true
		return stats, &OutputError{Path: outPath, Err: err}
	}
	published = true
	return stats, nil
}
