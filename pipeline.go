package colreplace

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// State is a stage of a Pipeline run.
type State int

const (
	AwaitingHeader State = iota
	HeaderParsed
	StreamingRows
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case AwaitingHeader:
		return "awaiting_header"
	case HeaderParsed:
		return "header_parsed"
	case StreamingRows:
		return "streaming_rows"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MalformedPolicy decides what happens to a data row whose field count differs from the header.
type MalformedPolicy int

const (
	// SkipMalformed drops the row, logs a warning naming its line and keeps going.
	SkipMalformed MalformedPolicy = iota
	// FailMalformed aborts the run with a *RowError.
	FailMalformed
)

func (p MalformedPolicy) String() string {
	switch p {
	case SkipMalformed:
		return "skip"
	case FailMalformed:
		return "fail"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseMalformedPolicy converts "skip" or "fail" (case-insensitive) to a MalformedPolicy.
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip", "":
		return SkipMalformed, nil
	case "fail":
		return FailMalformed, nil
	default:
		return SkipMalformed, fmt.Errorf("colreplace: unknown malformed row policy %q", s)
	}
}

// Stats summarises a run.
type Stats struct {
	// Rows counts data lines read, excluding the header.
	Rows int
	// Written counts data lines emitted.
	Written int
	// Skipped counts malformed rows dropped under SkipMalformed.
	Skipped int
}

// OpenFunc supplies the output destination. A Pipeline calls it at most once,
// and only after the header has been parsed and every column resolved.
type OpenFunc func() (io.Writer, error)

type options struct {
	policy     MalformedPolicy
	logger     *slog.Logger
	bufferSize int
	stripBOM   bool
}

// Option configures a Pipeline or ReplaceFile.
type Option func(*options)

// WithMalformedPolicy selects how rows with the wrong field count are handled.
func WithMalformedPolicy(p MalformedPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger routes diagnostics to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBufferSize sets the read and write buffer size in bytes.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithStripBOM drops a leading UTF-8 byte order mark from the input. All other
// bytes, including invalid UTF-8, are kept. ReplaceFile only.
func WithStripBOM(strip bool) Option {
	return func(o *options) { o.stripBOM = strip }
}

func buildOptions(opts []Option) options {
	o := options{
		policy:     SkipMalformed,
		logger:     slog.Default(),
		bufferSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Pipeline copies a header and rewrites the planned columns of every data row.
// A Pipeline is single-use and not safe for concurrent use.
type Pipeline struct {
	plan  Plan
	opts  options
	state State
}

// NewPipeline creates a Pipeline for plan.
func NewPipeline(plan Plan, opts ...Option) *Pipeline {
	return &Pipeline{
		plan:  plan,
		opts:  buildOptions(opts),
		state: AwaitingHeader,
	}
}

// State returns the stage the pipeline has reached.
func (p *Pipeline) State() State {
	return p.state
}

// Run streams in to the writer returned by open. open is not called when the input
// has no header or a planned column is missing, so no output exists on those failures.
// A blank first line names no columns and is reported as ErrMissingInput, like an empty input.
func (p *Pipeline) Run(in io.Reader, open OpenFunc) (Stats, error) {
	var stats Stats
	if p.state != AwaitingHeader {
		return stats, fmt.Errorf("colreplace: pipeline already ran (state %s)", p.state)
	}
	log := p.opts.logger

	r := NewReaderSize(in, p.opts.bufferSize)
	r.ReuseRecord = true

	header, err := r.Read()
	switch {
	case err == io.EOF:
		return stats, p.fail(&InputError{Err: errors.New("no header line")})
	case err != nil:
		return stats, p.fail(&InputError{Err: err})
	case len(header) == 1 && header[0] == "":
		return stats, p.fail(&InputError{Err: errors.New("blank header line")})
	}
	p.transition(HeaderParsed)

	actions, err := p.plan.Resolve(header)
	if err != nil {
		return stats, p.fail(err)
	}
	tr, err := NewTransformer(len(header), actions)
	if err != nil {
		return stats, p.fail(err)
	}

	dst, err := open()
	if err != nil {
		if !errors.Is(err, ErrOutputOpen) {
			err = &OutputError{Err: err}
		}
		return stats, p.fail(err)
	}
	p.transition(StreamingRows)

	w := NewWriterSize(dst, p.opts.bufferSize)
	w.UseCRLF = r.CRLF()
	if err := w.Write(header); err != nil {
		return stats, p.fail(&OutputError{Err: err})
	}

	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, p.fail(fmt.Errorf("colreplace: read line %d: %w", r.Line()+1, err))
		}
		stats.Rows++

		if err := tr.Apply(fields); err != nil {
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				return stats, p.fail(err)
			}
			rowErr.Line = r.Line()
			if p.opts.policy == FailMalformed {
				return stats, p.fail(rowErr)
			}
			stats.Skipped++
			log.Warn("skipping malformed row", "line", rowErr.Line, "fields", rowErr.Got, "want", rowErr.Want)
			continue
		}

		if err := w.Write(fields); err != nil {
			return stats, p.fail(&OutputError{Err: err})
		}
		stats.Written++
	}

	if err := w.Flush(); err != nil {
		return stats, p.fail(&OutputError{Err: err})
	}
	p.transition(Done)
	log.Info("column replacement complete", "rows", stats.Rows, "written", stats.Written, "skipped", stats.Skipped)
	return stats, nil
}

func (p *Pipeline) transition(to State) {
	p.opts.logger.Debug("pipeline state", "from", p.state.String(), "to", to.String())
	p.state = to
}

func (p *Pipeline) fail(err error) error {
	p.opts.logger.Debug("pipeline state", "from", p.state.String(), "to", Failed.String(), "error", err)
	p.state = Failed
	return err
}
