package diagnostic

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// WriterSink appends one text line per diagnostic to an io.Writer. Lines
// are written under a mutex so concurrent conversions never interleave
// within a line.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Append writes the rendered diagnostic followed by a newline.
func (s *WriterSink) Append(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.w, d.String())
}

// ZapSink forwards diagnostics to a zap logger at warn level. The rendered
// line stays the log message so the name and error message always appear
// together; the attribution and category ride along as fields.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink creates a sink logging through log.
func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

// Append logs the diagnostic.
func (s *ZapSink) Append(d Diagnostic) {
	fields := []zap.Field{zap.String("name", d.Name)}
	if d.Code != "" {
		fields = append(fields, zap.String("code", d.Code))
	}

	s.log.Warn(d.String(), fields...)
}

// Recorder captures diagnostics in memory so tests can assert on them.
type Recorder struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Append records the diagnostic.
func (r *Recorder) Append(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.diags = append(r.diags, d)
}

// Diagnostics returns a copy of everything appended so far.
func (r *Recorder) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)

	return out
}

// Lines returns the rendered form of every recorded diagnostic.
func (r *Recorder) Lines() []string {
	diags := r.Diagnostics()

	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = d.String()
	}

	return lines
}
