package imp

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/implang/imp/internal/logio"
)

// tracer renders a one-line-per-step execution trace through a
// logio.Log, the same leveled-logging wrapper the VM this interpreter
// descends from uses for its own diagnostics. Every line carries a
// per-Run correlation id so that traces from concurrent Run calls
// sharing a writer can still be told apart.
type tracer struct {
	runID  string
	logger *logio.Log
}

func newTracer(w io.Writer) *tracer {
	t := &tracer{runID: uuid.NewString(), logger: &logio.Log{}}
	t.logger.SetOutput(nopWriteCloser{w})
	return t
}

// step logs one evaluated node. steps is humanize.Comma-formatted so
// that a long trace stays readable at a glance, matching how
// StepLimitExceeded formats its own counts.
func (t *tracer) step(steps uint64, node Node, rt Runtime) {
	t.logger.Printf("TRACE", "run=%s step=%s node=%T store=%d stdout=%d",
		t.runID, humanize.Comma(int64(steps)), node, rt.Store.Len(), rt.Stdout.Len())
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
