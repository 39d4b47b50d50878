package logio

import (
	"bytes"
	"sync"
)

// LineWriter is an io.Writer that buffers partial lines and flushes
// each completed one through Logf — what lets the step tracer hand
// its output to Options.Trace(io.Writer) while still emitting one
// leveled log line per traced step rather than one per Write call.
type LineWriter struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p and flushes any now-complete lines through Logf.
// Always returns len(p), nil: buffering never fails on its own.
func (lw *LineWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync flushes any remaining partial line through Logf.
func (lw *LineWriter) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *LineWriter) Close() error {
	return lw.Sync()
}

func (lw *LineWriter) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		i := bytes.IndexByte(lw.buf.Bytes(), '\n')
		if i >= 0 {
			lw.Logf("%s", lw.buf.Next(i))
			lw.buf.Next(1)
		} else if all {
			lw.Logf("%s", lw.buf.Next(lw.buf.Len()))
		} else {
			break
		}
	}
}
