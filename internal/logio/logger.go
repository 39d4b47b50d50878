// Package logio provides the leveled logging sink shared by the
// step tracer (trace.go) and cmd/impc's own stderr reporting, trimmed
// to the subset either actually drives: a single destination stream,
// level-tagged lines, and an exit code that goes non-zero once an
// error has been logged.
package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Log is a leveled logging facility around a single output stream.
type Log struct {
	sync.Mutex
	output   io.WriteCloser
	buf      bytes.Buffer
	exitCode int
}

// SetOutput sets the log's output stream, closing any prior one.
func (log *Log) SetOutput(out io.WriteCloser) {
	log.Lock()
	defer log.Unlock()
	if log.output != nil {
		log.output.Close()
	}
	log.output = out
}

// ExitCode returns a code suitable for os.Exit, so a CLI driver can
// exit non-zero after any error-level log line.
func (log *Log) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a printf-style function that logs at level.
func (log *Log) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs a non-nil error at ERROR level (formatted with %+v) and
// sets ExitCode() to 2.
func (log *Log) ErrorIf(err error) {
	if err != nil {
		log.Lock()
		defer log.Unlock()
		log.reportError(err)
	}
}

// Errorf is Printf("ERROR", ...) plus marking ExitCode() non-zero.
func (log *Log) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.printf("ERROR", mess, args...)
	log.exitCode = 1
}

// Printf writes a line to the output stream as "level: message...\n".
// An I/O error writing that line is itself logged at ERROR level and
// marks ExitCode() non-zero.
func (log *Log) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.reportError(err)
	}
}

func (log *Log) printf(level, mess string, args ...interface{}) error {
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	return err
}

func (log *Log) reportError(err error) {
	log.printf("ERROR", "%+v", err)
	log.exitCode = 2
}
