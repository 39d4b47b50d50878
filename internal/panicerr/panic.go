package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

func recoverPanic(label string, errch chan<- error) {
	var ep evalPanic
	if ep.e = recover(); ep.e != nil {
		ep.label = label
		ep.stack = debug.Stack()
		select {
		case errch <- ep:
		default:
		}
	}
}

// evalPanic wraps a value recovered from a panic raised while
// evaluating an IR tree on an isolated goroutine.
type evalPanic struct {
	label string
	e     interface{}
	stack []byte
}

func (ep evalPanic) Error() string {
	return fmt.Sprint(ep)
}

func (ep evalPanic) Format(f fmt.State, c rune) {
	if ep.label == "" {
		fmt.Fprintf(f, "panicked: %v", ep.e)
	} else {
		fmt.Fprintf(f, "%v panicked: %v", ep.label, ep.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", ep.stack)
	}
}

func (ep evalPanic) Unwrap() error {
	err, _ := ep.e.(error)
	return err
}

// IsEvalPanic returns true if err indicates a recovered panic from an
// isolated evaluation goroutine.
func IsEvalPanic(err error) bool {
	var ep evalPanic
	return errors.As(err, &ep)
}

// EvalPanicStack returns a non-empty stack trace string if err is a
// recovered evaluation panic.
func EvalPanicStack(err error) string {
	var ep evalPanic
	if errors.As(err, &ep) {
		return string(ep.stack)
	}
	return ""
}
