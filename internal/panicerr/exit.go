package panicerr

import (
	"errors"
	"fmt"
)

func recoverGoexit(label string, errch chan<- error) {
	select {
	case errch <- evalGoexit(label):
	default:
		// the happy path already sent a (possibly nil) result
	}
}

// evalGoexit indicates the isolated evaluation goroutine called
// runtime.Goexit (directly, or transitively through something like a
// failed require.FailNow) instead of returning or panicking.
type evalGoexit string

func (label evalGoexit) Error() string {
	if label == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(label))
}

// IsEvalGoexit returns true if err indicates a recovered
// runtime.Goexit from an isolated evaluation goroutine.
func IsEvalGoexit(err error) bool {
	var eg evalGoexit
	return errors.As(err, &eg)
}
