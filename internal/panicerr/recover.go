package panicerr

// Isolate runs f on its own goroutine and turns an abnormal exit —
// a panic, or a runtime.Goexit triggered by something like a failed
// require.FailNow in test code reached through f — into an ordinary
// error return instead of taking the caller down with it. label
// identifies the isolated call in the resulting error text.
func Isolate(label string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverGoexit(label, errch)
		defer recoverPanic(label, errch)
		errch <- f()
	}()
	return <-errch
}
