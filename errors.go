package imp

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	pkgerrors "github.com/pkg/errors"
)

// MalformedIR reports an IR node whose shape violates the catalog in
// § IR node catalog — an assignment lhs that isn't a variable, an
// empty tuple used as a name, and similar programmer bugs.
type MalformedIR struct {
	Reason string
}

func (e MalformedIR) Error() string { return "malformed IR: " + e.Reason }

// UnsupportedOperator reports that the pure operator table has no
// entry for the given symbol applied to the given operand types.
// Per § Pure operator table, == and != on mismatched types are never
// reported this way — they are defined to degenerate to false/true.
type UnsupportedOperator struct {
	Sym   string
	Types []string
}

func (e UnsupportedOperator) Error() string {
	return fmt.Sprintf("unsupported operator %q for operand types %v", e.Sym, e.Types)
}

// DivisionByZero reports that / or % was evaluated with a zero
// divisor. A well-written IMP program guards this itself (as the
// calculator sample does); an unguarded division surfaces this error
// rather than the host's own panic/trap.
type DivisionByZero struct {
	Sym string
}

func (e DivisionByZero) Error() string { return fmt.Sprintf("division by zero in %q", e.Sym) }

// StepLimitExceeded reports that Options.MaxSteps was exceeded before
// the program returned. Steps and the limit are both present so
// callers can report "step 12,004 of max 10,000" without re-deriving
// the count.
type StepLimitExceeded struct {
	Steps    uint64
	MaxSteps uint64
}

func (e StepLimitExceeded) Error() string {
	return fmt.Sprintf("step limit exceeded: step %s of max %s",
		humanize.Comma(int64(e.Steps)), humanize.Comma(int64(e.MaxSteps)))
}

// InternalInvariantViolation is defensive: it should never occur on a
// well-formed IR, and carries a stack trace (via github.com/pkg/errors)
// captured at the point of the violation, distinguishing it from the
// ordinary, documented taxonomy above that callers are expected to
// branch on with errors.As.
type InternalInvariantViolation struct {
	cause error
}

func (e InternalInvariantViolation) Error() string {
	return fmt.Sprintf("internal invariant violation: %v", e.cause)
}

func (e InternalInvariantViolation) Unwrap() error { return e.cause }

// newInvariantViolation wraps msg with a captured stack trace, the way
// db47h/ngaro's vm package wraps its own internal faults.
func newInvariantViolation(format string, args ...interface{}) InternalInvariantViolation {
	return InternalInvariantViolation{cause: pkgerrors.Errorf(format, args...)}
}

// InvariantStack returns the captured stack trace of an
// InternalInvariantViolation, or "" if err isn't one.
func InvariantStack(err error) string {
	var iv InternalInvariantViolation
	if !errors.As(err, &iv) {
		return ""
	}
	type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
	if st, ok := iv.cause.(stackTracer); ok {
		return fmt.Sprintf("%+v", st.StackTrace())
	}
	return ""
}
