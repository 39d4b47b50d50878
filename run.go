package imp

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/implang/imp/internal/panicerr"
)

// Run evaluates program against input and returns the accumulated
// Stdout, per § Entry point. Evaluation happens on its own goroutine,
// isolated with internal/panicerr.Isolate the way the VM this
// interpreter descends from isolates its own top-level Eval/Loop
// calls: a panic raised by eval (MalformedIR, UnsupportedOperator,
// DivisionByZero, StepLimitExceeded, or a defensive
// InternalInvariantViolation) is recovered and surfaced as an
// ordinary error, still matchable with errors.As since panicerr
// unwraps to the original error value.
//
// ctx governs cancellation. If WithTimeout was supplied, it further
// bounds the deadline. Because the interpreter has no internal
// cancellation points of its own — MaxSteps is the only backstop
// against a runaway program — a ctx that is cancelled while eval is
// already running causes Run to return ctx.Err() immediately, but the
// evaluation goroutine is left to finish (or hit MaxSteps) on its own;
// it does not hold any resource Run itself owns.
func Run(ctx context.Context, program Node, input string, opts ...Option) (string, error) {
	var cfg config
	Options(opts...).apply(&cfg)
	if cfg.err != nil {
		return "", cfg.err
	}

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	g, _ := errgroup.WithContext(ctx)

	var rt Runtime
	g.Go(func() error {
		r, err := evalProgram(program, NewRuntime(input), cfg)
		rt = r
		return err
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-done:
		if err != nil {
			return "", err
		}
		return rt.Stdout.String(), nil
	}
}

// EvalWithOptions runs program to completion synchronously — no ctx,
// no timeout — and returns the final Runtime rather than just its
// rendered Stdout. Like Run, it evaluates under internal/panicerr's
// Isolate and recovers internal panics into ordinary errors, so it
// shares Run's error taxonomy. Callers that want to inspect the resulting Runtime
// afterward, such as a CLI driver printing a debug dump, should use
// this instead of Run.
func EvalWithOptions(program Node, rt Runtime, opts ...Option) (Runtime, error) {
	var cfg config
	Options(opts...).apply(&cfg)
	if cfg.err != nil {
		return rt, cfg.err
	}
	return evalProgram(program, rt, cfg)
}

func evalProgram(node Node, rt Runtime, cfg config) (Runtime, error) {
	var result Runtime
	err := panicerr.Isolate("imp.Run", func() error {
		var tr *tracer
		if cfg.trace != nil {
			tr = newTracer(cfg.trace)
		}
		ip := &interp{maxSteps: cfg.maxSteps, trace: tr, intWidth: cfg.intWidth}
		result, _ = ip.eval(node, rt)
		return nil
	})
	return result, err
}
