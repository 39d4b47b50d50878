// Command impc runs one of this module's sample IMP programs against
// stdin and prints its output, the way gothird's cmd wires a VM up to
// os.Stdin/os.Stdout with a handful of flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/implang/imp"
	"github.com/implang/imp/examples"
	"github.com/implang/imp/internal/logio"
)

func main() {
	var (
		program  string
		maxSteps uint64
		timeout  time.Duration
		trace    bool
		dump     bool
	)
	flag.StringVar(&program, "program", "calculator",
		"program to run: calculator, hello-english, hello-french, hello-chinese, mergesort")
	flag.Uint64Var(&maxSteps, "max-steps", 0, "enable an evaluation step limit")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print a runtime dump after execution")
	flag.Parse()

	log := logio.Log{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	node, err := programByName(program)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Errorf("reading stdin: %v", err)
		return
	}

	var opts []imp.Option
	if maxSteps != 0 {
		opts = append(opts, imp.WithMaxSteps(maxSteps))
	}
	if trace {
		tw := &logio.LineWriter{Logf: log.Leveledf("TRACE")}
		defer tw.Close()
		opts = append(opts, imp.WithTrace(tw))
	}

	// -dump needs the final Runtime, which only EvalWithOptions exposes,
	// so it forgoes Run's ctx-based timeout.
	// Without -dump, Run is used as-is, timeout and all.
	if dump {
		rt, err := imp.EvalWithOptions(node, imp.NewRuntime(string(input)), opts...)
		imp.NewDumper(os.Stdout).Dump(rt)
		log.ErrorIf(err)
		return
	}

	if timeout != 0 {
		opts = append(opts, imp.WithTimeout(timeout))
	}
	out, err := imp.Run(context.Background(), node, string(input), opts...)
	fmt.Print(out)
	log.ErrorIf(err)
}

func programByName(name string) (imp.Node, error) {
	switch name {
	case "calculator":
		return examples.Calculator(), nil
	case "hello-english":
		return examples.Greet(examples.English), nil
	case "hello-french":
		return examples.Greet(examples.French), nil
	case "hello-chinese":
		return examples.Greet(examples.Chinese), nil
	case "mergesort":
		return examples.MergeSort(), nil
	default:
		return nil, fmt.Errorf("unknown -program %q", name)
	}
}
