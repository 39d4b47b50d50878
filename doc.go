/*
Package imp implements a small, pure, deterministic interpreter for
IMP, an imperative toy language built from a two-level design.

At the bottom sits an Abstract Machine (see am.go) of exactly six
instructions — Set, Advance, Put, Block, If and While — each a pure
function from a Runtime triple (store, remaining input, accumulated
output) to a new Runtime. None of the six perform I/O against the host
process directly, raise an error, or allocate beyond constructing the
values they return: the AM is a closed algebra over Runtime values,
not an execution engine with side effects of its own.

On top of the AM sits the IR: a richer catalog of node types (see
ir.go) — variables, assignment, operators, casts, Peek/Advance/GetC/PutC,
structured Block/If/Loop, lambdas and Switch — each of which lowers to
zero or more AM instructions when it is evaluated (see interp.go). The
IR interpreter is what a host embeds: it is the thing that knows how to
compile `x += 1` into a single Set, or a Loop into repeated applications
of its body, in terms of the six primitives beneath it.

Values (see value.go) are immutable; Store (see store.go) is an
immutable association list with last-insertion-wins update semantics;
Stdin is a finite, forward-only character cursor and Stdout is a
finite, append-only character sequence (see runtime.go). Every
evaluation therefore produces a brand new Runtime rather than mutating
one in place, which is what makes the two-level split sound: nothing
about the IR interpreter depends on aliasing or on the AM instructions
executing in any particular memory.

Control flow that would elsewhere be handled with exceptions or
coroutines is instead ordinary data: evaluating a `break` or `continue`
produces a Break or Continue value that Block and Loop inspect
structurally, the same way a Forth-derived interpreter threads an exit
code back up its call stack instead of unwinding it.

Run (see run.go) is the entry point a host calls: it seeds a Runtime
from program input, evaluates the given IR to completion (or until
Options.MaxSteps is exceeded), and returns the accumulated Stdout as a
string, or a typed error (see errors.go) if evaluation could not
complete.
*/
package imp
