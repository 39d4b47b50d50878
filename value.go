package imp

import (
	"fmt"
	"strings"

	"github.com/implang/imp/internal/pagedseq"
)

// Value is the set of first-class values a runtime evaluates to: the
// unit value, integers, characters, booleans, string-sequences,
// heterogeneous tuples, typed vectors, bound/unbound variable handles
// and the two control-flow tokens. Every concrete type in this file
// implements Value.
type Value interface {
	// Truthy reports whether the AM (§ Abstract Machine) considers this
	// value true: nonzero integers, non-false booleans, non-empty
	// sequences. Unit is always false.
	Truthy() bool

	// Equal implements the fallback rule that equality across mismatched
	// operand types is false (and by extension inequality is true),
	// rather than an UnsupportedOperator error.
	Equal(other Value) bool

	String() string

	value() // unexported: closes the Value set to this package.
}

// Unit is the sole inhabitant of the unit type, returned by lookups of
// unset variables, reads past the end of stdin, and switches with no
// matching case.
type Unit struct{}

func (Unit) Truthy() bool { return false }
func (Unit) String() string { return "None" }
func (Unit) value()       {}
func (Unit) Equal(other Value) bool {
	_, ok := other.(Unit)
	return ok
}

// Int is a host-native signed integer, wrapped per Options.IntWidth at
// the points where arithmetic is performed (see interp.go's wrapInt).
type Int int64

func (v Int) Truthy() bool   { return v != 0 }
func (v Int) String() string { return fmt.Sprintf("%d", int64(v)) }
func (Int) value()           {}
func (v Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && v == o
}

// Char is a single Unicode code point.
type Char rune

func (v Char) Truthy() bool   { return v != 0 }
func (v Char) String() string { return string(rune(v)) }
func (Char) value()           {}
func (v Char) Equal(other Value) bool {
	o, ok := other.(Char)
	return ok && v == o
}

// Bool is a boolean value.
type Bool bool

func (v Bool) Truthy() bool   { return bool(v) }
func (v Bool) String() string { return fmt.Sprintf("%v", bool(v)) }
func (Bool) value()           {}
func (v Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && v == o
}

// Sequence is implemented by every Value that supports the common
// indexing/index-update/concatenation API of § Value domain: Str,
// Tuple and Vec.
type Sequence interface {
	Value
	Len() int
	At(i int) Value
	With(i int, v Value) Value
	Concat(other Value) Value
}

// Str is an ordered sequence of Char, backed by a paged, copy-on-write
// sequence so that index-update does not require copying the whole
// string (see internal/pagedseq).
type Str struct {
	chars pagedseq.Paged[rune]
}

// NewStr builds a Str from a Go string, decoding it as UTF-8 code
// points per the chosen character-encoding convention (§ Open
// Questions: code points, not bytes).
func NewStr(s string) Str {
	return Str{chars: pagedseq.FromSlice([]rune(s))}
}

// StrOf builds a Str from a slice of runes.
func StrOf(rs ...rune) Str {
	return Str{chars: pagedseq.FromSlice(rs)}
}

func (s Str) Len() int { return s.chars.Len() }

func (s Str) At(i int) Value {
	r, ok := s.chars.At(i)
	if !ok {
		return Unit{}
	}
	return Char(r)
}

func (s Str) With(i int, v Value) Value {
	if i < 0 || i >= s.chars.Len() {
		panic(MalformedIR{Reason: "string index-update out of range"})
	}
	ch, ok := v.(Char)
	if !ok {
		panic(MalformedIR{Reason: fmt.Sprintf("string index-update expects a Char, got %T", v)})
	}
	return Str{chars: s.chars.With(i, rune(ch))}
}

func (s Str) Concat(other Value) Value {
	switch o := other.(type) {
	case Str:
		return Str{chars: s.chars.Append(o.chars.Slice()...)}
	case Char:
		// A single trailing character appends directly, the same way
		// AM's Put treats a Char argument as one character rather than
		// requiring it be wrapped in a one-rune Str first.
		return Str{chars: s.chars.Append(rune(o))}
	default:
		panic(MalformedIR{Reason: fmt.Sprintf("cannot concatenate Str with %T", other)})
	}
}

func (s Str) Truthy() bool { return s.Len() > 0 }

func (s Str) String() string {
	var b strings.Builder
	for _, r := range s.chars.Slice() {
		b.WriteRune(r)
	}
	return b.String()
}

func (Str) value() {}

func (s Str) Equal(other Value) bool {
	o, ok := other.(Str)
	if !ok {
		return false
	}
	return s.String() == o.String()
}

// Tuple is a heterogeneous, ordered sequence of values.
type Tuple struct {
	elems []Value
}

// NewTuple builds a Tuple from its elements.
func NewTuple(vs ...Value) Tuple { return Tuple{elems: append([]Value(nil), vs...)} }

func (t Tuple) Len() int      { return len(t.elems) }
func (t Tuple) At(i int) Value {
	if i < 0 || i >= len(t.elems) {
		return Unit{}
	}
	return t.elems[i]
}

func (t Tuple) With(i int, v Value) Value {
	if i < 0 || i >= len(t.elems) {
		panic(MalformedIR{Reason: "tuple index-update out of range"})
	}
	elems := make([]Value, len(t.elems))
	copy(elems, t.elems)
	elems[i] = v
	return Tuple{elems: elems}
}

func (t Tuple) Concat(other Value) Value {
	o, ok := other.(Tuple)
	if !ok {
		panic(MalformedIR{Reason: fmt.Sprintf("cannot concatenate Tuple with %T", other)})
	}
	elems := make([]Value, 0, len(t.elems)+len(o.elems))
	elems = append(elems, t.elems...)
	elems = append(elems, o.elems...)
	return Tuple{elems: elems}
}

func (t Tuple) Truthy() bool { return len(t.elems) > 0 }

func (t Tuple) String() string {
	parts := make([]string, len(t.elems))
	for i, e := range t.elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (Tuple) value() {}

func (t Tuple) Equal(other Value) bool {
	o, ok := other.(Tuple)
	if !ok || len(t.elems) != len(o.elems) {
		return false
	}
	for i := range t.elems {
		if !t.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

// Vec is a homogeneous, ordered sequence, backed by the same paged
// copy-on-write storage as Str.
type Vec struct {
	elems pagedseq.Paged[Value]
}

// NewVec builds a Vec from its elements.
func NewVec(vs ...Value) Vec { return Vec{elems: pagedseq.FromSlice(vs)} }

func (v Vec) Len() int { return v.elems.Len() }

func (v Vec) At(i int) Value {
	e, ok := v.elems.At(i)
	if !ok {
		return Unit{}
	}
	return e
}

func (v Vec) With(i int, val Value) Value {
	if i < 0 || i >= v.elems.Len() {
		panic(MalformedIR{Reason: "vector index-update out of range"})
	}
	return Vec{elems: v.elems.With(i, val)}
}

func (v Vec) Concat(other Value) Value {
	o, ok := other.(Vec)
	if !ok {
		panic(MalformedIR{Reason: fmt.Sprintf("cannot concatenate Vec with %T", other)})
	}
	return Vec{elems: v.elems.Append(o.elems.Slice()...)}
}

func (v Vec) Truthy() bool { return v.Len() > 0 }

func (v Vec) String() string {
	elems := v.elems.Slice()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (Vec) value() {}

func (v Vec) Equal(other Value) bool {
	o, ok := other.(Vec)
	if !ok || v.Len() != o.Len() {
		return false
	}
	a, b := v.elems.Slice(), o.elems.Slice()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// BoundVar is the result of evaluating a Var node: it acts as value in
// rvalue contexts (via pureOp/Equal/Truthy, which look through it —
// see unwrap below) while carrying the resolved Name so that
// assignment lowering can write back to the same slot.
type BoundVar struct {
	Name  Name
	Value Value
}

func (b BoundVar) Truthy() bool            { return b.Value.Truthy() }
func (b BoundVar) String() string          { return b.Value.String() }
func (BoundVar) value()                    {}
func (b BoundVar) Equal(other Value) bool  { return b.Value.Equal(unwrap(other)) }

// Ref is the address-of-a-variable value produced by evaluating a Ref
// node. Dereferencing it (in name position) yields back the Name it
// carries, which is how reference parameters and nested array
// indirection (mergesort's by-reference array argument) resolve to the
// caller's storage slot instead of a copy.
type Ref struct {
	Name Name
}

func (Ref) Truthy() bool   { return true }
func (r Ref) String() string { return fmt.Sprintf("&%v", r.Name) }
func (Ref) value()         {}
func (r Ref) Equal(other Value) bool {
	o, ok := other.(Ref)
	return ok && r.Name == o.Name
}

// Lambda is a callable IR value produced by evaluating a Lambda node.
type Lambda struct {
	Params []Name
	Body   Node
}

func (Lambda) Truthy() bool   { return true }
func (Lambda) String() string { return "<lambda>" }
func (Lambda) value()         {}
func (l Lambda) Equal(Value) bool {
	// Lambdas carry no identity the pure operator table can compare;
	// treat them the way mismatched types are treated (§ Pure operator
	// table): equality is always false.
	return false
}

// Continue is the control token produced by a `continue`-like jump: it
// carries no value and, per § Structured control flow, causes Block to
// stop evaluating remaining children and Loop to re-evaluate its body.
type Continue struct{}

func (Continue) Truthy() bool   { return false }
func (Continue) String() string { return "Continue" }
func (Continue) value()         {}
func (Continue) Equal(other Value) bool {
	_, ok := other.(Continue)
	return ok
}

// Break carries the value a block or loop is being unwound with.
type Break struct {
	Value Value
}

func (Break) Truthy() bool   { return false }
func (b Break) String() string { return fmt.Sprintf("Break(%v)", b.Value) }
func (Break) value()         {}
func (b Break) Equal(other Value) bool {
	o, ok := other.(Break)
	return ok && b.Value.Equal(o.Value)
}

// isControl reports whether v is a Continue or Break token, the two
// values that Block and Loop treat specially (§ Structured control
// flow).
func isControl(v Value) bool {
	switch v.(type) {
	case Continue, Break:
		return true
	default:
		return false
	}
}

// unwrap strips a BoundVar down to the value it carries, so that
// operators and equality act on the underlying value rather than on
// the BoundVar wrapper, matching "acts as value in rvalue contexts".
func unwrap(v Value) Value {
	if bv, ok := v.(BoundVar); ok {
		return unwrap(bv.Value)
	}
	return v
}
