package imp

import "fmt"

// Name identifies a slot in the variable store (§ Variable store). Any
// Go-comparable value constructed by valueToName below is a legal
// Name: a small integer, a string, or a composite built by nesting
// [2]interface{} pairs — (outer_name, index) for array-style indexing,
// and (userName, scopeDepth) for stack-local scoping (§ Structured
// control flow). Nesting pairs gives arbitrary-arity compound names
// ("(base, index0, index1, …)") for free, since arrays of comparable
// element types are themselves comparable and hashable in Go.
type Name = interface{}

// pair builds a two-component composite Name.
func pair(a, b Name) Name { return [2]interface{}{a, b} }

// scopedName composes a user-visible local variable name with the
// current stack-local scope counter, giving lambda calls dynamic
// lexical isolation without a call stack (§ Structured control flow).
func scopedName(userName Name, depth int64) Name {
	return pair(userName, depth)
}

// valueToName converts the Value produced by evaluating a name_expr
// into a Name usable as a store key. Scalars map directly; Str is
// flattened to a Go string (itself comparable, unlike the paged
// backing store); Tuple is folded left-to-right into nested pairs,
// which is how `Var[i][j]` becomes the compound name
// `((outer_name, i), j)`; Ref passes its carried Name straight through.
// (Variable names in eval go through interp.go's resolveName, whose own
// Ref case is what lets a by-reference parameter be indexed as if it
// were the caller's own array slot.)
func valueToName(v Value) Name {
	switch x := v.(type) {
	case Unit:
		return nil
	case Int:
		return int64(x)
	case Char:
		return rune(x)
	case Bool:
		return bool(x)
	case Str:
		return x.String()
	case Ref:
		return x.Name
	case BoundVar:
		return valueToName(x.Value)
	case Tuple:
		if len(x.elems) == 0 {
			panic(MalformedIR{Reason: "empty tuple cannot be used as a variable name"})
		}
		n := valueToName(x.elems[0])
		for _, e := range x.elems[1:] {
			n = pair(n, valueToName(e))
		}
		return n
	default:
		panic(MalformedIR{Reason: fmt.Sprintf("%T is not usable as a variable name", v)})
	}
}
