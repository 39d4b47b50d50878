package imp

import "fmt"

// pureOp evaluates operator sym on 1 or 2 concrete operand values, per
// § Pure operator table. && and || are not here: they are short-circuit
// and handled by the interpreter (§ Short-circuit operators).
func pureOp(sym string, args ...Value) Value {
	for i, a := range args {
		args[i] = unwrap(a)
	}

	switch len(args) {
	case 1:
		return unaryOp(sym, args[0])
	case 2:
		return binaryOp(sym, args[0], args[1])
	default:
		panic(MalformedIR{Reason: fmt.Sprintf("operator %q takes 1 or 2 operands, got %d", sym, len(args))})
	}
}

func unaryOp(sym string, a Value) Value {
	switch sym {
	case "!":
		return Bool(!a.Truthy())
	case "~":
		i, ok := a.(Int)
		if !ok {
			panic(unsupported(sym, a))
		}
		return ^i
	case "-":
		switch x := a.(type) {
		case Int:
			return -x
		case Char:
			return Char(-rune(x))
		}
		panic(unsupported(sym, a))
	case "++":
		i, ok := asInt(a)
		if !ok {
			panic(unsupported(sym, a))
		}
		if _, isChar := a.(Char); isChar {
			return Char(i + 1)
		}
		return i + 1
	case "--":
		i, ok := asInt(a)
		if !ok {
			panic(unsupported(sym, a))
		}
		if _, isChar := a.(Char); isChar {
			return Char(i - 1)
		}
		return i - 1
	case "len":
		seq, ok := a.(Sequence)
		if !ok {
			panic(unsupported(sym, a))
		}
		return Int(seq.Len())
	default:
		panic(unsupported(sym, a))
	}
}

// asInt coerces v (char treated as its code, per § Pure operator
// table) into an Int for mixed int/char arithmetic, returning 0 and
// false if v is neither an Int nor a Char.
func asInt(v Value) (Int, bool) {
	switch x := v.(type) {
	case Int:
		return x, true
	case Char:
		return Int(x), true
	default:
		return 0, false
	}
}

func binaryOp(sym string, a, b Value) Value {
	switch sym {
	case "==":
		return Bool(a.Equal(b))
	case "!=":
		return Bool(!a.Equal(b))
	}

	// Arithmetic, bitwise and ordering all operate on integer-ish
	// operands (Int, or Char treated as its code point).
	ai, aIsInt := asInt(a)
	bi, bIsInt := asInt(b)
	if aIsInt && bIsInt {
		switch sym {
		case "+":
			return sumLike(a, b, ai, bi)
		case "-":
			return diffLike(a, b, ai, bi)
		case "*":
			return ai * bi
		case "/":
			if bi == 0 {
				panic(DivisionByZero{Sym: sym})
			}
			return ai / bi
		case "%":
			if bi == 0 {
				panic(DivisionByZero{Sym: sym})
			}
			return ai % bi
		case "<":
			return Bool(ai < bi)
		case "<=":
			return Bool(ai <= bi)
		case ">":
			return Bool(ai > bi)
		case ">=":
			return Bool(ai >= bi)
		case "&":
			return ai & bi
		case "|":
			return ai | bi
		case "^":
			return ai ^ bi
		case "<<":
			if bi < 0 {
				panic(MalformedIR{Reason: fmt.Sprintf("shift by negative amount in %q", sym)})
			}
			return ai << uint(bi)
		case ">>":
			if bi < 0 {
				panic(MalformedIR{Reason: fmt.Sprintf("shift by negative amount in %q", sym)})
			}
			return ai >> uint(bi)
		}
	}

	if seqA, ok := a.(Sequence); ok && sym == "+" {
		return seqA.Concat(b)
	}

	panic(unsupported(sym, a, b))
}

// sumLike and diffLike preserve a Char result when the left operand
// was a Char (pointer arithmetic on a character advances the
// character), and an Int result otherwise.
func sumLike(a, b Value, ai, bi Int) Value {
	if _, ok := a.(Char); ok {
		return Char(ai + bi)
	}
	return ai + bi
}

func diffLike(a, b Value, ai, bi Int) Value {
	if _, ok := a.(Char); ok {
		return Char(ai - bi)
	}
	return ai - bi
}

// indexOp implements v[i] (§ Pure operator table: Indexing).
func indexOp(v, idx Value) Value {
	seq, ok := unwrap(v).(Sequence)
	if !ok {
		panic(MalformedIR{Reason: fmt.Sprintf("cannot index into %T", v)})
	}
	i, ok := asInt(unwrap(idx))
	if !ok {
		panic(MalformedIR{Reason: fmt.Sprintf("index must be an integer, got %T", idx)})
	}
	return seq.At(int(i))
}

// indexUpdateOp implements v(i, x): a new sequence with position i
// replaced by x.
func indexUpdateOp(v, idx, x Value) Value {
	seq, ok := unwrap(v).(Sequence)
	if !ok {
		panic(MalformedIR{Reason: fmt.Sprintf("cannot index-update into %T", v)})
	}
	i, ok := asInt(unwrap(idx))
	if !ok {
		panic(MalformedIR{Reason: fmt.Sprintf("index must be an integer, got %T", idx)})
	}
	return seq.With(int(i), unwrap(x))
}

func unsupported(sym string, args ...Value) UnsupportedOperator {
	types := make([]string, len(args))
	for i, a := range args {
		types[i] = fmt.Sprintf("%T", a)
	}
	return UnsupportedOperator{Sym: sym, Types: types}
}
