package imp

// interp carries the one piece of state that isn't part of Runtime
// itself: how many nodes have been evaluated so far, so that a
// runaway program (an unbounded Loop, unbounded recursion) can be
// stopped with StepLimitExceeded instead of hanging the host forever.
// maxSteps of zero means unlimited, matching Options' zero value.
type interp struct {
	steps    uint64
	maxSteps uint64
	trace    *tracer
	intWidth IntWidth
}

// wrapInt applies the configured Options.IntWidth two's-complement
// wrap to an arithmetic result, per § External interfaces. Non-Int
// values (Bool, Char, sequences, ...) pass through unchanged — Char
// stays a full code point regardless of IntWidth (see WithSignedChar).
func (ip *interp) wrapInt(v Value) Value {
	i, ok := v.(Int)
	if !ok || ip.intWidth == 0 || ip.intWidth >= 64 {
		return v
	}
	bits := uint(ip.intWidth)
	mask := int64(1)<<bits - 1
	x := int64(i) & mask
	if sign := int64(1) << (bits - 1); x&sign != 0 {
		x -= int64(1) << bits
	}
	return Int(x)
}

func (ip *interp) step(node Node, rt Runtime) {
	ip.steps++
	if ip.maxSteps != 0 && ip.steps > ip.maxSteps {
		panic(StepLimitExceeded{Steps: ip.steps, MaxSteps: ip.maxSteps})
	}
	if ip.trace != nil {
		ip.trace.step(ip.steps, node, rt)
	}
}

// Eval evaluates node against rt with no step limit (§ Evaluation
// function: evaluate(ir, runtime) → (runtime', value)). Run and
// EvalWithOptions (see run.go) build their own interp through
// evalProgram to enforce Options.MaxSteps; Eval is the form exercised
// by unit tests and embedders that don't need a limit.
func Eval(node Node, rt Runtime) (Runtime, Value) {
	ip := &interp{}
	return ip.eval(node, rt)
}

func evalWithStepLimit(node Node, rt Runtime, maxSteps uint64) (Runtime, Value) {
	ip := &interp{maxSteps: maxSteps}
	return ip.eval(node, rt)
}

// eval is the structural recursion at the heart of the interpreter:
// every IR node lowers to zero or more AM instructions (Set, Advance,
// Put) applied along the way, plus whatever pure Go control flow is
// needed to implement nodes — Block, If, Loop, Apply — that the AM's
// six instructions alone can't express without re-evaluating an
// expression (see am.go's While doc comment).
func (ip *interp) eval(node Node, rt Runtime) (Runtime, Value) {
	ip.step(node, rt)

	switch n := node.(type) {

	case Literal:
		return rt, n.V

	case VarNode:
		rt1, nameVal := ip.eval(n.NameExpr, rt)
		name := resolveName(nameVal, rt1.scopeDepth)
		return rt1, BoundVar{Name: name, Value: rt1.Store.Get(name)}

	case RefNode:
		rt1, nameVal := ip.eval(n.NameExpr, rt)
		name := resolveName(nameVal, rt1.scopeDepth)
		return rt1, Ref{Name: name}

	case Assign:
		vn, ok := n.LHS.(VarNode)
		if !ok {
			panic(MalformedIR{Reason: "assignment target must be a variable"})
		}
		rt1, nameVal := ip.eval(vn.NameExpr, rt)
		name := resolveName(nameVal, rt1.scopeDepth)
		rt2, rhsVal := ip.eval(n.RHS, rt1)
		val := unwrap(rhsVal)
		rt3 := Set{Name: name, Value: val}.apply(rt2)
		return rt3, val

	case CompoundAssign:
		vn, ok := n.LHS.(VarNode)
		if !ok {
			panic(MalformedIR{Reason: "compound assignment target must be a variable"})
		}
		rt1, nameVal := ip.eval(vn.NameExpr, rt)
		name := resolveName(nameVal, rt1.scopeDepth)
		cur := rt1.Store.Get(name)
		rt2, rhsVal := ip.eval(n.RHS, rt1)
		newVal := ip.wrapInt(pureOp(n.Sym, cur, unwrap(rhsVal)))
		rt3 := Set{Name: name, Value: newVal}.apply(rt2)
		return rt3, newVal

	case IncDec:
		vn, ok := n.Target.(VarNode)
		if !ok {
			panic(MalformedIR{Reason: "++/-- target must be a variable"})
		}
		rt1, nameVal := ip.eval(vn.NameExpr, rt)
		name := resolveName(nameVal, rt1.scopeDepth)
		cur := rt1.Store.Get(name)
		newVal := ip.wrapInt(pureOp(n.Sym, cur))
		rt2 := Set{Name: name, Value: newVal}.apply(rt1)
		if n.Pre {
			return rt2, newVal
		}
		return rt2, cur

	case Op:
		return ip.evalOp(n, rt)

	case Cast:
		rt1, v := ip.eval(n.Expr, rt)
		return rt1, castValue(n.To, v)

	case Peek:
		rt1, offVal := ip.eval(n.OffsetExpr, rt)
		off, ok := asInt(unwrap(offVal))
		if !ok {
			panic(MalformedIR{Reason: "peek offset must be an integer"})
		}
		return rt1, rt1.Stdin.Peek(int(off))

	case AdvanceNode:
		rt1, kVal := ip.eval(n.KExpr, rt)
		k, ok := asInt(unwrap(kVal))
		if !ok {
			panic(MalformedIR{Reason: "advance count must be an integer"})
		}
		rt2 := Advance{N: int(k)}.apply(rt1)
		return rt2, Unit{}

	case GetC:
		ch := rt.Stdin.Peek(0)
		rt1 := Advance{N: 1}.apply(rt)
		return rt1, ch

	case PutC:
		rt1, chVal := ip.eval(n.ChExpr, rt)
		cv := unwrap(chVal)
		rt2 := Put{Values: []Value{cv}}.apply(rt1)
		return rt2, cv

	case BlockNode:
		cur := rt
		var result Value = Unit{}
		for _, child := range n.Nodes {
			cur, result = ip.eval(child, cur)
			if isControl(result) {
				return cur, result
			}
		}
		return cur, result

	case IfNode:
		rt1, condVal := ip.eval(n.Cond, rt)
		if unwrap(condVal).Truthy() {
			return ip.eval(n.Then, rt1)
		}
		if n.Else != nil {
			return ip.eval(n.Else, rt1)
		}
		return rt1, Unit{}

	case LoopNode:
		cur := rt
		for {
			var v Value
			cur, v = ip.eval(n.Body, cur)
			if brk, ok := v.(Break); ok {
				return cur, brk.Value
			}
			// Continue, or any ordinary value falling off the end of the
			// body, re-evaluates the body (§ Structured control flow: Loop).
		}

	case LambdaNode:
		return rt, Lambda{Params: n.Params, Body: n.Body}

	case Apply:
		return ip.evalApply(n, rt)

	case BreakNode:
		cur := rt
		var v Value = Unit{}
		if n.ValueExpr != nil {
			cur, v = ip.eval(n.ValueExpr, rt)
		}
		return cur, Break{Value: unwrap(v)}

	case ContinueNode:
		return rt, Continue{}

	case SwitchNode:
		return ip.evalSwitch(n, rt)

	case TupleExpr:
		cur := rt
		elems := make([]Value, len(n.Elems))
		for i, e := range n.Elems {
			var v Value
			cur, v = ip.eval(e, cur)
			elems[i] = unwrap(v)
		}
		return cur, NewTuple(elems...)

	case VecExpr:
		cur := rt
		elems := make([]Value, len(n.Elems))
		for i, e := range n.Elems {
			var v Value
			cur, v = ip.eval(e, cur)
			elems[i] = unwrap(v)
		}
		return cur, NewVec(elems...)

	default:
		panic(newInvariantViolation("unhandled IR node type %T", node))
	}
}

func (ip *interp) evalOp(n Op, rt Runtime) (Runtime, Value) {
	switch n.Sym {
	case "&&":
		rt1, a := ip.eval(n.Args[0], rt)
		if !unwrap(a).Truthy() {
			return rt1, Bool(false)
		}
		rt2, b := ip.eval(n.Args[1], rt1)
		return rt2, Bool(unwrap(b).Truthy())
	case "||":
		rt1, a := ip.eval(n.Args[0], rt)
		if unwrap(a).Truthy() {
			return rt1, Bool(true)
		}
		rt2, b := ip.eval(n.Args[1], rt1)
		return rt2, Bool(unwrap(b).Truthy())
	}

	cur := rt
	vals := make([]Value, len(n.Args))
	for i, a := range n.Args {
		cur, vals[i] = ip.eval(a, cur)
	}

	switch n.Sym {
	case "[]":
		return cur, indexOp(vals[0], vals[1])
	case "()":
		return cur, indexUpdateOp(vals[0], vals[1], vals[2])
	default:
		return cur, ip.wrapInt(pureOp(n.Sym, vals...))
	}
}

func (ip *interp) evalApply(n Apply, rt Runtime) (Runtime, Value) {
	var rt1 Runtime
	var calleeVal Value
	if vn, ok := n.FuncExpr.(VarNode); ok {
		var nameVal Value
		rt1, nameVal = ip.eval(vn.NameExpr, rt)
		_, calleeVal = lookupCallee(rt1.Store, nameVal, rt1.scopeDepth)
	} else {
		rt1, calleeVal = ip.eval(n.FuncExpr, rt)
	}
	callee, ok := unwrap(calleeVal).(Lambda)
	if !ok {
		panic(MalformedIR{Reason: "call target is not a lambda"})
	}
	if len(n.Args) != len(callee.Params) {
		panic(MalformedIR{Reason: "argument count does not match lambda parameter count"})
	}

	cur := rt1
	argVals := make([]Value, len(n.Args))
	for i, a := range n.Args {
		var v Value
		cur, v = ip.eval(a, cur)
		argVals[i] = unwrap(v)
	}

	// Bracket the body with scope-counter increment/decrement and bind
	// formals fresh in the new scope (§ IR node catalog: Lambda
	// application lowering), so that recursive calls get disjoint
	// storage slots for same-named locals without a call stack.
	cur.scopeDepth++
	for i, p := range callee.Params {
		name := scopedName(p, cur.scopeDepth)
		cur = Set{Name: name, Value: argVals[i]}.apply(cur)
	}

	cur, bodyVal := ip.eval(callee.Body, cur)

	var ret Value
	switch bv := bodyVal.(type) {
	case Break:
		ret = bv.Value
	case Continue:
		ret = Unit{}
	default:
		ret = bv
	}
	cur.scopeDepth--

	return cur, ret
}

func (ip *interp) evalSwitch(n SwitchNode, rt Runtime) (Runtime, Value) {
	cur, scrut := ip.eval(n.Scrutinee, rt)
	scrut = unwrap(scrut)

	var defaultCase *SwitchCase
	for i := range n.Cases {
		c := n.Cases[i]
		if c.Value == nil {
			dc := c
			defaultCase = &dc
			continue
		}
		var caseVal Value
		cur, caseVal = ip.eval(c.Value, cur)
		if scrut.Equal(unwrap(caseVal)) {
			return ip.eval(c.Body, cur)
		}
	}

	// The default, wherever it appeared in source order, is tried only
	// after every case value has been evaluated and missed.
	if defaultCase != nil {
		return ip.eval(defaultCase.Body, cur)
	}
	return cur, Unit{}
}

// resolveName folds the current stack-local scope depth into a
// name_expr's evaluated Value, the same way scopedName does for a
// bare variable, but only at the base of the name — the leftmost,
// non-index component. Index(outer, idx) nests as Tuple(outer, idx)
// (§ IR node catalog), so resolving one recurses into outer and folds
// idx on top unscoped; the base only ever gets scoped once, at the
// bottom of that recursion. When the base turns out to be a Ref
// (reached by indexing through a by-reference parameter), its carried
// name is already absolute — it was scoped once, at the frame that
// took its address — so it's reused as-is instead of being scoped
// again. This keeps array[i] resolving to the same storage slot
// however many index levels sit above the base, and whether it's
// reached directly or through a Ref, which is what lets in-place
// array mutation survive across recursive calls.
func resolveName(v Value, depth int64) Name {
	switch x := v.(type) {
	case Ref:
		return x.Name
	case BoundVar:
		return resolveName(x.Value, depth)
	case Tuple:
		if len(x.elems) == 0 {
			panic(MalformedIR{Reason: "empty tuple cannot be used as a variable name"})
		}
		n := resolveName(x.elems[0], depth)
		for _, e := range x.elems[1:] {
			n = pair(n, valueToName(e))
		}
		return n
	default:
		return scopedName(valueToName(x), depth)
	}
}

// lookupCallee resolves an Apply node's call-target name_expr value.
// Index(outer, idx) and a Ref's carried name go straight through
// resolveName, with no walk down the scope chain: a Ref's name is
// already absolute, and an Index's base is scoped at the current
// depth exactly as resolveName scopes it. A bare name is different
// here specifically: a lambda bound once, outside any call, and then
// called recursively from its own body (§ IR node catalog: Lambda
// application lowering's no-call-stack recursion) is looked up again
// at whatever depth the recursive call happens to be running at,
// which is deeper every level down — while the binding itself still
// lives at the depth where it was first set. So a bare callee name
// walks the scope chain from the current depth down to zero and
// returns the first binding it actually finds, the same shadowing a
// real call stack would give a self-reference for free.
//
// This is deliberately narrower than resolving every VarNode read
// this way: an ordinary variable read must stay an exact, current-
// depth-only lookup, or a name that happens to coincide with some
// unrelated outer binding (global or a different call's own local)
// would silently pick that up instead of defaulting to Unit. A
// lambda's own name is the one case where "defined further out, used
// in here" is exactly the intended behavior.
func lookupCallee(s Store, nameVal Value, depth int64) (Name, Value) {
	nameVal = unwrap(nameVal)
	switch nameVal.(type) {
	case Tuple, Ref:
		name := resolveName(nameVal, depth)
		return name, s.Get(name)
	}
	base := valueToName(nameVal)
	for d := depth; d >= 0; d-- {
		name := scopedName(base, d)
		if v, ok := s.GetOK(name); ok {
			return name, v
		}
	}
	return scopedName(base, depth), Unit{}
}

// castValue implements the three host conversions § IR node catalog's
// Cast node performs.
func castValue(to CastKind, v Value) Value {
	v = unwrap(v)
	switch to {
	case CastInt:
		switch x := v.(type) {
		case Int:
			return x
		case Char:
			return Int(x)
		case Bool:
			if x {
				return Int(1)
			}
			return Int(0)
		}
	case CastChar:
		switch x := v.(type) {
		case Char:
			return x
		case Int:
			return Char(x)
		}
	case CastBool:
		return Bool(v.Truthy())
	}
	panic(MalformedIR{Reason: "unsupported cast operand type"})
}
