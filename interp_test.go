package imp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarDefaultsToUnit(t *testing.T) {
	_, v := Eval(Var("x"), Runtime{})
	require.Equal(t, Unit{}, unwrap(v))
}

func TestAssignThenVar(t *testing.T) {
	rt, _ := Eval(SetVar(Var("x"), IntLit(5)), Runtime{})
	_, v := Eval(Var("x"), rt)
	require.Equal(t, Int(5), unwrap(v))
}

func TestCompoundAssign(t *testing.T) {
	rt, _ := Eval(SetVar(Var("x"), IntLit(10)), Runtime{})
	rt, v := Eval(CompoundAssign{LHS: Var("x"), Sym: "+", RHS: IntLit(5)}, rt)
	require.Equal(t, Int(15), unwrap(v))
	_, v2 := Eval(Var("x"), rt)
	require.Equal(t, Int(15), unwrap(v2))
}

func TestIncDecPreVsPost(t *testing.T) {
	rt, _ := Eval(SetVar(Var("x"), IntLit(1)), Runtime{})

	rt, post := Eval(PostInc(Var("x")), rt)
	require.Equal(t, Int(1), unwrap(post), "post-increment yields the old value")
	_, cur := Eval(Var("x"), rt)
	require.Equal(t, Int(2), unwrap(cur))

	rt, pre := Eval(PreInc(Var("x")), rt)
	require.Equal(t, Int(3), unwrap(pre), "pre-increment yields the new value")
}

func TestIfNodeBranches(t *testing.T) {
	_, v := Eval(IfThenElse(BoolLit(true), IntLit(1), IntLit(2)), Runtime{})
	require.Equal(t, Int(1), unwrap(v))

	_, v2 := Eval(IfThenElse(BoolLit(false), IntLit(1), IntLit(2)), Runtime{})
	require.Equal(t, Int(2), unwrap(v2))

	_, v3 := Eval(IfThen(BoolLit(false), IntLit(1)), Runtime{})
	require.Equal(t, Unit{}, unwrap(v3))
}

func TestBlockShortCircuitsOnControlValue(t *testing.T) {
	rt, v := Eval(Seq(
		SetVar(Var("ran"), IntLit(0)),
		Brk(),
		SetVar(Var("ran"), IntLit(1)),
	), Runtime{})
	require.Equal(t, Break{Value: Unit{}}, v)
	_, ran := Eval(Var("ran"), rt)
	require.Equal(t, Int(0), unwrap(ran), "block must stop at the break, not reach the second set")
}

func TestLoopBreakReturnsValue(t *testing.T) {
	rt, _ := Eval(SetVar(Var("i"), IntLit(0)), Runtime{})
	_, v := Eval(Loop(IfThenElse(
		BinaryOp("<", Var("i"), IntLit(3)),
		Seq(PostInc(Var("i")), Cont()),
		BrkVal(Var("i")),
	)), rt)
	require.Equal(t, Int(3), unwrap(v))
}

func TestWhileLoopSugar(t *testing.T) {
	rt, _ := Eval(SetVar(Var("i"), IntLit(0)), Runtime{})
	rt, _ = Eval(WhileLoop(
		BinaryOp("<", Var("i"), IntLit(5)),
		PostInc(Var("i")),
	), rt)
	_, v := Eval(Var("i"), rt)
	require.Equal(t, Int(5), unwrap(v))
}

func TestApplyPlainRecursion(t *testing.T) {
	// factorial bound to its own name, per the mergesort.cpp recursion idiom.
	body := IfThenElse(
		BinaryOp("<=", Var("n"), IntLit(1)),
		IntLit(1),
		BinaryOp("*", Var("n"), Call(Var("fact"), BinaryOp("-", Var("n"), IntLit(1)))),
	)
	rt, _ := Eval(SetVar(Var("fact"), Func([]Name{"n"}, body)), Runtime{})
	_, v := Eval(Call(Var("fact"), IntLit(5)), rt)
	require.Equal(t, Int(120), unwrap(v))
}

func TestApplyArgCountMismatchPanics(t *testing.T) {
	rt, _ := Eval(SetVar(Var("f"), Func([]Name{"a", "b"}, Var("a"))), Runtime{})
	require.Panics(t, func() { Eval(Call(Var("f"), IntLit(1)), rt) })
}

func TestSwitchDispatchAndDefault(t *testing.T) {
	build := func(scrutinee Node) Node {
		return Switch(scrutinee,
			CaseOf(IntLit(1), StrLit("one")),
			CaseOf(IntLit(2), StrLit("two")),
			DefaultCase(StrLit("other")),
		)
	}
	_, v := Eval(build(IntLit(2)), Runtime{})
	require.Equal(t, "two", unwrap(v).(Str).String())

	_, v2 := Eval(build(IntLit(99)), Runtime{})
	require.Equal(t, "other", unwrap(v2).(Str).String())
}

func TestStepLimitExceeded(t *testing.T) {
	loop := Loop(Cont())
	require.Panics(t, func() { evalWithStepLimit(loop, Runtime{}, 100) })
}

// TestByReferenceArrayMutationAcrossRecursion exercises the exact shape
// mergesort.cpp needs: a lambda that receives an array by reference,
// recurses, and has its in-place writes through array[i] visible to
// the caller after the recursive call returns. This is what
// resolveName's Ref short-circuit exists for (see interp.go) — without
// it, each recursive call's array[i] would resolve to a distinct
// storage slot instead of the caller's.
func TestByReferenceArrayMutationAcrossRecursion(t *testing.T) {
	elem := func(outer, idx Node) Node { return VarExpr(Index(outer, idx)) }

	// doubleAll(array, n): if n > 0 { array[n-1] *= 2; doubleAll(array, n-1) }
	body := IfThen(
		BinaryOp(">", Var("n"), IntLit(0)),
		Seq(
			CompoundAssign{LHS: elem(Var("array"), BinaryOp("-", Var("n"), IntLit(1))), Sym: "*", RHS: IntLit(2)},
			Call(Var("doubleAll"), Var("array"), BinaryOp("-", Var("n"), IntLit(1))),
		),
	)

	rt, _ := Eval(SetVar(Var("doubleAll"), Func([]Name{"array", "n"}, body)), Runtime{})
	rt, _ = Eval(SetVar(elem(NameLit("base"), IntLit(0)), IntLit(10)), rt)
	rt, _ = Eval(SetVar(elem(NameLit("base"), IntLit(1)), IntLit(20)), rt)
	rt, _ = Eval(SetVar(elem(NameLit("base"), IntLit(2)), IntLit(30)), rt)

	rt, _ = Eval(Call(Var("doubleAll"), RefTo("base"), IntLit(3)), rt)

	_, v0 := Eval(elem(NameLit("base"), IntLit(0)), rt)
	_, v1 := Eval(elem(NameLit("base"), IntLit(1)), rt)
	_, v2 := Eval(elem(NameLit("base"), IntLit(2)), rt)
	require.Equal(t, Int(20), unwrap(v0))
	require.Equal(t, Int(40), unwrap(v1))
	require.Equal(t, Int(60), unwrap(v2))
}

func TestCastValue(t *testing.T) {
	_, v := Eval(CastTo(CastInt, CharLit('A')), Runtime{})
	require.Equal(t, Int(65), unwrap(v))

	_, v2 := Eval(CastTo(CastChar, IntLit(65)), Runtime{})
	require.Equal(t, Char('A'), unwrap(v2))

	_, v3 := Eval(CastTo(CastBool, IntLit(0)), Runtime{})
	require.Equal(t, Bool(false), unwrap(v3))
}

func TestTupleAndVecExprs(t *testing.T) {
	_, v := Eval(MakeTuple(IntLit(1), CharLit('a')), Runtime{})
	require.Equal(t, NewTuple(Int(1), Char('a')), unwrap(v))

	_, v2 := Eval(MakeVec(IntLit(1), IntLit(2)), Runtime{})
	require.Equal(t, NewVec(Int(1), Int(2)), unwrap(v2))
}

func TestIntWidthWrapsArithmeticResult(t *testing.T) {
	node := SetVar(Var("x"), BinaryOp("+", IntLit(127), IntLit(1)))

	rt, err := EvalWithOptions(node, Runtime{})
	require.NoError(t, err)
	_, v := Eval(Var("x"), rt)
	require.Equal(t, Int(128), unwrap(v), "default width is the unbounded host-native int64")

	rt8, err := EvalWithOptions(node, Runtime{}, WithIntWidth(IntWidth8))
	require.NoError(t, err)
	_, v8 := Eval(Var("x"), rt8)
	require.Equal(t, Int(-128), unwrap(v8), "127+1 wraps to -128 in two's-complement 8-bit")
}
