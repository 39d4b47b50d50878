package imp

// Node is a tagged IR variant (§ IR node catalog). The interpreter
// dispatches on the concrete type via eval's type switch; Node itself
// is just a marker so that a Go compile error, not a runtime panic,
// catches an attempt to pass a non-Node value where IR is expected.
type Node interface {
	node()
}

// Literal evaluates to v unchanged, without touching the runtime.
type Literal struct{ V Value }

func (Literal) node() {}

// Lit is a convenience constructor for Literal.
func Lit(v Value) Node { return Literal{V: v} }

// IntLit, CharLit, BoolLit and StrLit are convenience literal
// constructors for the common scalar cases.
func IntLit(i int64) Node    { return Lit(Int(i)) }
func CharLit(c rune) Node    { return Lit(Char(c)) }
func BoolLit(b bool) Node    { return Lit(Bool(b)) }
func StrLit(s string) Node   { return Lit(NewStr(s)) }
func NoneLit() Node          { return Lit(Unit{}) }

// Var evaluates NameExpr to a name, looks it up in the store, and
// returns a BoundVar carrying both the name and its current value
// (Unit if unset).
type VarNode struct{ NameExpr Node }

func (VarNode) node() {}

// Var builds a VarNode over a name already known at construction
// time (the common case: a plain enum/string variable name).
func Var(name Name) Node { return VarNode{NameExpr: Lit(nameToValue(name))} }

// VarExpr builds a VarNode whose name is computed by nameExpr at
// evaluation time.
func VarExpr(nameExpr Node) Node { return VarNode{NameExpr: nameExpr} }

// NameLit builds a Node that evaluates to name itself, as opposed to
// Var(name), which evaluates to the value currently bound to name.
// Use this as the outer name_expr passed to Index when the outer name
// is a plain base name rather than something that must first be
// looked up and dereferenced (compare indexing through a by-reference
// parameter, where the outer name_expr is Var(param) so that the
// Ref value it resolves to is followed through resolveName).
func NameLit(name Name) Node { return Lit(nameToValue(name)) }

// Index builds the name_expr for `outer[idx]` per § IR node catalog:
// "the variable name becomes the tuple (outer_name, i)". outerNameExpr
// must itself evaluate to a name (typically NameLit(base) or another
// Index) or to a Ref (Var(param) for a by-reference parameter), not to
// an ordinary variable's bound value.
func Index(outerNameExpr, idxExpr Node) Node {
	return TupleExpr{Elems: []Node{outerNameExpr, idxExpr}}
}

// Ref evaluates NameExpr to a name and returns Ref{name}, the
// address-of-a-variable value used for by-reference parameter passing
// and first-class lambda values.
type RefNode struct{ NameExpr Node }

func (RefNode) node() {}

// RefTo builds a RefNode over a name known at construction time.
func RefTo(name Name) Node { return RefNode{NameExpr: Lit(nameToValue(name))} }

// RefExpr builds a RefNode whose name is computed at evaluation time.
func RefExpr(nameExpr Node) Node { return RefNode{NameExpr: nameExpr} }

// Assign evaluates LHS in name mode (not value mode — § Lvalue /
// assignment lowering) to get a name, evaluates RHS to get a value,
// emits Set(name, value) and returns that value. LHS must be a
// VarNode; anything else is MalformedIR.
type Assign struct {
	LHS Node
	RHS Node
}

func (Assign) node() {}

// SetVar builds an Assign node.
func SetVar(lhs, rhs Node) Node { return Assign{LHS: lhs, RHS: rhs} }

// CompoundAssign implements `x += e` and friends: a single store write
// at x's name, with the new value computed as pureOp(baseSym,
// currentValue(x), e).
type CompoundAssign struct {
	LHS    Node
	Sym    string // "+", "-", "*", "/", "%", "&", "|", "^", "<<", ">>"
	RHS    Node
}

func (CompoundAssign) node() {}

// IncDec implements pre/post ++/-- (§ Lvalue / assignment lowering):
// a single store write at Target's name, returning the new value if
// Pre, the old value otherwise.
type IncDec struct {
	Target Node // must be a VarNode
	Sym    string // "++" or "--"
	Pre    bool
}

func (IncDec) node() {}

// PreInc, PostInc, PreDec, PostDec are convenience constructors.
func PreInc(target Node) Node  { return IncDec{Target: target, Sym: "++", Pre: true} }
func PostInc(target Node) Node { return IncDec{Target: target, Sym: "++", Pre: false} }
func PreDec(target Node) Node  { return IncDec{Target: target, Sym: "--", Pre: true} }
func PostDec(target Node) Node { return IncDec{Target: target, Sym: "--", Pre: false} }

// Op applies a pure or short-circuit operator to its evaluated
// arguments (§ Op). && and || are short-circuit (§4.4); everything
// else goes through pureOp.
type Op struct {
	Sym  string
	Args []Node
}

func (Op) node() {}

// UnaryOp, BinaryOp are convenience constructors for Op.
func UnaryOp(sym string, a Node) Node    { return Op{Sym: sym, Args: []Node{a}} }
func BinaryOp(sym string, a, b Node) Node { return Op{Sym: sym, Args: []Node{a, b}} }
func And(a, b Node) Node                 { return BinaryOp("&&", a, b) }
func Or(a, b Node) Node                  { return BinaryOp("||", a, b) }

// IndexOp evaluates `seq[idx]`.
func IndexOp(seq, idx Node) Node { return BinaryOp("[]", seq, idx) }

// IndexUpdateOp evaluates `seq(idx, x)`, returning a new sequence.
func IndexUpdateOp(seq, idx, x Node) Node {
	return Op{Sym: "()", Args: []Node{seq, idx, x}}
}

// Cast applies a host conversion to the evaluated operand.
type Cast struct {
	To   CastKind
	Expr Node
}

func (Cast) node() {}

// CastKind names a target type for Cast.
type CastKind int

const (
	CastInt CastKind = iota
	CastChar
	CastBool
)

// CastTo builds a Cast node.
func CastTo(to CastKind, expr Node) Node { return Cast{To: to, Expr: expr} }

// Peek evaluates OffsetExpr to k and returns I[k], or Unit if
// out-of-range (including negative k).
type Peek struct{ OffsetExpr Node }

func (Peek) node() {}

// PeekAt builds a Peek node; PeekHere peeks at offset 0.
func PeekAt(offsetExpr Node) Node { return Peek{OffsetExpr: offsetExpr} }
func PeekHere() Node              { return Peek{OffsetExpr: IntLit(0)} }

// AdvanceNode evaluates KExpr, emits AM Advance(k), and returns Unit.
type AdvanceNode struct{ KExpr Node }

func (AdvanceNode) node() {}

// AdvanceBy builds an AdvanceNode; AdvanceOne advances by one.
func AdvanceBy(kExpr Node) Node { return AdvanceNode{KExpr: kExpr} }
func AdvanceOne() Node          { return AdvanceNode{KExpr: IntLit(1)} }

// GetC emits AM Advance(1) and returns the character that was at the
// front of Stdin before advancing, or Unit if Stdin was empty.
type GetC struct{}

func (GetC) node() {}

// PutC evaluates ChExpr, emits AM Put(ch), and returns ch.
type PutC struct{ ChExpr Node }

func (PutC) node() {}

// PutChar builds a PutC node.
func PutChar(chExpr Node) Node { return PutC{ChExpr: chExpr} }

// BlockNode evaluates its children left to right, stopping early (and
// returning that token unchanged) on the first Continue/Break
// (§ Structured control flow: Block). An empty block returns Unit.
type BlockNode struct{ Nodes []Node }

func (BlockNode) node() {}

// Seq builds a BlockNode.
func Seq(nodes ...Node) Node { return BlockNode{Nodes: nodes} }

// IfNode evaluates Cond; if truthy, evaluates Then, else Else (a nil
// Else behaves as an empty block returning Unit).
type IfNode struct {
	Cond Node
	Then Node
	Else Node
}

func (IfNode) node() {}

// IfThen and IfThenElse build IfNode values.
func IfThen(cond, then Node) Node { return IfNode{Cond: cond, Then: then} }
func IfThenElse(cond, then, els Node) Node {
	return IfNode{Cond: cond, Then: then, Else: els}
}

// LoopNode repeatedly evaluates Body; a Break(v) return from Body
// terminates the loop with value v, anything else (including
// Continue) re-evaluates Body (§ Structured control flow: Loop).
type LoopNode struct{ Body Node }

func (LoopNode) node() {}

// Loop builds a LoopNode.
func Loop(body Node) Node { return LoopNode{Body: body} }

// WhileLoop is pre-test-loop sugar over LoopNode: evaluate cond before
// every iteration of body, stopping (without running body) the first
// time cond is falsy.
func WhileLoop(cond, body Node) Node {
	return Loop(IfThenElse(cond, Seq(body, Cont()), Brk()))
}

// For is C-style for-loop sugar: init once, then behave like
// WhileLoop(cond, Seq(body, post)).
func For(init, cond, post, body Node) Node {
	return Seq(init, WhileLoop(cond, Seq(body, post)))
}

// LambdaNode constructs a callable IR value (§ IR node catalog:
// Lambda). Params names the formal parameters bound fresh in a nested
// scope on each application.
type LambdaNode struct {
	Params []Name
	Body   Node
}

func (LambdaNode) node() {}

// Func builds a LambdaNode.
func Func(params []Name, body Node) Node { return LambdaNode{Params: params, Body: body} }

// Apply evaluates FuncExpr to a Lambda value and applies it to the
// evaluated Args, per the application-lowering rule in § IR node
// catalog: bracket the body with scope-counter increment/decrement,
// bind formals fresh in the new scope, evaluate the body, and use
// break_(v) (here: any Break the body returns) as the call's return
// value.
type Apply struct {
	FuncExpr Node
	Args     []Node
}

func (Apply) node() {}

// Call builds an Apply node.
func Call(funcExpr Node, args ...Node) Node { return Apply{FuncExpr: funcExpr, Args: args} }

// BreakNode evaluates ValueExpr (Unit if nil) and returns Break(v),
// unwinding the nearest enclosing Block/Loop.
type BreakNode struct{ ValueExpr Node }

func (BreakNode) node() {}

// Brk and BrkVal build BreakNode values.
func Brk() Node           { return BreakNode{} }
func BrkVal(expr Node) Node { return BreakNode{ValueExpr: expr} }

// ContinueNode returns Continue unconditionally.
type ContinueNode struct{}

func (ContinueNode) node() {}

// Cont builds a ContinueNode.
func Cont() Node { return ContinueNode{} }

// SwitchCase pairs a case value expression with its body. Default, if
// present among Cases, is migrated to the terminal else position
// regardless of where it appears in source order (§ IR node catalog:
// Switch).
type SwitchCase struct {
	Value   Node // nil marks this case as the default
	Body    Node
}

// CaseOf and DefaultCase build SwitchCase values.
func CaseOf(value, body Node) SwitchCase { return SwitchCase{Value: value, Body: body} }
func DefaultCase(body Node) SwitchCase   { return SwitchCase{Body: body} }

// SwitchNode lowers to a chain of If(scrutinee == case.Value,
// case.Body, next) with the default as the terminal else. A switch
// with no matching case and no default returns Unit, not an error.
type SwitchNode struct {
	Scrutinee Node
	Cases     []SwitchCase
}

func (SwitchNode) node() {}

// Switch builds a SwitchNode.
func Switch(scrutinee Node, cases ...SwitchCase) Node {
	return SwitchNode{Scrutinee: scrutinee, Cases: cases}
}

// TupleExpr evaluates each of Elems and returns a Tuple.
type TupleExpr struct{ Elems []Node }

func (TupleExpr) node() {}

// MakeTuple builds a TupleExpr.
func MakeTuple(elems ...Node) Node { return TupleExpr{Elems: elems} }

// VecExpr evaluates each of Elems and returns a Vec.
type VecExpr struct{ Elems []Node }

func (VecExpr) node() {}

// MakeVec builds a VecExpr.
func MakeVec(elems ...Node) Node { return VecExpr{Elems: elems} }

// nameToValue converts a construction-time Name into the Value that
// Lit(...) needs to carry it through evaluation unchanged, the
// inverse of valueToName.
func nameToValue(n Name) Value {
	switch x := n.(type) {
	case nil:
		return Unit{}
	case int:
		return Int(int64(x))
	case int64:
		return Int(x)
	case rune:
		return Char(x)
	case bool:
		return Bool(x)
	case string:
		return NewStr(x)
	case [2]interface{}:
		return NewTuple(nameToValue(x[0]), nameToValue(x[1]))
	default:
		panic(MalformedIR{Reason: "name is not a construction-time value"})
	}
}
