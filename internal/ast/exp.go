package ast

import (
	"github.com/mleone/weekendc/internal/token"
	"github.com/mleone/weekendc/internal/types"
)

// Exp is the sum type of expression nodes. Each concrete type carries its
// own mutable resolution slots (type, var/func back-reference) rather than
// routing through a visitor; Go's type switches make that dispatch
// unnecessary.
type Exp interface {
	Pos() token.Position
	Type() types.Type
	exp()
}

// BoolExp is a boolean literal; its type is fixed at construction.
type BoolExp struct {
	Position token.Position
	Value    bool
}

func (e *BoolExp) Pos() token.Position { return e.Position }
func (e *BoolExp) Type() types.Type    { return types.Bool }
func (*BoolExp) exp()                  {}

// IntExp is an integer literal; its type is fixed at construction.
type IntExp struct {
	Position token.Position
	Value    int
}

func (e *IntExp) Pos() token.Position { return e.Position }
func (e *IntExp) Type() types.Type    { return types.Int }
func (*IntExp) exp()                  {}

// VarExp is a reference to a variable by name. Name is what the parser
// produces; TypeOf and VarRef are filled in by the semantic analyzer.
type VarExp struct {
	Position token.Position
	Name     string

	TypeOf types.Type
	VarRef *VarDecl // weak back-reference, set during typechecking
}

func (e *VarExp) Pos() token.Position { return e.Position }
func (e *VarExp) Type() types.Type    { return e.TypeOf }
func (*VarExp) exp()                  {}

// CallExp is a function call. Operators are represented as calls whose
// FuncName is the operator's textual spelling ("+", "<=", "!", "bool",
// "int", ...), so builtin operators and user-defined functions share one
// resolution and codegen path.
type CallExp struct {
	Position token.Position
	FuncName string
	Args     []Exp

	TypeOf  types.Type
	FuncRef *FuncDef // weak back-reference, set during typechecking
}

func (e *CallExp) Pos() token.Position { return e.Position }
func (e *CallExp) Type() types.Type    { return e.TypeOf }
func (*CallExp) exp()                  {}

// CondExp is a ternary `cond ? then : else` expression. It is kept as its
// own node, distinct from CallExp, because the ternary is grammar, not an
// overloadable function: Cond may be Bool or Int (coerced at codegen
// exactly like an if/while condition), and Then/Else must agree in type,
// which becomes the expression's type.
type CondExp struct {
	Position token.Position
	Cond     Exp
	Then     Exp
	Else     Exp

	TypeOf types.Type
}

func (e *CondExp) Pos() token.Position { return e.Position }
func (e *CondExp) Type() types.Type    { return e.TypeOf }
func (*CondExp) exp()                  {}

// NewUnaryCall builds a single-argument CallExp, used by the parser for
// prefix negation and explicit bool()/int() coercions.
func NewUnaryCall(pos token.Position, funcName string, arg Exp) *CallExp {
	return &CallExp{Position: pos, FuncName: funcName, Args: []Exp{arg}}
}

// NewBinaryCall builds a two-argument CallExp, used by the parser's
// precedence climb to fold infix operators.
func NewBinaryCall(pos token.Position, funcName string, left, right Exp) *CallExp {
	return &CallExp{Position: pos, FuncName: funcName, Args: []Exp{left, right}}
}
