package ast

import (
	"github.com/mleone/weekendc/internal/token"
	"github.com/mleone/weekendc/internal/types"
)

// FuncDef is a function definition or, when Body is nil, a builtin
// declaration (an operator or coercion with no source-level body; see
// internal/builtins). Name may be an operator's textual spelling for
// functions defined with `operator`.
type FuncDef struct {
	Position   token.Position
	ReturnType types.Type
	Name       string
	Params     []*VarDecl
	Body       *SeqStmt // nil for builtin declarations
}

// HasBody reports whether this is a user-defined function with a body, as
// opposed to a synthetic builtin declaration.
func (f *FuncDef) HasBody() bool { return f.Body != nil }

// ParamTypes returns the parameter types in declaration order, used by
// overload resolution to match against call-site argument types.
func (f *FuncDef) ParamTypes() []types.Type {
	result := make([]types.Type, len(f.Params))
	for i, p := range f.Params {
		result[i] = p.Type
	}
	return result
}

// Program is an ordered sequence of function definitions, including the
// builtin declarations prepended by the driver before user code.
type Program struct {
	Funcs []*FuncDef
}
