// Package builtins supplies the synthetic, body-less FuncDef declarations
// for every primitive operator and type coercion. They are fed into the
// same function table used for user definitions, so overload resolution
// needs no special case for them; it just needs them inserted first, which
// also reserves their name slots against user redefinition.
package builtins

import (
	"github.com/mleone/weekendc/internal/ast"
	"github.com/mleone/weekendc/internal/types"
)

func decl(name string, ret types.Type, paramTypes ...types.Type) *ast.FuncDef {
	params := make([]*ast.VarDecl, len(paramTypes))
	for i, t := range paramTypes {
		params[i] = &ast.VarDecl{Kind: ast.Param, Type: t, Name: "_"}
	}
	return &ast.FuncDef{ReturnType: ret, Name: name, Params: params}
}

// Declarations returns the canonical builtin set, in a fixed order. Two
// overloads may share a name only if their parameter type lists differ,
// true here for "==", "!=", and unary vs. binary "-".
func Declarations() []*ast.FuncDef {
	return []*ast.FuncDef{
		decl("+", types.Int, types.Int, types.Int),
		decl("-", types.Int, types.Int, types.Int),
		decl("*", types.Int, types.Int, types.Int),
		decl("/", types.Int, types.Int, types.Int),
		decl("%", types.Int, types.Int, types.Int),

		decl("==", types.Bool, types.Int, types.Int),
		decl("!=", types.Bool, types.Int, types.Int),
		decl("==", types.Bool, types.Bool, types.Bool),
		decl("!=", types.Bool, types.Bool, types.Bool),

		decl("<", types.Bool, types.Int, types.Int),
		decl("<=", types.Bool, types.Int, types.Int),
		decl(">", types.Bool, types.Int, types.Int),
		decl(">=", types.Bool, types.Int, types.Int),

		decl("!", types.Bool, types.Bool),
		decl("-", types.Int, types.Int),

		decl("&&", types.Bool, types.Bool, types.Bool),
		decl("||", types.Bool, types.Bool, types.Bool),

		decl("bool", types.Bool, types.Int),
		decl("int", types.Int, types.Bool),
	}
}
