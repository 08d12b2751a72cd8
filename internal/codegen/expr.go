package codegen

import (
	"fmt"

	"github.com/mleone/weekendc/internal/ast"
	"github.com/mleone/weekendc/internal/types"
	"tinygo.org/x/go-llvm"
)

// lowerExpr lowers one resolved expression to an llvm.Value.
func (fg *funcGen) lowerExpr(exp ast.Exp) llvm.Value {
	switch e := exp.(type) {
	case *ast.BoolExp:
		return fg.getBool(e.Value)

	case *ast.IntExp:
		return fg.getInt(e.Value)

	case *ast.VarExp:
		value, ok := fg.symbols[e.VarRef]
		if !ok {
			panic(fmt.Sprintf("codegen: unresolved variable reached codegen: %s", e.Name))
		}
		if e.VarRef.Kind == ast.Param {
			return value
		}
		return fg.builder.CreateLoad(value, e.Name)

	case *ast.CallExp:
		return fg.lowerCall(e)

	case *ast.CondExp:
		// The ternary has no side effects to preserve (this language has
		// none at all), so like && and || it lowers to a branch-free
		// select rather than a pair of basic blocks with a phi.
		cond := fg.lowerCondition(e.Cond)
		thenVal := fg.lowerExpr(e.Then)
		elseVal := fg.lowerExpr(e.Else)
		return fg.builder.CreateSelect(cond, thenVal, elseVal, "")

	default:
		panic(fmt.Sprintf("codegen: unhandled expression kind: %T", exp))
	}
}

// lowerCall lowers a CallExp. A call resolved to a definition with a body
// is a user function, operator-named or not, and becomes an IR call; only
// the bodyless builtin declarations lower to primitive instructions, by
// name. A user operator can never shadow a builtin, since its signature
// must differ, so the two cases are disjoint.
func (fg *funcGen) lowerCall(e *ast.CallExp) llvm.Value {
	args := make([]llvm.Value, len(e.Args))
	for i, arg := range e.Args {
		args[i] = fg.lowerExpr(arg)
	}
	b := fg.builder

	if e.FuncRef != nil && e.FuncRef.HasBody() {
		fn, ok := fg.funcs[e.FuncRef]
		if !ok {
			panic(fmt.Sprintf("codegen: unresolved function reached codegen: %s", e.FuncName))
		}
		return b.CreateCall(fn, args, "")
	}

	switch e.FuncName {
	case "+":
		return b.CreateAdd(args[0], args[1], "")
	case "-":
		if len(args) == 1 {
			return b.CreateNeg(args[0], "")
		}
		return b.CreateSub(args[0], args[1], "")
	case "*":
		return b.CreateMul(args[0], args[1], "")
	case "/":
		return b.CreateSDiv(args[0], args[1], "")
	case "%":
		return b.CreateSRem(args[0], args[1], "")
	case "==":
		return b.CreateICmp(llvm.IntEQ, args[0], args[1], "")
	case "!=":
		return b.CreateICmp(llvm.IntNE, args[0], args[1], "")
	case "<":
		return b.CreateICmp(llvm.IntSLT, args[0], args[1], "")
	case "<=":
		return b.CreateICmp(llvm.IntSLE, args[0], args[1], "")
	case ">":
		return b.CreateICmp(llvm.IntSGT, args[0], args[1], "")
	case ">=":
		return b.CreateICmp(llvm.IntSGE, args[0], args[1], "")
	case "!":
		return b.CreateICmp(llvm.IntEQ, args[0], fg.getBool(false), "")
	case "bool":
		return b.CreateICmp(llvm.IntNE, args[0], fg.getInt(0), "")
	case "int":
		return b.CreateZExt(args[0], fg.intType, "")
	case "&&":
		// Branch-free select, not short-circuit branching: both operands
		// are always evaluated. Safe because no expression in this
		// language has side effects.
		return b.CreateSelect(args[0], args[1], fg.getBool(false), "")
	case "||":
		return b.CreateSelect(args[0], fg.getBool(true), args[1], "")
	}

	panic(fmt.Sprintf("codegen: no lowering for builtin: %s", e.FuncName))
}

// lowerCondition lowers an if/while condition and coerces an Int-typed
// result to i1 via compare-not-equal-to-zero; a Bool-typed condition is
// used directly.
func (fg *funcGen) lowerCondition(cond ast.Exp) llvm.Value {
	value := fg.lowerExpr(cond)
	if cond.Type() == types.Bool {
		return value
	}
	return fg.builder.CreateICmp(llvm.IntNE, value, fg.getInt(0), "")
}
