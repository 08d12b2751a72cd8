// Package codegen lowers a resolved AST to an LLVM IR module. It operates
// per-function with no whole-program analysis beyond registering each
// function's signature ahead of its body, so that forward and mutually
// recursive calls resolve regardless of source order.
package codegen

import (
	"fmt"

	"github.com/mleone/weekendc/internal/ast"
	"github.com/mleone/weekendc/internal/types"
	"tinygo.org/x/go-llvm"
)

// Module bundles the LLVM context and module produced by Generate. The
// context owns the module's types and must outlive it. Callers that hand
// the module to internal/jit transfer ownership and may not touch it
// afterward, but the context is kept alive here for any pre-JIT inspection
// (dumping IR text for ENABLE_DUMP, see internal/driver).
type Module struct {
	Context llvm.Context
	Module  llvm.Module
}

// Dispose releases the underlying LLVM context, and the module with it. It
// is for a module that no jit.Engine owns: jit.Engine.Dispose already
// releases the context of the module it was given, so calling both
// disposes the context twice.
func (m *Module) Dispose() {
	m.Context.Dispose()
}

// generator holds the state shared across every function in one
// compilation: the LLVM context/module, the primitive LLVM types, and the
// IR-function table keyed by FuncDef identity. Its lifetime is the module
// being built.
type generator struct {
	ctx    llvm.Context
	module llvm.Module

	boolType llvm.Type
	intType  llvm.Type

	funcs map[*ast.FuncDef]llvm.Value
}

// Generate lowers prog (already typechecked and resolved) to a fresh LLVM
// module. Builtin declarations (FuncDef with no body) never reach LLVM as
// functions, since lowerCall recognizes their names directly, so only user
// functions with bodies get declared and defined.
//
// Function headers are registered in a first pass, before any body is
// lowered, so a call to a function defined later in source order (mutual
// recursion included) already has an llvm.Value to resolve to.
func Generate(prog *ast.Program) (*Module, error) {
	ctx := llvm.NewContext()
	mod := ctx.NewModule("weekendc")

	g := &generator{
		ctx:      ctx,
		module:   mod,
		boolType: ctx.Int1Type(),
		intType:  ctx.Int32Type(),
		funcs:    make(map[*ast.FuncDef]llvm.Value),
	}

	for _, fn := range prog.Funcs {
		g.declareFunc(fn)
	}
	for _, fn := range prog.Funcs {
		g.defineFunc(fn)
	}

	return &Module{Context: ctx, Module: mod}, nil
}

// convertType maps a source type to its LLVM equivalent: Bool to i1, Int
// to i32. types.Unknown must never reach codegen, since every Exp has a
// resolved type once the semantic analyzer has run; seeing it here means
// the pipeline was driven out of order.
func (g *generator) convertType(t types.Type) llvm.Type {
	switch t {
	case types.Bool:
		return g.boolType
	case types.Int:
		return g.intType
	default:
		panic(fmt.Sprintf("codegen: unresolved type reached codegen: %s", t))
	}
}

func (g *generator) getBool(b bool) llvm.Value {
	v := uint64(0)
	if b {
		v = 1
	}
	return llvm.ConstInt(g.boolType, v, false)
}

func (g *generator) getInt(i int) llvm.Value {
	return llvm.ConstInt(g.intType, uint64(int32(i)), true)
}
