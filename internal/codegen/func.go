package codegen

import (
	"github.com/mleone/weekendc/internal/ast"
	"tinygo.org/x/go-llvm"
)

// declareFunc registers fn's signature as an llvm.Value in the function
// table, without lowering its body. Builtin declarations (no body) are
// skipped entirely; they never become LLVM functions.
//
// Linkage: "main" is external so the JIT can look it up by name; every
// other function is internal, which lets LLVM inline and dead-code
// eliminate it.
func (g *generator) declareFunc(fn *ast.FuncDef) {
	if !fn.HasBody() {
		return
	}

	paramTypes := make([]llvm.Type, len(fn.Params))
	for i, param := range fn.Params {
		paramTypes[i] = g.convertType(param.Type)
	}
	retType := g.convertType(fn.ReturnType)
	funcType := llvm.FunctionType(retType, paramTypes, false /* isVarArg */)

	llvmFn := llvm.AddFunction(g.module, fn.Name, funcType)
	if fn.Name == "main" {
		llvmFn.SetLinkage(llvm.ExternalLinkage)
	} else {
		llvmFn.SetLinkage(llvm.InternalLinkage)
	}

	g.funcs[fn] = llvmFn
}

// funcGen generates code for the body of a single function. It carries
// the per-function symbol table mapping each VarDecl to either its
// incoming parameter value or its alloca, plus the builder whose insertion
// point tracks the current basic block.
type funcGen struct {
	*generator

	fn      *ast.FuncDef
	llvmFn  llvm.Value
	entry   llvm.BasicBlock
	builder llvm.Builder

	symbols map[*ast.VarDecl]llvm.Value
}

// defineFunc lowers fn's body into the llvm.Value declareFunc already
// registered for it. No-op for builtin declarations.
func (g *generator) defineFunc(fn *ast.FuncDef) {
	if !fn.HasBody() {
		return
	}
	llvmFn := g.funcs[fn]

	fg := &funcGen{
		generator: g,
		fn:        fn,
		llvmFn:    llvmFn,
		symbols:   make(map[*ast.VarDecl]llvm.Value),
	}
	for i, param := range fn.Params {
		fg.symbols[param] = llvmFn.Param(i)
	}

	fg.entry = llvm.AddBasicBlock(llvmFn, "entry")
	fg.builder = g.ctx.NewBuilder()
	defer fg.builder.Dispose()
	fg.builder.SetInsertPointAtEnd(fg.entry)

	terminated := fg.lowerStmt(fn.Body)

	// Safety-net return for a body that falls off the end without an
	// explicit return: always an i32 zero, regardless of the function's
	// declared return type. Unreached by well-formed int-returning code;
	// a known type mismatch for a bool-returning function that reaches it.
	if !terminated {
		fg.builder.CreateRet(fg.getInt(0))
	}
}

// allocaInEntry emits an alloca at the function's entry block, at its
// first insertion point, regardless of where the DeclStmt that requested
// it sits in the body. Allocas outside the entry block cannot be promoted
// to SSA values by mem2reg. A second, throwaway builder is pinned to the
// entry block so the main builder's insertion point is undisturbed.
func (fg *funcGen) allocaInEntry(t llvm.Type, name string) llvm.Value {
	allocaBuilder := fg.ctx.NewBuilder()
	defer allocaBuilder.Dispose()

	if first := fg.entry.FirstInstruction(); !first.IsNil() {
		allocaBuilder.SetInsertPointBefore(first)
	} else {
		allocaBuilder.SetInsertPointAtEnd(fg.entry)
	}
	return allocaBuilder.CreateAlloca(t, name)
}
