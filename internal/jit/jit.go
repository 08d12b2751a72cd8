// Package jit wraps LLVM's MCJIT execution engine behind a two-call
// contract: hand over an owned IR module, get back a handle; ask the
// handle for a symbol by name, get back a callable function.
package jit

import (
	"fmt"
	"sync"

	"github.com/mleone/weekendc/internal/codegen"
	"tinygo.org/x/go-llvm"
)

var initOnce sync.Once

// initializeLLVM performs the process-wide, once-only LLVM target setup.
// Safe to call from multiple compilations in the same process.
func initializeLLVM() {
	initOnce.Do(func() {
		llvm.InitializeNativeTarget()
		llvm.InitializeNativeAsmPrinter()
		llvm.LinkInMCJIT()
	})
}

// Engine is a JIT handle over one compiled module. The module passed to
// New may not be used again afterward; the execution engine takes
// ownership.
type Engine struct {
	ctx llvm.Context
	ee  llvm.ExecutionEngine
}

// New hands module off to a fresh MCJIT execution engine and returns a
// handle to it.
func New(module *codegen.Module) (*Engine, error) {
	initializeLLVM()

	options := llvm.NewMCJITCompilerOptions()
	ee, err := llvm.NewMCJITCompiler(module.Module, options)
	if err != nil {
		return nil, fmt.Errorf("jit: failed to create execution engine: %w", err)
	}
	return &Engine{ctx: module.Context, ee: ee}, nil
}

// Dispose releases the execution engine and its module, and the LLVM
// context the module's types were built in.
func (e *Engine) Dispose() {
	e.ee.Dispose()
	e.ctx.Dispose()
}

// FindFunction resolves name to a callable Go closure over the JIT'd
// native function, matching the `int main(int)` entry-point signature.
// It reports an error if no such symbol exists.
func (e *Engine) FindFunction(name string) (func(int32) int32, error) {
	fn := e.ee.FindFunction(name)
	if fn.IsNil() {
		return nil, fmt.Errorf("jit: function not found: %s", name)
	}

	intType := llvm.Int32Type()
	return func(arg int32) int32 {
		argVal := llvm.NewGenericValueFromInt(intType, uint64(uint32(arg)), true)
		result := e.ee.RunFunction(fn, []llvm.GenericValue{argVal})
		return int32(uint32(result.Int(true)))
	}, nil
}
