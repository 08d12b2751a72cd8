// Package semantic implements the typechecker/resolver. It walks a parsed
// Program in place, assigning a type to every expression, resolving
// variable references to their declarations, and resolving call sites to
// the overload they invoke.
package semantic

import (
	"fmt"

	"github.com/mleone/weekendc/internal/ast"
	"github.com/mleone/weekendc/internal/errors"
	"github.com/mleone/weekendc/internal/token"
	"github.com/mleone/weekendc/internal/types"
)

// typeError is thrown internally via panic and caught once in Analyze,
// mirroring the parser's parseError.
type typeError struct {
	pos token.Position
	msg string
}

func (e typeError) Error() string { return e.msg }

func fail(pos token.Position, format string, args ...any) {
	panic(typeError{pos: pos, msg: fmt.Sprintf(format, args...)})
}

// Analyzer typechecks and resolves one Program. It is not safe for
// concurrent or repeated use across distinct Programs; construct a fresh
// Analyzer per compilation.
type Analyzer struct {
	funcs   *FuncTable
	current *ast.FuncDef

	source string
	file   string
}

// New constructs an Analyzer. source and file are kept only to render
// CompilerError context on failure.
func New(source, file string) *Analyzer {
	return &Analyzer{funcs: NewFuncTable(), source: source, file: file}
}

// Analyze typechecks and resolves prog in place. prog.Funcs is expected to
// already contain the builtin declarations (from internal/builtins),
// inserted ahead of user functions.
func (a *Analyzer) Analyze(prog *ast.Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			te, ok := r.(typeError)
			if !ok {
				panic(r)
			}
			err = errors.New(errors.TypeError, te.pos, te.msg, a.source, a.file)
		}
	}()

	// Functions are inserted into the table before their bodies are
	// analyzed, in source order, so a function may call itself or a
	// function defined later.
	for _, fn := range prog.Funcs {
		if !a.funcs.Insert(fn) {
			fail(fn.Position, "Duplicate function signature: %s", fn.Name)
		}
	}
	for _, fn := range prog.Funcs {
		a.analyzeFunc(fn)
	}
	return nil
}

// analyzeFunc typechecks one function body, if it has one (builtins don't).
func (a *Analyzer) analyzeFunc(fn *ast.FuncDef) {
	if !fn.HasBody() {
		return
	}

	prevFunc := a.current
	a.current = fn
	defer func() { a.current = prevFunc }()

	scope := NewScope()
	for _, param := range fn.Params {
		if !scope.Insert(param.Name, param) {
			fail(fn.Position, "Duplicate parameter name: %s", param.Name)
		}
	}

	a.analyzeStmt(fn.Body, scope)
}

// analyzeStmt dispatches on concrete Stmt type, mutating resolution slots
// in place.
func (a *Analyzer) analyzeStmt(stmt ast.Stmt, scope *Scope) {
	switch s := stmt.(type) {
	case *ast.CallStmt:
		a.analyzeExpr(s.Call, scope)

	case *ast.AssignStmt:
		a.analyzeExpr(s.Rvalue, scope)
		decl, ok := scope.Find(s.VarName)
		if !ok {
			fail(s.Position, "Undefined variable: %s", s.VarName)
		}
		if decl.Kind != ast.Local {
			fail(s.Position, "Cannot assign to parameter: %s", s.VarName)
		}
		if decl.Type != s.Rvalue.Type() {
			fail(s.Position, "Type mismatch assigning to %s: expected %s, got %s",
				s.VarName, decl.Type, s.Rvalue.Type())
		}
		s.VarRef = decl

	case *ast.DeclStmt:
		// The initializer is analyzed before the declaration is inserted
		// into scope, so it cannot reference the variable being declared.
		if s.Init != nil {
			a.analyzeExpr(s.Init, scope)
			if s.Init.Type() != s.Decl.Type {
				fail(s.Position, "Type mismatch initializing %s: expected %s, got %s",
					s.Decl.Name, s.Decl.Type, s.Init.Type())
			}
		}
		if !scope.Insert(s.Decl.Name, s.Decl) {
			fail(s.Position, "Duplicate declaration: %s", s.Decl.Name)
		}

	case *ast.ReturnStmt:
		a.analyzeExpr(s.Value, scope)
		if s.Value.Type() != a.current.ReturnType {
			fail(s.Position, "Return type mismatch: expected %s, got %s",
				a.current.ReturnType, s.Value.Type())
		}

	case *ast.SeqStmt:
		scope.Push()
		for _, child := range s.Stmts {
			a.analyzeStmt(child, scope)
		}
		scope.Pop()

	case *ast.IfStmt:
		a.analyzeCondition(s.Cond, scope)
		a.analyzeStmt(s.Then, scope)
		if s.Else != nil {
			a.analyzeStmt(s.Else, scope)
		}

	case *ast.WhileStmt:
		a.analyzeCondition(s.Cond, scope)
		a.analyzeStmt(s.Body, scope)

	default:
		fail(stmt.Pos(), "Unhandled statement kind: %T", stmt)
	}
}

// analyzeCondition analyzes an if/while condition, which must be Bool or
// Int; the Int to i1 coercion itself happens at codegen time, not here.
func (a *Analyzer) analyzeCondition(cond ast.Exp, scope *Scope) {
	a.analyzeExpr(cond, scope)
	if t := cond.Type(); t != types.Bool && t != types.Int {
		fail(cond.Pos(), "Condition must be bool or int, got %s", t)
	}
}

// analyzeExpr dispatches on concrete Exp type, filling in Type/VarRef/
// FuncRef slots.
func (a *Analyzer) analyzeExpr(exp ast.Exp, scope *Scope) {
	switch e := exp.(type) {
	case *ast.BoolExp, *ast.IntExp:
		// Type is fixed at construction; nothing to resolve.

	case *ast.VarExp:
		decl, ok := scope.Find(e.Name)
		if !ok {
			fail(e.Position, "Undefined variable: %s", e.Name)
		}
		e.TypeOf = decl.Type
		e.VarRef = decl

	case *ast.CallExp:
		argTypes := make([]types.Type, len(e.Args))
		for i, arg := range e.Args {
			a.analyzeExpr(arg, scope)
			argTypes[i] = arg.Type()
		}
		fn, ok := a.funcs.Resolve(e.FuncName, argTypes)
		if !ok {
			fail(e.Position, "No match for function: %s", e.FuncName)
		}
		e.TypeOf = fn.ReturnType
		e.FuncRef = fn

	case *ast.CondExp:
		a.analyzeCondition(e.Cond, scope)
		a.analyzeExpr(e.Then, scope)
		a.analyzeExpr(e.Else, scope)
		if e.Then.Type() != e.Else.Type() {
			fail(e.Position, "Ternary branches must have the same type: %s vs %s",
				e.Then.Type(), e.Else.Type())
		}
		e.TypeOf = e.Then.Type()

	default:
		fail(exp.Pos(), "Unhandled expression kind: %T", exp)
	}
}
