package semantic

import (
	"strings"
	"testing"

	"github.com/mleone/weekendc/internal/ast"
	"github.com/mleone/weekendc/internal/builtins"
	"github.com/mleone/weekendc/internal/lexer"
	"github.com/mleone/weekendc/internal/parser"
	"github.com/mleone/weekendc/internal/types"
)

// analyzeSource parses input, prepends the builtin declarations exactly as
// the driver does, and runs the analyzer over the result.
func analyzeSource(t *testing.T, input string) (*ast.Program, error) {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l, input, "<test>")
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	prog.Funcs = append(builtins.Declarations(), prog.Funcs...)

	a := New(input, "<test>")
	return prog, a.Analyze(prog)
}

func expectNoError(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, err := analyzeSource(t, input)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	return prog
}

func expectError(t *testing.T, input, substr string) {
	t.Helper()
	_, err := analyzeSource(t, input)
	if err == nil {
		t.Fatalf("expected error containing %q, got none", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Fatalf("expected error containing %q, got: %v", substr, err)
	}
}

func TestAnalyzeSimpleMain(t *testing.T) {
	expectNoError(t, `int main(int x) { return x * x; }`)
}

func TestAnalyzeRecursion(t *testing.T) {
	expectNoError(t, `
		int fact(int n) { if (n <= 1) return 1; return n * fact(n - 1); }
		int main(int x) { return fact(x); }
	`)
}

func TestAnalyzeMutualRecursionForwardReference(t *testing.T) {
	// odd calls even, which is defined later in source order; legal
	// because functions are inserted into the table before their bodies
	// are analyzed.
	expectNoError(t, `
		bool odd(int n) { if (n == 0) return false; return even(n - 1); }
		bool even(int n) { if (n == 0) return true; return odd(n - 1); }
		int main(int x) { if (even(x)) return 1; return 0; }
	`)
}

func TestAnalyzeUndefinedVariable(t *testing.T) {
	expectError(t, `int f(int x) { return y; }`, "Undefined variable: y")
}

func TestAnalyzeNoMatchingOverload(t *testing.T) {
	expectError(t, `int main(int x) { return true + 1; }`, "No match for function: +")
}

func TestAnalyzeEqualityAcrossTypesIsAnError(t *testing.T) {
	// true == 1 has no overload: == is defined for (int,int) and
	// (bool,bool), not (bool,int).
	expectError(t, `int main(int x) { if (true == 1) return 1; return 0; }`, "No match for function: ==")
}

func TestAnalyzeAssignToParamIsAnError(t *testing.T) {
	expectError(t, `int f(int x) { x = 1; return x; }`, "Cannot assign to parameter: x")
}

func TestAnalyzeDuplicateLocalDeclaration(t *testing.T) {
	expectError(t, `int main(int x) { int y = 1; int y = 2; return y; }`, "Duplicate declaration: y")
}

func TestAnalyzeDuplicateParam(t *testing.T) {
	expectError(t, `int f(int x, int x) { return x; }`, "Duplicate parameter name: x")
}

func TestAnalyzeDuplicateFunctionSignature(t *testing.T) {
	expectError(t, `
		int f(int x) { return x; }
		int f(int y) { return y; }
		int main(int x) { return f(x); }
	`, "Duplicate function signature: f")
}

func TestAnalyzeOverloadByParamTypesIsAllowed(t *testing.T) {
	expectNoError(t, `
		int f(int x) { return x; }
		int f(bool x) { return int(x); }
		int main(int x) { return f(x) + f(true); }
	`)
}

func TestAnalyzeReturnTypeMismatch(t *testing.T) {
	expectError(t, `bool f(int x) { return x; }`, "Return type mismatch")
}

func TestAnalyzeInitializerTypeMismatch(t *testing.T) {
	expectError(t, `int main(int x) { bool b = x; return x; }`, "Type mismatch initializing b")
}

func TestAnalyzeConditionMustBeBoolOrInt(t *testing.T) {
	// Every Exp in this language is Bool or Int (no other type exists), so
	// there is no source-level way to construct an ill-typed condition;
	// this test instead exercises that both Bool and Int are accepted.
	expectNoError(t, `int main(int x) { int n = x; if (x) return 1; while (n > 0) { n = 0; } return 0; }`)
}

func TestAnalyzeShadowingInNestedScope(t *testing.T) {
	prog := expectNoError(t, `
		int main(int x) {
			int y = 1;
			{
				int y = 2;
				y = x;
			}
			return x;
		}
	`)
	main := findFunc(prog, "main")
	inner := main.Body.Stmts[1].(*ast.SeqStmt)
	assign := inner.Stmts[1].(*ast.AssignStmt)
	innerDecl := inner.Stmts[0].(*ast.DeclStmt).Decl
	outerDecl := main.Body.Stmts[0].(*ast.DeclStmt).Decl
	if assign.VarRef != innerDecl {
		t.Fatalf("assignment should resolve to the inner shadowing declaration")
	}
	if assign.VarRef == outerDecl {
		t.Fatalf("assignment must not resolve to the outer declaration")
	}
}

func TestAnalyzeTernaryBranchTypeMismatch(t *testing.T) {
	expectError(t, `int main(int x) { return x > 0 ? x : true; }`, "Ternary branches must have the same type")
}

func TestAnalyzeResolvedInvariants(t *testing.T) {
	prog := expectNoError(t, `
		bool even(int n) { return n % 2 == 0; }
		int main(int x) { return (x > 0 && x < 10) ? x : -1; }
	`)

	main := findFunc(prog, "main")
	ret := main.Body.Stmts[0].(*ast.ReturnStmt)
	cond := ret.Value.(*ast.CondExp)

	if cond.Type() != types.Int {
		t.Fatalf("ternary result type = %s, want Int", cond.Type())
	}
	and := cond.Cond.(*ast.CallExp)
	if and.FuncName != "&&" || and.Type() != types.Bool {
		t.Fatalf("&& should resolve to a Bool-returning builtin")
	}
	if and.FuncRef == nil || len(and.FuncRef.Params) != 2 {
		t.Fatalf("&& should resolve to the (bool,bool) builtin")
	}
}

// TestAnalyzeIsIdempotent runs a fresh analyzer over an already-resolved
// program and checks nothing changes: same types, same declaration and
// function back-references.
func TestAnalyzeIsIdempotent(t *testing.T) {
	const src = `
		int fact(int n) { if (n <= 1) return 1; return n * fact(n - 1); }
		int main(int x) { return fact(x); }
	`
	prog := expectNoError(t, src)

	main := findFunc(prog, "main")
	ret := main.Body.Stmts[0].(*ast.ReturnStmt)
	call := ret.Value.(*ast.CallExp)
	funcRef := call.FuncRef
	arg := call.Args[0].(*ast.VarExp)
	varRef := arg.VarRef

	a := New(src, "<test>")
	if err := a.Analyze(prog); err != nil {
		t.Fatalf("re-analysis failed: %v", err)
	}
	if call.FuncRef != funcRef {
		t.Fatal("re-analysis rebound the call's function reference")
	}
	if arg.VarRef != varRef || arg.Type() != types.Int {
		t.Fatal("re-analysis rebound the argument's variable reference")
	}
}

func findFunc(prog *ast.Program, name string) *ast.FuncDef {
	for _, fn := range prog.Funcs {
		if fn.Name == name && fn.HasBody() {
			return fn
		}
	}
	return nil
}
