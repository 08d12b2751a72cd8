package codegen_test

import (
	"testing"

	"github.com/mleone/weekendc/internal/builtins"
	"github.com/mleone/weekendc/internal/codegen"
	"github.com/mleone/weekendc/internal/jit"
	"github.com/mleone/weekendc/internal/lexer"
	"github.com/mleone/weekendc/internal/parser"
	"github.com/mleone/weekendc/internal/semantic"
)

// compile runs source through the full front end (lex, parse, resolve) and
// then through Generate, the same sequence internal/driver will use. It
// fails the test on any stage error, since every case in this file is
// expected to be well-formed.
func compile(t *testing.T, source string) *codegen.Module {
	t.Helper()

	l := lexer.New(source)
	p := parser.New(l, source, "<test>")
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	prog.Funcs = append(builtins.Declarations(), prog.Funcs...)

	a := semantic.New(source, "<test>")
	if err := a.Analyze(prog); err != nil {
		t.Fatalf("analyze error: %v", err)
	}

	mod, err := codegen.Generate(prog)
	if err != nil {
		t.Fatalf("codegen error: %v", err)
	}
	return mod
}

// run compiles source, JITs it, and calls its "main" entry point with arg.
func run(t *testing.T, source string, arg int32) int32 {
	t.Helper()

	mod := compile(t, source)
	engine, err := jit.New(mod)
	if err != nil {
		t.Fatalf("jit.New: %v", err)
	}
	defer engine.Dispose()

	main, err := engine.FindFunction("main")
	if err != nil {
		t.Fatalf("FindFunction: %v", err)
	}
	return main(arg)
}

func TestSquare(t *testing.T) {
	const src = `int main(int x) { return x * x; }`
	for _, arg := range []int32{0, 1, 7, -3} {
		if got, want := run(t, src, arg), arg*arg; got != want {
			t.Errorf("square(%d) = %d, want %d", arg, got, want)
		}
	}
}

func TestFactorial(t *testing.T) {
	const src = `
		int fact(int n) {
			if (n <= 1) return 1;
			return n * fact(n - 1);
		}
		int main(int x) { return fact(x); }
	`
	cases := map[int32]int32{0: 1, 1: 1, 5: 120, 6: 720}
	for arg, want := range cases {
		if got := run(t, src, arg); got != want {
			t.Errorf("fact(%d) = %d, want %d", arg, got, want)
		}
	}
}

func TestSummationLoop(t *testing.T) {
	const src = `
		int main(int x) {
			int s = 0;
			int i = 1;
			while (i <= x) {
				s = s + i;
				i = i + 1;
			}
			return s;
		}
	`
	cases := map[int32]int32{0: 0, 1: 1, 5: 15, 10: 55}
	for arg, want := range cases {
		if got := run(t, src, arg); got != want {
			t.Errorf("sum(%d) = %d, want %d", arg, got, want)
		}
	}
}

// TestEvenOddIfElse calls a user-defined bool-returning function from an
// if/else where both arms return, exercising a join block with no incoming
// branch that is closed only by codegen's synthetic fallthrough return
// (never executed, since both arms terminate explicitly).
func TestEvenOddIfElse(t *testing.T) {
	const src = `
		bool even(int n) { return n % 2 == 0; }
		int main(int x) { if (even(x)) return 1; else return 0; }
	`
	cases := map[int32]int32{4: 1, 5: 0, 0: 1, 7: 0, -2: 1}
	for arg, want := range cases {
		if got := run(t, src, arg); got != want {
			t.Errorf("main(%d) = %d, want %d", arg, got, want)
		}
	}
}

// TestTernaryWithLogicalAnd exercises the branch-free ternary and &&
// lowering.
func TestTernaryWithLogicalAnd(t *testing.T) {
	const src = `
		int main(int x) {
			return (x > 0 && x < 10) ? x : -1;
		}
	`
	cases := map[int32]int32{3: 3, 42: -1, -1: -1, 0: -1, 9: 9, 10: -1}
	for arg, want := range cases {
		if got := run(t, src, arg); got != want {
			t.Errorf("main(%d) = %d, want %d", arg, got, want)
		}
	}
}

// TestMutualRecursion exercises the two-pass function registration: isOdd
// calls isEven before isEven has been defined in source order.
func TestMutualRecursion(t *testing.T) {
	const src = `
		bool isOdd(int n) {
			if (n == 0) return false;
			return isEven(n - 1);
		}
		bool isEven(int n) {
			if (n == 0) return true;
			return isOdd(n - 1);
		}
		int main(int x) { return isEven(x) ? 1 : 0; }
	`
	cases := map[int32]int32{0: 1, 1: 0, 4: 1, 7: 0}
	for arg, want := range cases {
		if got := run(t, src, arg); got != want {
			t.Errorf("main(%d) = %d, want %d", arg, got, want)
		}
	}
}

// TestUnreachableCodeAfterReturnDoesNotBreakCodegen checks that statements
// textually following a terminating return in the same block are dropped
// rather than appended after a terminator (the SeqStmt early-stop).
func TestUnreachableCodeAfterReturnDoesNotBreakCodegen(t *testing.T) {
	const src = `
		int main(int x) {
			return x;
			int unused = 1;
			return unused;
		}
	`
	if got, want := run(t, src, int32(42)), int32(42); got != want {
		t.Errorf("main(42) = %d, want %d", got, want)
	}
}

// TestWhileBodyAlwaysReturns checks the loop's join block stays reachable
// via the false edge of the test even when the body never falls through.
func TestWhileBodyAlwaysReturns(t *testing.T) {
	const src = `
		int main(int x) {
			while (x > 0) { return 1; }
			return 0;
		}
	`
	cases := map[int32]int32{5: 1, 1: 1, 0: 0, -3: 0}
	for arg, want := range cases {
		if got := run(t, src, arg); got != want {
			t.Errorf("main(%d) = %d, want %d", arg, got, want)
		}
	}
}

// TestCoercions pins the bool/int conversion table: bool(0) is false,
// any other int is true, int(true) is 1, int(false) is 0.
func TestCoercions(t *testing.T) {
	const src = `
		int main(int x) {
			if (bool(x)) return int(true);
			return int(false);
		}
	`
	cases := map[int32]int32{0: 0, 5: 1, -7: 1, 1: 1}
	for arg, want := range cases {
		if got := run(t, src, arg); got != want {
			t.Errorf("main(%d) = %d, want %d", arg, got, want)
		}
	}
}

// TestIntCondition checks an integer if condition compares
// not-equal-to-zero at the branch.
func TestIntCondition(t *testing.T) {
	const src = `
		int main(int x) {
			if (x) return 1;
			return 0;
		}
	`
	cases := map[int32]int32{0: 0, 1: 1, -1: 1, 42: 1}
	for arg, want := range cases {
		if got := run(t, src, arg); got != want {
			t.Errorf("main(%d) = %d, want %d", arg, got, want)
		}
	}
}

// TestUserDefinedOperator defines + for a parameter-type pair no builtin
// covers and checks the call routes to the user function, not to the
// primitive integer add.
func TestUserDefinedOperator(t *testing.T) {
	const src = `
		int operator+ (bool a, bool b) { return int(a) + int(b); }
		int main(int x) { return (x > 0) + (x > 5); }
	`
	cases := map[int32]int32{0: 0, 3: 1, 7: 2, -1: 0}
	for arg, want := range cases {
		if got := run(t, src, arg); got != want {
			t.Errorf("main(%d) = %d, want %d", arg, got, want)
		}
	}
}

func TestGenerateProducesNonEmptyModule(t *testing.T) {
	mod := compile(t, `int main(int x) { return x; }`)
	defer mod.Dispose()
	if fn := mod.Module.NamedFunction("main"); fn.IsNil() {
		t.Fatal("Generate produced a module with no main function")
	}
}
