package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mleone/weekendc/internal/driver"
	"github.com/mleone/weekendc/internal/errors"
	"github.com/mleone/weekendc/internal/token"
)

func TestLexProducesEOFTerminatedStream(t *testing.T) {
	toks := driver.Lex(`int main(int x) { return x; }`)
	if len(toks) == 0 {
		t.Fatal("Lex returned no tokens")
	}
	if last := toks[len(toks)-1]; last.Type != token.EOF {
		t.Fatalf("last token = %v, want EOF", last.Type)
	}
}

func TestLexDiscardsIllegalInput(t *testing.T) {
	toks := driver.Lex("int main(int x) { return x @ 1; }")
	foundNum := false
	for _, tok := range toks {
		if tok.Type == token.ILLEGAL {
			t.Fatal("lexer emitted an ILLEGAL token for '@' instead of discarding it")
		}
		if tok.Type == token.NUM && tok.Num == 1 {
			foundNum = true
		}
	}
	if !foundNum {
		t.Fatal("token after the discarded '@' went missing")
	}
}

func TestParseReturnsCompilerErrorOnSyntaxError(t *testing.T) {
	_, err := driver.Parse(`int main(int x) { return }`, "<test>")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if _, ok := err.(*errors.CompilerError); !ok {
		t.Fatalf("parse error is %T, want *errors.CompilerError", err)
	}
}

func TestCheckResolvesWellTypedProgram(t *testing.T) {
	prog, err := driver.Check(`int main(int x) { return x + 1; }`, "<test>")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(prog.Funcs) == 0 {
		t.Fatal("Check returned a program with no functions")
	}
}

func TestCheckReportsUndefinedVariable(t *testing.T) {
	_, err := driver.Check(`int main(int x) { return y; }`, "<test>")
	if err == nil {
		t.Fatal("expected a type error for an undefined variable")
	}
}

func TestRunEndToEnd(t *testing.T) {
	got, err := driver.Run(`int main(int x) { return x * 2; }`, "<test>", 21, driver.DumpOptions{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 42 {
		t.Fatalf("Run returned %d, want 42", got)
	}
}

func TestRunWritesDumpArtifacts(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "program")

	_, err := driver.Run(`int main(int x) { return x; }`, "<test>", 5, driver.DumpOptions{
		Enabled:  true,
		BaseName: base,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, suffix := range []string{".syn", ".initial.ll", ".optimized.ll"} {
		path := base + suffix
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading %s: %v", path, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestDumpOptionsFromEnv(t *testing.T) {
	t.Setenv("ENABLE_DUMP", "")
	if driver.DumpOptionsFromEnv("prog.wc").Enabled {
		t.Fatal("empty ENABLE_DUMP should leave dumping off")
	}
	t.Setenv("ENABLE_DUMP", "1")
	opts := driver.DumpOptionsFromEnv("prog.wc")
	if !opts.Enabled || opts.BaseName != "prog.wc" {
		t.Fatalf("DumpOptionsFromEnv = %+v, want enabled with the input path as base", opts)
	}
}
