// Package driver sequences the compiler pipeline: lex, parse, typecheck,
// generate, JIT, and run. Each pipeline stage is also exposed on its own,
// so the `lex`, `parse`, and `check` subcommands can stop partway through
// without paying for the stages they don't need.
package driver

import (
	"fmt"
	"os"
	"strings"

	"github.com/mleone/weekendc/internal/ast"
	"github.com/mleone/weekendc/internal/builtins"
	"github.com/mleone/weekendc/internal/codegen"
	"github.com/mleone/weekendc/internal/jit"
	"github.com/mleone/weekendc/internal/lexer"
	"github.com/mleone/weekendc/internal/parser"
	"github.com/mleone/weekendc/internal/printer"
	"github.com/mleone/weekendc/internal/semantic"
	"github.com/mleone/weekendc/internal/token"
)

// Lex tokenizes source and returns every token through EOF. It never
// errors: the lexer has no rejection states, it discards invalid
// characters with a stderr warning and scans on.
func Lex(source string) []token.Token {
	l := lexer.New(source)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

// Parse lexes and parses source into an unresolved Program. The returned
// error, when non-nil, is always an *errors.CompilerError.
func Parse(source, file string) (*ast.Program, error) {
	l := lexer.New(source)
	p := parser.New(l, source, file)
	return p.ParseProgram()
}

// Check parses source and runs the semantic analyzer over it, returning
// the resolved Program. The builtin declarations are spliced in ahead of
// the user's functions before analysis, exactly as internal/semantic
// expects.
func Check(source, file string) (*ast.Program, error) {
	prog, err := Parse(source, file)
	if err != nil {
		return nil, err
	}
	prog.Funcs = append(builtins.Declarations(), prog.Funcs...)

	a := semantic.New(source, file)
	if err := a.Analyze(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

// DumpOptions controls the ENABLE_DUMP artifacts Run writes alongside the
// input file: the pretty-printed AST and the generated IR text, under both
// the "initial" and "optimized" names. The two IR files hold identical
// content, since weekendc never runs an optimization pipeline.
type DumpOptions struct {
	Enabled bool
	// BaseName is the path dumps are written alongside, with ".syn",
	// ".initial.ll", and ".optimized.ll" suffixes appended. The CLI
	// passes the input file path, so compiling prog.wc with dumping on
	// leaves prog.wc.syn next to it.
	BaseName string
}

// DumpOptionsFromEnv reads the ENABLE_DUMP environment variable: any
// non-empty value turns dumping on.
func DumpOptionsFromEnv(baseName string) DumpOptions {
	return DumpOptions{
		Enabled:  os.Getenv("ENABLE_DUMP") != "",
		BaseName: baseName,
	}
}

// Run compiles source through every stage and JITs the resulting module,
// calling its "main" entry point with arg. The LLVM module and execution
// engine are disposed before Run returns.
func Run(source, file string, arg int32, dump DumpOptions) (int32, error) {
	prog, err := Check(source, file)
	if err != nil {
		return 0, err
	}

	if dump.Enabled {
		if err := writeDump(dump.BaseName+".syn", printer.Program(prog)); err != nil {
			return 0, fmt.Errorf("driver: writing AST dump: %w", err)
		}
	}

	mod, err := codegen.Generate(prog)
	if err != nil {
		return 0, fmt.Errorf("driver: codegen: %w", err)
	}

	if dump.Enabled {
		// No optimization pipeline runs, so the module handed to the JIT
		// is exactly the module just generated. Both dump names are still
		// produced; a caller diffing "initial" against "optimized" output
		// sees, correctly, that nothing changed between them.
		ir := mod.Module.String()
		if err := writeDump(dump.BaseName+".initial.ll", ir); err != nil {
			mod.Dispose()
			return 0, fmt.Errorf("driver: writing initial IR dump: %w", err)
		}
		if err := writeDump(dump.BaseName+".optimized.ll", ir); err != nil {
			mod.Dispose()
			return 0, fmt.Errorf("driver: writing optimized IR dump: %w", err)
		}
	}

	engine, err := jit.New(mod)
	if err != nil {
		mod.Dispose()
		return 0, fmt.Errorf("driver: jit: %w", err)
	}
	defer engine.Dispose()

	main, err := engine.FindFunction("main")
	if err != nil {
		return 0, fmt.Errorf("driver: %w", err)
	}
	return main(arg), nil
}

func writeDump(path, content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
