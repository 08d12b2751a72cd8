// Package printer renders a Program back to weekendc source text. It is
// used by the `weekendc parse` subcommand, the ENABLE_DUMP `.syn` dump,
// and parser snapshot tests. The output is itself valid source: operators
// print infix and fully parenthesized, so re-parsing a printed program
// yields the same tree. Declarations without a body are skipped: the
// builtin ones are synthetic and were never part of the user's source, and
// a body-less declaration written in the source is omitted as well.
package printer

import (
	"fmt"
	"strings"

	"github.com/mleone/weekendc/internal/ast"
)

// Program renders every user-defined function in prog, in source order,
// separated by a blank line.
func Program(prog *ast.Program) string {
	var sb strings.Builder
	first := true
	for _, fn := range prog.Funcs {
		if !fn.HasBody() {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false
		FuncDef(&sb, fn)
	}
	return sb.String()
}

// FuncDef renders one function definition, including its body.
func FuncDef(sb *strings.Builder, fn *ast.FuncDef) {
	fmt.Fprintf(sb, "%s %s(", fn.ReturnType, funcDisplayName(fn.Name))
	for i, param := range fn.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%s %s", param.Type, param.Name)
	}
	sb.WriteString(") ")
	Stmt(sb, 0, fn.Body)
	sb.WriteString("\n")
}

// funcDisplayName spells an operator-defined function the way source
// would name it (`operator+`), and leaves a plain identifier alone.
func funcDisplayName(name string) string {
	if name == "bool" || name == "int" {
		return "operator " + name
	}
	if isOperatorName(name) {
		return "operator" + name
	}
	return name
}

func isOperatorName(name string) bool {
	switch name {
	case "+", "-", "*", "/", "%", "==", "!=", "<", "<=", ">", ">=", "!", "&&", "||", "bool", "int":
		return true
	default:
		return false
	}
}

func isBinaryOperatorName(name string) bool {
	switch name {
	case "+", "-", "*", "/", "%", "==", "!=", "<", "<=", ">", ">=", "&&", "||":
		return true
	default:
		return false
	}
}

// Exp renders one expression.
func Exp(exp ast.Exp) string {
	var sb strings.Builder
	writeExp(&sb, exp)
	return sb.String()
}

func writeExp(sb *strings.Builder, exp ast.Exp) {
	switch e := exp.(type) {
	case *ast.BoolExp:
		if e.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case *ast.IntExp:
		fmt.Fprintf(sb, "%d", e.Value)
	case *ast.VarExp:
		sb.WriteString(e.Name)
	case *ast.CallExp:
		// Operator calls print infix (or prefix for unary minus), fully
		// parenthesized so re-parsing regroups them identically; the
		// bool/int coercions and ordinary functions keep call syntax,
		// which the grammar accepts for both.
		switch {
		case e.FuncName == "-" && len(e.Args) == 1:
			sb.WriteString("(-")
			writeExp(sb, e.Args[0])
			sb.WriteString(")")
		case isBinaryOperatorName(e.FuncName) && len(e.Args) == 2:
			sb.WriteString("(")
			writeExp(sb, e.Args[0])
			fmt.Fprintf(sb, " %s ", e.FuncName)
			writeExp(sb, e.Args[1])
			sb.WriteString(")")
		default:
			fmt.Fprintf(sb, "%s(", e.FuncName)
			for i, arg := range e.Args {
				if i > 0 {
					sb.WriteString(", ")
				}
				writeExp(sb, arg)
			}
			sb.WriteString(")")
		}
	case *ast.CondExp:
		// The outer parens keep a ternary embedded in a larger expression
		// from swallowing its right context on reparse.
		sb.WriteString("((")
		writeExp(sb, e.Cond)
		sb.WriteString(") ? (")
		writeExp(sb, e.Then)
		sb.WriteString(") : (")
		writeExp(sb, e.Else)
		sb.WriteString("))")
	default:
		fmt.Fprintf(sb, "<unknown exp %T>", exp)
	}
}

// Stmt renders one statement at the given indentation depth (in units of
// one tab).
func Stmt(sb *strings.Builder, depth int, stmt ast.Stmt) {
	indent := strings.Repeat("\t", depth)
	switch s := stmt.(type) {
	case *ast.CallStmt:
		sb.WriteString(indent)
		writeExp(sb, s.Call)
		sb.WriteString(";")

	case *ast.AssignStmt:
		fmt.Fprintf(sb, "%s%s = ", indent, s.VarName)
		writeExp(sb, s.Rvalue)
		sb.WriteString(";")

	case *ast.DeclStmt:
		fmt.Fprintf(sb, "%s%s %s", indent, s.Decl.Type, s.Decl.Name)
		if s.Init != nil {
			sb.WriteString(" = ")
			writeExp(sb, s.Init)
		}
		sb.WriteString(";")

	case *ast.ReturnStmt:
		sb.WriteString(indent + "return ")
		writeExp(sb, s.Value)
		sb.WriteString(";")

	case *ast.SeqStmt:
		sb.WriteString(indent + "{\n")
		for _, child := range s.Stmts {
			Stmt(sb, depth+1, child)
			sb.WriteString("\n")
		}
		sb.WriteString(indent + "}")

	case *ast.IfStmt:
		sb.WriteString(indent + "if (")
		writeExp(sb, s.Cond)
		sb.WriteString(")\n")
		Stmt(sb, depth, s.Then)
		if s.Else != nil {
			sb.WriteString("\n" + indent + "else\n")
			Stmt(sb, depth, s.Else)
		}

	case *ast.WhileStmt:
		sb.WriteString(indent + "while (")
		writeExp(sb, s.Cond)
		sb.WriteString(")\n")
		Stmt(sb, depth, s.Body)

	default:
		fmt.Fprintf(sb, "%s<unknown stmt %T>", indent, stmt)
	}
}
