package ast

import "github.com/mleone/weekendc/internal/types"

// Kind distinguishes a function parameter from a local variable; the
// codegen stage uses it to decide whether a VarExp reads an incoming
// argument directly or loads from a stack slot.
type Kind int

const (
	Local Kind = iota
	Param
)

func (k Kind) String() string {
	if k == Param {
		return "param"
	}
	return "local"
}

// VarDecl is a variable declaration: a function parameter or a local
// variable. Identity is by pointer, not by name; two variables sharing a
// name in different scopes are distinct VarDecls. A VarDecl is created once
// by the parser and never mutated afterward. It is owned by its enclosing
// FuncDef (parameters) or DeclStmt (locals), and every VarExp/AssignStmt
// reference to it is a plain Go pointer kept alive by the collector for as
// long as anything still points to it.
type VarDecl struct {
	Kind Kind
	Type types.Type
	Name string
}
