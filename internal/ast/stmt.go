package ast

import "github.com/mleone/weekendc/internal/token"

// Stmt is the sum type of statement nodes.
type Stmt interface {
	Pos() token.Position
	stmt()
}

// CallStmt evaluates a call for its side effect and discards the result.
type CallStmt struct {
	Position token.Position
	Call     *CallExp
}

func (s *CallStmt) Pos() token.Position { return s.Position }
func (*CallStmt) stmt()                 {}

// AssignStmt assigns the value of Rvalue to a local variable named
// VarName. VarRef is filled in by the semantic analyzer, which also
// enforces that the target is a Local, not a Param.
type AssignStmt struct {
	Position token.Position
	VarName  string
	Rvalue   Exp

	VarRef *VarDecl
}

func (s *AssignStmt) Pos() token.Position { return s.Position }
func (*AssignStmt) stmt()                 {}

// DeclStmt introduces and optionally initializes a local variable. It owns
// Decl; the scope the analyzer inserts Decl into does not outlive
// typechecking, but Decl itself is kept alive by this statement and by any
// VarExp/AssignStmt that resolves to it afterward.
type DeclStmt struct {
	Position token.Position
	Decl     *VarDecl
	Init     Exp // nil if uninitialized
}

func (s *DeclStmt) Pos() token.Position { return s.Position }
func (*DeclStmt) stmt()                 {}

// ReturnStmt returns Value from the enclosing function. Every function in
// this language returns a value; there is no bare "return;".
type ReturnStmt struct {
	Position token.Position
	Value    Exp
}

func (s *ReturnStmt) Pos() token.Position { return s.Position }
func (*ReturnStmt) stmt()                 {}

// SeqStmt is a `{ ... }` block. It introduces a nested lexical scope during
// semantic analysis.
type SeqStmt struct {
	Position token.Position
	Stmts    []Stmt
}

func (s *SeqStmt) Pos() token.Position { return s.Position }
func (*SeqStmt) stmt()                 {}

// IfStmt is an `if (cond) then [else else_]` conditional. Else is nil when
// there is no else clause.
type IfStmt struct {
	Position token.Position
	Cond     Exp
	Then     Stmt
	Else     Stmt
}

func (s *IfStmt) Pos() token.Position { return s.Position }
func (*IfStmt) stmt()                 {}

// WhileStmt is a `while (cond) body` loop.
type WhileStmt struct {
	Position token.Position
	Cond     Exp
	Body     Stmt
}

func (s *WhileStmt) Pos() token.Position { return s.Position }
func (*WhileStmt) stmt()                 {}
