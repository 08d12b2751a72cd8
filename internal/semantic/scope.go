package semantic

import "github.com/mleone/weekendc/internal/ast"

// Scope is a stack of symbol tables, each mapping a name to the VarDecl
// that owns it. Find walks from innermost outward; Insert only ever
// touches the innermost table, so a name in an outer scope is shadowed,
// never overwritten.
type Scope struct {
	tables []map[string]*ast.VarDecl
}

// NewScope creates a Scope with a single (global/function) table.
func NewScope() *Scope {
	s := &Scope{}
	s.Push()
	return s
}

// Push opens a new nested table.
func (s *Scope) Push() {
	s.tables = append(s.tables, make(map[string]*ast.VarDecl))
}

// Pop closes the innermost table.
func (s *Scope) Pop() {
	s.tables = s.tables[:len(s.tables)-1]
}

// Find walks from innermost to outermost table, returning the first match.
func (s *Scope) Find(name string) (*ast.VarDecl, bool) {
	for i := len(s.tables) - 1; i >= 0; i-- {
		if decl, ok := s.tables[i][name]; ok {
			return decl, true
		}
	}
	return nil, false
}

// Insert adds decl under name to the innermost table. It reports false if
// the innermost table already has an entry for name, which is a hard error
// at the call site.
func (s *Scope) Insert(name string, decl *ast.VarDecl) bool {
	innermost := s.tables[len(s.tables)-1]
	if _, exists := innermost[name]; exists {
		return false
	}
	innermost[name] = decl
	return true
}
