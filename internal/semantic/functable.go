package semantic

import (
	"github.com/mleone/weekendc/internal/ast"
	"github.com/mleone/weekendc/internal/types"
)

// FuncTable is a multimap from function name to every FuncDef sharing that
// name. Entries are kept in insertion order so overload resolution picking
// the first exact match is deterministic; this matters because builtins
// are inserted before user declarations with the same name.
type FuncTable struct {
	byName map[string][]*ast.FuncDef
}

// NewFuncTable creates an empty FuncTable.
func NewFuncTable() *FuncTable {
	return &FuncTable{byName: make(map[string][]*ast.FuncDef)}
}

// Insert adds fn to the multimap. It reports false if a FuncDef with the
// same name and parameter-type list is already present: a duplicate
// signature, which is a hard error.
func (t *FuncTable) Insert(fn *ast.FuncDef) bool {
	for _, existing := range t.byName[fn.Name] {
		if sameParamTypes(existing.ParamTypes(), fn.ParamTypes()) {
			return false
		}
	}
	t.byName[fn.Name] = append(t.byName[fn.Name], fn)
	return true
}

// Resolve selects the first FuncDef named name whose parameter types
// exactly match argTypes, in order. Exact match only; no implicit
// conversions.
func (t *FuncTable) Resolve(name string, argTypes []types.Type) (*ast.FuncDef, bool) {
	for _, candidate := range t.byName[name] {
		if sameParamTypes(candidate.ParamTypes(), argTypes) {
			return candidate, true
		}
	}
	return nil, false
}

func sameParamTypes(a, b []types.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
