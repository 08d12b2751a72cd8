package codegen

import (
	"fmt"

	"github.com/mleone/weekendc/internal/ast"
	"tinygo.org/x/go-llvm"
)

// lowerStmt lowers one statement and returns whether the builder's
// current insertion point, once lowering completes, already ends in a
// terminator. Every caller uses this single predicate, instead of
// inspecting LLVM blocks directly, to decide whether an automatic branch
// (SeqStmt falling through to a sibling, If/While stitching a join) would
// be reachable or would illegally follow an existing terminator.
func (fg *funcGen) lowerStmt(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.CallStmt:
		fg.lowerExpr(s.Call)
		return false

	case *ast.AssignStmt:
		rvalue := fg.lowerExpr(s.Rvalue)
		location := fg.symbols[s.VarRef]
		fg.builder.CreateStore(rvalue, location)
		return false

	case *ast.DeclStmt:
		location := fg.allocaInEntry(fg.convertType(s.Decl.Type), s.Decl.Name)
		fg.symbols[s.Decl] = location
		if s.Init != nil {
			fg.builder.CreateStore(fg.lowerExpr(s.Init), location)
		}
		return false

	case *ast.ReturnStmt:
		fg.builder.CreateRet(fg.lowerExpr(s.Value))
		return true

	case *ast.SeqStmt:
		for _, child := range s.Stmts {
			if fg.lowerStmt(child) {
				// Remaining statements are unreachable: lowering them
				// would append instructions after the block's
				// terminator, which is not legal IR.
				return true
			}
		}
		return false

	case *ast.IfStmt:
		fg.lowerIf(s)
		return false

	case *ast.WhileStmt:
		fg.lowerWhile(s)
		return false

	default:
		panic(fmt.Sprintf("codegen: unhandled statement kind: %T", stmt))
	}
}

// lowerIf lowers an if/else. The join block is always created and left as
// the builder's insertion point, even when both arms return; it is then
// either terminated by a following sibling statement or, at the end of
// the function, by the synthetic fallback return. No branch to join is
// emitted for an arm that already ended in a terminator.
func (fg *funcGen) lowerIf(s *ast.IfStmt) {
	cond := fg.lowerCondition(s.Cond)

	thenBlock := llvm.AddBasicBlock(fg.llvmFn, "then")
	var elseBlock llvm.BasicBlock
	if s.Else != nil {
		elseBlock = llvm.AddBasicBlock(fg.llvmFn, "else")
	}
	joinBlock := llvm.AddBasicBlock(fg.llvmFn, "join")

	falseTarget := joinBlock
	if s.Else != nil {
		falseTarget = elseBlock
	}
	fg.builder.CreateCondBr(cond, thenBlock, falseTarget)

	fg.builder.SetInsertPointAtEnd(thenBlock)
	if !fg.lowerStmt(s.Then) {
		fg.builder.CreateBr(joinBlock)
	}

	if s.Else != nil {
		fg.builder.SetInsertPointAtEnd(elseBlock)
		if !fg.lowerStmt(s.Else) {
			fg.builder.CreateBr(joinBlock)
		}
	}

	fg.builder.SetInsertPointAtEnd(joinBlock)
}

// lowerWhile lowers a while loop. The join block is always reachable via
// the loop test's false edge, even when the body always returns.
func (fg *funcGen) lowerWhile(s *ast.WhileStmt) {
	loopBlock := llvm.AddBasicBlock(fg.llvmFn, "loop")
	fg.builder.CreateBr(loopBlock)
	fg.builder.SetInsertPointAtEnd(loopBlock)

	cond := fg.lowerCondition(s.Cond)

	bodyBlock := llvm.AddBasicBlock(fg.llvmFn, "body")
	joinBlock := llvm.AddBasicBlock(fg.llvmFn, "join")
	fg.builder.CreateCondBr(cond, bodyBlock, joinBlock)

	fg.builder.SetInsertPointAtEnd(bodyBlock)
	if !fg.lowerStmt(s.Body) {
		fg.builder.CreateBr(loopBlock)
	}

	fg.builder.SetInsertPointAtEnd(joinBlock)
}
