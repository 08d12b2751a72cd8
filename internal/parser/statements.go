package parser

import (
	"github.com/mleone/weekendc/internal/ast"
	"github.com/mleone/weekendc/internal/token"
)

// parseSeq parses `"{" Stmt* "}"`.
func (p *Parser) parseSeq() *ast.SeqStmt {
	pos := p.expect(token.LBRACE).Pos
	var stmts []ast.Stmt
	for !p.curIs(token.RBRACE) {
		stmts = append(stmts, p.parseStmt())
	}
	p.expect(token.RBRACE)
	return &ast.SeqStmt{Position: pos, Stmts: stmts}
}

// parseStmt parses one statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Type {
	case token.IDENT:
		return p.parseIdentStmt()
	case token.BOOL, token.INT:
		return p.parseDeclStmt()
	case token.LBRACE:
		return p.parseSeq()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	default:
		fail(p.cur.Pos, "Unexpected token: %s", p.cur)
		return nil
	}
}

// parseIdentStmt disambiguates `Id = Exp ;` from `Id ( Args ) ;`.
func (p *Parser) parseIdentStmt() ast.Stmt {
	id := p.next()
	if p.curIs(token.ASSIGN) {
		p.next()
		rvalue := p.parseExpr(0)
		p.expect(token.SEMICOLON)
		return &ast.AssignStmt{Position: id.Pos, VarName: id.Literal, Rvalue: rvalue}
	}

	call := &ast.CallExp{Position: id.Pos, FuncName: id.Literal, Args: p.parseArgs()}
	p.expect(token.SEMICOLON)
	return &ast.CallStmt{Position: id.Pos, Call: call}
}

// parseDeclStmt parses `Type Id ("=" Exp)? ";"`.
func (p *Parser) parseDeclStmt() ast.Stmt {
	pos := p.cur.Pos
	decl := p.parseVarDecl(ast.Local)
	var init ast.Exp
	if p.curIs(token.ASSIGN) {
		p.next()
		init = p.parseExpr(0)
	}
	p.expect(token.SEMICOLON)
	return &ast.DeclStmt{Position: pos, Decl: decl, Init: init}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	pos := p.expect(token.RETURN).Pos
	value := p.parseExpr(0)
	p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{Position: pos, Value: value}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	pos := p.expect(token.IF).Pos
	p.expect(token.LPAREN)
	cond := p.parseExpr(0)
	p.expect(token.RPAREN)

	then := p.parseStmt()
	var elseStmt ast.Stmt
	if p.curIs(token.ELSE) {
		p.next()
		elseStmt = p.parseStmt()
	}
	return &ast.IfStmt{Position: pos, Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	pos := p.expect(token.WHILE).Pos
	p.expect(token.LPAREN)
	cond := p.parseExpr(0)
	p.expect(token.RPAREN)
	body := p.parseStmt()
	return &ast.WhileStmt{Position: pos, Cond: cond, Body: body}
}

// parseArgs parses `"(" (Exp ("," Exp)*)? ")"`.
func (p *Parser) parseArgs() []ast.Exp {
	p.expect(token.LPAREN)
	var args []ast.Exp
	if !p.curIs(token.RPAREN) {
		args = append(args, p.parseExpr(0))
		for p.curIs(token.COMMA) {
			p.next()
			args = append(args, p.parseExpr(0))
		}
	}
	p.expect(token.RPAREN)
	return args
}
