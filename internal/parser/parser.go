// Package parser implements a recursive-descent, operator-precedence
// parser that turns a token stream into an unresolved AST.
package parser

import (
	"fmt"

	"github.com/mleone/weekendc/internal/ast"
	"github.com/mleone/weekendc/internal/errors"
	"github.com/mleone/weekendc/internal/lexer"
	"github.com/mleone/weekendc/internal/token"
	"github.com/mleone/weekendc/internal/types"
)

// parseError is thrown internally via panic and caught once in
// ParseProgram. Error handling is fail-fast: the first error aborts the
// parse, with no recovery attempted.
type parseError struct {
	pos token.Position
	msg string
}

func (e parseError) Error() string { return e.msg }

func fail(pos token.Position, format string, args ...any) {
	panic(parseError{pos: pos, msg: fmt.Sprintf(format, args...)})
}

// Parser consumes tokens from a Lexer with a single token of lookahead.
type Parser struct {
	lex    *lexer.Lexer
	cur    token.Token
	source string
	file   string
}

// New constructs a Parser over l. source and file are kept only to render
// CompilerError context on failure.
func New(l *lexer.Lexer, source, file string) *Parser {
	p := &Parser{lex: l, source: source, file: file}
	p.cur = p.lex.NextToken()
	return p
}

func (p *Parser) next() token.Token {
	tok := p.cur
	p.cur = p.lex.NextToken()
	return tok
}

func (p *Parser) curIs(t token.Type) bool {
	return p.cur.Type == t
}

// expect consumes the current token if it matches t, otherwise fails with
// `Expected '<X>'`.
func (p *Parser) expect(t token.Type) token.Token {
	if !p.curIs(t) {
		fail(p.cur.Pos, "Expected '%s'", t)
	}
	return p.next()
}

// ParseProgram parses a sequence of one or more function definitions,
// recovering a panicked parseError into a returned *errors.CompilerError.
func (p *Parser) ParseProgram() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = errors.New(errors.ParseError, pe.pos, pe.msg, p.source, p.file)
		}
	}()

	prog = &ast.Program{}
	prog.Funcs = append(prog.Funcs, p.parseFuncDef())
	for !p.curIs(token.EOF) {
		prog.Funcs = append(prog.Funcs, p.parseFuncDef())
	}
	return prog, nil
}

// parseType parses "bool" or "int".
func (p *Parser) parseType() types.Type {
	tok := p.next()
	switch tok.Type {
	case token.BOOL:
		return types.Bool
	case token.INT:
		return types.Int
	default:
		fail(tok.Pos, "Expected type name")
		return types.Unknown
	}
}

// parseIdent parses a plain identifier.
func (p *Parser) parseIdent() token.Token {
	if !p.curIs(token.IDENT) {
		fail(p.cur.Pos, "Expected identifier")
	}
	return p.next()
}

// parseFuncID parses the name portion of a FuncDef: a plain identifier, or
// `operator <op>` where <op> is an operator token or a coercion keyword.
func (p *Parser) parseFuncID() string {
	if p.curIs(token.OPERATOR) {
		p.next()
		tok := p.next()
		if !token.IsOperatorToken(tok.Type) {
			fail(tok.Pos, "Invalid operator")
		}
		return tok.Type.String()
	}
	return p.parseIdent().Literal
}

// parseVarDecl parses `Type Id` as a parameter or local declaration.
func (p *Parser) parseVarDecl(kind ast.Kind) *ast.VarDecl {
	typ := p.parseType()
	name := p.parseIdent()
	return &ast.VarDecl{Kind: kind, Type: typ, Name: name.Literal}
}

// parseFuncDef parses `Type FuncId "(" ParamList? ")" (Seq | ";")`.
func (p *Parser) parseFuncDef() *ast.FuncDef {
	pos := p.cur.Pos
	retType := p.parseType()
	name := p.parseFuncID()

	p.expect(token.LPAREN)
	var params []*ast.VarDecl
	if !p.curIs(token.RPAREN) {
		params = append(params, p.parseVarDecl(ast.Param))
		for p.curIs(token.COMMA) {
			p.next()
			params = append(params, p.parseVarDecl(ast.Param))
		}
	}
	p.expect(token.RPAREN)

	var body *ast.SeqStmt
	if p.curIs(token.LBRACE) {
		body = p.parseSeq()
	} else {
		p.expect(token.SEMICOLON)
	}

	return &ast.FuncDef{Position: pos, ReturnType: retType, Name: name, Params: params, Body: body}
}
