package parser

import (
	"github.com/mleone/weekendc/internal/ast"
	"github.com/mleone/weekendc/internal/token"
)

// precedence gives the binding power of each infix operator token (higher
// binds tighter). Tokens absent from this map are not infix operators and
// terminate an expression.
var precedence = map[token.Type]int{
	token.STAR:     6,
	token.SLASH:    6,
	token.PERCENT:  5,
	token.PLUS:     5,
	token.MINUS:    5,
	token.LT:       4,
	token.LE:       4,
	token.GT:       4,
	token.GE:       4,
	token.EQ:       3,
	token.NE:       3,
	token.AND:      2,
	token.OR:       1,
	token.QUESTION: 0,
}

// parseExpr implements precedence climbing: after parsing a primary as the
// left operand, it folds infix operators whose precedence is at least
// minPrec, recursing with minPrec+1 for each operator's right operand so
// that equal-precedence operators associate left.
//
// The ternary `?`/`:` sits at precedence 0 and is handled specially: when
// `?` folds, a CondExp is built whose Then is parsed as a fresh
// precedence-0 expression (bounded by the matching `:`) and whose Else is
// also parsed at precedence 0. A nested `a ? b : c ? d : e` re-enters this
// same ternary case for the Else branch, so the ternary right-folds to
// `a ? b : (c ? d : e)`.
func (p *Parser) parseExpr(minPrec int) ast.Exp {
	left := p.parseUnary()

	for {
		prec, ok := precedence[p.cur.Type]
		if !ok || prec < minPrec {
			return left
		}

		if p.cur.Type == token.QUESTION {
			qpos := p.next().Pos
			thenExp := p.parseExpr(0)
			p.expect(token.COLON)
			elseExp := p.parseExpr(0)
			left = &ast.CondExp{Position: qpos, Cond: left, Then: thenExp, Else: elseExp}
			continue
		}

		op := p.next()
		right := p.parseExpr(prec + 1)
		left = ast.NewBinaryCall(op.Pos, op.Type.String(), left, right)
	}
}

// parseUnary parses a Primary, handling prefix `-` as a unary CallExp
// syntactically distinct from binary minus; the two are disambiguated
// later, by overload resolution on arity.
func (p *Parser) parseUnary() ast.Exp {
	if p.cur.Type == token.MINUS {
		pos := p.next().Pos
		operand := p.parseUnary()
		return ast.NewUnaryCall(pos, "-", operand)
	}
	return p.parsePrimary()
}

// parsePrimary parses a literal, a variable reference, a call, an explicit
// coercion, or a parenthesized expression.
func (p *Parser) parsePrimary() ast.Exp {
	tok := p.cur
	switch tok.Type {
	case token.TRUE:
		p.next()
		return &ast.BoolExp{Position: tok.Pos, Value: true}
	case token.FALSE:
		p.next()
		return &ast.BoolExp{Position: tok.Pos, Value: false}
	case token.NUM:
		p.next()
		return &ast.IntExp{Position: tok.Pos, Value: tok.Num}
	case token.IDENT:
		p.next()
		if p.curIs(token.LPAREN) {
			return &ast.CallExp{Position: tok.Pos, FuncName: tok.Literal, Args: p.parseArgs()}
		}
		return &ast.VarExp{Position: tok.Pos, Name: tok.Literal}
	case token.BOOL, token.INT:
		// Explicit coercion: bool(x) / int(x).
		p.next()
		return &ast.CallExp{Position: tok.Pos, FuncName: tok.Type.String(), Args: p.parseArgs()}
	case token.LPAREN:
		p.next()
		exp := p.parseExpr(0)
		p.expect(token.RPAREN)
		return exp
	default:
		fail(tok.Pos, "Unexpected token: %s", tok)
		return nil
	}
}
