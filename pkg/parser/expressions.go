package parser

import (
	"github.com/conneroisu/calclite/internal/ast"
	"github.com/conneroisu/calclite/pkg/lexer"
)

// parseIntegerLiteral converts an already-decoded INT token into an
// IntegerLiteral node. The lexer decodes the literal, so failure here would
// only happen if a caller hand-built a malformed token.
func (p *Parser) parseIntegerLiteral() ast.Expr {
	v, ok := p.cur.Literal.(int64)
	if !ok {
		p.errors.Addf(p.cur.Line, p.cur.Column, "Could not parse %v as int", p.cur.Literal)

		return nil
	}

	return &ast.IntegerLiteral{Value: v}
}

// parseFloatLiteral converts an already-decoded FLOAT token into a
// FloatLiteral node.
func (p *Parser) parseFloatLiteral() ast.Expr {
	v, ok := p.cur.Literal.(float64)
	if !ok {
		p.errors.Addf(p.cur.Line, p.cur.Column, "Could not parse %v as float", p.cur.Literal)

		return nil
	}

	return &ast.FloatLiteral{Value: v}
}

// parseBooleanLiteral converts a TRUE/FALSE token into a BooleanLiteral.
func (p *Parser) parseBooleanLiteral() ast.Expr {
	return &ast.BooleanLiteral{Value: p.curIs(lexer.TOKEN_TRUE)}
}

// parseIdentifierLiteral reads a bare identifier reference.
func (p *Parser) parseIdentifierLiteral() ast.Expr {
	name, _ := p.cur.Literal.(string)

	return &ast.IdentifierLiteral{Name: name}
}

// parseCallExpression parses a call's argument list. p.cur is the LPAREN
// that follows the callee; callee must be an IdentifierLiteral.
func (p *Parser) parseCallExpression(callee ast.Expr) ast.Expr {
	ident, ok := callee.(*ast.IdentifierLiteral)
	if !ok {
		p.errors.Addf(p.cur.Line, p.cur.Column, "Expected %v, but received %v instead.", lexer.TOKEN_IDENT, p.cur.Type)

		return nil
	}

	call := &ast.CallExpression{Callee: ident.Name}

	if p.peekIs(lexer.TOKEN_RPAREN) {
		p.advance()

		return call
	}

	p.advance()
	call.Arguments = append(call.Arguments, p.parseExpression(precedenceLowest))

	for p.peekIs(lexer.TOKEN_COMMA) {
		p.advance()
		p.advance()
		call.Arguments = append(call.Arguments, p.parseExpression(precedenceLowest))
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return call
}
