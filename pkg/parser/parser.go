package parser

import (
	"github.com/conneroisu/calclite/internal/ast"
	"github.com/conneroisu/calclite/pkg/lexer"
)

// Parser is a Pratt parser with two-token lookahead (cur/peek) over the
// token stream produced by pkg/lexer. It never panics: every malformed
// construct is recorded in errors and parsing resumes at the next token.
type Parser struct {
	l      *lexer.Lexer
	cur    lexer.Token
	peek   lexer.Token
	errors *ParseErrors
}

// New creates a parser over l, priming the cur/peek window with the first
// two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: &ParseErrors{},
	}
	p.advance()
	p.advance()

	return p
}

// Errors returns every error collected while parsing, formatted as strings.
func (p *Parser) Errors() []string {
	msgs := make([]string, 0, p.errors.Count())
	for _, err := range p.errors.Errors() {
		msgs = append(msgs, err.Error())
	}

	return msgs
}

// HasErrors reports whether parsing collected any error.
func (p *Parser) HasErrors() bool { return p.errors.HasErrors() }

// ParseProgram parses the entire token stream into a Program. It never
// returns a Go error directly; callers check HasErrors/Errors afterward.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curIs(lexer.TOKEN_EOF) {
		if p.curIs(lexer.TOKEN_EOL) {
			p.advance()

			continue
		}

		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}

		p.advance()
	}

	return program
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// parseStatement dispatches on the current token to the matching statement
// parser, falling back to an expression statement.
func (p *Parser) parseStatement() ast.Statement {
	if p.curIs(lexer.TOKEN_IDENT) && p.peekIs(lexer.TOKEN_EQUALS) {
		return p.parseAssignStatement()
	}

	switch p.cur.Type {
	case lexer.TOKEN_VAR:
		return p.parseVarStatement()
	case lexer.TOKEN_FUNC:
		return p.parseFunctionStatement()
	case lexer.TOKEN_RETURN:
		return p.parseReturnStatement()
	case lexer.TOKEN_LBRACE:
		return p.parseBlockStatement()
	case lexer.TOKEN_WHILE:
		return p.parseWhileStatement()
	case lexer.TOKEN_IF:
		return p.parseIfStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseExpressionStatement wraps a bare expression (e.g. a call to print)
// evaluated only for its effect.
func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.parseExpression(precedenceLowest)
	if expr == nil {
		return nil
	}

	return &ast.ExpressionStatement{Expression: expr}
}

// parseExpression implements the Pratt parsing core: parse a prefix
// expression, then keep consuming infix operators while they bind tighter
// than precedence.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	left := p.parsePrefixExpression()
	if left == nil {
		return nil
	}

	for !p.peekIs(lexer.TOKEN_EOL) && !p.peekIs(lexer.TOKEN_EOF) && precedence < p.peekPrecedence() {
		if p.peekIs(lexer.TOKEN_LPAREN) {
			p.advance()
			left = p.parseCallExpression(left)

			continue
		}

		if !p.isInfixOperator(p.peek.Type) {
			break
		}

		p.advance()
		left = p.parseInfixExpression(left)
	}

	return left
}

// parsePrefixExpression is the Pratt "nud": it handles every token that can
// start an expression.
func (p *Parser) parsePrefixExpression() ast.Expr {
	switch p.cur.Type {
	case lexer.TOKEN_INT:
		return p.parseIntegerLiteral()
	case lexer.TOKEN_FLOAT:
		return p.parseFloatLiteral()
	case lexer.TOKEN_TRUE, lexer.TOKEN_FALSE:
		return p.parseBooleanLiteral()
	case lexer.TOKEN_IDENT:
		return p.parseIdentifierLiteral()
	case lexer.TOKEN_LPAREN:
		return p.parseGroupedExpression()
	default:
		p.errors.Addf(p.cur.Line, p.cur.Column, "Prefix parse function missing for %v", p.cur.Type)

		return nil
	}
}

// parseInfixExpression is the Pratt "led": it builds an InfixExpression from
// the already-parsed left side and the operator now in p.cur.
func (p *Parser) parseInfixExpression(left ast.Expr) ast.Expr {
	operator, _ := p.cur.Literal.(string)
	precedence := p.curPrecedence()

	p.advance()
	right := p.parseExpression(precedence)

	return &ast.InfixExpression{Left: left, Operator: operator, Right: right}
}

// parseGroupedExpression parses a parenthesized expression: ( expr ).
func (p *Parser) parseGroupedExpression() ast.Expr {
	p.advance()

	expr := p.parseExpression(precedenceLowest)
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return expr
}

// curIs reports whether the current token has type t.
func (p *Parser) curIs(t lexer.TokenType) bool { return p.cur.Type == t }

// peekIs reports whether the lookahead token has type t.
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek.Type == t }

// expectPeek consumes the lookahead token if it matches t, else records an
// "Expected X, but received Y instead." error and leaves the cursor in place.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.advance()

		return true
	}

	p.errors.Addf(p.peek.Line, p.peek.Column, "Expected %v, but received %v instead.", t, p.peek.Type)

	return false
}

// peekPrecedence returns the binding strength of the lookahead token, or
// precedenceLowest if it is not an operator.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedenceMap[p.peek.Type]; ok {
		return prec
	}

	return precedenceLowest
}

// curPrecedence returns the binding strength of the current token, or
// precedenceLowest if it is not an operator.
func (p *Parser) curPrecedence() int {
	if prec, ok := precedenceMap[p.cur.Type]; ok {
		return prec
	}

	return precedenceLowest
}

// isInfixOperator reports whether t has a registered binding strength.
func (p *Parser) isInfixOperator(t lexer.TokenType) bool {
	_, ok := precedenceMap[t]

	return ok
}
