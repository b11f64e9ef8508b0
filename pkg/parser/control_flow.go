package parser

import (
	"github.com/conneroisu/calclite/internal/ast"
	"github.com/conneroisu/calclite/pkg/lexer"
)

// parseVarStatement parses 'var' IDENT ':' TYPE '=' Expr, consuming through
// the next EOL or EOF after the value as the grammar requires.
func (p *Parser) parseVarStatement() ast.Statement {
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	name := &ast.IdentifierLiteral{Name: p.cur.Literal.(string)}

	if !p.expectPeek(lexer.TOKEN_COLON) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_TYPE) {
		return nil
	}
	declaredType := p.cur.Literal.(string)

	if !p.expectPeek(lexer.TOKEN_EQUALS) {
		return nil
	}

	p.advance()
	value := p.parseExpression(precedenceLowest)

	for !p.peekIs(lexer.TOKEN_EOL) && !p.peekIs(lexer.TOKEN_EOF) {
		p.advance()
	}

	return &ast.VarStatement{Name: name, DeclaredType: declaredType, Value: value}
}

// parseAssignStatement parses IDENT '=' Expr. p.cur is the identifier and
// p.peek is EQUALS on entry (checked by the statement dispatcher).
func (p *Parser) parseAssignStatement() ast.Statement {
	name := &ast.IdentifierLiteral{Name: p.cur.Literal.(string)}

	p.advance()
	p.advance()
	value := p.parseExpression(precedenceLowest)

	return &ast.AssignStatement{Name: name, Value: value}
}

// parseFunctionStatement parses 'func' IDENT '(' ParamList? ')' ':' TYPE Block.
func (p *Parser) parseFunctionStatement() ast.Statement {
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	name := p.cur.Literal.(string)

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}
	params := p.parseFunctionParameters()

	if !p.expectPeek(lexer.TOKEN_COLON) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_TYPE) {
		return nil
	}
	returnType := p.cur.Literal.(string)

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	body := p.parseBlock()

	return &ast.FunctionStatement{
		Name:       name,
		Parameters: params,
		ReturnType: returnType,
		Body:       body,
	}
}

// parseFunctionParameters parses '(' IDENT ':' TYPE (',' IDENT ':' TYPE)* ')'.
// p.cur is LPAREN on entry; p.cur is RPAREN on return.
func (p *Parser) parseFunctionParameters() []*ast.FunctionParameter {
	var params []*ast.FunctionParameter

	if p.peekIs(lexer.TOKEN_RPAREN) {
		p.advance()

		return params
	}

	p.advance()
	if param := p.parseFunctionParameter(); param != nil {
		params = append(params, param)
	}

	for p.peekIs(lexer.TOKEN_COMMA) {
		p.advance()
		p.advance()
		if param := p.parseFunctionParameter(); param != nil {
			params = append(params, param)
		}
	}

	p.expectPeek(lexer.TOKEN_RPAREN)

	return params
}

// parseFunctionParameter parses IDENT ':' TYPE. p.cur is the parameter name
// on entry.
func (p *Parser) parseFunctionParameter() *ast.FunctionParameter {
	name := p.cur.Literal.(string)

	if !p.expectPeek(lexer.TOKEN_COLON) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_TYPE) {
		return nil
	}

	return &ast.FunctionParameter{Name: name, DeclaredType: p.cur.Literal.(string)}
}

// parseReturnStatement parses 'return' Expr.
func (p *Parser) parseReturnStatement() ast.Statement {
	p.advance()
	value := p.parseExpression(precedenceLowest)

	return &ast.ReturnStatement{Value: value}
}

// parseIfStatement parses 'if' Expr Block ( 'else' Block )?.
func (p *Parser) parseIfStatement() ast.Statement {
	p.advance()
	cond := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	consequence := p.parseBlock()

	stmt := &ast.IfStatement{Condition: cond, Consequence: consequence}

	if p.peekIs(lexer.TOKEN_ELSE) {
		p.advance()
		if !p.expectPeek(lexer.TOKEN_LBRACE) {
			return stmt
		}
		stmt.Alternative = p.parseBlock()
	}

	return stmt
}

// parseWhileStatement parses 'while' Expr Block.
func (p *Parser) parseWhileStatement() ast.Statement {
	p.advance()
	cond := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	body := p.parseBlock()

	return &ast.WhileStatement{Condition: cond, Body: body}
}

// parseBlockStatement adapts parseBlock to the ast.Statement dispatch table
// for a bare { ... } appearing in statement position.
func (p *Parser) parseBlockStatement() ast.Statement {
	return p.parseBlock()
}

// parseBlock parses '{' { EOL | Statement }* '}'. p.cur is LBRACE on entry
// and RBRACE (or EOF, on malformed input) on return. Blocks introduce no new
// scope; that is enforced by pkg/compiler, not here.
func (p *Parser) parseBlock() *ast.BlockStatement {
	block := &ast.BlockStatement{}

	p.advance()

	for !p.curIs(lexer.TOKEN_RBRACE) && !p.curIs(lexer.TOKEN_EOF) {
		if p.curIs(lexer.TOKEN_EOL) {
			p.advance()

			continue
		}

		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}

		p.advance()
	}

	return block
}
