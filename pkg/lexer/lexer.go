package lexer

import (
	"strconv"
)

// Lexer is a character cursor over calclite source text. It implements a
// single-pass scanner with one-character lookahead and tracks line/column
// position for diagnostics.
type Lexer struct {
	input        []rune // the complete input, decoded once so å/ä/ö are single units
	position     int    // current position in input (points to current char)
	readPosition int    // current reading position in input (after current char)
	ch           rune   // current char under examination (0 for EOF)
	line         int    // current line number (1-based for user display)
	column       int    // current column number (1-based within line)
}

// New creates a lexer for the given input string and primes it with its
// first character, ready for immediate tokenization via NextToken.
func New(input string) *Lexer {
	l := &Lexer{
		input: []rune(input),
		line:  1,
	}
	l.readChar()

	return l
}

// readChar advances the cursor by one character, updating line/column.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without consuming it.
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}

	return l.input[l.readPosition]
}

// skipWhitespace silently consumes spaces, tabs and carriage returns.
// Newlines are significant (they produce EOL) and are not skipped here.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier consumes a maximal identifier or keyword lexeme.
func (l *Lexer) readIdentifier() string {
	position := l.position

	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}

	return string(l.input[position:l.position])
}

// readNumber consumes a maximal digit run with at most one interior dot.
// A second dot produces a malformed literal, reported as EXCEPTION with the
// raw lexeme rather than raising from inside the lexer.
func (l *Lexer) readNumber() (string, TokenType) {
	position := l.position
	dots := 0

	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			dots++
		}
		l.readChar()
	}

	lexeme := string(l.input[position:l.position])

	switch dots {
	case 0:
		return lexeme, TOKEN_INT
	case 1:
		return lexeme, TOKEN_FLOAT
	default:
		return lexeme, TOKEN_EXCEPTION
	}
}

// NextToken returns the next token in the stream. Once the input is
// exhausted it returns TOKEN_EOF on every subsequent call.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	line, column := l.line, l.column

	var tok Token

	switch l.ch {
	case '\n':
		tok = Token{Type: TOKEN_EOL, Literal: "\n", Line: line, Column: column}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_DOUBLE_EQUALS, Literal: "==", Line: line, Column: column}
		} else {
			tok = Token{Type: TOKEN_EQUALS, Literal: "=", Line: line, Column: column}
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_NOT_EQUALS, Literal: "!=", Line: line, Column: column}
		} else {
			tok = Token{Type: TOKEN_BANG, Literal: "!", Line: line, Column: column}
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_LESSTHAN_EQUALS, Literal: "<=", Line: line, Column: column}
		} else {
			tok = Token{Type: TOKEN_LESSTHAN, Literal: "<", Line: line, Column: column}
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_GREATERTHAN_EQUALS, Literal: ">=", Line: line, Column: column}
		} else {
			tok = Token{Type: TOKEN_GREATERTHAN, Literal: ">", Line: line, Column: column}
		}
	case '+':
		tok = Token{Type: TOKEN_PLUS, Literal: "+", Line: line, Column: column}
	case '-':
		tok = Token{Type: TOKEN_MINUS, Literal: "-", Line: line, Column: column}
	case '*':
		tok = Token{Type: TOKEN_MULTIPLY, Literal: "*", Line: line, Column: column}
	case '/':
		tok = Token{Type: TOKEN_DIVIDE, Literal: "/", Line: line, Column: column}
	case '^':
		tok = Token{Type: TOKEN_EXPONENT, Literal: "^", Line: line, Column: column}
	case '%':
		tok = Token{Type: TOKEN_MODULO, Literal: "%", Line: line, Column: column}
	case ':':
		tok = Token{Type: TOKEN_COLON, Literal: ":", Line: line, Column: column}
	case ',':
		tok = Token{Type: TOKEN_COMMA, Literal: ",", Line: line, Column: column}
	case '(':
		tok = Token{Type: TOKEN_LPAREN, Literal: "(", Line: line, Column: column}
	case ')':
		tok = Token{Type: TOKEN_RPAREN, Literal: ")", Line: line, Column: column}
	case '{':
		tok = Token{Type: TOKEN_LBRACE, Literal: "{", Line: line, Column: column}
	case '}':
		tok = Token{Type: TOKEN_RBRACE, Literal: "}", Line: line, Column: column}
	case 0:
		tok = Token{Type: TOKEN_EOF, Literal: "", Line: line, Column: column}
	default:
		switch {
		case isLetter(l.ch):
			lexeme := l.readIdentifier()
			tok = Token{Type: LookupIdentifier(lexeme), Literal: lexeme, Line: line, Column: column}

			return tok
		case isDigit(l.ch):
			lexeme, kind := l.readNumber()
			tok = Token{Type: kind, Line: line, Column: column}

			switch kind {
			case TOKEN_INT:
				v, err := strconv.ParseInt(lexeme, 10, 64)
				if err != nil {
					tok.Type = TOKEN_EXCEPTION
					tok.Literal = lexeme
				} else {
					tok.Literal = v
				}
			case TOKEN_FLOAT:
				v, err := strconv.ParseFloat(lexeme, 64)
				if err != nil {
					tok.Type = TOKEN_EXCEPTION
					tok.Literal = lexeme
				} else {
					tok.Literal = v
				}
			default:
				tok.Literal = lexeme
			}

			return tok
		default:
			tok = Token{Type: TOKEN_EXCEPTION, Literal: string(l.ch), Line: line, Column: column}
		}
	}

	l.readChar()

	return tok
}
