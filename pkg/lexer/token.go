package lexer

import (
	"fmt"
)

// TokenType represents the classification of lexical tokens in the calclite
// language. Each token type corresponds to a specific syntactic element that
// the parser can recognize and process.
type TokenType int

// Token type constants cover every lexical element calclite source can
// contain. The iota enumeration assigns each a unique integer value.
const (
	// Structural tokens for lexical analysis control.
	TOKEN_EOF       TokenType = iota // end of input, returned indefinitely once reached
	TOKEN_EOL                        // end of line, a statement separator
	TOKEN_EXCEPTION                  // malformed literal or unrecognized character

	// Literal value tokens.
	TOKEN_INT   // integer literals (42, 0, 1234)
	TOKEN_FLOAT // floating-point literals (3.14, 0.5)
	TOKEN_IDENT // identifiers and variable names

	// Reserved keywords.
	TOKEN_VAR    // "var" variable declaration
	TOKEN_FUNC   // "func" function declaration
	TOKEN_RETURN // "return" statement
	TOKEN_IF     // "if" conditional start
	TOKEN_ELSE   // "else" conditional alternative
	TOKEN_WHILE  // "while" loop start
	TOKEN_TRUE   // "true" boolean literal
	TOKEN_FALSE  // "false" boolean literal

	// Type names: int, float, bool, string.
	TOKEN_TYPE

	// Punctuation.
	TOKEN_COLON  // ":" type annotation separator
	TOKEN_COMMA  // "," parameter/argument separator
	TOKEN_LPAREN // "("
	TOKEN_RPAREN // ")"
	TOKEN_LBRACE // "{"
	TOKEN_RBRACE // "}"

	// Operators.
	TOKEN_PLUS               // "+"
	TOKEN_MINUS              // "-"
	TOKEN_MULTIPLY           // "*"
	TOKEN_DIVIDE             // "/"
	TOKEN_EXPONENT           // "^"
	TOKEN_MODULO             // "%"
	TOKEN_EQUALS             // "=" assignment
	TOKEN_DOUBLE_EQUALS      // "=="
	TOKEN_NOT_EQUALS         // "!="
	TOKEN_LESSTHAN           // "<"
	TOKEN_LESSTHAN_EQUALS    // "<="
	TOKEN_GREATERTHAN        // ">"
	TOKEN_GREATERTHAN_EQUALS // ">="
	TOKEN_BANG               // "!"
)

// Token is a single lexical unit: its classification, its decoded or raw
// literal, and its source position. Position is advisory — it exists for
// diagnostics, not for any downstream semantic decision.
type Token struct {
	Type    TokenType
	Literal any // decoded int64, decoded float64, or the raw lexeme string
	Line    int
	Column  int
}

// tokenNames gives each TokenType a human-readable name, used in error
// messages and debug dumps.
var tokenNames = map[TokenType]string{
	TOKEN_EOF:                "EOF",
	TOKEN_EOL:                "EOL",
	TOKEN_EXCEPTION:          "EXCEPTION",
	TOKEN_INT:                "INT",
	TOKEN_FLOAT:              "FLOAT",
	TOKEN_IDENT:              "IDENTIFIER",
	TOKEN_VAR:                "VAR",
	TOKEN_FUNC:               "FUNC",
	TOKEN_RETURN:             "RETURN",
	TOKEN_IF:                 "IF",
	TOKEN_ELSE:               "ELSE",
	TOKEN_WHILE:              "WHILE",
	TOKEN_TRUE:               "TRUE",
	TOKEN_FALSE:              "FALSE",
	TOKEN_TYPE:               "TYPE",
	TOKEN_COLON:              "COLON",
	TOKEN_COMMA:              "COMMA",
	TOKEN_LPAREN:             "LPAREN",
	TOKEN_RPAREN:             "RPAREN",
	TOKEN_LBRACE:             "LBRACE",
	TOKEN_RBRACE:             "RBRACE",
	TOKEN_PLUS:               "PLUS",
	TOKEN_MINUS:              "MINUS",
	TOKEN_MULTIPLY:           "MULTIPLY",
	TOKEN_DIVIDE:             "DIVIDE",
	TOKEN_EXPONENT:           "EXPONENT",
	TOKEN_MODULO:             "MODULO",
	TOKEN_EQUALS:             "EQUALS",
	TOKEN_DOUBLE_EQUALS:      "DOUBLE_EQUALS",
	TOKEN_NOT_EQUALS:         "NOT_EQUALS",
	TOKEN_LESSTHAN:           "LESSTHAN",
	TOKEN_LESSTHAN_EQUALS:    "LESSTHAN_EQUALS",
	TOKEN_GREATERTHAN:        "GREATERTHAN",
	TOKEN_GREATERTHAN_EQUALS: "GREATERTHAN_EQUALS",
	TOKEN_BANG:               "BANG",
}

// String implements fmt.Stringer so token types print their name rather
// than a bare integer in error messages.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", int(t))
}

// keywords maps reserved words to their token type.
var keywords = map[string]TokenType{
	"var":    TOKEN_VAR,
	"func":   TOKEN_FUNC,
	"return": TOKEN_RETURN,
	"if":     TOKEN_IF,
	"else":   TOKEN_ELSE,
	"true":   TOKEN_TRUE,
	"false":  TOKEN_FALSE,
	"while":  TOKEN_WHILE,
}

// typeNames is the fixed set of reserved type names. "string" is reserved
// syntax with no IR lowering (see pkg/compiler).
var typeNames = map[string]bool{
	"int":    true,
	"float":  true,
	"bool":   true,
	"string": true,
}

// LookupIdentifier classifies a scanned identifier-shaped lexeme as a
// keyword, a reserved type name, or a plain identifier.
func LookupIdentifier(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if typeNames[ident] {
		return TOKEN_TYPE
	}

	return TOKEN_IDENT
}

// isLetter reports whether ch can start or continue an identifier. calclite
// follows its source language in accepting the Swedish vowels å ä ö (and
// their uppercase forms) alongside ASCII letters and underscore.
func isLetter(ch rune) bool {
	switch ch {
	case 'å', 'ä', 'ö', 'Å', 'Ä', 'Ö', '_':
		return true
	default:
		return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
	}
}

// isDigit reports whether ch is a decimal digit.
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
