package parser

import "github.com/conneroisu/calclite/pkg/lexer"

// Operator precedence levels, low to high.
const (
	precedenceLowest = iota
	precedenceEquals // == !=
	precedenceCompare
	precedenceSum     // + -
	precedenceProduct // * / %
	precedenceExponent
	precedencePrefix
	precedenceCall // (
	precedenceIndex
)

// precedenceMap maps token types that act as infix operators to their
// binding strength. All of these are left-associative, including EXPONENT —
// matching the source language's behavior rather than the mathematically
// conventional right-associative reading of "^".
var precedenceMap = map[lexer.TokenType]int{
	lexer.TOKEN_DOUBLE_EQUALS:      precedenceEquals,
	lexer.TOKEN_NOT_EQUALS:         precedenceEquals,
	lexer.TOKEN_LESSTHAN:           precedenceCompare,
	lexer.TOKEN_LESSTHAN_EQUALS:    precedenceCompare,
	lexer.TOKEN_GREATERTHAN:        precedenceCompare,
	lexer.TOKEN_GREATERTHAN_EQUALS: precedenceCompare,
	lexer.TOKEN_PLUS:               precedenceSum,
	lexer.TOKEN_MINUS:              precedenceSum,
	lexer.TOKEN_MULTIPLY:           precedenceProduct,
	lexer.TOKEN_DIVIDE:             precedenceProduct,
	lexer.TOKEN_MODULO:             precedenceProduct,
	lexer.TOKEN_EXPONENT:           precedenceExponent,
	lexer.TOKEN_LPAREN:             precedenceCall,
}
