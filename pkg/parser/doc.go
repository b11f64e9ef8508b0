// Package parser implements a Pratt parser that turns calclite's token
// stream into an internal/ast.Program.
//
// The parser keeps a two-token lookahead window (cur/peek) and never stops
// on the first error: ParseProgram always returns a (possibly partial)
// Program, and every malformed construct is appended to an internal
// ParseErrors collector instead. Callers check HasErrors/Errors after
// ParseProgram returns.
//
// Statement dispatch happens once per top-level or block-level statement:
// an IDENT followed by EQUALS is an assignment, otherwise the current
// token's keyword (var/func/return/if/while/{) selects a dedicated parser,
// falling back to a bare expression statement. Expression parsing is
// textbook precedence climbing: parsePrefixExpression handles tokens that
// can start an expression (the "nud"), parseInfixExpression extends a
// left-hand side across an operator (the "led"), and precedence.go's table
// decides when the loop in parseExpression stops climbing.
package parser
