// Package lexer converts calclite source text into a stream of tokens.
//
// It is the first stage of the compiler pipeline: a single-pass character
// cursor with one-character lookahead, producing INT/FLOAT/IDENTIFIER
// literals, the fixed keyword and type-name sets, and the operator and
// punctuation tokens described by the language grammar. Newlines are
// significant and surface as EOL tokens rather than being discarded, since
// the parser uses them as lenient statement separators.
//
// The lexer never stops and never panics: an unrecognized character or a
// malformed numeric literal (more than one decimal point) produces an
// EXCEPTION token carrying the raw lexeme, leaving the decision of what to
// do about it to the parser. Once the input is exhausted, NextToken returns
// TOKEN_EOF on every subsequent call.
package lexer
