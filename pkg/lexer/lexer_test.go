package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTokenBasic(t *testing.T) {
	l := New("1 + 2 * 3")

	tests := []struct {
		expectedType    TokenType
		expectedLiteral any
	}{
		{TOKEN_INT, int64(1)},
		{TOKEN_PLUS, "+"},
		{TOKEN_INT, int64(2)},
		{TOKEN_MULTIPLY, "*"},
		{TOKEN_INT, int64(3)},
		{TOKEN_EOF, ""},
	}

	for i, tt := range tests {
		tok := l.NextToken()
		assert.Equalf(t, tt.expectedType, tok.Type, "tests[%d] type", i)
		assert.Equalf(t, tt.expectedLiteral, tok.Literal, "tests[%d] literal", i)
	}
}

func TestNextTokenEOFIsSticky(t *testing.T) {
	l := New("")

	require.Equal(t, TOKEN_EOF, l.NextToken().Type)
	require.Equal(t, TOKEN_EOF, l.NextToken().Type)
	require.Equal(t, TOKEN_EOF, l.NextToken().Type)
}

func TestFloatLiteral(t *testing.T) {
	l := New("3.14")

	tok := l.NextToken()
	require.Equal(t, TOKEN_FLOAT, tok.Type)
	assert.Equal(t, 3.14, tok.Literal)
}

func TestMalformedNumberIsException(t *testing.T) {
	l := New("3.1.4")

	tok := l.NextToken()
	require.Equal(t, TOKEN_EXCEPTION, tok.Type)
	assert.Equal(t, "3.1.4", tok.Literal)
}

func TestTwoCharacterOperatorsAreSingleTokens(t *testing.T) {
	cases := []struct {
		input string
		kind  TokenType
	}{
		{"<=", TOKEN_LESSTHAN_EQUALS},
		{">=", TOKEN_GREATERTHAN_EQUALS},
		{"==", TOKEN_DOUBLE_EQUALS},
		{"!=", TOKEN_NOT_EQUALS},
	}

	for _, c := range cases {
		l := New(c.input)
		tok := l.NextToken()
		assert.Equalf(t, c.kind, tok.Type, "input %q", c.input)
		assert.Equalf(t, TOKEN_EOF, l.NextToken().Type, "input %q should be exhausted", c.input)
	}
}

func TestIfBlockTokenization(t *testing.T) {
	l := New("if x{y=1}")

	tests := []struct {
		expectedType    TokenType
		expectedLiteral any
	}{
		{TOKEN_IF, "if"},
		{TOKEN_IDENT, "x"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_IDENT, "y"},
		{TOKEN_EQUALS, "="},
		{TOKEN_INT, int64(1)},
		{TOKEN_RBRACE, "}"},
		{TOKEN_EOF, ""},
	}

	for i, tt := range tests {
		tok := l.NextToken()
		assert.Equalf(t, tt.expectedType, tok.Type, "tests[%d] type", i)
		assert.Equalf(t, tt.expectedLiteral, tok.Literal, "tests[%d] literal", i)
	}
}

func TestKeywordsAndTypes(t *testing.T) {
	l := New("var func return if else while true false int float bool string")

	expected := []TokenType{
		TOKEN_VAR, TOKEN_FUNC, TOKEN_RETURN, TOKEN_IF, TOKEN_ELSE, TOKEN_WHILE,
		TOKEN_TRUE, TOKEN_FALSE,
		TOKEN_TYPE, TOKEN_TYPE, TOKEN_TYPE, TOKEN_TYPE,
		TOKEN_EOF,
	}

	for i, kind := range expected {
		tok := l.NextToken()
		assert.Equalf(t, kind, tok.Type, "tests[%d]", i)
	}
}

func TestSwedishVowelIdentifier(t *testing.T) {
	l := New("var Åtgärd: int = 1")

	tok := l.NextToken()
	require.Equal(t, TOKEN_VAR, tok.Type)

	tok = l.NextToken()
	require.Equal(t, TOKEN_IDENT, tok.Type)
	assert.Equal(t, "Åtgärd", tok.Literal)
}

func TestNewlineProducesEOL(t *testing.T) {
	l := New("var x: int = 1\nreturn x")

	var sawEOL bool
	for {
		tok := l.NextToken()
		if tok.Type == TOKEN_EOF {
			break
		}
		if tok.Type == TOKEN_EOL {
			sawEOL = true
		}
	}

	assert.True(t, sawEOL)
}
