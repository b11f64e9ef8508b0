package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/calclite/internal/ast"
	"github.com/conneroisu/calclite/pkg/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()

	p := New(lexer.New(input))
	program := p.ParseProgram()
	require.Falsef(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors())

	return program
}

func TestPrecedenceSumOverProduct(t *testing.T) {
	program := parseProgram(t, "1 + 2 * 3")
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)

	infix, ok := stmt.Expression.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "+", infix.Operator)

	right, ok := infix.Right.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "*", right.Operator)
}

func TestPrecedenceExponentOverProduct(t *testing.T) {
	program := parseProgram(t, "2 ^ 3 * 4")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	top, ok := stmt.Expression.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "*", top.Operator)

	left, ok := top.Left.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "^", left.Operator)
}

func TestLeftAssociativity(t *testing.T) {
	program := parseProgram(t, "1 - 2 - 3")
	stmt := program.Statements[0].(*ast.ExpressionStatement)

	top, ok := stmt.Expression.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "-", top.Operator)

	left, ok := top.Left.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "-", left.Operator)

	_, isRightNested := top.Right.(*ast.InfixExpression)
	assert.False(t, isRightNested, "1 - 2 - 3 must not nest on the right")
}

func TestVarStatementShape(t *testing.T) {
	program := parseProgram(t, "var x: int = 1 + 2")
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.VarStatement)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Name.Name)
	assert.Equal(t, "int", stmt.DeclaredType)

	value, ok := stmt.Value.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "+", value.Operator)
}

func TestFunctionStatementShape(t *testing.T) {
	program := parseProgram(t, "func add(a: int, b: int): int { return a + b }")
	require.Len(t, program.Statements, 1)

	fn, ok := program.Statements[0].(*ast.FunctionStatement)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "int", fn.ReturnType)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "a", fn.Parameters[0].Name)
	assert.Equal(t, "int", fn.Parameters[1].DeclaredType)
	require.Len(t, fn.Body.Statements, 1)

	ret, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	_, isInfix := ret.Value.(*ast.InfixExpression)
	assert.True(t, isInfix)
}

func TestIfElseStatement(t *testing.T) {
	program := parseProgram(t, "if n == 0 { return 1 } else { return 2 }")
	stmt, ok := program.Statements[0].(*ast.IfStatement)
	require.True(t, ok)
	require.NotNil(t, stmt.Alternative)

	cond, ok := stmt.Condition.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "==", cond.Operator)
}

func TestWhileStatement(t *testing.T) {
	program := parseProgram(t, "while i <= 10 { i = i + 1 }")
	stmt, ok := program.Statements[0].(*ast.WhileStatement)
	require.True(t, ok)
	require.Len(t, stmt.Body.Statements, 1)

	_, ok = stmt.Body.Statements[0].(*ast.AssignStatement)
	assert.True(t, ok)
}

func TestCallExpressionArguments(t *testing.T) {
	program := parseProgram(t, "print(42)")
	stmt := program.Statements[0].(*ast.ExpressionStatement)

	call, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	assert.Equal(t, "print", call.Callee)
	require.Len(t, call.Arguments, 1)

	arg, ok := call.Arguments[0].(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.EqualValues(t, 42, arg.Value)
}

func TestProgramJSONRoundTrip(t *testing.T) {
	program := parseProgram(t, "var x: int = 1 + 2\nfunc main(): int { return x }")

	first, err := program.MarshalJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(first, &decoded))

	again, err := json.Marshal(decoded)
	require.NoError(t, err)

	var redecoded map[string]any
	require.NoError(t, json.Unmarshal(again, &redecoded))

	assert.Equal(t, decoded, redecoded)
}

func TestUnexpectedTokenIsReported(t *testing.T) {
	p := New(lexer.New("var : int = 1"))
	p.ParseProgram()

	require.True(t, p.HasErrors())
	assert.Contains(t, p.Errors()[0], "Expected")
}
