package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/calclite/pkg/lexer"
	"github.com/conneroisu/calclite/pkg/parser"
)

// compileSource runs the full front end (lexer -> parser -> compiler) and
// fails the test immediately on any parse error, since a compile test is
// not meant to also exercise the parser.
func compileSource(t *testing.T, src string) (*Compiler, string) {
	t.Helper()

	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	require.Falsef(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors())

	c := New()
	ir := c.Compile(program)

	return c, ir
}

func TestModuleNameIsMain(t *testing.T) {
	_, ir := compileSource(t, "")
	assert.Contains(t, ir, "Main")
}

func TestEmptyProgramDefaultsMainToZero(t *testing.T) {
	_, ir := compileSource(t, "")
	assert.Contains(t, ir, "define i32 @main()")
	assert.Contains(t, ir, "ret i32 0")
}

func TestArithmeticPrecedenceInMain(t *testing.T) {
	_, ir := compileSource(t, "func main(): int { return 1 + 2 * 3 }")
	assert.Contains(t, ir, "define i32 @main()")
	// Constant operands are folded by the IR builder, so precedence shows
	// up as the folded result: 1 + (2 * 3) = 7, not (1 + 2) * 3 = 9.
	assert.Contains(t, ir, "ret i32 7")
	assert.NotContains(t, ir, "ret i32 9")
}

func TestTopLevelVarDeclarations(t *testing.T) {
	c, ir := compileSource(t, "var x: int = 10\nvar y: int = 4\nfunc main(): int { return x % y }")
	require.False(t, c.HasErrors())
	assert.Contains(t, ir, "alloca i32")
	assert.Contains(t, ir, "srem i32")
}

func TestRecursiveFunctionCallsItself(t *testing.T) {
	c, ir := compileSource(t, `
func pow2(n: int): int {
	if n == 0 { return 1 }
	return 2 * pow2(n - 1)
}
func main(): int { return pow2(5) }
`)
	require.False(t, c.HasErrors())
	assert.Contains(t, ir, "define i32 @pow2(i32")
	assert.Contains(t, ir, "call i32 @pow2")
}

func TestWhileLoopEmitsThreeBlocks(t *testing.T) {
	c, ir := compileSource(t, `func main(): int {
	var i: int = 0
	var s: int = 0
	while i <= 10 {
		s = s + i
		i = i + 1
	}
	return s
}`)
	require.False(t, c.HasErrors())
	assert.Contains(t, ir, "while_cond")
	assert.Contains(t, ir, "while_body")
	assert.Contains(t, ir, "while_after")
	assert.Contains(t, ir, "icmp sle i32")
}

func TestPrintIntUsesDecimalFormat(t *testing.T) {
	c, ir := compileSource(t, "func main(): int { print(42) return 0 }")
	require.False(t, c.HasErrors())
	assert.Contains(t, ir, `c"%d\0A\00"`)
	assert.Contains(t, ir, "call i32 (i8*, ...) @printf")
}

func TestPrintFloatUsesFixedFormatAndPromotesToDouble(t *testing.T) {
	c, ir := compileSource(t, "func main(): int { print(3.25) return 0 }")
	require.False(t, c.HasErrors())
	assert.Contains(t, ir, `c"%.10f\00"`)
	// The constant argument's fpext is folded, leaving a double constant.
	assert.Contains(t, ir, "double 3.250000e+00")
}

func TestRedeclarationIsACompileError(t *testing.T) {
	c, _ := compileSource(t, "var x: int = 1\nvar x: int = 2")
	require.True(t, c.HasErrors())
	assert.Contains(t, c.Errors(), "Identifier x tried to be declared more than once.")
}

func TestAssignmentToUndeclaredNameIsACompileError(t *testing.T) {
	c, _ := compileSource(t, "x = 1")
	require.True(t, c.HasErrors())
	assert.Contains(t, c.Errors(), "Identifier x was not declared before re-assignment.")
}

func TestAssignmentTypeMismatchIsACompileError(t *testing.T) {
	c, _ := compileSource(t, "var x: int = 1\nx = 2.5")
	require.True(t, c.HasErrors())
	assert.Contains(t, c.Errors(), "Identifier x of type int tried to be re-assigned to float.")
}

func TestIfWithoutElseRejoinsContinuation(t *testing.T) {
	c, ir := compileSource(t, `func main(): int {
	var x: int = 0
	if x == 0 {
		x = 1
	}
	return x
}`)
	require.False(t, c.HasErrors())
	assert.Contains(t, ir, "if_then")
	assert.Contains(t, ir, "if_cont")
}

func TestBooleanLiteralLowersToI1Constant(t *testing.T) {
	c, ir := compileSource(t, "func main(): int { if true { return 1 } return 0 }")
	require.False(t, c.HasErrors())
	assert.Contains(t, ir, "i1 true")
}

func TestFunctionWithParametersIsDefinedAndCalled(t *testing.T) {
	_, ir := compileSource(t, "func add(a: int, b: int): int { return a + b }\nfunc main(): int { return add(1, 2) }")
	assert.Contains(t, ir, "define i32 @add(i32")
	assert.Contains(t, ir, "call i32 @add")
}

// Environment scoping is not directly observable from IR text, but
// compileFunctionStatement's save/restore must leave main's builder
// positioned correctly to keep compiling after a function definition —
// this exercises that by compiling main's statements after helper's.
func TestFunctionDefinitionDoesNotStrandTheCallersBuilder(t *testing.T) {
	c, ir := compileSource(t, `
func helper(): int { return 1 }
func main(): int {
	var x: int = helper()
	return x
}`)
	require.False(t, c.HasErrors())
	assert.Contains(t, ir, "call i32 @helper")
}

func TestCollectedErrorIsReportedThroughErrors(t *testing.T) {
	c := New()
	c.errs.Add("synthetic")
	assert.True(t, c.HasErrors())
	assert.Equal(t, []string{"synthetic"}, c.Errors())
}
