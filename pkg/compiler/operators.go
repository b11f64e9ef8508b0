package compiler

import (
	"tinygo.org/x/go-llvm"

	"github.com/conneroisu/calclite/internal/ast"
)

// compileInfixExpression resolves both operands, then dispatches on operand
// type kind (int vs float) and operator. Mixed int/float operands are not
// supported: §4.5 specifies the expression "produces no value (silent)" in
// that case, so the zero Value/Type is returned and a compile error is
// recorded so the failure is at least visible in the driver's error dump.
func (c *Compiler) compileInfixExpression(expr *ast.InfixExpression) (llvm.Value, llvm.Type) {
	left, leftTy := c.resolveValue(expr.Left)
	right, rightTy := c.resolveValue(expr.Right)

	intTy := c.typeMap["int"]
	floatTy := c.typeMap["float"]
	boolTy := c.typeMap["bool"]

	switch {
	case leftTy == intTy && rightTy == intTy:
		return c.compileIntInfix(expr.Operator, left, right, intTy, boolTy)
	case leftTy == floatTy && rightTy == floatTy:
		return c.compileFloatInfix(expr.Operator, left, right, floatTy, boolTy)
	default:
		c.errs.Addf("operator %q requires operands of the same numeric type, got %s and %s",
			expr.Operator, c.typeName(leftTy), c.typeName(rightTy))

		return llvm.Value{}, llvm.Type{}
	}
}

// compileIntInfix lowers an arithmetic/comparison operator over two i32
// operands. Comparisons yield i1 even though the operands are numeric,
// matching invariant (v).
func (c *Compiler) compileIntInfix(op string, left, right llvm.Value, intTy, boolTy llvm.Type) (llvm.Value, llvm.Type) {
	switch op {
	case "+":
		return c.builder.CreateAdd(left, right, ""), intTy
	case "-":
		return c.builder.CreateSub(left, right, ""), intTy
	case "*":
		return c.builder.CreateMul(left, right, ""), intTy
	case "/":
		return c.builder.CreateSDiv(left, right, ""), intTy
	case "%":
		return c.builder.CreateSRem(left, right, ""), intTy
	case "^":
		return c.builder.CreateCall(c.builtins.intExponentiation, []llvm.Value{left, right}, ""), intTy
	case "==":
		return c.builder.CreateICmp(llvm.IntEQ, left, right, ""), boolTy
	case "!=":
		return c.builder.CreateICmp(llvm.IntNE, left, right, ""), boolTy
	case "<":
		return c.builder.CreateICmp(llvm.IntSLT, left, right, ""), boolTy
	case "<=":
		return c.builder.CreateICmp(llvm.IntSLE, left, right, ""), boolTy
	case ">":
		return c.builder.CreateICmp(llvm.IntSGT, left, right, ""), boolTy
	case ">=":
		return c.builder.CreateICmp(llvm.IntSGE, left, right, ""), boolTy
	default:
		c.errs.Addf("unsupported integer operator %q", op)

		return llvm.Value{}, llvm.Type{}
	}
}

// compileFloatInfix lowers an arithmetic/comparison operator over two
// float operands, using the "ordered" fcmp variants (NaN never compares
// equal to anything, including itself, under "ordered").
func (c *Compiler) compileFloatInfix(op string, left, right llvm.Value, floatTy, boolTy llvm.Type) (llvm.Value, llvm.Type) {
	switch op {
	case "+":
		return c.builder.CreateFAdd(left, right, ""), floatTy
	case "-":
		return c.builder.CreateFSub(left, right, ""), floatTy
	case "*":
		return c.builder.CreateFMul(left, right, ""), floatTy
	case "/":
		return c.builder.CreateFDiv(left, right, ""), floatTy
	case "%":
		return c.builder.CreateFRem(left, right, ""), floatTy
	case "^":
		return c.builder.CreateCall(c.builtins.floatExponentiation, []llvm.Value{left, right}, ""), floatTy
	case "==":
		return c.builder.CreateFCmp(llvm.FloatOEQ, left, right, ""), boolTy
	case "!=":
		return c.builder.CreateFCmp(llvm.FloatONE, left, right, ""), boolTy
	case "<":
		return c.builder.CreateFCmp(llvm.FloatOLT, left, right, ""), boolTy
	case "<=":
		return c.builder.CreateFCmp(llvm.FloatOLE, left, right, ""), boolTy
	case ">":
		return c.builder.CreateFCmp(llvm.FloatOGT, left, right, ""), boolTy
	case ">=":
		return c.builder.CreateFCmp(llvm.FloatOGE, left, right, ""), boolTy
	default:
		c.errs.Addf("unsupported float operator %q", op)

		return llvm.Value{}, llvm.Type{}
	}
}
