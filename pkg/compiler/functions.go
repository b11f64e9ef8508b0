package compiler

import (
	"tinygo.org/x/go-llvm"

	"github.com/conneroisu/calclite/internal/ast"
	"github.com/conneroisu/calclite/internal/environment"
)

// savedScope holds the caller's insertion block, environment and function
// while a function body is emitted, per §5's "scoped acquisition of a
// function emission context ... with guaranteed restore on every exit path".
// Nested definitions each keep their own savedScope on the Go call stack.
type savedScope struct {
	block    llvm.BasicBlock
	env      *environment.Environment
	function llvm.Value
}

// compileFunctionStatement lowers a function definition. It never leaves
// the caller's builder stranded: the previous (block, environment,
// function) triple is saved before emitting the new function body and
// restored unconditionally afterward, even though this compiler has no
// panics/exceptions to unwind through — the save/restore is a direct
// structural port of the source's temporary self.builder/self.environment
// rebinding (see §9).
func (c *Compiler) compileFunctionStatement(stmt *ast.FunctionStatement) {
	returnType := c.typeMap[stmt.ReturnType]

	paramTypes := make([]llvm.Type, len(stmt.Parameters))
	for i, p := range stmt.Parameters {
		paramTypes[i] = c.typeMap[p.DeclaredType]
	}

	fnType := llvm.FunctionType(returnType, paramTypes, false)
	fn := llvm.AddFunction(c.module, stmt.Name, fnType)
	entry := llvm.AddBasicBlock(fn, stmt.Name+"_entry")

	saved := savedScope{
		block:    c.builder.GetInsertBlock(),
		env:      c.env,
		function: c.currentFunction,
	}

	childEnv := c.env.Extend()
	c.env = childEnv
	c.currentFunction = fn
	c.setInsertBlock(entry)

	// Defined first in the child scope so a recursive call within the body
	// resolves to this function.
	c.env.Define(stmt.Name, fn, returnType)

	for i, p := range stmt.Parameters {
		paramType := paramTypes[i]
		slot := c.builder.CreateAlloca(paramType, p.Name)
		c.builder.CreateStore(fn.Param(i), slot)
		c.env.Define(p.Name, slot, paramType)
	}

	c.compileBlockStatement(stmt.Body)

	if !c.terminated {
		c.builder.CreateRet(c.zeroValue(returnType))
	}

	c.env = saved.env
	c.currentFunction = saved.function
	c.setInsertBlock(saved.block)

	// Defined again in the restored (parent) scope so sibling statements
	// and later functions can call it.
	c.env.Define(stmt.Name, fn, returnType)
}

// zeroValue returns the default value for ty, used to close a function body
// that falls off its last statement without an explicit return. The source
// language requires a return to be well-typed, so this only ever fires on
// otherwise-malformed input; without it the emitted block would lack a
// terminator and the module would fail to verify.
func (c *Compiler) zeroValue(ty llvm.Type) llvm.Value {
	if ty == c.typeMap["float"] {
		return llvm.ConstFloat(ty, 0)
	}

	return llvm.ConstInt(ty, 0, false)
}

// compileCallExpression lowers a call to either the built-in print or a
// user-defined function.
func (c *Compiler) compileCallExpression(call *ast.CallExpression) (llvm.Value, llvm.Type) {
	if call.Callee == "print" {
		c.compilePrintCall(call)

		return llvm.Value{}, llvm.Type{}
	}

	rec, ok := c.env.Lookup(call.Callee)
	if !ok {
		c.errs.Addf("function %s is not declared", call.Callee)

		return llvm.Value{}, llvm.Type{}
	}

	args := make([]llvm.Value, len(call.Arguments))
	for i, argExpr := range call.Arguments {
		value, _ := c.resolveValue(argExpr)
		args[i] = value
	}

	return c.builder.CreateCall(rec.Value, args, ""), rec.Type
}
