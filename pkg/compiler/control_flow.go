package compiler

import (
	"tinygo.org/x/go-llvm"

	"github.com/conneroisu/calclite/internal/ast"
)

// compileIfStatement lowers an if/else. With no alternative, a single
// conditional branch rejoins the continuation block directly from the
// "else" edge; with one, both branches converge on a common continuation.
// Either branch may itself end in `return`, in which case that edge never
// reaches the continuation block.
func (c *Compiler) compileIfStatement(stmt *ast.IfStatement) {
	cond, _ := c.resolveValue(stmt.Condition)

	thenBlock := llvm.AddBasicBlock(c.currentFunction, "if_then")
	contBlock := llvm.AddBasicBlock(c.currentFunction, "if_cont")

	if stmt.Alternative == nil {
		c.builder.CreateCondBr(cond, thenBlock, contBlock)

		c.setInsertBlock(thenBlock)
		c.compileBlockStatement(stmt.Consequence)
		if !c.terminated {
			c.builder.CreateBr(contBlock)
		}

		c.setInsertBlock(contBlock)

		return
	}

	elseBlock := llvm.AddBasicBlock(c.currentFunction, "if_else")
	c.builder.CreateCondBr(cond, thenBlock, elseBlock)

	c.setInsertBlock(thenBlock)
	c.compileBlockStatement(stmt.Consequence)
	thenTerminated := c.terminated
	if !thenTerminated {
		c.builder.CreateBr(contBlock)
	}

	c.setInsertBlock(elseBlock)
	c.compileBlockStatement(stmt.Alternative)
	elseTerminated := c.terminated
	if !elseTerminated {
		c.builder.CreateBr(contBlock)
	}

	c.setInsertBlock(contBlock)

	// If both arms returned, the continuation block is unreachable but
	// still needs a terminator of its own for the function to verify.
	if thenTerminated && elseTerminated {
		c.builder.CreateUnreachable()
		c.terminated = true
	}
}

// compileWhileStatement lowers `while cond { body }` into the three-block
// shape from §4.5: an unconditional branch into cond, a conditional branch
// out of cond into body/after, and an unconditional branch from the end of
// body back to cond.
func (c *Compiler) compileWhileStatement(stmt *ast.WhileStatement) {
	condBlock := llvm.AddBasicBlock(c.currentFunction, "while_cond")
	bodyBlock := llvm.AddBasicBlock(c.currentFunction, "while_body")
	afterBlock := llvm.AddBasicBlock(c.currentFunction, "while_after")

	c.builder.CreateBr(condBlock)

	c.setInsertBlock(condBlock)
	cond, _ := c.resolveValue(stmt.Condition)
	c.builder.CreateCondBr(cond, bodyBlock, afterBlock)

	c.setInsertBlock(bodyBlock)
	c.compileBlockStatement(stmt.Body)
	if !c.terminated {
		c.builder.CreateBr(condBlock)
	}

	c.setInsertBlock(afterBlock)
}
