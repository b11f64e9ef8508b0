// Package compiler lowers a calclite Program into a single LLVM IR module.
//
// The compiler walks the AST exactly once, maintaining a "current builder"
// cursor (the insertion point for the next instruction) and a "current
// environment" cursor (the active lexically scoped symbol table). Only
// function bodies push a fresh environment frame; if/while bodies share the
// enclosing function's frame, matching the source language's scoping rules.
//
// Compile never panics. Malformed input (redeclared names, type mismatches
// on assignment) is recorded as a compile error and compilation continues,
// possibly producing partially valid IR — it is the caller's job to check
// HasErrors before handing the module text to a JIT engine.
//
// Layout:
//   - compiler.go: Compiler struct, top-level Compile entry point, statement
//     and expression dispatch.
//   - builtins.go: global environment seeding (true/false, pow intrinsics,
//     printf, format strings) and print's call-site lowering.
//   - operators.go: InfixExpression lowering (arithmetic and comparison).
//   - control_flow.go: IfStatement and WhileStatement lowering.
//   - functions.go: FunctionStatement lowering, including the scoped
//     builder/environment save-restore around nested function emission, and
//     ordinary CallExpression lowering.
//   - errors.go: the compile error collector.
package compiler
