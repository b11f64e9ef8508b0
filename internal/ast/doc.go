// Package ast defines the tagged-sum syntax tree pkg/parser builds and
// pkg/compiler walks.
//
// Every node implements Node (String, Position) and an internal json()
// method that produces the normative debug-dump shape: a map with a "type"
// key naming the node's kind, plus its kind-specific fields. Program wraps
// each top-level statement as a single-key {kind: body} object so a JSON
// dump of an entire program round-trips through encoding/json without any
// custom decoder.
//
// Statements: ExpressionStatement, VarStatement, AssignStatement,
// BlockStatement, FunctionStatement, ReturnStatement, IfStatement,
// WhileStatement. Expressions: IntegerLiteral, FloatLiteral, BooleanLiteral,
// IdentifierLiteral, InfixExpression, CallExpression. FunctionParameter is a
// node but belongs to neither sum; it only ever appears inside a
// FunctionStatement's parameter list.
//
// The AST carries no type information beyond the declared type strings on
// VarStatement, FunctionStatement and FunctionParameter. Actual LLVM types
// are re-derived by pkg/compiler during lowering.
package ast
