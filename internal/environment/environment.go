// Package environment implements the lexically scoped symbol table the IR
// emitter consults while lowering a Program.
package environment

import "tinygo.org/x/go-llvm"

// Record is a single binding: where a name lives at runtime (a stack slot
// pointer, a global pointer, or a function handle) and the LLVM type it was
// declared with.
type Record struct {
	Value llvm.Value
	Type  llvm.Type
}

// Environment is one frame of an ordered chain of frames. Each frame maps
// identifier to Record; frames are created on function entry only — if/while
// bodies share the enclosing function's frame (see pkg/compiler).
type Environment struct {
	records map[string]Record
	parent  *Environment
}

// New creates an empty root environment. The compiler seeds it with
// built-ins before any user code is compiled.
func New() *Environment {
	return &Environment{records: make(map[string]Record)}
}

// Extend creates a new child frame whose parent is e.
func (e *Environment) Extend() *Environment {
	return &Environment{
		records: make(map[string]Record),
		parent:  e,
	}
}

// Define writes a binding into the current frame only, shadowing (but not
// mutating) any binding of the same name in an ancestor frame.
func (e *Environment) Define(name string, value llvm.Value, ty llvm.Type) {
	e.records[name] = Record{Value: value, Type: ty}
}

// Lookup walks the frame chain outward and returns the first match.
func (e *Environment) Lookup(name string) (Record, bool) {
	if rec, ok := e.records[name]; ok {
		return rec, true
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}

	return Record{}, false
}

// LookupLocal checks only the current frame. The compiler uses this to
// detect redeclaration within the same scope without also rejecting a name
// that merely shadows an outer one.
func (e *Environment) LookupLocal(name string) (Record, bool) {
	rec, ok := e.records[name]

	return rec, ok
}
