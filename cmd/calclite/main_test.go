package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conneroisu/calclite/pkg/artifact"
	"github.com/conneroisu/calclite/pkg/compiler"
	"github.com/conneroisu/calclite/pkg/lexer"
	"github.com/conneroisu/calclite/pkg/parser"
)

func TestDumpASTProducesValidJSON(t *testing.T) {
	p := parser.New(lexer.New("var x: int = 1"))
	program := p.ParseProgram()
	if p.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}

	if err := dumpAST(program); err != nil {
		t.Fatalf("dumpAST returned an error: %v", err)
	}
}

func TestDumpIRWritesFileWhenOutIsSet(t *testing.T) {
	p := parser.New(lexer.New("func main(): int { return 0 }"))
	program := p.ParseProgram()
	if p.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}

	c := compiler.New()
	ir := c.Compile(program)

	art := artifact.New("main.calc").SetIR(ir).Build()
	out := filepath.Join(t.TempDir(), "out.ll")

	if err := dumpIR(art, out); err != nil {
		t.Fatalf("dumpIR returned an error: %v", err)
	}

	contents, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", out, err)
	}
	if string(contents) != ir {
		t.Fatalf("written IR does not match compiled IR")
	}
}
