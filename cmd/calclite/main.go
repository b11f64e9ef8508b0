// Package main implements the calclite command-line interface.
//
// calclite is an ahead-of-time compiler for a small statically typed,
// C-like language. It lexes and parses a source file, lowers the result to
// a single LLVM IR module, and — unless one of the dump flags asks for an
// intermediate artifact instead — JIT-executes the module's `main` and
// reports what it returned.
//
// Examples:
//
//	calclite run program.calc
//	calclite run --dump-tokens program.calc
//	calclite run --dump-ast program.calc
//	calclite run --dump-ir --out build.ll program.calc
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"tinygo.org/x/go-llvm"

	"github.com/conneroisu/calclite/internal/ast"
	"github.com/conneroisu/calclite/pkg/artifact"
	"github.com/conneroisu/calclite/pkg/compiler"
	"github.com/conneroisu/calclite/pkg/lexer"
	"github.com/conneroisu/calclite/pkg/parser"
)

var (
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
	dumpColor = color.New(color.FgCyan)
)

func main() {
	app := &cli.Command{
		Name:  "calclite",
		Usage: "compile and run a calclite program",
		Commands: []*cli.Command{
			runCommand,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		errColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

var runCommand = &cli.Command{
	Name:  "run",
	Usage: "compile a source file and, by default, JIT-execute it",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dump-tokens",
			Usage: "print the token stream and stop",
		},
		&cli.BoolFlag{
			Name:  "dump-ast",
			Usage: "print the parsed program as JSON and stop",
		},
		&cli.BoolFlag{
			Name:  "dump-ir",
			Usage: "print the compiled LLVM IR and stop instead of running it",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "write the IR to this path instead of stdout (with --dump-ir)",
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		path := cmd.Args().First()
		if path == "" {
			return fmt.Errorf("usage: calclite run [flags] <source-file>")
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		if cmd.Bool("dump-tokens") {
			dumpTokens(string(src))

			return nil
		}

		p := parser.New(lexer.New(string(src)))
		program := p.ParseProgram()
		if p.HasErrors() {
			for _, msg := range p.Errors() {
				errColor.Fprintln(os.Stderr, msg)
			}

			return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
		}

		if cmd.Bool("dump-ast") {
			return dumpAST(program)
		}

		c := compiler.New()
		ir := c.Compile(program)
		if c.HasErrors() {
			for _, msg := range c.Errors() {
				errColor.Fprintln(os.Stderr, msg)
			}

			return fmt.Errorf("compilation failed with %d error(s)", len(c.Errors()))
		}

		art := artifact.New(path).SetIR(ir).Build()

		if cmd.Bool("dump-ir") {
			return dumpIR(art, cmd.String("out"))
		}

		return runIR(ir)
	},
}

// dumpTokens re-lexes src on its own (independent of the parser) and prints
// every token the lexer produces, stopping once it reaches EOF.
func dumpTokens(src string) {
	l := lexer.New(src)
	for {
		tok := l.NextToken()
		dumpColor.Printf("%s(%v)\n", tok.Type, tok.Literal)
		if tok.Type == lexer.TOKEN_EOF {
			return
		}
	}
}

// dumpAST serializes program to JSON per §6's normative shape and prints it.
func dumpAST(program *ast.Program) error {
	out, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling AST: %w", err)
	}

	dumpColor.Println(string(out))

	return nil
}

// dumpIR writes the compiled IR to stdout when out is empty, otherwise to
// the --out path, reporting the artifact's deterministic, content-addressed
// name alongside it. The content-addressed name is never used as a path.
func dumpIR(art *artifact.Artifact, out string) error {
	if out == "" {
		dumpColor.Println(art.IR)

		return nil
	}

	if err := os.WriteFile(out, []byte(art.IR), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	okColor.Printf("wrote %s (%s)\n", out, art.OutputName())

	return nil
}

// runIR parses ir back from text, verifies the module, JIT-compiles it with
// MCJIT, and invokes its zero-argument, i32-returning main per §4.6/§6.
func runIR(ir string) error {
	ctx := llvm.NewContext()
	defer ctx.Dispose()

	buf := llvm.NewMemoryBufferFromString(ir)

	mod, err := ctx.ParseIR(buf)
	if err != nil {
		return fmt.Errorf("parsing compiled IR: %w", err)
	}
	defer mod.Dispose()

	mod.SetTarget(llvm.DefaultTargetTriple())

	if err := llvm.VerifyModule(mod, llvm.ReturnStatusAction); err != nil {
		return fmt.Errorf("verifying compiled module: %w", err)
	}

	if err := llvm.InitializeNativeTarget(); err != nil {
		return fmt.Errorf("initializing native target: %w", err)
	}
	if err := llvm.InitializeNativeAsmPrinter(); err != nil {
		return fmt.Errorf("initializing native asm printer: %w", err)
	}

	engine, err := llvm.NewMCJITCompiler(mod, llvm.NewMCJITCompilerOptions())
	if err != nil {
		return fmt.Errorf("creating MCJIT engine: %w", err)
	}
	defer engine.Dispose()

	mainFn, ok := engine.FindFunction("main")
	if !ok {
		return fmt.Errorf("compiled module does not define main")
	}

	start := time.Now()
	result := engine.RunFunction(mainFn, nil)
	elapsed := time.Since(start)

	okColor.Printf("main returned %d (%s)\n", result.Int(true), elapsed)

	return nil
}
