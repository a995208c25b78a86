package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"statgen/pkg/compiler"
	"statgen/pkg/utils"
)

const (
	msgNoSource  = "Please re-execute program with a valid source file."
	msgNoDialect = "Please enter in a valid language flag -s for scheme or -p for prolog"
	msgBadFlag   = "Please enter a valid selection or prolog -p or scheme -s"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("statgen: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit so the CLI can be tested.
// Usage: statgen [-o file | -save] [-tokens] [-strict] <source> <-s|-p>
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("statgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outPath := fs.String("o", "", "write the generated program to this file instead of stdout")
	save := fs.Bool("save", false, "write the generated program next to the source (.scm or .pl)")
	dumpTokens := fs.Bool("tokens", false, "dump the token stream to stderr before translating")
	strict := fs.Bool("strict", false, "reject references to names not declared in the data section")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: statgen [-o file | -save] [-tokens] [-strict] <source> <-s|-p>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, log.Prefix(), log.Flags())

	if fs.NArg() < 1 {
		fmt.Fprintln(stdout, msgNoSource)
		return 2
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(stdout, msgNoDialect)
		return 2
	}
	if *outPath != "" && *save {
		fmt.Fprintln(stderr, "use either -o or -save, not both")
		return 2
	}

	srcPath := fs.Arg(0)
	dialect, err := compiler.ParseDialect(fs.Arg(1))
	if err != nil {
		fmt.Fprintln(stdout, msgBadFlag)
		logger.Print(err)
		return 2
	}

	fullPath, dir, err := utils.ResolveSource(srcPath)
	if err != nil {
		logger.Printf("failed to read source file: %v", err)
		return 1
	}
	src, err := os.ReadFile(fullPath)
	if err != nil {
		logger.Printf("failed to read source file: %v", err)
		return 1
	}

	if *dumpTokens {
		// Dump whatever lexed, even if parsing fails afterwards.
		if tokens, err := compiler.Lex(string(src)); err == nil {
			spew.Fdump(stderr, tokens)
		}
	}

	res, err := compiler.Translate(string(src), dialect, compiler.Options{Strict: *strict})
	if err != nil {
		logger.Printf("translation failed: %v", err)
		return 1
	}
	program := compiler.Render(dialect, res.Lines)

	if *save {
		*outPath = utils.DefaultOutputPath(filepath.Join(dir, filepath.Base(fullPath)), dialect.Ext())
	}
	if *outPath == "" {
		fmt.Fprint(stdout, program)
		return 0
	}
	if err := os.WriteFile(*outPath, []byte(program), 0o644); err != nil {
		logger.Printf("failed to write %q: %v", *outPath, err)
		return 1
	}
	fmt.Fprintf(stderr, "wrote %s program -> %s\n", dialect, *outPath)
	return 0
}
