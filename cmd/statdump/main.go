// Command statdump prints every stage of a translation: the source, the
// token stream, the recognized constructs, and the output of both dialects.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"statgen/pkg/compiler"
)

const testSource = `data: x: vector, y: vector
input: x = read("xy.csv", true, 0), y = read("xy.csv", true, 1)
process: c = correlation(x, y), m = mean(x)
output: "c =", c, m
end.
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
	}

	fmt.Printf("Source:\n%s\n", src)

	// Lex
	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		os.Exit(1)
	}

	fmt.Printf("Tokens (%d)\n", len(tokens))
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	cfg.Dump(tokens)
	fmt.Println()

	// Parse
	constructs, err := compiler.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		os.Exit(1)
	}

	fmt.Println("Constructs")
	for _, c := range constructs {
		fmt.Println(" ", c)
	}
	fmt.Println()

	if syms, err := compiler.CheckDeclarations(constructs); err != nil {
		fmt.Println("strict mode would reject this program:", err)
	} else {
		fmt.Print(syms)
	}
	fmt.Println()

	for _, d := range []compiler.Dialect{compiler.Scheme, compiler.Prolog} {
		lines, err := compiler.Generate(d, constructs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s codegen error: %v\n", d, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s (%s)\n", d, d.Flag())
		fmt.Print(compiler.Render(d, lines))
		fmt.Println()
	}
}
