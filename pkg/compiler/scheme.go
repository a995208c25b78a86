package compiler

import (
	"fmt"
	"strings"
)

type schemeGen struct {
	out         []string
	outputsSeen int
}

func (g *schemeGen) line(format string, args ...any) {
	g.out = append(g.out, fmt.Sprintf(format, args...))
}

func (g *schemeGen) gen(c Construct) error {
	switch c := c.(type) {
	case *DataDef:
		// declarations have no Scheme counterpart
	case *InputOp:
		header := "#f"
		if c.Header {
			header = "#t"
		}
		g.line("(define %s (read-csv %s %s %s))", c.Name, schemePath(c.Path), header, c.Column)
	case *ProcessOp:
		g.line("(define %s (%s %s))", c.Name, c.Func.keywordText(), strings.Join(c.Args, " "))
	case *OutputOp:
		if g.outputsSeen > 0 {
			g.line("(newline)")
		}
		g.outputsSeen++
		g.line("(display %s)", c.Value)
	default:
		return fmt.Errorf("scheme: unsupported construct %T", c)
	}
	return nil
}

func generateScheme(constructs []Construct) ([]string, error) {
	g := &schemeGen{}
	for _, c := range constructs {
		if err := g.gen(c); err != nil {
			return nil, err
		}
	}
	return g.out, nil
}
