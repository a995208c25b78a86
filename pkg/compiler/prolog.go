package compiler

import (
	"fmt"
	"strings"
)

type prologGen struct {
	out         []string
	outputsLeft int
}

func (g *prologGen) line(format string, args ...any) {
	g.out = append(g.out, fmt.Sprintf(format, args...))
}

// variable maps a source identifier to a Prolog variable name.
func variable(name string) string {
	return "V" + name
}

func (g *prologGen) gen(c Construct) error {
	switch c := c.(type) {
	case *DataDef:
		// declarations have no Prolog counterpart
	case *InputOp:
		g.line("load_data_column(%s, %t, %s, %s),", prologAtom(c.Path), c.Header, c.Column, variable(c.Name))
	case *ProcessOp:
		args := make([]string, 0, len(c.Args)+1)
		for _, a := range c.Args {
			args = append(args, variable(a))
		}
		args = append(args, variable(c.Name))
		g.line("%s(%s),", c.Func.keywordText(), strings.Join(args, ", "))
	case *OutputOp:
		value := c.Value
		if !c.IsString {
			value = variable(value)
		}
		g.outputsLeft--
		term := ","
		if g.outputsLeft == 0 {
			term = "."
		}
		g.line("writeln(%s)%s", value, term)
	default:
		return fmt.Errorf("prolog: unsupported construct %T", c)
	}
	return nil
}

func generateProlog(constructs []Construct) ([]string, error) {
	g := &prologGen{outputsLeft: outputCount(constructs)}
	for _, c := range constructs {
		if err := g.gen(c); err != nil {
			return nil, err
		}
	}
	return g.out, nil
}
