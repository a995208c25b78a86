package compiler

import (
	"fmt"
	"strings"
)

// Construct is one recognized production, in source order. The parser
// produces them; the generators consume them.
type Construct interface {
	constructNode()
	String() string
}

// DataDef declares a variable and its type.
//
//	data: x: vector
//	      ^^^^^^^^^  DataDef{Name: "x", Type: VECTOR_TYPE}
type DataDef struct {
	Name string
	Type TokenType // NUMBER_TYPE or VECTOR_TYPE
}

func (*DataDef) constructNode() {}
func (d *DataDef) String() string {
	return fmt.Sprintf("DataDef(%s: %s)", d.Name, d.Type.keywordText())
}

// InputOp loads a variable from one CSV column.
//
//	x = read("file.csv", true, 1)
type InputOp struct {
	Name   string
	Path   string // full quoted literal, e.g. "\"file.csv\""
	Header bool
	Column string // digit string as written
}

func (*InputOp) constructNode() {}
func (i *InputOp) String() string {
	return fmt.Sprintf("InputOp(%s = read(%s, %t, %s))", i.Name, i.Path, i.Header, i.Column)
}

// ProcessOp binds the result of a statistic function.
//
//	a = correlation(x, y)
//	    ^^^^^^^^^^^ Func: CORRELATION, Args: ["x", "y"]
type ProcessOp struct {
	Name string
	Func TokenType
	Args []string
}

func (*ProcessOp) constructNode() {}
func (p *ProcessOp) String() string {
	return fmt.Sprintf("ProcessOp(%s = %s(%s))", p.Name, p.Func.keywordText(), strings.Join(p.Args, ", "))
}

// OutputOp displays a string literal or a variable.
type OutputOp struct {
	Value    string // quoted literal when IsString, identifier otherwise
	IsString bool
}

func (*OutputOp) constructNode()   {}
func (o *OutputOp) String() string { return fmt.Sprintf("OutputOp(%s)", o.Value) }
