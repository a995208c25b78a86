package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// SymbolKind records how a name came into scope.
type SymbolKind int

const (
	SymbolDeclared SymbolKind = iota // listed in the data section
	SymbolComputed                   // bound by a process op
)

type Symbol struct {
	Name   string
	Kind   SymbolKind
	Type   TokenType // NUMBER_TYPE or VECTOR_TYPE; EOF for computed names
	Loaded bool      // assigned by an input op
}

// SymbolTable maps variable names to what the program said about them.
// Translation does not need it; it backs strict mode only.
type SymbolTable struct {
	symbols map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Declare adds a data-section name. It reports false if name already exists.
func (s *SymbolTable) Declare(name string, typ TokenType) bool {
	if _, ok := s.symbols[name]; ok {
		return false
	}
	s.symbols[name] = &Symbol{Name: name, Kind: SymbolDeclared, Type: typ}
	return true
}

// Bind records a process-op target. Declared names keep their type.
func (s *SymbolTable) Bind(name string) {
	if _, ok := s.symbols[name]; !ok {
		s.symbols[name] = &Symbol{Name: name, Kind: SymbolComputed}
	}
}

func (s *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

func (s *SymbolTable) String() string {
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Symbol Table:\n")
	for _, name := range names {
		sym := s.symbols[name]
		kind := "computed"
		if sym.Kind == SymbolDeclared {
			kind = sym.Type.keywordText()
		}
		fmt.Fprintf(&b, "  %-12s %-8s loaded=%t\n", name, kind, sym.Loaded)
	}
	return b.String()
}

// CheckDeclarations verifies that every name used by the input, process and
// output sections was declared in data (or computed by an earlier process
// op), and that no name is declared twice.
func CheckDeclarations(constructs []Construct) (*SymbolTable, error) {
	syms := NewSymbolTable()
	use := func(name, where string) (*Symbol, error) {
		sym, ok := syms.Lookup(name)
		if !ok {
			return nil, &DeclarationError{Name: name, Reason: "is used in " + where + " but never declared"}
		}
		return sym, nil
	}

	for _, c := range constructs {
		switch c := c.(type) {
		case *DataDef:
			if !syms.Declare(c.Name, c.Type) {
				return nil, &DeclarationError{Name: c.Name, Reason: "is declared more than once"}
			}
		case *InputOp:
			sym, err := use(c.Name, "input")
			if err != nil {
				return nil, err
			}
			sym.Loaded = true
		case *ProcessOp:
			for _, a := range c.Args {
				if _, err := use(a, "process"); err != nil {
					return nil, err
				}
			}
			syms.Bind(c.Name)
		case *OutputOp:
			if c.IsString {
				continue
			}
			if _, err := use(c.Value, "output"); err != nil {
				return nil, err
			}
		}
	}
	return syms, nil
}
