package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Dialect selects the target language of a translation.
type Dialect int

const (
	Scheme Dialect = iota // dialect A, "-s"
	Prolog                // dialect B, "-p"
)

func (d Dialect) String() string {
	switch d {
	case Scheme:
		return "scheme"
	case Prolog:
		return "prolog"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// Flag returns the command-line selector for d.
func (d Dialect) Flag() string {
	if d == Prolog {
		return "-p"
	}
	return "-s"
}

// Ext is the conventional file extension for programs in d.
func (d Dialect) Ext() string {
	if d == Prolog {
		return ".pl"
	}
	return ".scm"
}

// dialectAliases feeds suggestions for unrecognized selectors only; the
// accepted values are exactly "-s" and "-p".
var dialectAliases = map[string]Dialect{
	"-s":     Scheme,
	"-p":     Prolog,
	"s":      Scheme,
	"p":      Prolog,
	"scheme": Scheme,
	"prolog": Prolog,
}

// ParseDialect maps a selector flag to its Dialect.
func ParseDialect(flag string) (Dialect, error) {
	switch flag {
	case "-s":
		return Scheme, nil
	case "-p":
		return Prolog, nil
	}
	if s := suggestDialect(flag); s != "" {
		return 0, fmt.Errorf("%w %q, did you mean %s?", ErrUnknownDialect, flag, s)
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownDialect, flag)
}

func suggestDialect(flag string) string {
	if flag == "" {
		return ""
	}
	names := make([]string, 0, len(dialectAliases))
	for name := range dialectAliases {
		names = append(names, name)
	}
	sort.Strings(names)

	ranks := fuzzy.RankFindNormalizedFold(flag, names)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return dialectAliases[ranks[0].Target].Flag()
}

// Generate emits the lines of d for the recognized constructs.
func Generate(d Dialect, constructs []Construct) ([]string, error) {
	switch d {
	case Scheme:
		return generateScheme(constructs)
	case Prolog:
		return generateProlog(constructs)
	}
	return nil, fmt.Errorf("%w %s", ErrUnknownDialect, d)
}

// Render frames generated lines as a complete program: Scheme lines stand
// alone, Prolog lines become the tab-indented body of a main/0 clause.
func Render(d Dialect, lines []string) string {
	var b strings.Builder
	if d == Prolog {
		b.WriteString("main :-\n")
	}
	for _, l := range lines {
		if d == Prolog {
			b.WriteByte('\t')
		}
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// schemePath turns "file.csv" into "./file.csv".
func schemePath(quoted string) string {
	return `"./` + quoted[1:]
}

// prologAtom turns "file.csv" into 'file.csv'.
func prologAtom(quoted string) string {
	return "'" + quoted[1:len(quoted)-1] + "'"
}

// outputCount returns how many OutputOp constructs cs holds.
func outputCount(cs []Construct) int {
	n := 0
	for _, c := range cs {
		if _, ok := c.(*OutputOp); ok {
			n++
		}
	}
	return n
}
