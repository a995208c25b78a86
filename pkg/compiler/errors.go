package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrLexical        = errors.New("lexical error")
	ErrSyntax         = errors.New("syntax error")
	ErrDeclaration    = errors.New("declaration error")
	ErrUnknownDialect = errors.New("unknown dialect")
)

// maxHintDistance bounds the edit distance for "did you mean" suggestions.
const maxHintDistance = 2

// LexError reports a lexeme the scanner refused to turn into a token.
type LexError struct {
	Lexeme string
	Reason string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error: %q %s", e.Lexeme, e.Reason)
}

func (e *LexError) Is(target error) bool { return target == ErrLexical }

// SyntaxError reports a token whose kind does not fit the grammar at the
// point it was read. Got.Type is EOF when the program ended early.
type SyntaxError struct {
	Expected []TokenType
	Got      Token
	Msg      string // overrides the expected/got wording when set
	Hint     string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("syntax error: ")
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else {
		names := make([]string, len(e.Expected))
		for i, tt := range e.Expected {
			names[i] = tt.String()
		}
		fmt.Fprintf(&b, "expected %s, got %s", strings.Join(names, " or "), e.Got.Type)
		if e.Got.Type != EOF {
			fmt.Fprintf(&b, " (%q)", e.Got.Lexeme)
		}
	}
	if e.Hint != "" {
		b.WriteString("; ")
		b.WriteString(e.Hint)
	}
	return b.String()
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// DeclarationError is only produced in strict mode.
type DeclarationError struct {
	Name   string
	Reason string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("declaration error: %q %s", e.Name, e.Reason)
}

func (e *DeclarationError) Is(target error) bool { return target == ErrDeclaration }

func newSyntaxError(got Token, expected ...TokenType) *SyntaxError {
	return &SyntaxError{Expected: expected, Got: got, Hint: keywordHint(got, expected)}
}

// keywordHint suggests the expected keyword closest to a misspelled
// identifier, e.g. "regresiona" for "regressiona".
func keywordHint(got Token, expected []TokenType) string {
	if got.Type != IDENTIFIER {
		return ""
	}
	best, bestDist := "", maxHintDistance+1
	for _, tt := range expected {
		kw := tt.keywordText()
		if kw == "" {
			continue
		}
		if d := fuzzy.LevenshteinDistance(got.Lexeme, kw); d < bestDist {
			best, bestDist = kw, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", best)
}
