package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // cursor sentinel: read past the last token

	// Section keywords
	DATA    // "data"
	INPUT   // "input"
	PROCESS // "process"
	OUTPUT  // "output"
	END     // "end"

	// Punctuation
	COLON  // :
	COMMA  // ,
	PERIOD // .
	LPAREN // (
	RPAREN // )
	ASSIGN // =

	// Literals
	IDENTIFIER // variable name, lowercase letters only
	NUMBER     // unsigned decimal digit run
	STRING     // "..." including both quotes
	TRUE       // "true"
	FALSE      // "false"

	// Types
	NUMBER_TYPE // "number"
	VECTOR_TYPE // "vector"

	READ // "read"

	// Statistic functions
	MEAN        // "mean"
	STDDEV      // "stddev"
	CORRELATION // "correlation"
	REGRESSIONA // "regressiona"
	REGRESSIONB // "regressionb"
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:         "EOF",
	DATA:        "DATA",
	INPUT:       "INPUT",
	PROCESS:     "PROCESS",
	OUTPUT:      "OUTPUT",
	END:         "END",
	COLON:       "COLON",
	COMMA:       "COMMA",
	PERIOD:      "PERIOD",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	ASSIGN:      "ASSIGN",
	IDENTIFIER:  "IDENTIFIER",
	NUMBER:      "NUMBER",
	STRING:      "STRING",
	TRUE:        "TRUE",
	FALSE:       "FALSE",
	NUMBER_TYPE: "NUMBER_TYPE",
	VECTOR_TYPE: "VECTOR_TYPE",
	READ:        "READ",
	MEAN:        "MEAN",
	STDDEV:      "STDDEV",
	CORRELATION: "CORRELATION",
	REGRESSIONA: "REGRESSIONA",
	REGRESSIONB: "REGRESSIONB",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// keywords maps source text to its keyword TokenType. Booleans are listed
// here too: they are recognized in any delimited position.
var keywords = map[string]TokenType{
	"data":        DATA,
	"input":       INPUT,
	"process":     PROCESS,
	"output":      OUTPUT,
	"end":         END,
	"read":        READ,
	"number":      NUMBER_TYPE,
	"vector":      VECTOR_TYPE,
	"regressiona": REGRESSIONA,
	"regressionb": REGRESSIONB,
	"correlation": CORRELATION,
	"false":       FALSE,
	"true":        TRUE,
	"stddev":      STDDEV,
	"mean":        MEAN,
}

// keywordText returns the source spelling of a keyword kind, or "" for
// punctuation and literal classes.
func (tt TokenType) keywordText() string {
	for text, kw := range keywords {
		if kw == tt {
			return text
		}
	}
	return ""
}

// arity is the exact number of arguments each statistic function takes.
var arity = map[TokenType]int{
	MEAN:        1,
	STDDEV:      1,
	CORRELATION: 2,
	REGRESSIONA: 2,
	REGRESSIONB: 2,
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
}

func (t Token) String() string {
	return fmt.Sprintf("%-12s %q", t.Type, t.Lexeme)
}
