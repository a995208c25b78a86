package compiler

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	identPattern  = regexp.MustCompile(`^[a-z]+$`)
	stringPattern = regexp.MustCompile(`^[a-z0-9. =:-]+$`)
	lowerCaser    = cases.Lower(language.Und)
)

// scanState tracks whether the lexer is inside a read(...) or stat-fn
// argument list. Strings and digit runs are consumed by their own
// sub-scanners and never leave the lexer in an intermediate state.
type scanState int

const (
	stateNormal scanState = iota
	stateArgList
)

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src    []rune
	pos    int // index of the next rune to consume
	state  scanState
	buf    strings.Builder // pending word, flushed at the next delimiter
	tokens []Token
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *Lexer) emit(tt TokenType, lexeme string) {
	l.tokens = append(l.tokens, Token{Type: tt, Lexeme: lexeme})
}

// flush turns the pending word into a keyword, boolean, or identifier token.
func (l *Lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	word := l.buf.String()
	l.buf.Reset()
	tok, err := classify(word)
	if err != nil {
		return err
	}
	l.tokens = append(l.tokens, tok)
	return nil
}

// classify maps a delimited word to its token. Keywords only match whole
// words, so "database" is an identifier rather than "data" + "base".
func classify(word string) (Token, error) {
	if tt, ok := keywords[word]; ok {
		return Token{Type: tt, Lexeme: word}, nil
	}
	if err := checkIdentifier(word); err != nil {
		return Token{}, err
	}
	return Token{Type: IDENTIFIER, Lexeme: word}, nil
}

// checkIdentifier is the single validation point for identifier lexemes.
func checkIdentifier(word string) error {
	if lowerCaser.String(word) != word {
		return &LexError{Lexeme: word, Reason: "is not accepted as a value"}
	}
	if !identPattern.MatchString(word) {
		return &LexError{Lexeme: word, Reason: "is not a valid identifier (lowercase letters only)"}
	}
	return nil
}

// checkString is the single validation point for string literals. quoted
// includes both delimiters.
func checkString(quoted string) error {
	inner := quoted[1 : len(quoted)-1]
	if !stringPattern.MatchString(inner) {
		return &LexError{Lexeme: quoted, Reason: "may only contain lowercase letters, digits, '.', ':', '=', '-' and spaces"}
	}
	return nil
}

// scanString collects a string literal "..." keeping both quotes.
// The opening quote must still be at l.peek().
func (l *Lexer) scanString() error {
	start := l.pos
	l.advance() // consume opening "
	for l.pos < len(l.src) {
		r := l.peek()
		if r == '"' {
			break
		}
		if r == '\n' {
			return &LexError{Lexeme: string(l.src[start:l.pos]), Reason: "is an unterminated string literal"}
		}
		l.advance()
	}
	if l.pos >= len(l.src) {
		return &LexError{Lexeme: string(l.src[start:l.pos]), Reason: "is an unterminated string literal"}
	}
	l.advance() // consume closing "

	lexeme := string(l.src[start:l.pos])
	if err := checkString(lexeme); err != nil {
		return err
	}
	l.emit(STRING, lexeme)
	return nil
}

// scanNumber consumes the maximal run of digits as one NUMBER token.
func (l *Lexer) scanNumber() {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	l.emit(NUMBER, string(l.src[start:l.pos]))
}

// punct flushes the pending word and emits a single-character token.
func (l *Lexer) punct(tt TokenType) error {
	if err := l.flush(); err != nil {
		return err
	}
	l.emit(tt, string(l.advance()))
	return nil
}

func (l *Lexer) step() error {
	ch := l.peek()
	switch {
	case ch == '\n' || ch == ' ' || ch == '\t' || ch == '\r':
		l.advance()
		return l.flush()
	case ch == '"':
		if err := l.flush(); err != nil {
			return err
		}
		return l.scanString()
	case ch == ',':
		return l.punct(COMMA)
	case ch == '(':
		if l.state == stateArgList {
			return &LexError{Lexeme: "(", Reason: "opens a nested argument list"}
		}
		l.state = stateArgList
		return l.punct(LPAREN)
	case ch == ')':
		if l.state != stateArgList {
			return &LexError{Lexeme: ")", Reason: "closes an argument list that was never opened"}
		}
		l.state = stateNormal
		return l.punct(RPAREN)
	case ch == '.':
		return l.punct(PERIOD)
	case ch == '=':
		return l.punct(ASSIGN)
	case ch == ':':
		return l.punct(COLON)
	case isDigit(ch) && l.buf.Len() == 0:
		l.scanNumber()
		return nil
	}
	l.buf.WriteRune(l.advance())
	return nil
}

// Lex tokenises src and returns the complete token slice. It returns a
// non-nil error, and no tokens, on the first lexical error.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	for l.pos < len(l.src) {
		if err := l.step(); err != nil {
			return nil, err
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
