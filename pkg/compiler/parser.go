package compiler

import "fmt"

// Parser consumes the flat token slice produced by the Lexer and recognizes
// one program, collecting a Construct per production.
//
// Grammar:
//
//	program     = "data" ":" dataDefs inputOps processOps outputOps "end" "."
//	dataDefs    = dataDef ("," dataDef)*
//	dataDef     = IDENTIFIER ":" ("number" | "vector")
//	inputOps    = "input" ":" inputOp ("," inputOp)*
//	inputOp     = IDENTIFIER "=" "read" "(" STRING "," bool "," NUMBER ")"
//	processOps  = "process" ":" processOp ("," processOp)*
//	processOp   = IDENTIFIER "=" statFn "(" IDENTIFIER ("," IDENTIFIER)? ")"
//	outputOps   = "output" ":" outputOp ("," outputOp)*
//	outputOp    = STRING | IDENTIFIER
//
// Each list is closed by the first token that is not a comma, which must be
// the keyword opening the next section.
type Parser struct {
	tokens     []Token
	pos        int
	inOutput   bool
	constructs []Construct
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// current returns the token at the cursor, or EOF past the end.
func (p *Parser) current() Token {
	return p.peekAt(0)
}

// peekNext returns the token immediately after the current one.
func (p *Parser) peekNext() Token {
	return p.peekAt(1)
}

// peekAt returns the token at the given offset from the current position.
func (p *Parser) peekAt(offset int) Token {
	if p.pos+offset >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos+offset]
}

// advance moves the cursor forward and returns the new current token.
func (p *Parser) advance() Token {
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return p.current()
}

// expectCurrent checks the current token against the allowed kinds.
func (p *Parser) expectCurrent(kinds ...TokenType) (Token, error) {
	tok := p.current()
	for _, tt := range kinds {
		if tok.Type == tt {
			return tok, nil
		}
	}
	return tok, newSyntaxError(tok, kinds...)
}

// expectNext advances, then checks the new current token.
func (p *Parser) expectNext(kinds ...TokenType) (Token, error) {
	p.advance()
	return p.expectCurrent(kinds...)
}

// sectionHeader checks that the list just closed is followed by kw ":".
func (p *Parser) sectionHeader(kw TokenType) error {
	if _, err := p.expectCurrent(kw); err != nil {
		return p.missingComma(err)
	}
	_, err := p.expectNext(COLON)
	return err
}

// missingComma adds a hint when the token that closed a list looks like the
// start of another item of the same list.
func (p *Parser) missingComma(err error) error {
	se, ok := err.(*SyntaxError)
	if !ok || se.Hint != "" {
		return err
	}
	cur, next := p.current(), p.peekNext()
	var startsItem bool
	if p.inOutput {
		startsItem = cur.Type == STRING || cur.Type == IDENTIFIER
	} else {
		startsItem = cur.Type == IDENTIFIER && (next.Type == COLON || next.Type == ASSIGN)
	}
	if startsItem {
		se.Hint = fmt.Sprintf("missing ',' before %q?", cur.Lexeme)
	}
	return se
}

// list parses one item, then another for every following comma.
func (p *Parser) list(item func() error) error {
	if err := item(); err != nil {
		return err
	}
	for p.advance().Type == COMMA {
		if err := item(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseProgram() error {
	if _, err := p.expectCurrent(DATA); err != nil {
		return err
	}
	if _, err := p.expectNext(COLON); err != nil {
		return err
	}

	sections := []struct {
		item func() error
		next TokenType
	}{
		{p.parseDataDef, INPUT},
		{p.parseInputOp, PROCESS},
		{p.parseProcessOp, OUTPUT},
	}
	for _, s := range sections {
		if err := p.list(s.item); err != nil {
			return err
		}
		if err := p.sectionHeader(s.next); err != nil {
			return err
		}
	}

	if err := p.parseOutputOps(); err != nil {
		return err
	}

	if tok := p.advance(); tok.Type != EOF {
		return &SyntaxError{Got: tok, Msg: fmt.Sprintf("unexpected token %s (%q) after end of program", tok.Type, tok.Lexeme)}
	}
	return nil
}

// parseDataDef handles `x: number` and `x: vector`.
func (p *Parser) parseDataDef() error {
	name, err := p.expectNext(IDENTIFIER)
	if err != nil {
		return err
	}
	if _, err := p.expectNext(COLON); err != nil {
		return err
	}
	typ, err := p.expectNext(NUMBER_TYPE, VECTOR_TYPE)
	if err != nil {
		return err
	}
	p.constructs = append(p.constructs, &DataDef{Name: name.Lexeme, Type: typ.Type})
	return nil
}

// parseInputOp handles `x = read("file.csv", true, 1)`.
func (p *Parser) parseInputOp() error {
	name, err := p.expectNext(IDENTIFIER)
	if err != nil {
		return err
	}
	for _, tt := range []TokenType{ASSIGN, READ, LPAREN} {
		if _, err := p.expectNext(tt); err != nil {
			return err
		}
	}
	path, err := p.expectNext(STRING)
	if err != nil {
		return err
	}
	if _, err := p.expectNext(COMMA); err != nil {
		return err
	}
	header, err := p.expectNext(TRUE, FALSE)
	if err != nil {
		return err
	}
	if _, err := p.expectNext(COMMA); err != nil {
		return err
	}
	column, err := p.expectNext(NUMBER)
	if err != nil {
		return err
	}
	if _, err := p.expectNext(RPAREN); err != nil {
		return err
	}

	p.constructs = append(p.constructs, &InputOp{
		Name:   name.Lexeme,
		Path:   path.Lexeme,
		Header: header.Type == TRUE,
		Column: column.Lexeme,
	})
	return nil
}

// parseProcessOp handles `m = mean(x)` and `a = correlation(x, y)`,
// enforcing each function's arity.
func (p *Parser) parseProcessOp() error {
	name, err := p.expectNext(IDENTIFIER)
	if err != nil {
		return err
	}
	if _, err := p.expectNext(ASSIGN); err != nil {
		return err
	}
	fn, err := p.expectNext(MEAN, STDDEV, CORRELATION, REGRESSIONA, REGRESSIONB)
	if err != nil {
		return err
	}
	if _, err := p.expectNext(LPAREN); err != nil {
		return err
	}

	want := arity[fn.Type]
	var args []string
	for {
		arg, err := p.expectNext(IDENTIFIER)
		if err != nil {
			return err
		}
		args = append(args, arg.Lexeme)

		next := p.advance()
		if next.Type == RPAREN {
			break
		}
		if next.Type != COMMA {
			return newSyntaxError(next, COMMA, RPAREN)
		}
		if len(args) == want {
			return &SyntaxError{Got: next, Msg: arityMessage(fn, want)}
		}
	}
	if len(args) != want {
		return &SyntaxError{Got: p.current(), Msg: arityMessage(fn, want)}
	}

	p.constructs = append(p.constructs, &ProcessOp{Name: name.Lexeme, Func: fn.Type, Args: args})
	return nil
}

func arityMessage(fn Token, want int) string {
	if want == 1 {
		return fmt.Sprintf("%s can only take in one parameter", fn.Lexeme)
	}
	return fmt.Sprintf("%s takes exactly %d parameters", fn.Lexeme, want)
}

// parseOutputOps handles the output list and the closing `end.`.
func (p *Parser) parseOutputOps() error {
	p.inOutput = true
	if err := p.list(p.parseOutputOp); err != nil {
		return err
	}
	if _, err := p.expectCurrent(END); err != nil {
		return p.missingComma(err)
	}
	_, err := p.expectNext(PERIOD)
	return err
}

func (p *Parser) parseOutputOp() error {
	tok, err := p.expectNext(STRING, IDENTIFIER)
	if err != nil {
		return err
	}
	p.constructs = append(p.constructs, &OutputOp{Value: tok.Lexeme, IsString: tok.Type == STRING})
	return nil
}

// Parse recognizes a whole program. On the first error it returns nil
// constructs; there is no partial result.
func Parse(tokens []Token) ([]Construct, error) {
	p := NewParser(tokens)
	if err := p.parseProgram(); err != nil {
		return nil, err
	}
	return p.constructs, nil
}
