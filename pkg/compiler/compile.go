package compiler

// Options configures a translation.
type Options struct {
	// Strict rejects references to names the data section never declared.
	Strict bool
}

// Result holds every stage's output of a successful translation.
type Result struct {
	Tokens     []Token
	Constructs []Construct
	Lines      []string
}

// Translate runs the whole pipeline for one dialect. It returns nil and the
// first error encountered; nothing partial is ever returned.
func Translate(src string, d Dialect, opts Options) (*Result, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}

	constructs, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	if opts.Strict {
		if _, err := CheckDeclarations(constructs); err != nil {
			return nil, err
		}
	}

	lines, err := Generate(d, constructs)
	if err != nil {
		return nil, err
	}

	return &Result{Tokens: tokens, Constructs: constructs, Lines: lines}, nil
}

// Compile translates src and renders the complete target program.
func Compile(src string, d Dialect, opts Options) (string, error) {
	res, err := Translate(src, d, opts)
	if err != nil {
		return "", err
	}
	return Render(d, res.Lines), nil
}
