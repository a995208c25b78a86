// Package compiler provides the lexer, parser, and code generators that
// translate the statistics description language into Scheme or Prolog.
//
// Pipeline: source → Lex → Parse → Generate → Scheme / Prolog text
package compiler
