package parser

import (
	"unicode"
	"unicode/utf8"
)

// Lexer splits a command line into whitespace-delimited tokens. Keywords
// are matched case-sensitively; every other run of non-space characters is
// a WORD, so usernames and emails keep their exact bytes.
type Lexer struct {
	input  string
	pos    int
	length int
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		length: len(input),
	}
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= l.length {
		return createToken(EOF, "", l.pos)
	}

	start := l.pos
	for l.pos < l.length {
		r, width := l.peekRune()
		if unicode.IsSpace(r) {
			break
		}
		l.pos += width
	}

	word := l.input[start:l.pos]
	if tokenType, ok := keywords[word]; ok {
		return createToken(tokenType, word, start)
	}
	return createToken(WORD, word, start)
}

// Tokens drains the lexer, excluding the trailing EOF.
func (l *Lexer) Tokens() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < l.length {
		r, width := l.peekRune()
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += width
	}
}

// peekRune decodes the rune at the current position. Invalid UTF-8 decodes
// as utf8.RuneError with width 1, which is never whitespace, so stray bytes
// stay inside the surrounding word.
func (l *Lexer) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(l.input[l.pos:])
}
