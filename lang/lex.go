package lang

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

// lexer splits source text into tokens on demand.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

// next scans and returns the next token.
func (l *lexer) next() (Token, error) {
	l.skipWhitespace()

	pos := l.position()

	if l.eof() {
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}

	ch := l.peek()

	switch {
	case ch == '0':
		return l.lexNumber(pos)

	case ch == '[':
		return l.lexString(pos)

	case ch == '$':
		return l.lexConstRef(pos)

	case isNameStart(ch):
		name := l.lexName()
		if name == "var" {
			return Token{Kind: TokenVar, Text: name, Pos: pos}, nil
		}

		return Token{Kind: TokenName, Text: name, Pos: pos}, nil

	case ch == '@' && l.peekN(2) == "@{":
		l.advanceN(2)

		return Token{Kind: TokenDictOpen, Text: "@{", Pos: pos}, nil

	case ch == '}':
		l.advance()

		return Token{Kind: TokenDictClose, Text: "}", Pos: pos}, nil

	case ch == '=':
		l.advance()

		return Token{Kind: TokenAssign, Text: "=", Pos: pos}, nil

	case ch == ';':
		l.advance()

		return Token{Kind: TokenSemicolon, Text: ";", Pos: pos}, nil
	}

	return Token{}, ErrUnexpectedChar.
		Msgf("unexpected character %q", ch).
		With(slog.String("char", string(ch))).
		at(pos, l.src)
}

// lexNumber scans: '0' ('o' | 'O') [0-7]+.
func (l *lexer) lexNumber(pos Position) (Token, error) {
	start := l.pos

	if len(l.src) < start+3 || (l.src[start+1] != 'o' && l.src[start+1] != 'O') ||
		!isOctalDigit(rune(l.src[start+2])) {
		return Token{}, ErrInvalidNumber.at(pos, l.src)
	}

	l.advanceN(2)

	for !l.eof() && isOctalDigit(l.peek()) {
		l.advance()
	}

	text := l.src[start:l.pos]
	if _, err := strconv.ParseInt(text[2:], 8, 64); err != nil {
		return Token{}, ErrInvalidNumber.
			Msgf("octal literal %s out of range", text).
			at(pos, l.src)
	}

	return Token{Kind: TokenNumber, Text: text, Pos: pos}, nil
}

// lexString scans '[[' up to and including the first ']]'.
func (l *lexer) lexString(pos Position) (Token, error) {
	start := l.pos

	if l.peekN(2) != "[[" {
		return Token{}, ErrUnexpectedChar.Msgf("unexpected character '['").
			at(pos, l.src)
	}

	end := strings.Index(l.src[start+2:], "]]")
	if end < 0 {
		return Token{}, ErrUnterminatedString.at(pos, l.src)
	}

	stop := start + 2 + end + 2
	for l.pos < stop {
		l.advance()
	}

	return Token{Kind: TokenString, Text: l.src[start:stop], Pos: pos}, nil
}

// lexConstRef scans: '$' Name '$'.
func (l *lexer) lexConstRef(pos Position) (Token, error) {
	start := l.pos

	l.advance() // skip '$'

	if l.eof() || !isNameStart(l.peek()) {
		return Token{}, ErrMalformedReference.at(pos, l.src)
	}

	l.lexName()

	if l.eof() || l.peek() != '$' {
		return Token{}, ErrMalformedReference.at(pos, l.src)
	}

	l.advance()

	return Token{Kind: TokenConstRef, Text: l.src[start:l.pos], Pos: pos}, nil
}

// lexName scans [a-z][a-z0-9_]* and returns the matched text.
func (l *lexer) lexName() string {
	start := l.pos

	l.advance()

	for !l.eof() && isNameContinue(l.peek()) {
		l.advance()
	}

	return l.src[start:l.pos]
}

// Helper methods

func (l *lexer) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])

	return r
}

func (l *lexer) peekN(n int) string {
	if l.pos+n > len(l.src) {
		return l.src[l.pos:]
	}

	return l.src[l.pos : l.pos+n]
}

func (l *lexer) advance() {
	if l.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(l.src[l.pos:])

	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *lexer) advanceN(n int) {
	for range n {
		l.advance()
	}
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

func (l *lexer) skipWhitespace() {
	for !l.eof() && isWhitespace(l.peek()) {
		l.advance()
	}
}

// Character classification

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\f' || r == '\r' || r == '\n'
}

func isNameStart(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isNameContinue(r rune) bool {
	return isNameStart(r) || (r >= '0' && r <= '9') || r == '_'
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// IsName reports whether s is a valid dictionary key or constant name.
func IsName(s string) bool {
	if s == "" || s == "var" || !isNameStart(rune(s[0])) {
		return false
	}

	for _, r := range s[1:] {
		if !isNameContinue(r) {
			return false
		}
	}

	return true
}
