package lang

//go:generate go tool stringer --linecomment --type TokenKind --output token_string.go

import (
	"fmt"
	"strconv"
)

// TokenKind identifies the lexical class of a [Token].
type TokenKind int

const (
	TokenInvalid   TokenKind = iota // invalid
	TokenEOF                        // end of input
	TokenNumber                     // octal number
	TokenString                     // string
	TokenConstRef                   // constant reference
	TokenName                       // name
	TokenVar                        // "var"
	TokenDictOpen                   // "@{"
	TokenDictClose                  // "}"
	TokenAssign                     // "="
	TokenSemicolon                  // ";"
)

// Token is a single lexeme with its source text and starting position.
type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
}

// String returns a compact representation of the token for diagnostics.
func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("%s at %s", t.Kind, t.Pos)
	}

	return fmt.Sprintf("%s %q at %s", t.Kind, t.Text, t.Pos)
}

// startsValue reports whether a token of kind k can begin a value.
func (k TokenKind) startsValue() bool {
	switch k {
	case TokenNumber, TokenString, TokenConstRef, TokenDictOpen:
		return true
	default:
		return false
	}
}

// Position identifies a location in source text.
// Line and Column are 1-based and Column counts runes.
type Position struct {
	Offset int // byte offset
	Line   int
	Column int
}

// IsValid reports whether the position refers to a location in source.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}
