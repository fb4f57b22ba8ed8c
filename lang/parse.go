package lang

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/ucfg/log"
)

// Parse parses source text into a [Document] without evaluating it.
// All failures are syntax errors.
func Parse(ctx context.Context, source string, opts ...Option) (*Document, error) {
	o := makeOptions(opts...)

	if o.logger.Enabled(ctx, log.LevelTrace) {
		o.logger.TraceContext(ctx, "parse start",
			slog.Int("source_length", len(source)),
			slog.String("source_hash", strconv.FormatUint(xxh3.HashString(source), 36)),
		)
	}

	if o.maxSize > 0 && len(source) > o.maxSize {
		return nil, ErrInputTooLarge.With(
			slog.Int("size", len(source)),
			slog.Int("max_size", o.maxSize),
		)
	}

	p := &parser{
		lex:      newLexer(source),
		maxDepth: o.maxDepth,
	}

	doc, err := p.parseDocument()
	if err != nil {
		return nil, WrapError(SyntaxKind, err)
	}

	doc.source = source

	o.logger.TraceContext(ctx, "parse complete",
		slog.Int("const_count", len(doc.Decls)))

	return doc, nil
}

// parser holds the parser state: the lexer and one token of lookahead.
type parser struct {
	lex      *lexer
	tok      Token
	depth    int
	maxDepth int
}

// advance loads the next token into p.tok.
func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

// expect consumes the current token if it has the given kind.
func (p *parser) expect(kind TokenKind) (Token, error) {
	if p.tok.Kind != kind {
		return Token{}, p.unexpected(kind)
	}

	tok := p.tok

	return tok, p.advance()
}

// unexpected reports the current token as a syntax error.
func (p *parser) unexpected(expected ...TokenKind) *Error {
	exp := make([]string, len(expected))
	for i, kind := range expected {
		exp[i] = kind.String()
	}

	base := ErrUnexpectedToken
	found := p.tok.Kind.String()

	if p.tok.Kind == TokenEOF {
		base = ErrUnexpectedEOF
	} else {
		found += " " + strconv.Quote(p.tok.Text)
	}

	return base.
		Msgf("unexpected %s, expected %s", found, strings.Join(exp, " or ")).
		With(
			slog.String("token", p.tok.Kind.String()),
			slog.Any("expected", exp),
		).
		at(p.tok.Pos, p.lex.src)
}

// parseDocument parses: ConstDecl* Value EOF.
func (p *parser) parseDocument() (*Document, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	doc := new(Document)

	for p.tok.Kind == TokenVar {
		decl, err := p.parseConstDecl()
		if err != nil {
			return nil, err
		}

		doc.Decls = append(doc.Decls, decl)
	}

	if !p.tok.Kind.startsValue() {
		return nil, p.unexpected(TokenVar, TokenNumber, TokenString,
			TokenDictOpen, TokenConstRef)
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	doc.Value = value

	if p.tok.Kind != TokenEOF {
		return nil, p.unexpected(TokenEOF)
	}

	return doc, nil
}

// parseConstDecl parses: 'var' Name Value.
func (p *parser) parseConstDecl() (*ConstDecl, error) {
	pos := p.tok.Pos

	if _, err := p.expect(TokenVar); err != nil {
		return nil, err
	}

	name, err := p.expect(TokenName)
	if err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &ConstDecl{Pos: pos, Name: name.Text, Value: value}, nil
}

// parseValue parses: Number | String | Dict | ConstRef.
func (p *parser) parseValue() (Node, error) {
	tok := p.tok

	switch tok.Kind {
	case TokenNumber:
		return &NumberLit{Pos: tok.Pos, Literal: tok.Text}, p.advance()

	case TokenString:
		return &StringLit{Pos: tok.Pos, Literal: tok.Text}, p.advance()

	case TokenConstRef:
		return &ConstRef{Pos: tok.Pos, Literal: tok.Text}, p.advance()

	case TokenDictOpen:
		return p.parseDict()

	default:
		return nil, p.unexpected(TokenNumber, TokenString, TokenDictOpen,
			TokenConstRef)
	}
}

// parseDict parses: '@{' Pair* '}'.
func (p *parser) parseDict() (*DictLit, error) {
	pos := p.tok.Pos

	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return nil, ErrMaxDepthExceeded.
			With(slog.Int("max_depth", p.maxDepth)).
			at(pos, p.lex.src)
	}

	p.depth++
	defer func() { p.depth-- }()

	if _, err := p.expect(TokenDictOpen); err != nil {
		return nil, err
	}

	dict := &DictLit{Pos: pos}

	for p.tok.Kind == TokenName {
		pair, err := p.parsePair()
		if err != nil {
			return nil, err
		}

		dict.Pairs = append(dict.Pairs, pair)
	}

	if p.tok.Kind != TokenDictClose {
		return nil, p.unexpected(TokenName, TokenDictClose)
	}

	return dict, p.advance()
}

// parsePair parses: Name '=' Value ';'.
func (p *parser) parsePair() (*Pair, error) {
	key, err := p.expect(TokenName)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}

	return &Pair{Pos: key.Pos, Key: key.Text, Value: value}, nil
}
