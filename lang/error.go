package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrorKind classifies an [Error].
type ErrorKind int

const (
	// SyntaxKind marks input that does not conform to the grammar.
	SyntaxKind ErrorKind = iota + 1

	// SemanticKind marks grammatical input that violates a language rule.
	SemanticKind
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case SyntaxKind:
		return "Syntax"
	case SemanticKind:
		return "Semantic"
	default:
		return "Unclassified"
	}
}

// Predefined errors (sentinel values). Errors derived from these via
// [Error.Msgf], [Error.With] or [Error.Wrap] match them with [errors.Is].
var (
	ErrUnexpectedChar     = NewSyntaxError("unexpected character")
	ErrUnexpectedToken    = NewSyntaxError("unexpected token")
	ErrUnexpectedEOF      = NewSyntaxError("unexpected end of input")
	ErrUnterminatedString = NewSyntaxError("unterminated string")
	ErrMalformedReference = NewSyntaxError("malformed constant reference")
	ErrInvalidNumber      = NewSyntaxError("invalid octal literal")
	ErrMaxDepthExceeded   = NewSyntaxError("maximum dictionary depth exceeded")
	ErrInputTooLarge      = NewSyntaxError("input exceeds maximum size")
	ErrDuplicateKey       = NewSemanticError("duplicate key")
	ErrDuplicateConstant  = NewSemanticError("duplicate constant")
	ErrUnknownConstant    = NewSemanticError("unknown constant")
	ErrTopLevelCount      = NewSemanticError("Configuration must contain exactly one top-level value")
	ErrInvalidNode        = NewSemanticError("invalid syntax node")
	ErrUnrepresentable    = NewSemanticError("value cannot be written as source")
	ErrReadInput          = NewError("failed to read input")
)

// contextSpan is the number of runes shown on either side of a syntax error.
const contextSpan = 40

// Error represents a classified error with optional structured logging
// attributes. It implements both error and slog.LogValuer interfaces.
//
// Syntax errors may carry the [Position] of the offending input and a
// rendered context snippet.
type Error struct {
	kind    ErrorKind
	msg     string
	err     error       // Wrapped error (for errors.Unwrap)
	base    *Error      // Sentinel this error was derived from
	pos     Position    // Zero unless attached with at
	context string      // Rendered source snippet
	attrs   []slog.Attr // Attributes for structured logging
}

// NewError creates a new unclassified Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// NewSyntaxError creates a new syntax Error with a message.
func NewSyntaxError(msg string) *Error {
	return &Error{kind: SyntaxKind, msg: msg}
}

// NewSemanticError creates a new semantic Error with a message.
func NewSemanticError(msg string) *Error {
	return &Error{kind: SemanticKind, msg: msg}
}

// WrapError wraps a standard error into an Error of the given kind.
// An error that already is an Error is returned unchanged.
func WrapError(kind ErrorKind, err error) *Error {
	if err == nil {
		return nil
	}

	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{kind: kind, err: err}
}

// Kind returns the classification of e.
func (e *Error) Kind() ErrorKind { return e.kind }

// Position returns the location of a syntax error, if known.
func (e *Error) Position() (Position, bool) { return e.pos, e.pos.IsValid() }

// Context returns the rendered source snippet of a syntax error.
func (e *Error) Context() string { return e.context }

// Detail returns the description of e without location or context.
func (e *Error) Detail() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Error implements the error interface.
//
// A syntax error with a known position renders as
// "Syntax error at line L, column C:\n<context>".
func (e *Error) Error() string {
	if e.kind == SyntaxKind && e.pos.IsValid() {
		return "Syntax error at line " + strconv.Itoa(e.pos.Line) +
			", column " + strconv.Itoa(e.pos.Column) + ":\n" + e.context
	}

	return e.Detail()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || (e.base != nil && e.base == t)
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+5)

	attrs = append(attrs, slog.String("kind", e.kind.String()))

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	if e.pos.IsValid() {
		attrs = append(attrs,
			slog.Int("line", e.pos.Line),
			slog.Int("column", e.pos.Column),
		)
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// derive copies e, remembering the sentinel it originates from.
func (e *Error) derive() *Error {
	d := *e
	if d.base == nil {
		d.base = e
	}

	return &d
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	d := e.derive()
	d.err = err

	return d
}

// Msgf creates a new Error with the message replaced by a formatted one.
func (e *Error) Msgf(format string, args ...any) *Error {
	d := e.derive()
	d.msg = fmt.Sprintf(format, args...)

	return d
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	d := e.derive()
	d.attrs = newAttrs

	return d
}

// at attaches a source position and renders the surrounding context.
func (e *Error) at(pos Position, source string) *Error {
	d := e.derive()
	d.pos = pos
	d.context = renderContext(source, pos.Offset)

	return d
}

// renderContext returns the line around offset with a caret under it,
// limited to contextSpan runes on either side.
func renderContext(source string, offset int) string {
	offset = min(max(offset, 0), len(source))

	runes := []rune(source)
	pos := utf8.RuneCountInString(source[:offset])
	start := max(pos-contextSpan, 0)
	end := min(pos+contextSpan, len(runes))

	before := string(runes[start:pos])
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}

	after := string(runes[pos:end])
	if i := strings.IndexByte(after, '\n'); i >= 0 {
		after = after[:i]
	}

	pad := utf8.RuneCountInString(expandTabs(before, 8))

	return before + after + "\n" + strings.Repeat(" ", pad) + "^\n"
}

// expandTabs replaces each tab with spaces up to the next tab stop.
func expandTabs(s string, size int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var sb strings.Builder

	col := 0

	for _, r := range s {
		if r == '\t' {
			n := size - col%size
			sb.WriteString(strings.Repeat(" ", n))
			col += n

			continue
		}

		sb.WriteRune(r)
		col++
	}

	return sb.String()
}
