package lang

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/sahilm/fuzzy"
)

// Evaluate resolves doc into a [Value].
//
// Declarations are bound in source order into a constant table private
// to this call. Each reference is replaced with a copy of the bound
// value, so no two positions of the result share storage.
// Failures are semantic errors, except malformed literals in a hand-built
// Document, which are reported as they would be by [Parse].
func Evaluate(ctx context.Context, doc *Document, opts ...Option) (Value, error) {
	o := makeOptions(opts...)

	if doc == nil || doc.Value == nil {
		return Value{}, ErrTopLevelCount
	}

	e := &evaluator{
		source: doc.source,
		consts: make(map[string]Value, len(doc.Decls)),
		names:  make([]string, 0, len(doc.Decls)),
	}

	for decl := range doc.Constants() {
		if err := e.declare(decl); err != nil {
			return Value{}, WrapError(SemanticKind, err)
		}

		o.logger.TraceContext(ctx, "constant bound",
			slog.String("name", decl.Name),
			slog.String("kind", e.consts[decl.Name].Kind.String()),
		)
	}

	v, err := e.eval(doc.Value)
	if err != nil {
		return Value{}, WrapError(SemanticKind, err)
	}

	o.logger.TraceContext(ctx, "evaluation complete",
		slog.String("kind", v.Kind.String()))

	return v, nil
}

// evaluator holds the constant table for a single evaluation.
type evaluator struct {
	source string
	consts map[string]Value
	names  []string // declaration order, for suggestions
}

func (e *evaluator) declare(decl *ConstDecl) error {
	if _, ok := e.consts[decl.Name]; ok {
		return ErrDuplicateConstant.
			Msgf("Constant '%s' already defined", decl.Name).
			With(positionAttrs(decl.Pos)...)
	}

	v, err := e.eval(decl.Value)
	if err != nil {
		return err
	}

	e.consts[decl.Name] = v
	e.names = append(e.names, decl.Name)

	return nil
}

func (e *evaluator) eval(n Node) (Value, error) {
	switch n := n.(type) {
	case *NumberLit:
		return e.evalNumber(n)

	case *StringLit:
		return NewText(n.Body()), nil

	case *ConstRef:
		return e.evalRef(n)

	case *DictLit:
		return e.evalDict(n)

	default:
		return Value{}, ErrInvalidNode
	}
}

func (e *evaluator) evalNumber(n *NumberLit) (Value, error) {
	if len(n.Literal) < 3 {
		return Value{}, ErrInvalidNumber.at(n.Pos, e.source)
	}

	i, err := strconv.ParseInt(n.Literal[2:], 8, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}

		return Value{}, ErrInvalidNumber.Wrap(err).
			With(slog.String("literal", n.Literal)).
			at(n.Pos, e.source)
	}

	return NewInteger(i), nil
}

func (e *evaluator) evalRef(n *ConstRef) (Value, error) {
	name := n.Name()

	v, ok := e.consts[name]
	if !ok {
		msg := "Unknown constant '" + name + "'"
		if hint := e.suggest(name); hint != "" {
			msg += " (did you mean '" + hint + "'?)"
		}

		return Value{}, ErrUnknownConstant.
			Msgf("%s", msg).
			With(positionAttrs(n.Pos)...)
	}

	return v.Clone(), nil
}

func (e *evaluator) evalDict(n *DictLit) (Value, error) {
	d := NewDict()

	for _, pair := range n.Pairs {
		v, err := e.eval(pair.Value)
		if err != nil {
			return Value{}, err
		}

		if !d.Set(pair.Key, v) {
			return Value{}, ErrDuplicateKey.
				Msgf("Duplicate key '%s' in dictionary", pair.Key).
				With(positionAttrs(pair.Pos)...)
		}
	}

	return NewDictValue(d), nil
}

// suggest returns the declared name closest to name, if any.
func (e *evaluator) suggest(name string) string {
	matches := fuzzy.Find(name, e.names)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}

func positionAttrs(pos Position) []slog.Attr {
	return []slog.Attr{
		slog.Int("line", pos.Line),
		slog.Int("column", pos.Column),
	}
}
