package translate

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/ucfg/lang"
)

// ErrNotDictionary reports a top-level value that is not a dictionary.
var ErrNotDictionary = lang.NewSemanticError(
	"Top-level value must be a dictionary (@{ ... })",
)

// Translate parses and evaluates src and returns its top-level dictionary.
func Translate(ctx context.Context, src string, opts ...lang.Option) (*lang.Dict, error) {
	v, err := lang.ParseString(ctx, src, opts...)
	if err != nil {
		return nil, err
	}

	return FromValue(v)
}

// TranslateReader is like [Translate] but reads the source from r.
func TranslateReader(ctx context.Context, r io.Reader, opts ...lang.Option) (*lang.Dict, error) {
	v, err := lang.ParseReader(ctx, r, opts...)
	if err != nil {
		return nil, err
	}

	return FromValue(v)
}

// FromValue returns the dictionary held by v, or [ErrNotDictionary].
func FromValue(v lang.Value) (*lang.Dict, error) {
	if !v.IsDict() {
		return nil, ErrNotDictionary.With(slog.String("kind", v.Kind.String()))
	}

	return v.Dict, nil
}
