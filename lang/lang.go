package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"
)

// ParseString parses and evaluates source, returning the resolved value.
func ParseString(ctx context.Context, source string, opts ...Option) (Value, error) {
	doc, err := Parse(ctx, source, opts...)
	if err != nil {
		return Value{}, err
	}

	return Evaluate(ctx, doc, opts...)
}

// ParseReader reads all of r and then behaves like [ParseString].
//
// When a maximum size is configured with [WithMaxSize], at most one byte
// past the limit is read so that oversized input is rejected without
// buffering all of it.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (Value, error) {
	src, err := readSource(r, makeOptions(opts...).maxSize)
	if err != nil {
		return Value{}, err
	}

	return ParseString(ctx, src, opts...)
}

func readSource(r io.Reader, maxSize int) (string, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	var src io.Reader = ra
	if maxSize > 0 {
		src = io.LimitReader(ra, int64(maxSize)+1)
	}

	b, err := io.ReadAll(src)
	if err != nil {
		return "", ErrReadInput.Wrap(err).With(slog.Int("read", len(b)))
	}

	return string(b), nil
}
