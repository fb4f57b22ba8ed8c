package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/ucfg/lang"
	"github.com/ardnew/ucfg/translate"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

type (
	kongContextKey struct{}
	optionsKey     struct{}
	inputKey       struct{}
	outputKey      struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, kongContextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(kongContextKey{}).(*kong.Context)

	return ktx
}

// WithOptions returns a new context.Context carrying the parse options used
// by every command, appended to any already present.
func WithOptions(ctx context.Context, opts ...lang.Option) context.Context {
	return context.WithValue(ctx, optionsKey{}, append(optionsFrom(ctx), opts...))
}

func optionsFrom(ctx context.Context) []lang.Option {
	opts, _ := ctx.Value(optionsKey{}).([]lang.Option)

	return opts[:len(opts):len(opts)]
}

// WithInput returns a new context.Context that reads the "-" source from r
// instead of os.Stdin.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// WithOutput returns a new context.Context that sends command output to w
// instead of os.Stdout.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// openSource opens the named source, or the context input for "-".
func openSource(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" || name == stdinSource {
		return io.NopCloser(inputFrom(ctx)), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, ErrReadSource.Wrap(err).With(slog.String("source", name))
	}

	return f, nil
}

// readSource returns the complete text of the named source.
func readSource(ctx context.Context, name string) (string, error) {
	r, err := openSource(ctx, name)
	if err != nil {
		return "", err
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return "", ErrReadSource.Wrap(err).With(slog.String("source", name))
	}

	return string(b), nil
}

// translateSource reads, parses and evaluates the named source and returns
// its top-level dictionary.
func translateSource(ctx context.Context, name string) (*lang.Dict, error) {
	r, err := openSource(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return translate.TranslateReader(ctx, r, optionsFrom(ctx)...)
}
