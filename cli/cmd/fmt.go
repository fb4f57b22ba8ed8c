package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/ucfg/lang"
	"github.com/ardnew/ucfg/translate"
)

// Fmt reads a source, parses it, and prints it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical ucfg source (default)."`
	AST    AST    `cmd:""                    help:"Format as abstract syntax tree."`
	TOML   TOML   `cmd:""                    help:"Format as TOML."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
}

// Native formats input as canonical ucfg source. Constants are kept as
// declared; the source is not evaluated.
type Native struct {
	Indent int `default:"2" help:"Indent width for formatted output (0 writes one line per value)." short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the fmt native command.
func (f *Native) Run(ctx context.Context) error {
	doc, err := parseSource(ctx, f.Source)
	if err != nil {
		return err
	}

	return doc.Format(ctx, outputFrom(ctx), f.Indent)
}

// AST prints the syntax tree of the input.
type AST struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the fmt ast command.
func (a *AST) Run(ctx context.Context) error {
	doc, err := parseSource(ctx, a.Source)
	if err != nil {
		return err
	}

	return doc.Print(outputFrom(ctx))
}

// Encoding holds the arguments shared by the TOML, YAML and JSON commands.
type Encoding struct {
	Indent int `default:"2" help:"Indent width for formatted output (0 writes compact JSON)." short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// encode translates the input and prints it in format f.
func (e *Encoding) encode(ctx context.Context, f translate.Format) error {
	d, err := translateSource(ctx, e.Source)
	if err != nil {
		return err
	}

	if err := translate.Encode(ctx, outputFrom(ctx), d, f, e.Indent); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("format", f.String()))
	}

	return nil
}

// TOML prints the translated input as TOML.
type TOML struct {
	Encoding `embed:""`
}

// Run executes the fmt toml command.
func (c *TOML) Run(ctx context.Context) error { return c.encode(ctx, translate.FormatTOML) }

// YAML prints the translated input as YAML.
type YAML struct {
	Encoding `embed:""`
}

// Run executes the fmt yaml command.
func (c *YAML) Run(ctx context.Context) error { return c.encode(ctx, translate.FormatYAML) }

// JSON prints the translated input as JSON.
type JSON struct {
	Encoding `embed:""`
}

// Run executes the fmt json command.
func (c *JSON) Run(ctx context.Context) error { return c.encode(ctx, translate.FormatJSON) }

// parseSource reads and parses the named source without evaluating it.
func parseSource(ctx context.Context, name string) (*lang.Document, error) {
	src, err := readSource(ctx, name)
	if err != nil {
		return nil, err
	}

	return lang.Parse(ctx, src, optionsFrom(ctx)...)
}
