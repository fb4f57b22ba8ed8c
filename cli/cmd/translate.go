package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/ucfg/log"
	"github.com/ardnew/ucfg/translate"
)

// Translate converts a ucfg source into a TOML, YAML or JSON file.
type Translate struct {
	Output string `help:"Output file, or '-' for stdout."                        required:"" short:"o"`
	Format string `default:""  enum:",toml,yaml,yml,json" help:"Output format (default: inferred from the output file extension, else toml)." short:"f"`
	Indent int    `default:"2" help:"Indent width for output (0 writes compact JSON)." short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the translate command.
//
// The output file is written only after the whole source has been
// translated and encoded, so a failure leaves no file behind.
func (t *Translate) Run(ctx context.Context) error {
	f, err := t.format()
	if err != nil {
		return err
	}

	d, err := translateSource(ctx, t.Source)
	if err != nil {
		return err
	}

	if t.Output == stdinSource {
		if err := translate.Encode(ctx, outputFrom(ctx), d, f, t.Indent); err != nil {
			return ErrWriteOutput.Wrap(err).With(slog.String("format", f.String()))
		}

		return nil
	}

	if err := translate.WriteFile(ctx, t.Output, d, f, t.Indent); err != nil {
		return err
	}

	log.InfoContext(ctx, "translated",
		slog.String("source", t.Source),
		slog.String("output", t.Output),
		slog.String("format", f.String()),
		slog.Int("keys", d.Len()),
	)

	return nil
}

func (t *Translate) format() (translate.Format, error) {
	if t.Format == "" {
		return translate.FormatFromPath(t.Output), nil
	}

	return translate.ParseFormat(t.Format)
}
