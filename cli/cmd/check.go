package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/ucfg/log"
)

// Check validates a ucfg source without writing any output.
type Check struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	d, err := translateSource(ctx, c.Source)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "source is valid",
		slog.String("source", c.Source),
		slog.Int("keys", d.Len()),
	)

	return nil
}
