package translate

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/ardnew/ucfg/lang"
)

// WriteFile encodes d in format f and replaces the file at path with the
// result.
//
// The encoding is completed in memory before anything touches the file
// system. Missing parent directories are created and the data is written
// to a synced temporary file, which is then renamed over path. On failure
// path is left as it was and no temporary file remains.
func WriteFile(ctx context.Context, path string, d *lang.Dict, f Format, indent int) error {
	b, err := Marshal(ctx, d, f, indent)
	if err != nil {
		return err
	}

	return writeAtomic(path, b)
}

func writeAtomic(path string, b []byte) error {
	fail := func(err error) error {
		return ErrWriteOutput.Wrap(err).With(slog.String("path", path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fail(err)
	}

	if err := renameio.WriteFile(path, b, 0o644); err != nil {
		return fail(err)
	}

	return nil
}
