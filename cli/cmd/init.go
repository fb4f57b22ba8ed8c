package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/ucfg/lang"
	"github.com/ardnew/ucfg/log"
	"github.com/ardnew/ucfg/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ErrWriteConfig.Wrap(os.ErrInvalid)
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok || confPath == "" {
		return ErrWriteConfig.Wrap(os.ErrInvalid).
			With(slog.String("var", ConfigIdentifier))
	}

	// Check if file exists and force not set
	if _, err := os.Stat(confPath); err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	var buf bytes.Buffer

	err := lang.NewDictValue(i.buildDict(ctx)).Format(ctx, &buf, defaultConfigIndent)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(confPath), 0o700); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	if err := os.WriteFile(confPath, buf.Bytes(), 0o600); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// buildDict collects the current flag values into a dictionary keyed by
// flag name, with hyphens replaced by underscores.
func (i *Init) buildDict(ctx context.Context) *lang.Dict {
	d := lang.NewDict()

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return d
	}

	prefixIgnore := []string{"help", "version", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		key := strings.ReplaceAll(flag.Name, "-", "_")
		if !lang.IsName(key) {
			continue
		}

		if v, ok := flagValue(ktx.FlagValue(flag)); ok {
			d.Set(key, v)
		}
	}

	return d
}

// flagValue converts a flag value to a ucfg value. Values that ucfg cannot
// represent, such as negative numbers and empty or bracketed text, are
// skipped.
func flagValue(val any) (lang.Value, bool) {
	if val == nil {
		return lang.Value{}, false
	}

	rv := reflect.ValueOf(val)

	switch rv.Kind() {
	case reflect.Bool:
		return lang.NewText(strconv.FormatBool(rv.Bool())), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return lang.Value{}, false
		}

		return lang.NewInteger(rv.Int()), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return lang.NewInteger(int64(rv.Uint())), true

	case reflect.String:
		s := rv.String()
		if s == "" || strings.Contains(s, "]]") || strings.HasSuffix(s, "]") {
			return lang.Value{}, false
		}

		return lang.NewText(s), true

	default:
		return lang.Value{}, false
	}
}
