package cli

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/ucfg/lang"
	"github.com/ardnew/ucfg/translate"
)

// resolve returns a [kong.ConfigurationLoader] that parses config files
// written in ucfg itself.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config")
//
// The top-level value must be a dictionary. It is converted as follows:
//   - Each key names a flag. Flag names with hyphens (e.g., "log-level")
//     are written with underscores (e.g., "log_level").
//   - Nested dictionaries are flattened by joining keys with underscores,
//     so @{ log = @{ level = [[debug]]; }; } sets --log-level.
//   - Integers are passed to kong in decimal, text verbatim.
//
// Example config file:
//
//	@{
//	  log_level = [[debug]];
//	  log_format = [[json]];
//	  max_depth = 0o40;
//	}
//
// Command-line flags override config file values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		d, err := translate.TranslateReader(ctx, r)
		if err != nil {
			return nil, err
		}

		c := make(config)
		c.flatten("", d)

		return c, nil
	}
}

// config implements [kong.Resolver] for ucfg configs.
type config map[string]any

// flatten adds every entry of d to c, prefixing keys with prefix.
func (c config) flatten(prefix string, d *lang.Dict) {
	for key, v := range d.All() {
		switch v.Kind {
		case lang.KindDict:
			c.flatten(prefix+key+"_", v.Dict)

		case lang.KindInteger:
			// Kong requires numbers as strings for parsing
			c[prefix+key] = strconv.FormatInt(v.Integer, 10)

		case lang.KindText:
			c[prefix+key] = v.Text
		}
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but ucfg names cannot.
	// Try both forms.
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
