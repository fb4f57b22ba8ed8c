package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/ucfg/lang"
	"github.com/ardnew/ucfg/translate"
)

func TestTranslateRun(t *testing.T) {
	tests := []struct {
		name   string
		output string
		format string
		indent int
		want   string
	}{
		{"toml by extension", "out.toml", "", 2, "key = 7\n"},
		{"default toml", "out", "", 2, "key = 7\n"},
		{"yaml by extension", "out.yml", "", 2, "key: 7\n"},
		{"explicit json", "out.conf", "json", 2, "{\n  \"key\": 7\n}\n"},
		{"compact json", "out.json", "", 0, "{\"key\":7}\n"},
		{"negative indent", "out.json", "", -1, "{\n  \"key\": 7\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext("@{ key = 0o7; }")
			out := filepath.Join(t.TempDir(), tt.output)

			c := &Translate{Output: out, Format: tt.format, Indent: tt.indent, Source: "-"}
			require.NoError(t, c.Run(ctx))

			b, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestTranslateRunFailures(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format string
		want   error
	}{
		{"syntax", "@{ key 0o7; }", "", lang.ErrUnexpectedToken},
		{"semantic", "@{ key = 0o7; key = 0o1; }", "", lang.ErrDuplicateKey},
		{"shape", "[[text]]", "", translate.ErrNotDictionary},
		{"format", "@{}", "ini", translate.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(tt.input)
			out := filepath.Join(t.TempDir(), "out.toml")

			c := &Translate{Output: out, Format: tt.format, Indent: 2, Source: "-"}
			assert.ErrorIs(t, c.Run(ctx), tt.want)

			_, err := os.Stat(out)
			assert.ErrorIs(t, err, os.ErrNotExist, "output file exists after failure")
		})
	}
}

func TestTranslateRunStdout(t *testing.T) {
	ctx, out := testContext("@{ a = [[x]]; }")

	c := &Translate{Output: "-", Format: "json", Indent: 0, Source: "-"}
	require.NoError(t, c.Run(ctx))
	assert.Equal(t, "{\"a\":\"x\"}\n", out.String())
}

func TestCheckRun(t *testing.T) {
	ctx, out := testContext("var x 0o1\n@{ a = $x$; }")

	require.NoError(t, (&Check{Source: "-"}).Run(ctx))
	assert.Zero(t, out.Len(), "check wrote output: %q", out.String())

	ctx, _ = testContext("@{ a = $y$; }")
	assert.ErrorIs(t, (&Check{Source: "-"}).Run(ctx), lang.ErrUnknownConstant)
}
