package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/ucfg/lang"
)

// initContext parses args against a small flag set and returns a context
// for running Init that writes to confPath.
func initContext(t *testing.T, confPath string, args ...string) context.Context {
	t.Helper()

	var cli struct {
		LogLevel string `default:"warn" help:"Log level"`
		MaxDepth int    `default:"100"  help:"Depth"`
		Offset   int    `default:"-1"   help:"Negative value"`
		Verbose  bool   `help:"Enable verbose output"`
		Empty    string `help:"Empty value"`
	}

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
	require.NoError(t, err)

	ktx, err := parser.Parse(args)
	require.NoError(t, err)

	return WithContext(context.Background(), ktx)
}

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create_new_config"},
		{name: "overwrite_existing_with_force", force: true, exists: true},
		{name: "fail_without_force", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "nested", "config")

			if tt.exists {
				require.NoError(t, os.MkdirAll(filepath.Dir(confPath), 0o700))
				require.NoError(t, os.WriteFile(confPath, []byte("existing content"), 0o644))
			}

			ctx := initContext(t, confPath, "--verbose")

			err := (&Init{Force: tt.force}).Run(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrWriteConfig)

				return
			}

			require.NoError(t, err)

			content, err := os.ReadFile(confPath)
			require.NoError(t, err)

			v, err := lang.ParseString(ctx, string(content))
			require.NoError(t, err, "generated config is not valid ucfg:\n%s", content)
			assert.True(t, v.IsDict(), "generated config is a %s", v.Kind)
		})
	}
}

// TestInitBuildDict tests that buildDict converts the current flag values.
func TestInitBuildDict(t *testing.T) {
	t.Parallel()

	ctx := initContext(t, "", "--log-level=debug", "--verbose")

	d := (&Init{}).buildDict(ctx)

	want := lang.NewDict()
	want.Set("log_level", lang.NewText("debug"))
	want.Set("max_depth", lang.NewInteger(100))
	want.Set("verbose", lang.NewText("true"))

	assert.True(t, d.Equal(want),
		"buildDict() = %s, want %s", lang.NewDictValue(d), lang.NewDictValue(want))
}

// TestInitFlagValue tests the flagValue conversion of each supported kind.
func TestInitFlagValue(t *testing.T) {
	t.Parallel()

	type named string

	tests := []struct {
		name    string
		value   any
		want    lang.Value
		wantNil bool
	}{
		{name: "bool_true", value: true, want: lang.NewText("true")},
		{name: "bool_false", value: false, want: lang.NewText("false")},
		{name: "string_value", value: "test", want: lang.NewText("test")},
		{name: "named_string", value: named("info"), want: lang.NewText("info")},
		{name: "int_value", value: 42, want: lang.NewInteger(42)},
		{name: "uint_value", value: uint8(7), want: lang.NewInteger(7)},
		{name: "empty_string", value: "", wantNil: true},
		{name: "bracketed_string", value: "a]]b", wantNil: true},
		{name: "negative_int", value: -1, wantNil: true},
		{name: "float_value", value: 3.14, wantNil: true},
		{name: "string_slice", value: []string{"a"}, wantNil: true},
		{name: "nil", value: nil, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := flagValue(tt.value)
			require.Equal(t, !tt.wantNil, ok, "flagValue(%v) ok", tt.value)

			if ok {
				assert.True(t, got.Equal(tt.want), "flagValue(%v) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

// TestInitWithoutKongContext tests init outside of a parsed command line.
func TestInitWithoutKongContext(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, (&Init{}).Run(context.Background()), ErrWriteConfig)
}

// TestInitWithInvalidPath tests init with a path below a regular file.
func TestInitWithInvalidPath(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	ctx := initContext(t, filepath.Join(file, "config"))

	assert.ErrorIs(t, (&Init{}).Run(ctx), ErrWriteConfig)
}

// TestInitFormatOutput tests that init generates indented output.
func TestInitFormatOutput(t *testing.T) {
	t.Parallel()

	confPath := filepath.Join(t.TempDir(), "config")
	ctx := initContext(t, confPath)

	require.NoError(t, (&Init{}).Run(ctx))

	content, err := os.ReadFile(confPath)
	require.NoError(t, err)
	assert.Equal(t,
		"@{\n  log_level = [[warn]];\n  max_depth = 0o144;\n  verbose = [[false]];\n}\n",
		string(content))
}
