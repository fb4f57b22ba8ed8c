package lang

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Document(t *testing.T) {
	src := "var x   0o10\nvar s [[a b]]\n@{ a = $x$; b = @{ c = $s$; d = @{}; }; }"

	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{
			name:   "compact",
			indent: 0,
			want: "var x 0o10\nvar s [[a b]]\n" +
				"@{ a = $x$; b = @{ c = $s$; d = @{}; }; }\n",
		},
		{
			name:   "indented",
			indent: 2,
			want: "var x 0o10\nvar s [[a b]]\n\n" +
				"@{\n" +
				"  a = $x$;\n" +
				"  b = @{\n" +
				"    c = $s$;\n" +
				"    d = @{};\n" +
				"  };\n" +
				"}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(context.Background(), src)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, doc.Format(context.Background(), &buf, tt.indent))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	tests := []string{
		"0o10",
		"[[text]]",
		"@{}",
		"@{ key = 0o7; }",
		"var a 0o1 var b @{ x = $a$; } @{ y = $b$; z = [[multi\nline]]; }",
		"@{ outer = @{ inner = @{ deep = 0o777; }; }; }",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			ctx := context.Background()

			want, err := ParseString(ctx, src)
			require.NoError(t, err)

			for _, indent := range []int{0, 4} {
				doc, err := Parse(ctx, src)
				require.NoError(t, err)

				var buf bytes.Buffer
				require.NoError(t, doc.Format(ctx, &buf, indent))

				got, err := ParseString(ctx, buf.String())
				require.NoError(t, err, "reparse of %q", buf.String())

				assert.True(t, got.Equal(want),
					"indent %d: round trip changed value:\n%s", indent, buf.String())
			}
		})
	}
}

func TestFormat_Value(t *testing.T) {
	ctx := context.Background()

	v := mustParse(t, "var p 0o17620 @{ name = [[svc]]; port = $p$; tags = @{}; }")

	var buf bytes.Buffer
	require.NoError(t, v.Format(ctx, &buf, 0))
	assert.Equal(t, "@{ name = [[svc]]; port = 0o17620; tags = @{}; }\n", buf.String())

	again, err := ParseString(ctx, buf.String())
	require.NoError(t, err)
	assert.True(t, again.Equal(v), "formatted value does not evaluate to the original")
}

func TestFormat_Unrepresentable(t *testing.T) {
	bad := NewDict()
	bad.Set("Bad-Key", NewInteger(1))

	tests := []struct {
		name  string
		value Value
	}{
		{"negative integer", NewInteger(-1)},
		{"text with terminator", NewText("a]]b")},
		{"text ending in bracket", NewText("a]")},
		{"invalid key", NewDictValue(bad)},
		{"invalid value", Value{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := tt.value.Format(context.Background(), &buf, 2)
			require.Error(t, err)
			assert.True(t,
				errors.Is(err, ErrUnrepresentable) || errors.Is(err, ErrInvalidNode),
				"error = %v", err)
			assert.Zero(t, buf.Len(), "partial output written: %q", buf.String())
		})
	}
}

func TestPrint(t *testing.T) {
	doc, err := Parse(context.Background(), "var x 0o1\n@{ a = $x$; b = [[s]]; c = @{}; }")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.Print(&buf))

	out := buf.String()

	for _, want := range []string{
		"Constant: x @ 1:1\n  Number: 0o1 @ 1:7\n",
		"Value:\n  Dictionary @ 2:1\n",
		"    Key: a\n      Reference: x @ 2:8\n",
		"      String: \"s\" @ 2:17\n",
		"      Dictionary: (empty) @ 2:28\n",
	} {
		assert.Contains(t, out, want)
	}
}
