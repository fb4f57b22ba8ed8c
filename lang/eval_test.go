package lang

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) Value {
	t.Helper()

	v, err := ParseString(context.Background(), src)
	require.NoError(t, err, "ParseString(%q)", src)

	return v
}

func mustGet(t *testing.T, d *Dict, path ...string) Value {
	t.Helper()

	var v Value

	for i, key := range path {
		var ok bool

		v, ok = d.Get(key)
		require.True(t, ok, "key %q not found", strings.Join(path[:i+1], "."))

		if i < len(path)-1 {
			require.True(t, v.IsDict(), "key %q is %v, want dictionary", key, v.Kind)

			d = v.Dict
		}
	}

	return v
}

func TestEvaluate_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"octal number", "0o10", NewInteger(8)},
		{"zero", "0o0", NewInteger(0)},
		{"leading zeros", "0o0017", NewInteger(15)},
		{"upper case prefix", "0O777", NewInteger(511)},
		{"largest integer", "0o777777777777777777777", NewInteger(1<<63 - 1)},
		{"string", "[[hello]]", NewText("hello")},
		{"empty string", "[[]]", NewText("")},
		{"verbatim content", "[[  a $b$ @{ c = 0o1; } ]]", NewText("  a $b$ @{ c = 0o1; } ")},
		{"single bracket inside", "[[a]b[c]]", NewText("a]b[c")},
		{"multiline string", "[[line1\nline2]]", NewText("line1\nline2")},
		{"constant at top level", "var x [[v]] $x$", NewText("v")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.input)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestEvaluate_Dictionaries(t *testing.T) {
	v := mustParse(t, "@{ key = 0o7; }")
	require.True(t, v.IsDict(), "got %v, want dictionary", v.Kind)
	assert.Equal(t, int64(7), mustGet(t, v.Dict, "key").Integer)

	v = mustParse(t, "@{ outer = @{ inner = 0o1; }; }")
	assert.Equal(t, int64(1), mustGet(t, v.Dict, "outer", "inner").Integer)

	v = mustParse(t, "@{}")
	require.True(t, v.IsDict())
	assert.Zero(t, v.Dict.Len())
}

func TestEvaluate_KeyOrder(t *testing.T) {
	v := mustParse(t, "@{ zeta = 0o1; alpha = 0o2; mid = 0o3; }")

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, v.Dict.Keys())
}

func TestEvaluate_Constants(t *testing.T) {
	src := `var x 0o10
var name [[server]]
var base @{ host = [[localhost]]; port = 0o17620; }
var alias $x$
@{
  value = $x$;
  copy = $alias$;
  title = $name$;
  primary = $base$;
  backup = $base$;
}
`

	v := mustParse(t, src)

	assert.Equal(t, int64(8), mustGet(t, v.Dict, "value").Integer)
	assert.Equal(t, int64(8), mustGet(t, v.Dict, "copy").Integer)
	assert.Equal(t, "server", mustGet(t, v.Dict, "title").Text)
	assert.Equal(t, int64(8080), mustGet(t, v.Dict, "primary", "port").Integer)

	primary := mustGet(t, v.Dict, "primary")
	backup := mustGet(t, v.Dict, "backup")

	require.True(t, primary.Equal(backup), "primary %v and backup %v differ", primary, backup)
	require.NotSame(t, primary.Dict, backup.Dict, "substituted dictionaries share storage")

	primary.Dict.Set("extra", NewInteger(1))

	_, ok := backup.Dict.Get("extra")
	assert.False(t, ok, "modifying one substitution changed another")
}

func TestEvaluate_ConstantTableIsPerCall(t *testing.T) {
	mustParse(t, "var x 0o1 @{ a = $x$; }")

	_, err := ParseString(context.Background(), "@{ a = $x$; }")
	assert.ErrorIs(t, err, ErrUnknownConstant)
}

func TestEvaluate_SemanticErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		msg   string
	}{
		{
			name:  "duplicate key",
			input: "@{ key = 0o1; key = 0o2; }",
			want:  ErrDuplicateKey,
			msg:   "Duplicate key 'key' in dictionary",
		},
		{
			name:  "duplicate nested key",
			input: "@{ a = @{ b = 0o1; b = 0o1; }; }",
			want:  ErrDuplicateKey,
			msg:   "Duplicate key 'b' in dictionary",
		},
		{
			name:  "duplicate constant",
			input: "var x 0o1\nvar x 0o2\n@{}",
			want:  ErrDuplicateConstant,
			msg:   "Constant 'x' already defined",
		},
		{
			name:  "unknown constant",
			input: "@{ value = $x$; }",
			want:  ErrUnknownConstant,
			msg:   "Unknown constant 'x'",
		},
		{
			name:  "use before declaration",
			input: "var a $b$\nvar b 0o1\n@{}",
			want:  ErrUnknownConstant,
			msg:   "Unknown constant 'b'",
		},
		{
			name:  "self reference",
			input: "var a $a$\n@{}",
			want:  ErrUnknownConstant,
			msg:   "Unknown constant 'a'",
		},
		{
			name:  "suggestion",
			input: "var port 0o1\n@{ p = $prt$; }",
			want:  ErrUnknownConstant,
			msg:   "Unknown constant 'prt' (did you mean 'port'?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.want)

			var e *Error
			require.True(t, errors.As(err, &e))
			require.Equal(t, SemanticKind, e.Kind())

			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestEvaluate_SameKeyInSeparateDictionaries(t *testing.T) {
	v := mustParse(t, "@{ a = @{ k = 0o1; }; b = @{ k = 0o2; }; k = 0o3; }")

	assert.Equal(t, int64(2), mustGet(t, v.Dict, "b", "k").Integer)
}

func TestEvaluate_HandBuiltDocument(t *testing.T) {
	ctx := context.Background()

	_, err := Evaluate(ctx, &Document{})
	assert.ErrorIs(t, err, ErrTopLevelCount, "empty document")

	_, err = Evaluate(ctx, nil)
	assert.ErrorIs(t, err, ErrTopLevelCount, "nil document")

	_, err = Evaluate(ctx, &Document{Value: &DictLit{Pairs: []*Pair{{Key: "a", Value: nil}}}})
	assert.ErrorIs(t, err, ErrInvalidNode, "invalid node")

	_, err = Evaluate(ctx, &Document{Value: &NumberLit{Literal: "0o9"}})
	assert.ErrorIs(t, err, ErrInvalidNumber, "invalid literal")

	doc := &Document{
		Decls: []*ConstDecl{{Name: "n", Value: &NumberLit{Literal: "0o12"}}},
		Value: &ConstRef{Literal: "$n$"},
	}

	v, err := Evaluate(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v.Integer)
}

func TestParseReader(t *testing.T) {
	ctx := context.Background()

	v, err := ParseReader(ctx, strings.NewReader("@{ key = 0o7; }"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), mustGet(t, v.Dict, "key").Integer)

	_, err = ParseReader(ctx, strings.NewReader(strings.Repeat(" ", 64)+"0o1"),
		WithMaxSize(16))
	assert.ErrorIs(t, err, ErrInputTooLarge)

	_, err = ParseReader(ctx, failingReader{})
	assert.ErrorIs(t, err, ErrReadInput)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device unavailable")
}
