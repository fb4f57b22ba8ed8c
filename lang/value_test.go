package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict_Set(t *testing.T) {
	d := NewDict()

	require.True(t, d.Set("a", NewInteger(1)), "first Set")
	require.False(t, d.Set("a", NewInteger(2)), "duplicate Set")

	v, ok := d.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Integer)
	assert.Equal(t, 1, d.Len())
}

func TestDict_All(t *testing.T) {
	d := NewDict()
	d.Set("b", NewInteger(1))
	d.Set("a", NewText("x"))
	d.Set("c", NewDictValue(nil))

	var keys []string
	for k := range d.All() {
		keys = append(keys, k)

		if k == "a" {
			break
		}
	}

	assert.Equal(t, []string{"b", "a"}, keys)

	var nilDict *Dict
	for range nilDict.All() {
		require.Fail(t, "nil dictionary yielded an entry")
	}
}

func TestValue_Clone(t *testing.T) {
	inner := NewDict()
	inner.Set("x", NewInteger(1))

	outer := NewDict()
	outer.Set("inner", NewDictValue(inner))

	v := NewDictValue(outer)
	c := v.Clone()

	require.True(t, c.Equal(v), "clone differs from original")

	ci, _ := c.Dict.Get("inner")
	ci.Dict.Set("y", NewInteger(2))

	assert.Equal(t, 1, inner.Len(), "modifying a clone changed the original")
}

func TestValue_Equal(t *testing.T) {
	a := NewDict()
	a.Set("x", NewInteger(1))
	a.Set("y", NewInteger(2))

	b := NewDict()
	b.Set("y", NewInteger(2))
	b.Set("x", NewInteger(1))

	tests := []struct {
		name string
		v, w Value
		want bool
	}{
		{"same integer", NewInteger(1), NewInteger(1), true},
		{"different integer", NewInteger(1), NewInteger(2), false},
		{"integer and text", NewInteger(1), NewText("1"), false},
		{"same text", NewText("a"), NewText("a"), true},
		{"empty dictionaries", NewDictValue(nil), NewDictValue(NewDict()), true},
		{"different order", NewDictValue(a), NewDictValue(b), false},
		{"same dictionary", NewDictValue(a), NewDictValue(a.Clone()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Equal(tt.w))
		})
	}
}

func TestValue_Native(t *testing.T) {
	v := mustParse(t, "@{ n = 0o10; s = [[x]]; d = @{ e = 0o1; }; }")

	assert.Equal(t, map[string]any{
		"n": int64(8),
		"s": "x",
		"d": map[string]any{"e": int64(1)},
	}, v.Native())

	assert.Nil(t, (Value{}).Native())
}
