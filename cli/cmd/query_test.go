package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryRun(t *testing.T) {
	const input = `var host [[localhost]]
@{
  key = 0o7;
  outer = @{ inner = 0o1; };
  server = @{ host = $host$; };
}`

	tests := []struct {
		expr string
		want string
	}{
		{"key * 2", "14\n"},
		{"outer.inner", "1\n"},
		{"server.host", "localhost\n"},
		{`server.host == "localhost"`, "true\n"},
		{"outer", "{\n  \"inner\": 1\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			ctx, out := testContext(input)

			require.NoError(t, (&Query{Expr: tt.expr, Source: "-"}).Run(ctx))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestQueryRunErrors(t *testing.T) {
	for _, expr := range []string{"key +", "undefined_name", "key.foo"} {
		t.Run(expr, func(t *testing.T) {
			ctx, out := testContext("@{ key = 0o7; zero = 0o0; }")

			err := (&Query{Expr: expr, Source: "-"}).Run(ctx)
			assert.ErrorIs(t, err, ErrQuery)
			assert.Zero(t, out.Len(), "output written on failure: %q", out.String())
		})
	}
}
