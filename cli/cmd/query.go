package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/expr-lang/expr"
	jsoniter "github.com/json-iterator/go"

	"github.com/ardnew/ucfg/log"
)

// Query evaluates an expression against the translated input.
//
// Every top-level key is a variable of the expression, and nested keys are
// reached with member access:
//
//	ucfg query 'server.port + 1' app.ucfg
type Query struct {
	Expr string `arg:"" help:"Expression to evaluate (expr-lang syntax)." name:"expr"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) error {
	d, err := translateSource(ctx, q.Source)
	if err != nil {
		return err
	}

	env := d.ToMap()

	program, err := expr.Compile(q.Expr, expr.Env(env))
	if err != nil {
		return ErrQuery.Wrap(err).With(slog.String("expr", q.Expr))
	}

	log.TraceContext(ctx, "query compiled", slog.String("expr", q.Expr))

	result, err := expr.Run(program, env)
	if err != nil {
		return ErrQuery.Wrap(err).With(slog.String("expr", q.Expr))
	}

	return writeResult(outputFrom(ctx), result)
}

// writeResult prints scalars verbatim and everything else as JSON.
func writeResult(w io.Writer, result any) error {
	var err error

	switch v := result.(type) {
	case string, bool, nil, int, int64, float64:
		_, err = fmt.Fprintln(w, v)

	default:
		var b []byte

		b, err = jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
		if err == nil {
			_, err = fmt.Fprintf(w, "%s\n", b)
		}
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
