package translate

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"

	"github.com/ardnew/ucfg/lang"
)

// DefaultIndent is the indent width used when none is given.
const DefaultIndent = 2

// Encode writes d to w in format f.
//
// Integers are written in decimal. TOML tables are written with sorted
// keys; YAML and JSON keep the source order of every dictionary. A
// negative indent selects [DefaultIndent]. An indent of zero writes
// compact JSON and unindented TOML tables; YAML block style always needs
// an indent, so zero selects [DefaultIndent] there. Nothing is written
// to w if encoding fails.
func Encode(ctx context.Context, w io.Writer, d *lang.Dict, f Format, indent int) error {
	b, err := Marshal(ctx, d, f, indent)
	if err != nil {
		return err
	}

	if _, err := w.Write(b); err != nil {
		return ErrEncode.Wrap(err).With(slog.String("format", f.String()))
	}

	return nil
}

// Marshal returns the encoding of d in format f. See [Encode].
func Marshal(ctx context.Context, d *lang.Dict, f Format, indent int) ([]byte, error) {
	if indent < 0 {
		indent = DefaultIndent
	}

	var (
		b   []byte
		err error
	)

	switch f {
	case FormatTOML:
		b, err = marshalTOML(d, indent)
	case FormatYAML:
		b, err = marshalYAML(ctx, d, indent)
	case FormatJSON:
		b, err = marshalJSON(d, indent)
	default:
		return nil, ErrUnknownFormat.Msgf("unknown output format %d", int(f))
	}

	if err != nil {
		return nil, ErrEncode.Wrap(err).With(slog.String("format", f.String()))
	}

	return b, nil
}

func marshalTOML(d *lang.Dict, indent int) ([]byte, error) {
	var buf bytes.Buffer

	enc := toml.NewEncoder(&buf).
		SetIndentSymbol(strings.Repeat(" ", indent)).
		SetIndentTables(true)

	if err := enc.Encode(d.ToMap()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func marshalYAML(ctx context.Context, d *lang.Dict, indent int) ([]byte, error) {
	if indent == 0 {
		indent = DefaultIndent
	}

	return yaml.MarshalContext(ctx, mapSlice(d), yaml.Indent(indent))
}

// mapSlice converts d into an ordered YAML mapping.
func mapSlice(d *lang.Dict) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, d.Len())

	for k, v := range d.All() {
		var item any

		switch v.Kind {
		case lang.KindDict:
			item = mapSlice(v.Dict)
		default:
			item = v.Native()
		}

		ms = append(ms, yaml.MapItem{Key: k, Value: item})
	}

	return ms
}

func marshalJSON(d *lang.Dict, indent int) ([]byte, error) {
	var buf bytes.Buffer

	api := jsoniter.Config{IndentionStep: indent}.Froze()
	stream := jsoniter.NewStream(api, &buf, 4096)

	writeJSONDict(stream, d)
	stream.WriteRaw("\n")

	if err := stream.Flush(); err != nil {
		return nil, err
	}

	if stream.Error != nil {
		return nil, stream.Error
	}

	return buf.Bytes(), nil
}

// writeJSONDict writes d as a JSON object in insertion order.
func writeJSONDict(stream *jsoniter.Stream, d *lang.Dict) {
	if d.Len() == 0 {
		stream.WriteEmptyObject()

		return
	}

	stream.WriteObjectStart()

	first := true

	for k, v := range d.All() {
		if !first {
			stream.WriteMore()
		}

		first = false

		stream.WriteObjectField(k)

		switch v.Kind {
		case lang.KindInteger:
			stream.WriteInt64(v.Integer)
		case lang.KindText:
			stream.WriteString(v.Text)
		case lang.KindDict:
			writeJSONDict(stream, v.Dict)
		default:
			stream.WriteNil()
		}
	}

	stream.WriteObjectEnd()
}
