package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyState is shared by both pretty handlers: the destination, its
// options and the attributes accumulated with WithAttrs and WithGroup.
type prettyState struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	group string // dotted prefix for attribute keys
	attrs []slog.Attr
}

func newPrettyState(w io.Writer, opts *slog.HandlerOptions) prettyState {
	return prettyState{opts: *opts, mu: &sync.Mutex{}, w: w}
}

func (s prettyState) enabled(level slog.Level) bool {
	threshold := slog.LevelInfo
	if s.opts.Level != nil {
		threshold = s.opts.Level.Level()
	}

	return level >= threshold
}

func (s prettyState) withAttrs(attrs []slog.Attr) prettyState {
	qualified := slices.Clip(s.attrs)
	for _, a := range attrs {
		qualified = append(qualified, flatten(s.group, a)...)
	}

	s.attrs = qualified

	return s
}

func (s prettyState) withGroup(name string) prettyState {
	if name != "" {
		s.group += name + "."
	}

	return s
}

// replace applies the configured ReplaceAttr to a built-in attribute.
func (s prettyState) replace(a slog.Attr) slog.Attr {
	if s.opts.ReplaceAttr == nil {
		return a
	}

	return s.opts.ReplaceAttr(nil, a)
}

// header returns the built-in attributes of r in output order.
func (s prettyState) header(r slog.Record) []slog.Attr {
	head := make([]slog.Attr, 0, 4)

	if !r.Time.IsZero() {
		if a := s.replace(slog.Time(slog.TimeKey, r.Time)); a.Key != "" {
			head = append(head, a)
		}
	}

	head = append(head, s.replace(slog.Any(slog.LevelKey, r.Level)))

	if s.opts.AddSource {
		if src := r.Source(); src != nil {
			head = append(head,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	return append(head, slog.String(slog.MessageKey, r.Message))
}

// body returns the handler and record attributes with groups applied.
func (s prettyState) body(r slog.Record) []slog.Attr {
	body := slices.Clone(s.attrs)

	r.Attrs(func(a slog.Attr) bool {
		body = append(body, flatten(s.group, a)...)

		return true
	})

	return body
}

func (s prettyState) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.w.Write(buf.Bytes())

	return err
}

// flatten expands group-valued attributes into dotted keys and resolves
// slog.LogValuer values.
func flatten(prefix string, a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		return []slog.Attr{{Key: prefix + a.Key, Value: a.Value}}
	}

	if a.Key != "" {
		prefix += a.Key + "."
	}

	var out []slog.Attr
	for _, ga := range a.Value.Group() {
		out = append(out, flatten(prefix, ga)...)
	}

	return out
}

// levelColor returns the color used for a level name.
func levelColor(name string) string {
	switch {
	case strings.HasPrefix(name, "ERROR"):
		return colorRed
	case strings.HasPrefix(name, "WARN"):
		return colorYellow
	case strings.HasPrefix(name, "INFO"):
		return colorGreen
	default:
		return colorBlue
	}
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct{ prettyState }

func newPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *prettyTextHandler {
	return &prettyTextHandler{newPrettyState(w, opts)}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for _, a := range h.header(r) {
		h.writeAttr(buf, a)
	}

	for _, a := range h.body(r) {
		h.writeAttr(buf, a)
	}

	return h.write(buf)
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	// Key in gray
	buf.WriteString(colorGray)
	buf.WriteString(a.Key)
	buf.WriteString(colorReset)
	buf.WriteByte('=')

	if a.Key == slog.LevelKey {
		name := a.Value.String()
		buf.WriteString(levelColor(name))
		buf.WriteString(name)
		buf.WriteString(colorReset)

		return
	}

	writeValue(buf, a.Value)
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		// String values in cyan, no quotes
		buf.WriteString(colorCyan)
		buf.WriteString(v.String())

	case slog.KindInt64:
		buf.WriteString(colorYellow)
		buf.WriteString(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		buf.WriteString(colorYellow)
		buf.WriteString(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		buf.WriteString(colorYellow)
		buf.WriteString(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(colorGreen)
		} else {
			buf.WriteString(colorRed)
		}

		buf.WriteString(strconv.FormatBool(v.Bool()))

	case slog.KindDuration:
		buf.WriteString(colorMagenta)
		buf.WriteString(v.Duration().String())

	case slog.KindTime:
		buf.WriteString(colorBlue)
		buf.WriteString(v.Time().String())

	default:
		buf.WriteString(colorCyan)
		buf.WriteString(v.String())
	}

	buf.WriteString(colorReset)
}

// prettyJSONHandler implements a pretty-printed JSON handler for log messages.
type prettyJSONHandler struct{ prettyState }

func newPrettyJSONHandler(w io.Writer, opts *slog.HandlerOptions) *prettyJSONHandler {
	return &prettyJSONHandler{newPrettyState(w, opts)}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)
	buf.WriteString("{\n")

	first := true

	for _, a := range append(h.header(r), h.body(r)...) {
		if !first {
			buf.WriteString(",\n")
		}

		first = false

		buf.WriteString("  ")
		buf.WriteString(colorGray)
		buf.WriteString(strconv.Quote(a.Key))
		buf.WriteString(colorReset)
		buf.WriteString(": ")

		if a.Key == slog.LevelKey {
			name := a.Value.String()
			buf.WriteString(levelColor(name))
			buf.WriteString(strconv.Quote(name))
			buf.WriteString(colorReset)

			continue
		}

		writeJSONValue(buf, a.Value)
	}

	buf.WriteString("\n}")

	return h.write(buf)
}

func writeJSONValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		buf.WriteString(colorYellow)
		buf.WriteString(v.String())

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(colorGreen)
		} else {
			buf.WriteString(colorRed)
		}

		buf.WriteString(strconv.FormatBool(v.Bool()))

	case slog.KindAny:
		if v.Any() == nil {
			buf.WriteString(colorGray)
			buf.WriteString("null")

			break
		}

		buf.WriteString(colorCyan)
		buf.WriteString(strconv.Quote(v.String()))

	default:
		buf.WriteString(colorCyan)
		buf.WriteString(strconv.Quote(v.String()))
	}

	buf.WriteString(colorReset)
}
