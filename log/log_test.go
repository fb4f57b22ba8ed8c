package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_ZeroValueDiscards(t *testing.T) {
	var l Logger

	l.Info("dropped")
	l.ErrorContext(context.Background(), "dropped")

	assert.False(t, l.Enabled(context.Background(), LevelError), "zero logger reports enabled")
	assert.Equal(t, DefaultLevel, l.Level())
	assert.Equal(t, DefaultFormat, l.Format())
	assert.Nil(t, l.With(slog.String("k", "v")).Logger, "With on zero logger created a handler")
}

func TestLogger_Make_Defaults(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf)

	assert.Equal(t, LevelWarn, l.Level())
	assert.Equal(t, FormatText, l.Format())

	l.Info("hidden")
	assert.Zero(t, buf.Len(), "info logged at default level: %q", buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level Level
		log   func(Logger)
		want  bool
	}{
		{LevelTrace, func(l Logger) { l.Trace("m") }, true},
		{LevelDebug, func(l Logger) { l.Trace("m") }, false},
		{LevelDebug, func(l Logger) { l.Debug("m") }, true},
		{LevelInfo, func(l Logger) { l.Debug("m") }, false},
		{LevelInfo, func(l Logger) { l.Info("m") }, true},
		{LevelError, func(l Logger) { l.Warn("m") }, false},
		{LevelError, func(l Logger) { l.Error("m") }, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer

		tt.log(Make(&buf, WithLevel(tt.level)))

		assert.Equal(t, tt.want, buf.Len() > 0, "level %v", tt.level)
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelTrace)).
		With(slog.String("component", "lang"))

	l.TraceContext(context.Background(), "parse start", slog.Int("source_length", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "invalid JSON %q", buf.String())

	want := map[string]any{
		"level":         "TRACE",
		"msg":           "parse start",
		"component":     "lang",
		"source_length": float64(3),
	}

	for k, v := range want {
		assert.Equal(t, v, rec[k], k)
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true), WithLevel(LevelInfo)).Info("here")

	assert.Contains(t, buf.String(), "log_test.go:")
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithFormat(FormatJSON))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	assert.Equal(t, FormatJSON, wrapped.Format())
	assert.Equal(t, DefaultLevel, base.Level(), "Wrap modified the original logger")

	wrapped.Debug("debug")
	assert.Contains(t, buf.String(), `"msg":"debug"`)
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var (
		buf bytes.Buffer
		mu  sync.Mutex
	)

	l := Make(writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()

		return buf.Write(p)
	}), WithLevel(LevelInfo), WithPretty(true))

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			l.With(slog.Int("worker", i)).Info("tick")
		}()
	}

	wg.Wait()

	assert.Equal(t, 8, strings.Count(buf.String(), "\n"))
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func TestPackageFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer

	SetDefault(Make(&buf, WithLevel(LevelTrace), WithFormat(FormatJSON)))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			out := buf.String()
			assert.Contains(t, out, `"level":"`+tt.level+`"`)
			assert.Contains(t, out, `"key":"value"`)
		})
	}
}

func TestConfig_UpdatesDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer

	SetDefault(Make(&buf))
	Config(WithLevel(LevelDebug), WithFormat(FormatJSON))

	DebugContext(context.Background(), "configured")

	assert.Contains(t, buf.String(), `"msg":"configured"`)
	assert.Equal(t, LevelDebug, Default().Level())
}
