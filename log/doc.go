// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is configured once, with functional options, when it is
// created and is immutable afterward. Its zero value discards everything.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Warn("output replaced", slog.String("path", path))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a logger with some settings overridden, and
// [Logger.With] one that adds attributes to every record.
//
// # Package Logger
//
// The package-level functions ([Info], [ErrorContext], ...) use a default
// logger writing to [os.Stderr]. [Config] reconfigures it in place.
//
// Functions that do not take a [context.Context] use the one returned by
// [DefaultContextProvider].
//
// # Levels
//
// In addition to the [slog] levels, [LevelTrace] sits below [LevelDebug]
// and is used for step-by-step parser and evaluator output.
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON] are supported, each optionally
// pretty printed with ANSI colors ([WithPretty]).
package log
