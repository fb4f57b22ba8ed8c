// Package cli contains the command line interface for ucfg.
//
// # Usage
//
// The default command translates a source read from a file or stdin:
//
//	ucfg -o app.toml app.ucfg
//	ucfg -o app.yaml < app.ucfg
//	ucfg translate -o - --format json app.ucfg
//
// Other commands check a source, print it in another format, evaluate an
// expression against it, or write the current flags as a configuration
// file:
//
//	ucfg check app.ucfg
//	ucfg fmt native app.ucfg
//	ucfg query 'server.port' app.ucfg
//	ucfg init
//
// [Run] returns failures instead of exiting; [Exit] reports them and
// returns the process status. Syntax and semantic errors are written as
// "Syntax error: ..." and "Semantic error: ...".
//
// # Configuration Files
//
// Flag defaults are read from "config" and "config.json" in the user
// configuration directory (for example ~/.config/ucfg) and in every
// directory listed in UCFG_CONFIG_PATH. The "config" file is written in
// ucfg itself; its top-level dictionary maps flag names, with underscores
// in place of hyphens, to values:
//
//	@{
//	  log_level = [[debug]];
//	  max_depth = 0o40;
//	}
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Input Limits
//
//   - --max-depth: Maximum dictionary nesting depth
//   - --max-size: Maximum source size in bytes
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o ucfg .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/ucfg/pprof)
package cli
