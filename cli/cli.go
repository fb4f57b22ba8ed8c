package cli

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/ucfg/cli/cmd"
	"github.com/ardnew/ucfg/lang"
	"github.com/ardnew/ucfg/log"
	"github.com/ardnew/ucfg/pkg"
)

// CLI is the top-level command-line interface for ucfg.
type CLI struct {
	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Log    logConfig    `embed:"" group:"log"    prefix:"log-"`
	Limits limitsConfig `embed:"" group:"limits"`
	Pprof  pprofConfig  `embed:"" group:"pprof"  prefix:"pprof-"`

	Translate cmd.Translate `cmd:"" default:"withargs" help:"Translate a source to TOML, YAML or JSON (default)."`
	Check     cmd.Check     `cmd:""                    help:"Check a source without writing output."`
	Fmt       cmd.Fmt       `cmd:""                    help:"Print a source in another format."`
	Query     cmd.Query     `cmd:""                    help:"Evaluate an expression against a source."`
	Init      cmd.Init      `cmd:""                    help:"Initialize configuration file."`
}

// Run executes the ucfg CLI with the given context and arguments.
// The exit function is called by kong when it finishes early, such as after
// printing help. Errors are returned for the caller to report with [Exit].
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		"version":            pkg.Version,
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Limits.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that configuration files are loaded
	// with the requested logging already in effect.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Limits.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFiles(baseConfig+".json")...),
		kong.Configuration(resolve(ctx), configFiles(baseConfig)...),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithOptions(ctx, append(cli.Limits.options(), lang.WithLogger(log.Default()))...)

	log.DebugContext(ctx, "command selected",
		slog.String("command", ktx.Command()),
		slog.String("config", filepath.Dir(configFilePath)),
	)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
