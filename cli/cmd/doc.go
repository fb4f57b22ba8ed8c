// Package cmd implements the ucfg subcommands: translate, check, fmt,
// query and init.
//
// Commands receive their parse options, input and output through the
// context (see [WithOptions], [WithInput] and [WithOutput]) so they can be
// run without a process around them.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// of the configuration file written by [Init].
	ConfigIdentifier = "config"
)
