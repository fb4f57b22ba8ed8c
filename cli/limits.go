package cli

import (
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/ucfg/lang"
)

// limitsConfig bounds the input accepted by every command.
type limitsConfig struct {
	MaxDepth int `default:"${maxDepth}" help:"Maximum dictionary nesting depth (0 disables)."`
	MaxSize  int `default:"0"           help:"Maximum source size in bytes (0 disables)."`
}

func (limitsConfig) vars() kong.Vars {
	return kong.Vars{"maxDepth": strconv.Itoa(lang.DefaultMaxDepth)}
}

func (limitsConfig) group() kong.Group {
	return kong.Group{Key: "limits", Title: "Input limits"}
}

// options returns the parse options selected by the flags.
func (f limitsConfig) options() []lang.Option {
	return []lang.Option{
		lang.WithMaxDepth(f.MaxDepth),
		lang.WithMaxSize(f.MaxSize),
	}
}
