package main

import (
	"context"
	"os"

	"github.com/ardnew/ucfg/cli"
)

func main() {
	os.Exit(cli.Exit(os.Stderr, cli.Run(context.Background(), os.Exit, os.Args[1:]...)))
}
