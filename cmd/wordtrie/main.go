package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/khalid-nowaf/wordtrie/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("wordtrie"),
		kong.Description("Look up, list and rank words from a newline delimited word list."),
		kong.UsageOnError(),
	)

	runCtx, err := cli.CLI.NewContext(os.Stdin, os.Stdout)
	if err == nil {
		err = ctx.Run(runCtx)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
