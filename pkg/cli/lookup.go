package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type LookupCmd struct {
	Query string `arg:"" optional:"" help:"Word to look up, prompted for when missing"`
}

// Run looks up one word and reports its values.
func (cmd *LookupCmd) Run(ctx *Context) error {
	query := cmd.Query
	if query == "" {
		fmt.Fprint(ctx.Out, "Enter a word to search: ")
		line, err := bufio.NewReader(ctx.In).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading query: %w", err)
		}
		query = strings.TrimSpace(line)
	}

	values, found := ctx.Words.Find(query)
	ctx.Logger.Debug().Str("query", query).Bool("found", found).Msg("lookup")
	if !found {
		fmt.Fprintln(ctx.Out, "not found.")
		return nil
	}
	fmt.Fprintf(ctx.Out, "found: %v\n", values)
	return nil
}
