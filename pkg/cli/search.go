package cli

import (
	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

type SearchCmd struct {
	Prefix   string `help:"Only words starting with this prefix"`
	Contains string `help:"Only words containing this substring"`
	Skip     int    `help:"Number of matches to skip"`
	Limit    int    `help:"Maximum number of matches, 0 uses search.limit from the config"`
	Reverse  bool   `help:"List in descending order"`
	Format   string `help:"Output format" enum:"text,json,csv,tsv" default:"text"`
}

// Run executes the search and writes the page of matches.
func (cmd *SearchCmd) Run(ctx *Context) error {
	writer, err := NewWriter(cmd.Format)
	if err != nil {
		return err
	}

	limit := cmd.Limit
	if limit == 0 {
		limit = ctx.Config.Search.Limit
	}
	opts := trie.SearchOptions{
		Skip:     cmd.Skip,
		Limit:    limit,
		Prefix:   cmd.Prefix,
		Contains: cmd.Contains,
		Reverse:  cmd.Reverse,
	}

	matches := ctx.Words.Search(opts)
	ctx.Logger.Debug().
		Str("prefix", opts.Prefix).
		Str("contains", opts.Contains).
		Int("skip", opts.Skip).
		Int("limit", opts.Limit).
		Bool("reverse", opts.Reverse).
		Int("matches", len(matches)).
		Msg("search")

	return writer.Write(ctx.Out, matches)
}
