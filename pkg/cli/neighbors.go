package cli

import (
	"fmt"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

type NeighborsCmd struct {
	Key      string `arg:"" help:"Key to find the neighbors of"`
	Existing bool   `help:"Treat the key as stored, skipping the words it prefixes"`
}

// Run prints the predecessor and successor of the key, "-" when there is none.
func (cmd *NeighborsCmd) Run(ctx *Context) error {
	var around trie.Neighbors[string]
	if cmd.Existing {
		around = ctx.Words.NeighborsForExistingKey(cmd.Key)
	} else {
		around = ctx.Words.NeighborsForNewKey(cmd.Key)
	}

	ctx.Logger.Debug().Str("key", cmd.Key).Bool("existing", cmd.Existing).Msg("neighbors")
	fmt.Fprintf(ctx.Out, "predecessor: %s\n", describe(around.Predecessor))
	fmt.Fprintf(ctx.Out, "successor: %s\n", describe(around.Successor))
	return nil
}

func describe(m *trie.Match[string]) string {
	if m == nil {
		return "-"
	}
	return fmt.Sprintf("%s %v", m.Key, m.Values)
}
