package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/khalid-nowaf/wordtrie/pkg/config"
	"github.com/khalid-nowaf/wordtrie/pkg/trie"
	"github.com/khalid-nowaf/wordtrie/pkg/wordlist"
)

// Context is handed to every command once the word list is loaded.
type Context struct {
	Words  *trie.Trie[string]
	Config *config.Config
	Logger zerolog.Logger
	In     io.Reader
	Out    io.Writer
}

// Root is the command line grammar.
type Root struct {
	Config        string `help:"Path to a YAML config file" type:"path"`
	Words         string `short:"w" help:"Word list with one key per line (overrides wordlist.path)" type:"path"`
	CaseSensitive bool   `help:"Keep the case of keys instead of folding them"`
	Debug         bool   `help:"Enable debug logging"`

	Lookup    LookupCmd    `cmd:"" default:"withargs" help:"Look up one word"`
	Search    SearchCmd    `cmd:"" help:"List stored words in lexicographic order"`
	Neighbors NeighborsCmd `cmd:"" help:"Show the stored words before and after a key"`
}

var CLI Root

// NewContext loads the configuration, applies the global flags and loads the word list.
func (r *Root) NewContext(in io.Reader, out io.Writer) (*Context, error) {
	cfg, err := config.LoadConfig(r.Config)
	if err != nil {
		return nil, err
	}
	if r.Words != "" {
		cfg.WordList.Path = r.Words
	}
	if r.CaseSensitive {
		cfg.Trie.CaseInsensitive = false
	}

	logger, err := NewLogger(os.Stderr, cfg, r.Debug)
	if err != nil {
		return nil, err
	}

	words := trie.New[string](trie.WithCaseInsensitive(cfg.Trie.CaseInsensitive))
	if _, err := wordlist.LoadFile(cfg.WordList.Path, words, logger); err != nil {
		return nil, err
	}

	return &Context{
		Words:  words,
		Config: cfg,
		Logger: logger,
		In:     in,
		Out:    out,
	}, nil
}

// NewLogger builds a console logger at the configured level, debug wins over the config.
func NewLogger(w io.Writer, cfg *config.Config, debug bool) (zerolog.Logger, error) {
	level, err := cfg.Log.ParseLevel()
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("configuring logger: %w", err)
	}
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().Timestamp().
		Logger(), nil
}
