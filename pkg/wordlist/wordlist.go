// Package wordlist loads newline delimited word lists into a trie.
// Each line is one key, trailing whitespace is stripped and blank lines are skipped.
// Every word is inserted with itself as value.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// Stats describes a finished load.
type Stats struct {
	Lines    int // lines read
	Inserted int // words inserted
	Skipped  int // blank lines
}

// Load reads words from r and inserts them into words.
func Load(r io.Reader, words *trie.Trie[string], logger zerolog.Logger) (Stats, error) {
	stats := Stats{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		stats.Lines++
		word := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if word == "" {
			stats.Skipped++
			continue
		}
		words.Insert(word, word)
		stats.Inserted++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading word list at line %d: %w", stats.Lines+1, err)
	}

	logger.Debug().
		Int("lines", stats.Lines).
		Int("inserted", stats.Inserted).
		Int("skipped", stats.Skipped).
		Int("charset", len(words.Charset())).
		Msg("word list loaded")
	return stats, nil
}

// LoadFile opens the word list at path and loads it into words.
func LoadFile(path string, words *trie.Trie[string], logger zerolog.Logger) (Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("opening word list: %w", err)
	}
	defer file.Close()

	return Load(file, words, logger.With().Str("path", path).Logger())
}
