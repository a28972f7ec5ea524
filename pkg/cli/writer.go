package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// Writer renders search results.
type Writer interface {
	Write(out io.Writer, matches []trie.Match[string]) error
}

// NewWriter returns the writer for a format name: text, json, csv or tsv.
func NewWriter(format string) (Writer, error) {
	switch format {
	case "", "text":
		return TextWriter{}, nil
	case "json":
		return JsonWriter{}, nil
	case "csv":
		return CsvWriter{}, nil
	case "tsv":
		return CsvWriter{isTSV: true}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// TextWriter prints one key per line, followed by its values when they differ from the key.
type TextWriter struct{}

func (w TextWriter) Write(out io.Writer, matches []trie.Match[string]) error {
	for _, m := range matches {
		line := m.Key
		if len(m.Values) != 1 || m.Values[0] != m.Key {
			line += " " + fmt.Sprint(m.Values)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

type JsonWriter struct{}

// Write encodes the matches as a JSON array of {"key", "values"} objects.
func (w JsonWriter) Write(out io.Writer, matches []trie.Match[string]) error {
	type record struct {
		Key    string   `json:"key"`
		Values []string `json:"values"`
	}
	records := make([]record, 0, len(matches))
	for _, m := range matches {
		records = append(records, record{Key: m.Key, Values: m.Values})
	}
	return json.NewEncoder(out).Encode(records)
}

type CsvWriter struct {
	isTSV bool
}

// Write writes a key,values header then one row per match, values joined by "|".
func (w CsvWriter) Write(out io.Writer, matches []trie.Match[string]) error {
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write([]string{"key", "values"}); err != nil {
		return err
	}
	for _, m := range matches {
		if err := writer.Write([]string{m.Key, strings.Join(m.Values, "|")}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
