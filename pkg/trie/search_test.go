package trie

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	words := generateTrieAs([]string{"bee", "anthem", "ant"})

	testCases := []struct {
		name     string
		opts     SearchOptions
		expected []string
	}{
		{"all ascending", SearchOptions{}, []string{"ant", "anthem", "bee"}},
		{"all descending", SearchOptions{Reverse: true}, []string{"bee", "anthem", "ant"}},
		{"prefix", SearchOptions{Prefix: "an"}, []string{"ant", "anthem"}},
		{"prefix is a key", SearchOptions{Prefix: "ant"}, []string{"ant", "anthem"}},
		{"prefix descending", SearchOptions{Prefix: "an", Reverse: true}, []string{"anthem", "ant"}},
		{"contains", SearchOptions{Contains: "th"}, []string{"anthem"}},
		{"contains is case folded", SearchOptions{Contains: "TH"}, []string{"anthem"}},
		{"second page", SearchOptions{Skip: 1, Limit: 1}, []string{"anthem"}},
		{"skip past the end", SearchOptions{Skip: 5}, []string{}},
		{"limit", SearchOptions{Limit: 2}, []string{"ant", "anthem"}},
		{"missing prefix", SearchOptions{Prefix: "cat"}, []string{}},
		{"prefix case folded", SearchOptions{Prefix: "AN"}, []string{"ant", "anthem"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, matchedKeys(words.Search(tc.opts)))
		})
	}
}

// TestSearchContainsDoesNotConsumeSkip checks that filtered keys do not take pagination slots.
func TestSearchContainsDoesNotConsumeSkip(t *testing.T) {
	words := generateTrieAs([]string{"cat", "dog", "catalog", "scatter", "bobcat"})

	result := words.Search(SearchOptions{Contains: "cat", Skip: 1, Limit: 2})
	assert.Equal(t, []string{"cat", "catalog"}, matchedKeys(result))
}

func TestSearchReturnsValues(t *testing.T) {
	words := New[int]()
	words.Insert("a", 1)
	words.Insert("a", 2)

	result := words.Search(SearchOptions{})
	assert.Equal(t, []Match[int]{{Key: "a", Values: []int{1, 2}}}, result)
}

func TestSearchEmptyKey(t *testing.T) {
	words := generateTrieAs([]string{"", "a"})

	assert.Equal(t, []string{"", "a"}, matchedKeys(words.Search(SearchOptions{})))
	assert.Equal(t, []string{"a", ""}, matchedKeys(words.Search(SearchOptions{Reverse: true})))
}

// TestSearchMatchesSort compares every window of the search with a sorted slice.
func TestSearchMatchesSort(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	keys := generateRandomKeys(r, 200, "abcd", 6)
	words := generateTrieAs(keys)
	removeRandomKeys(r, words, keys, 30)
	stored := storedKeys(words, keys)

	reversed := append([]string{}, stored...)
	sort.Sort(sort.Reverse(sort.StringSlice(reversed)))

	assert.Equal(t, stored, matchedKeys(words.Search(SearchOptions{})))
	assert.Equal(t, reversed, matchedKeys(words.Search(SearchOptions{Reverse: true})))

	for _, prefix := range []string{"a", "ab", "dc", "bad"} {
		for _, contains := range []string{"", "c", "da"} {
			expected := []string{}
			for _, key := range stored {
				if strings.HasPrefix(key, prefix) && strings.Contains(key, contains) {
					expected = append(expected, key)
				}
			}
			for skip := 0; skip < 4; skip++ {
				window := windowOf(expected, skip, 3)
				got := words.Search(SearchOptions{Prefix: prefix, Contains: contains, Skip: skip, Limit: 3})
				assert.Equal(t, window, matchedKeys(got), "prefix %q contains %q skip %d", prefix, contains, skip)
			}
		}
	}
}

func windowOf(keys []string, skip, limit int) []string {
	if skip >= len(keys) {
		return []string{}
	}
	keys = keys[skip:]
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

func matchedKeys[V any](matches []Match[V]) []string {
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, m.Key)
	}
	return keys
}
