package trie

import (
	"slices"
	"sort"
)

// charset records every character ever inserted, with sorted views used
// for neighbor lookups.
type charset struct {
	seen       map[rune]struct{}
	ascending  []rune
	descending []rune // always the exact reverse of ascending
}

func newCharset() *charset {
	return &charset{seen: map[rune]struct{}{}}
}

// observe adds ch to the set, returns true if it was not seen before.
// The sorted views are stale until reindex is called.
func (c *charset) observe(ch rune) bool {
	if _, ok := c.seen[ch]; ok {
		return false
	}
	c.seen[ch] = struct{}{}
	c.ascending = append(c.ascending, ch)
	return true
}

func (c *charset) reindex() {
	slices.Sort(c.ascending)
	c.descending = slices.Clone(c.ascending)
	slices.Reverse(c.descending)
}

// greaterThan returns the known characters strictly greater than ch, ascending.
func (c *charset) greaterThan(ch rune) []rune {
	i := sort.Search(len(c.ascending), func(i int) bool {
		return c.ascending[i] > ch
	})
	return c.ascending[i:]
}

// lessThan returns the known characters strictly less than ch, descending.
func (c *charset) lessThan(ch rune) []rune {
	i := sort.Search(len(c.descending), func(i int) bool {
		return c.descending[i] < ch
	})
	return c.descending[i:]
}
