package trie

import "strings"

// SearchOptions select and window the keys returned by Search.
type SearchOptions struct {
	Skip     int    // matches to discard before collecting
	Limit    int    // maximum results, zero or less means no limit
	Prefix   string // only keys under this prefix, empty for all keys
	Contains string // only keys containing this substring, empty for all keys
	Reverse  bool   // descending instead of ascending order
}

// Search enumerates stored keys in lexicographic order, or its reverse, filtered by
// prefix and substring. Keys rejected by the substring filter do not count toward Skip.
// An unknown prefix gives an empty result.
func (t *Trie[V]) Search(opts SearchOptions) []Match[V] {
	results := []Match[V]{}

	start := t.root
	if opts.Prefix != "" {
		start = t.Node(opts.Prefix)
		if start == nil {
			return results
		}
	}

	contains := t.normalize(opts.Contains)
	dir := towardLeast
	if opts.Reverse {
		dir = towardGreatest
	}

	skipped := 0
	c := newCursor(start, dir)
	for node := c.next(); node != nil; node = c.next() {
		key := node.Key()
		if contains != "" && !strings.Contains(key, contains) {
			continue
		}
		if skipped < opts.Skip {
			skipped++
			continue
		}

		results = append(results, Match[V]{Key: key, Values: node.Values()})
		if opts.Limit > 0 && len(results) == opts.Limit {
			break
		}
	}
	return results
}
