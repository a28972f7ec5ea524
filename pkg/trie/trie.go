package trie

import (
	"slices"
	"strings"
)

// Entry is a key and value pair used for bulk insertion.
type Entry[V any] struct {
	Key   string
	Value V
}

// Match is a stored key with a copy of its values.
type Match[V any] struct {
	Key    string
	Values []V
}

// Trie is an ordered string-keyed trie holding any number of values per key.
type Trie[V any] struct {
	root            *Node[V]
	count           int
	charset         *charset
	caseInsensitive bool
}

// New creates an empty trie. Keys are case folded unless WithCaseInsensitive(false) is given.
func New[V any](opts ...Option) *Trie[V] {
	s := defaultSettings()
	for _, opt := range opts {
		s = opt(s)
	}
	return &Trie[V]{
		root:            newNode[V](),
		charset:         newCharset(),
		caseInsensitive: s.caseInsensitive,
	}
}

// Root returns the root node, whose key is the empty string.
func (t *Trie[V]) Root() *Node[V] {
	return t.root
}

// Count returns the number of insertions minus the number of successful removals.
// Inserting an existing key again counts as well.
func (t *Trie[V]) Count() int {
	return t.count
}

// CaseInsensitive reports whether keys are case folded.
func (t *Trie[V]) CaseInsensitive() bool {
	return t.caseInsensitive
}

// Charset returns every character ever inserted, in ascending order.
func (t *Trie[V]) Charset() []rune {
	return slices.Clone(t.charset.ascending)
}

func (t *Trie[V]) normalize(key string) string {
	if t.caseInsensitive {
		return strings.ToLower(key)
	}
	return key
}

// Insert appends value to the values of key, creating the path if needed.
func (t *Trie[V]) Insert(key string, value V) {
	current := t.root
	newChars := false
	for _, ch := range t.normalize(key) {
		if t.charset.observe(ch) {
			newChars = true
		}
		current, _ = current.attachChildIfNotExist(ch)
	}
	current.appendValue(value)

	if newChars {
		t.charset.reindex()
	}
	t.count++
}

// InsertAll inserts every entry in order.
func (t *Trie[V]) InsertAll(entries []Entry[V]) {
	for _, e := range entries {
		t.Insert(e.Key, e.Value)
	}
}

// lookup walks the path of an already normalized key, nil if the path is missing.
func (t *Trie[V]) lookup(key string) *Node[V] {
	current := t.root
	for _, ch := range key {
		current = current.Child(ch)
		if current == nil {
			return nil
		}
	}
	return current
}

// Node returns the node at the end of the path for key, nil if the path does not exist.
// The node is not necessarily a stored key.
func (t *Trie[V]) Node(key string) *Node[V] {
	return t.lookup(t.normalize(key))
}

// Find returns the values stored under key.
func (t *Trie[V]) Find(key string) ([]V, bool) {
	node := t.Node(key)
	if node == nil || !node.isEnd {
		return nil, false
	}
	return node.Values(), true
}

// Remove drops the first value of key accepted by match.
// It returns false only when key is not stored. When key is stored the count is
// decremented even if match accepts none of its values. Nodes are never pruned.
func (t *Trie[V]) Remove(key string, match func(V) bool) bool {
	node := t.Node(key)
	if node == nil || !node.isEnd {
		return false
	}
	if match == nil {
		match = func(V) bool { return false }
	}
	node.removeFirst(match)
	t.count--
	return true
}
