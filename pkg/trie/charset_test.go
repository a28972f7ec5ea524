package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharsetObserve(t *testing.T) {
	c := newCharset()
	assert.True(t, c.observe('c'))
	assert.True(t, c.observe('a'))
	assert.False(t, c.observe('c'), "a known character is not new")

	c.reindex()
	assert.Equal(t, []rune("ac"), c.ascending)
	assert.Equal(t, []rune("ca"), c.descending)
}

func TestCharsetNeighbors(t *testing.T) {
	c := newCharset()
	for _, ch := range "dbfa" {
		c.observe(ch)
	}
	c.reindex()

	testCases := []struct {
		ch      rune
		greater string
		less    string
	}{
		{'a', "bdf", ""},
		{'c', "df", "ba"},
		{'d', "f", "ba"},
		{'f', "", "dba"},
		{'z', "", "fdba"},
		{'0', "abdf", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.greater, string(c.greaterThan(tc.ch)), "greaterThan(%q)", tc.ch)
		assert.Equal(t, tc.less, string(c.lessThan(tc.ch)), "lessThan(%q)", tc.ch)
	}
}

// TestTrieCharsetStaysSorted checks the views after inserts bringing several new characters at once.
func TestTrieCharsetStaysSorted(t *testing.T) {
	words := New[string]()
	words.Insert("zebra", "zebra")
	words.Insert("ant", "ant")
	words.Insert("", "empty")

	assert.Equal(t, []rune("abenrtz"), words.Charset())
	assert.Equal(t, []rune("ztrneba"), words.charset.descending)
}
