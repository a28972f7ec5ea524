// ## Overview
// Package trie implements an ordered, mutable, string-keyed trie.
// Every key may hold several values (one per insertion). Besides exact lookup the trie
// answers lexicographic questions: the least or greatest key under a prefix, the keys
// immediately before and after an arbitrary key, and paginated enumeration filtered by
// prefix and substring.
//
// All traversals use an explicit stack, so deep keys never grow the goroutine stack.
// The trie is not safe for concurrent use; callers serialize access themselves.
//
// ## Example usage:
//
//	words := trie.New[string]()
//	words.Insert("ant", "ant")
//	words.Insert("anthem", "anthem")
//	words.Insert("bee", "bee")
//
//	values, ok := words.Find("ANT") // [ant] true, keys are case folded by default
//
//	// second page of size one, in ascending order
//	page := words.Search(trie.SearchOptions{Skip: 1, Limit: 1}) // [{anthem [anthem]}]
//
//	around := words.NeighborsForNewKey("apple")
//	fmt.Println(around.Predecessor.Key, around.Successor.Key) // anthem bee
//
// This package uses generics to allow the trie to store any type of value with each key.
package trie
