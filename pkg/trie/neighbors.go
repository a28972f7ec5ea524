package trie

// Neighbors holds the stored keys immediately before and after a key.
// A nil side means there is no such key.
type Neighbors[V any] struct {
	Predecessor *Match[V]
	Successor   *Match[V]
}

// step is one depth of the walk down a key: the node reached and the
// key's character that was looked up under it.
type step[V any] struct {
	node *Node[V]
	next rune
}

// trace follows key down the tree as far as matching children exist.
// It returns the number of matched characters, the deepest node reached and
// one step per attempted depth, including the one where the walk stopped.
func (t *Trie[V]) trace(key []rune) (int, *Node[V], []step[V]) {
	current := t.root
	steps := make([]step[V], 0, len(key))
	matched := 0
	for _, ch := range key {
		steps = append(steps, step[V]{node: current, next: ch})
		child := current.Child(ch)
		if child == nil {
			break
		}
		current = child
		matched++
	}
	return matched, current, steps
}

// predecessor scans the steps from the deepest one up. At each depth the greatest
// key under a smaller sibling wins, then the node's own key.
func (t *Trie[V]) predecessor(steps []step[V]) *Node[V] {
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		for _, ch := range t.charset.lessThan(s.next) {
			child, ok := s.node.Children[ch]
			if !ok {
				continue
			}
			if found := getMax(child); found != nil {
				return found
			}
		}
		if s.node.isEnd {
			return s.node
		}
	}
	return nil
}

// successor scans the steps from the deepest one up for the least key under a
// greater sibling. The nodes on the path are prefixes of the key, never successors.
func (t *Trie[V]) successor(steps []step[V]) *Node[V] {
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		for _, ch := range t.charset.greaterThan(s.next) {
			child, ok := s.node.Children[ch]
			if !ok {
				continue
			}
			if found := getMin(child); found != nil {
				return found
			}
		}
	}
	return nil
}

// NeighborsForNewKey finds the stored keys around a key that may not be stored.
// When the whole key is a path in the tree the successor is the least key in its
// subtree, which is the key itself if it is already stored.
func (t *Trie[V]) NeighborsForNewKey(key string) Neighbors[V] {
	runes := []rune(t.normalize(key))
	matched, last, steps := t.trace(runes)

	var succ *Node[V]
	if matched == len(runes) {
		succ = getMin(last)
	}
	if succ == nil {
		succ = t.successor(steps)
	}
	return newNeighbors(t.predecessor(steps), succ)
}

// NeighborsForExistingKey finds the stored keys around a stored key.
// The successor is found by backtracking only, so keys extending key are skipped:
// it is the least key outside the subtree of key.
func (t *Trie[V]) NeighborsForExistingKey(key string) Neighbors[V] {
	_, _, steps := t.trace([]rune(t.normalize(key)))
	return newNeighbors(t.predecessor(steps), t.successor(steps))
}

func newNeighbors[V any](pred, succ *Node[V]) Neighbors[V] {
	n := Neighbors[V]{}
	if pred != nil {
		n.Predecessor = pred.match()
	}
	if succ != nil {
		n.Successor = succ.match()
	}
	return n
}
