package trie

import "slices"

// Node is a single character position on some inserted key.
type Node[V any] struct {
	Parent    *Node[V]          // Pointer to the parent node, nil for the root
	Children  map[rune]*Node[V] // Child nodes keyed by the character on their upper edge
	upperEdge rune              // The character labeling the edge from Parent to this node
	isEnd     bool              // The path from the root to this node is a stored key
	values    []V               // Values in insertion order, non-empty iff isEnd
	depth     int               // The depth of this node in the trie
}

func newNode[V any]() *Node[V] {
	return &Node[V]{Children: map[rune]*Node[V]{}}
}

// isRoot checks if the current node is the root of the trie.
func (n *Node[V]) isRoot() bool {
	return n.Parent == nil
}

// IsEnd reports whether the node terminates a stored key.
func (n *Node[V]) IsEnd() bool {
	return n.isEnd
}

// Values returns a copy of the values stored at this node.
func (n *Node[V]) Values() []V {
	return slices.Clone(n.values)
}

// GetDepth returns the depth of the node in the trie.
func (n *Node[V]) GetDepth() int {
	return n.depth
}

// UpperEdge returns the character on the edge from the parent, 0 for the root.
func (n *Node[V]) UpperEdge() rune {
	return n.upperEdge
}

// Child returns the child under the given edge character, or nil.
func (n *Node[V]) Child(ch rune) *Node[V] {
	if n == nil {
		panic("[BUG] Child: node must not be nil")
	}
	return n.Children[ch]
}

// adds a child under ch if no child exists there yet.
// return the new added child or the existing one, and whether it was created
func (n *Node[V]) attachChildIfNotExist(ch rune) (*Node[V], bool) {
	if child, ok := n.Children[ch]; ok {
		return child, false
	}
	child := newNode[V]()
	child.Parent = n
	child.upperEdge = ch
	child.depth = n.depth + 1
	n.Children[ch] = child
	return child, true
}

// sortedEdges returns the edge characters of the children, ascending unless descending is set.
func (n *Node[V]) sortedEdges(descending bool) []rune {
	edges := make([]rune, 0, len(n.Children))
	for ch := range n.Children {
		edges = append(edges, ch)
	}
	slices.Sort(edges)
	if descending {
		slices.Reverse(edges)
	}
	return edges
}

// applies a function to each ancestor of the node, moving from the node to the root.
// the root itself is not visited.
// will return the original node n
func (n *Node[V]) ForEachStepUp(f func(*Node[V]), while func(*Node[V]) bool) *Node[V] {
	current := n
	for current.Parent != nil && (while == nil || while(current)) {
		f(current)
		current = current.Parent
	}
	return n
}

// Key rebuilds the key of this node by following the parent links up to the root.
func (n *Node[V]) Key() string {
	path := make([]rune, n.depth)
	i := n.depth
	n.ForEachStepUp(func(current *Node[V]) {
		i--
		path[i] = current.upperEdge
	}, nil)
	return string(path)
}

// appendValue stores one more value and marks the node as a key.
func (n *Node[V]) appendValue(value V) {
	n.values = append(n.values, value)
	n.isEnd = true
}

// removeFirst drops the first value accepted by match.
// The node stops being a key once its last value is gone.
func (n *Node[V]) removeFirst(match func(V) bool) bool {
	i := slices.IndexFunc(n.values, match)
	if i >= 0 {
		n.values = slices.Delete(n.values, i, i+1)
	}
	if len(n.values) == 0 {
		n.isEnd = false
	}
	return i >= 0
}

func (n *Node[V]) match() *Match[V] {
	return &Match[V]{Key: n.Key(), Values: n.Values()}
}
