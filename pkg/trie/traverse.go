package trie

// direction is the order in which a subtree is explored.
type direction int

const (
	towardLeast    direction = iota // ascending lexicographic order
	towardGreatest                  // descending lexicographic order
)

type frame[V any] struct {
	node     *Node[V]
	expanded bool // children already pushed, only the node itself is left
}

// cursor yields the stored keys of a subtree one at a time, in lexicographic order
// or its reverse, using an explicit stack.
//
// Ascending order is a preorder walk: a key sorts before every key it prefixes.
// Descending order is the mirror image, so a node is only reported after all of its
// children subtrees are exhausted.
type cursor[V any] struct {
	stack []frame[V]
	dir   direction
}

func newCursor[V any](start *Node[V], dir direction) *cursor[V] {
	c := &cursor[V]{dir: dir}
	if start != nil {
		c.stack = append(c.stack, frame[V]{node: start})
	}
	return c
}

// pushChildren pushes the children so that the next one to be visited ends up on top.
func (c *cursor[V]) pushChildren(n *Node[V]) {
	for _, ch := range n.sortedEdges(c.dir == towardLeast) {
		c.stack = append(c.stack, frame[V]{node: n.Children[ch]})
	}
}

// next returns the next stored key node, nil once the subtree is exhausted.
func (c *cursor[V]) next() *Node[V] {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		if c.dir == towardLeast {
			c.pushChildren(top.node)
			if top.node.isEnd {
				return top.node
			}
			continue
		}

		if top.expanded || len(top.node.Children) == 0 {
			if top.node.isEnd {
				return top.node
			}
			continue
		}
		c.stack = append(c.stack, frame[V]{node: top.node, expanded: true})
		c.pushChildren(top.node)
	}
	return nil
}

// extremum returns the least or greatest stored key in the subtree of node,
// nil if the subtree holds only dead branches.
func extremum[V any](node *Node[V], dir direction) *Node[V] {
	return newCursor(node, dir).next()
}

func getMax[V any](node *Node[V]) *Node[V] {
	return extremum(node, towardGreatest)
}

func getMin[V any](node *Node[V]) *Node[V] {
	return extremum(node, towardLeast)
}

// Max returns the greatest stored key starting with prefix.
func (t *Trie[V]) Max(prefix string) (*Match[V], bool) {
	node := getMax(t.Node(prefix))
	if node == nil {
		return nil, false
	}
	return node.match(), true
}

// Min returns the least stored key starting with prefix.
func (t *Trie[V]) Min(prefix string) (*Match[V], bool) {
	node := getMin(t.Node(prefix))
	if node == nil {
		return nil, false
	}
	return node.match(), true
}
