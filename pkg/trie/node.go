package trie

import "sort"

// TrieNode holds one rune of a stored word and the nodes that follow it.
type TrieNode struct {
	value    rune               // the rune this node represents, unset on the root
	hasValue bool               // false only for the root
	final    bool               // true if the path from the root to here is an inserted word
	children map[rune]*TrieNode // owned children keyed by their rune
}

// NewRootNode creates a node with no value, it is never final.
func NewRootNode() *TrieNode {
	return &TrieNode{
		children: make(map[rune]*TrieNode),
	}
}

// NewNode creates a node that represents ch.
func NewNode(ch rune, final bool) *TrieNode {
	return &TrieNode{
		value:    ch,
		hasValue: true,
		final:    final,
		children: make(map[rune]*TrieNode),
	}
}

// InsertChild adds a child for ch if no child exists there yet.
// return the new added child or the existing one, an existing child is never replaced
// so its subtree and final flag stay as they are.
func (n *TrieNode) InsertChild(ch rune, final bool) *TrieNode {
	if child, ok := n.children[ch]; ok {
		return child
	}
	child := NewNode(ch, final)
	n.children[ch] = child
	return child
}

// Matches reports whether this node represents ch, the root matches nothing.
func (n *TrieNode) Matches(ch rune) bool {
	return n.hasValue && n.value == ch
}

// Value returns the rune of the node, ok is false for the root.
func (n *TrieNode) Value() (ch rune, ok bool) {
	return n.value, n.hasValue
}

func (n *TrieNode) IsFinal() bool {
	return n.final
}

func (n *TrieNode) IsRoot() bool {
	return !n.hasValue
}

// checks if the node is a leaf (has no children).
func (n *TrieNode) IsLeaf() bool {
	return len(n.children) == 0
}

// returns the child for ch or nil
func (n *TrieNode) Child(ch rune) *TrieNode {
	return n.children[ch]
}

func (n *TrieNode) ChildCount() int {
	return len(n.children)
}

// Children returns the children sorted by rune, so every walk over the trie
// visits nodes in the same order.
func (n *TrieNode) Children() []*TrieNode {
	keys := make([]rune, 0, len(n.children))
	for ch := range n.children {
		keys = append(keys, ch)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	children := make([]*TrieNode, 0, len(keys))
	for _, ch := range keys {
		children = append(children, n.children[ch])
	}
	return children
}

// applies a function to each child of the node, in rune order.
// will return the original node n
func (n *TrieNode) ForEachChild(f func(child *TrieNode)) *TrieNode {
	for _, child := range n.Children() {
		f(child)
	}
	return n
}

// markFinal flips the node to final, reports false if it already was.
func (n *TrieNode) markFinal() bool {
	if n.final {
		return false
	}
	n.final = true
	return true
}
