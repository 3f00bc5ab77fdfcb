package trie

import (
	"strings"
	"unicode/utf8"
)

// Trie owns the root node and implements the word level operations.
//
// A Trie has no internal locking: Insert must not run concurrently with any
// other call on the same Trie unless the caller holds a lock around both.
type Trie struct {
	root  *TrieNode
	words int // number of final nodes
	nodes int // number of non-root nodes
	depth int // length in runes of the longest inserted word
}

// New creates an empty trie, only the root node exists.
func New() *Trie {
	return &Trie{
		root: NewRootNode(),
	}
}

// Insert adds word to the trie.
//
// The cursor starts at the root and for each rune a child is created when it
// is missing before descending into it, this single pass covers an empty trie,
// a word with no overlap, a word already present and a partial prefix overlap.
// The node reached after the last rune is marked final.
// Inserting the same word again changes nothing, and an empty word is ignored
// so the root is never final.
// A word that is not valid UTF-8 is ignored too, its broken bytes would all
// decode to utf8.RuneError and collide with other words.
func (t *Trie) Insert(word string) {
	if word == "" || !utf8.ValidString(word) {
		return
	}

	cursor := t.root
	for _, ch := range word {
		next := cursor.Child(ch)
		if next == nil {
			next = cursor.InsertChild(ch, false)
			t.nodes++
		}
		cursor = next
	}

	if cursor.markFinal() {
		t.words++
	}
	if length := utf8.RuneCountInString(word); length > t.depth {
		t.depth = length
	}
}

// Contains reports whether word was inserted as a complete word.
// A strict prefix of a stored word is not contained, and neither is the empty
// word or a word that is not valid UTF-8.
func (t *Trie) Contains(word string) bool {
	if word == "" || !utf8.ValidString(word) {
		return false
	}
	node := t.find(word)
	return node != nil && node.IsFinal()
}

// find descends from the root following word, returns nil as soon as a rune has no child.
func (t *Trie) find(word string) *TrieNode {
	cursor := t.root
	for _, ch := range word {
		cursor = cursor.Child(ch)
		if cursor == nil {
			return nil
		}
	}
	return cursor
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	return t.words
}

// NodeCount returns the number of nodes without the root.
func (t *Trie) NodeCount() int {
	return t.nodes
}

// Depth returns the length in runes of the longest stored word.
func (t *Trie) Depth() int {
	return t.depth
}

// ForEachWord calls f with every stored word in rune order, a word comes
// before the words that extend it. If f returns false the walk stops.
func (t *Trie) ForEachWord(f func(word string) bool) {
	type frame struct {
		node *TrieNode
		word []rune
	}

	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.IsFinal() {
			if !f(string(top.word)) {
				return
			}
		}

		// push in reverse so the smallest rune is visited first
		children := top.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			word := make([]rune, len(top.word), len(top.word)+1)
			copy(word, top.word)
			stack = append(stack, frame{node: child, word: append(word, child.value)})
		}
	}
}

// Words returns all stored words in rune order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.words)
	t.ForEachWord(func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// String renders the trie the same way Visualize does.
func (t *Trie) String() string {
	var sb strings.Builder
	// a strings.Builder never fails to write
	_ = t.Visualize(&sb)
	return sb.String()
}
