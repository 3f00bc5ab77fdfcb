// ## Overview
// Package trie implements a rune keyed trie (prefix tree) that stores a set of words.
// The trie supports inserting words, checking if a complete word was inserted,
// and rendering the whole structure as an indented tree to any io.Writer.
// Nodes are created lazily on insertion and are never removed.
//
// ## Example usage:
//
//	t := trie.New()
//	t.Insert("hello")
//	t.Insert("world")
//	t.Insert("hi")
//
//	fmt.Println(t.Contains("hello")) // Output: true
//	fmt.Println(t.Contains("hel"))   // Output: false
//
//	// render the tree to stdout
//	if err := t.Visualize(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Output of the rendering above:
//
//	 (Root)
//	├─│ h
//	│  ├─│ e
//	│  │  └─  l
//	│  │     └─  l
//	│  │        └─  o
//	│  └─  i
//	└─  w
//	   └─  o
//	      └─  r
//	         └─  l
//	            └─  d
//
// A Trie is not safe for concurrent use, callers that share one between
// goroutines must guard every call with their own lock.
package trie
