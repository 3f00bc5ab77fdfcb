package trie

import (
	"bufio"
	"io"
)

// glyphs used to draw the tree
const (
	rootMarker = "(Root)"

	branchConnector = "├─"
	lastConnector   = "└─"
	branchSpacer    = "│"
	lastSpacer      = " "

	branchPadding = "│  "
	lastPadding   = "   "
)

// renderFrame is a node waiting to be printed with the state inherited from its ancestors.
type renderFrame struct {
	node   *TrieNode
	prefix string // one segment per ancestor below the root
	isLast bool   // last child of its parent
	depth  int
}

// Visualize writes the trie to w as an indented tree, one line per node in
// depth first pre-order starting at the root. Children are visited in rune order.
//
// The root line is " (Root)". Every other line is
//
//	<prefix><connector><spacer> <rune>
//
// where the connector and spacer show whether the node is the last child of
// its parent, and the prefix holds "│  " for every ancestor that was not a
// last child and "   " for every ancestor that was.
//
// The walk keeps an explicit stack, so the depth of the trie is not limited
// by the goroutine stack. Any error writing to w is returned as a *RenderError.
// w is not closed.
func (t *Trie) Visualize(w io.Writer) error {
	bw := bufio.NewWriter(w)

	stack := []renderFrame{{node: t.root}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, err := bw.WriteString(renderLine(frame)); err != nil {
			return &RenderError{Err: err}
		}

		childPrefix := frame.prefix
		if frame.depth > 0 {
			if frame.isLast {
				childPrefix += lastPadding
			} else {
				childPrefix += branchPadding
			}
		}

		// push in reverse so the first child is popped first
		children := frame.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, renderFrame{
				node:   children[i],
				prefix: childPrefix,
				isLast: i == len(children)-1,
				depth:  frame.depth + 1,
			})
		}
	}

	if err := bw.Flush(); err != nil {
		return &RenderError{Err: err}
	}
	return nil
}

// renderLine builds the text of one node including the trailing newline.
func renderLine(frame renderFrame) string {
	ch, ok := frame.node.Value()
	if !ok {
		return frame.prefix + " " + rootMarker + "\n"
	}

	connector, spacer := branchConnector, branchSpacer
	if frame.isLast {
		connector, spacer = lastConnector, lastSpacer
	}
	return frame.prefix + connector + spacer + " " + string(ch) + "\n"
}
