package trie

import (
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingWriter fails every write after the first limit bytes.
type failingWriter struct {
	limit int
	err   error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, w.err
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestVisualizeEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, New().Visualize(&sb))
	assert.Equal(t, " (Root)\n", sb.String())
}

// TestVisualizeSingleChain checks the ["a", "ab"] rendering, every node is a last child.
func TestVisualizeSingleChain(t *testing.T) {
	tr := New()
	tr.Insert("a")
	tr.Insert("ab")

	var sb strings.Builder
	require.NoError(t, tr.Visualize(&sb))

	expected := " (Root)\n" +
		"└─  a\n" +
		"   └─  b\n"
	assert.Equal(t, expected, sb.String())
}

// TestVisualizeBranches checks connectors and prefixes when siblings exist at several levels.
func TestVisualizeBranches(t *testing.T) {
	tr := New()
	for _, w := range []string{"world", "hi", "hello"} {
		tr.Insert(w)
	}

	expected := strings.Join([]string{
		" (Root)",
		"├─│ h",
		"│  ├─│ e",
		"│  │  └─  l",
		"│  │     └─  l",
		"│  │        └─  o",
		"│  └─  i",
		"└─  w",
		"   └─  o",
		"      └─  r",
		"         └─  l",
		"            └─  d",
	}, "\n") + "\n"

	assert.Equal(t, expected, tr.String())
}

// TestVisualizeDeterministic verifies insertion order does not change the output.
func TestVisualizeDeterministic(t *testing.T) {
	words := []string{"approach", "apple", "apply", "apparatus", "apprentice", "apples"}

	forward := New()
	for _, w := range words {
		forward.Insert(w)
	}
	backward := New()
	for i := len(words) - 1; i >= 0; i-- {
		backward.Insert(words[i])
	}

	assert.Equal(t, forward.String(), backward.String())
	assert.Equal(t, forward.NodeCount()+1, strings.Count(forward.String(), "\n"), "One line per node")
}

// TestVisualizeDeepTrie renders a word far longer than any recursion would like.
func TestVisualizeDeepTrie(t *testing.T) {
	tr := New()
	tr.Insert(strings.Repeat("z", 5000))

	var sb strings.Builder
	require.NoError(t, tr.Visualize(&sb))
	assert.Equal(t, 5001, strings.Count(sb.String(), "\n"))
}

// TestVisualizeWriteError verifies a failing sink is reported, not swallowed.
func TestVisualizeWriteError(t *testing.T) {
	tr := New()
	for _, w := range []string{"hello", "world"} {
		tr.Insert(w)
	}

	cause := errors.New("disk full")
	err := tr.Visualize(&failingWriter{limit: 3, err: cause})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRender)
	assert.ErrorIs(t, err, cause)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, cause, renderErr.Err)
	assert.Contains(t, err.Error(), "disk full")
}

// TestVisualizeShortWrite verifies io.ErrShortWrite from the buffer flush is wrapped too.
func TestVisualizeShortWrite(t *testing.T) {
	tr := New()
	tr.Insert("a")

	err := tr.Visualize(shortWriter{})
	assert.ErrorIs(t, err, ErrRender)
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

// shortWriter accepts nothing and reports no error.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return 0, nil
}

func BenchmarkVisualize(b *testing.B) {
	words := generateRandomWords(rand.New(rand.NewSource(1)), 5000, 4, 12, "abcdefghijklmnopqrstuvwxyz")
	tr := New()
	for _, w := range words {
		tr.Insert(w)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Visualize(io.Discard)
	}
}
