// Package sink writes the content of a trie to files or the console.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// Stdout is the path that selects the console instead of a file.
const Stdout = "-"

var ErrUnknownFormat = errors.New("unknown output format")

// Writer writes a trie to its destination.
type Writer interface {
	Write(t *trie.Trie) error
}

// Open returns the destination for path, the console for "" or Stdout,
// otherwise a new file (parent directories are created).
// The caller must close it.
func Open(path string) (io.WriteCloser, error) {
	if path == "" || path == Stdout {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// WriteFile opens path, writes t with w and closes it, the close error is not lost.
func WriteFile(path string, t *trie.Trie, newWriter func(out io.Writer) Writer) (err error) {
	out, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	return newWriter(out).Write(t)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
