package sink

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// TreeWriter writes the indented tree rendering of the trie.
type TreeWriter struct {
	Out io.Writer
}

func (w TreeWriter) Write(t *trie.Trie) error {
	return t.Visualize(w.Out)
}

// ListWriter exports the stored words, one entry per word in rune order.
type ListWriter struct {
	Out    io.Writer
	Format string // txt, csv, tsv or json
	Key    string // header (csv) or field name (json)
	Count  int    // number of words written by the last Write
}

func (w *ListWriter) Write(t *trie.Trie) error {
	w.Count = 0
	key := w.Key
	if key == "" {
		key = "word"
	}

	switch w.Format {
	case "", "txt":
		return w.writeText(t)
	case "csv":
		return w.writeCsv(t, ',', key)
	case "tsv":
		return w.writeCsv(t, '\t', key)
	case "json":
		return w.writeJson(t, key)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, w.Format)
	}
}

func (w *ListWriter) writeText(t *trie.Trie) error {
	bw := bufio.NewWriter(w.Out)
	var err error
	t.ForEachWord(func(word string) bool {
		if _, err = bw.WriteString(word + "\n"); err != nil {
			return false
		}
		w.Count++
		return true
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

func (w *ListWriter) writeCsv(t *trie.Trie, separator rune, key string) error {
	writer := csv.NewWriter(w.Out)
	writer.Comma = separator

	if err := writer.Write([]string{key}); err != nil {
		return err
	}

	var err error
	t.ForEachWord(func(word string) bool {
		if err = writer.Write([]string{word}); err != nil {
			return false
		}
		w.Count++
		return true
	})
	if err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

func (w *ListWriter) writeJson(t *trie.Trie, key string) error {
	bw := bufio.NewWriter(w.Out)
	encoder := json.NewEncoder(bw)
	encoder.SetEscapeHTML(false)

	if _, err := bw.WriteString("["); err != nil {
		return err
	}

	var err error
	t.ForEachWord(func(word string) bool {
		if w.Count > 0 {
			if _, err = bw.WriteString(","); err != nil {
				return false
			}
		}
		if err = encoder.Encode(map[string]string{key: word}); err != nil {
			return false
		}
		w.Count++
		return true
	})
	if err != nil {
		return err
	}

	if _, err := bw.WriteString("]\n"); err != nil {
		return err
	}
	return bw.Flush()
}
