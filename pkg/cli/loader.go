package cli

import (
	"io"
	"time"

	"github.com/khalid-nowaf/wordtrie/pkg/sink"
	"github.com/khalid-nowaf/wordtrie/pkg/source"
	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// loadTrie reads every file and inserts its words, files are read
// concurrently but the trie is only touched from this goroutine.
func loadTrie(ctx *Context, files []string) (*trie.Trie, *Stats, error) {
	start := time.Now()

	format, err := source.ParseFormat(ctx.Format)
	if err != nil {
		return nil, nil, err
	}

	ctx.Logger.Debug().Strs("files", files).Str("format", string(format)).Msg("Reading words")
	inputs, err := source.ReadAll(ctx.runContext(), files, source.Options{Format: format, Key: ctx.Key})
	if err != nil {
		return nil, nil, err
	}

	t := trie.New()
	stats := &Stats{Files: len(inputs)}
	for _, input := range inputs {
		for _, word := range input.Words {
			t.Insert(word)
		}
		stats.Input += len(input.Words)
		ctx.Logger.Debug().Str("path", input.Path).Int("words", len(input.Words)).Msg("Inserted file")
	}

	stats.update(t)
	stats.LoadTime = time.Since(start)
	ctx.Logger.Info().
		Int("files", stats.Files).
		Int("words", stats.Words).
		Int("nodes", stats.Nodes).
		Dur("elapsed", stats.LoadTime).
		Msg("Trie loaded")

	return t, stats, nil
}

// writeOutput writes t to path, or to ctx.Stdout when path is "-".
func writeOutput(ctx *Context, path string, t *trie.Trie, newWriter func(out io.Writer) sink.Writer) error {
	if path == "" || path == sink.Stdout {
		return newWriter(ctx.Stdout).Write(t)
	}
	return sink.WriteFile(path, t, newWriter)
}
