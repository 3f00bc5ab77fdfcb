package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/khalid-nowaf/wordtrie/pkg/sink"
)

// ErrMissingWords is returned by contains --strict when a queried word is not stored.
var ErrMissingWords = errors.New("some words are not in the trie")

// BuildCmd inserts the words and writes the rendering of the trie.
type BuildCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Input files holding one word per line, or CSV/JSON records"`
	Output string   `short:"o" help:"File to write the rendering to, - for stdout" default:"output.txt"`
}

// Run executes the build command.
func (cmd *BuildCmd) Run(ctx *Context) error {
	start := time.Now()

	t, _, err := loadTrie(ctx, cmd.Files)
	if err != nil {
		return err
	}

	err = writeOutput(ctx, cmd.Output, t, func(out io.Writer) sink.Writer {
		return sink.TreeWriter{Out: out}
	})
	if err != nil {
		return fmt.Errorf("writing rendering: %w", err)
	}

	ctx.Logger.Info().Str("output", cmd.Output).Dur("elapsed", time.Since(start)).Msg("Rendering written")
	return nil
}

// ContainsCmd checks words against the trie.
type ContainsCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Input files holding the stored words"`
	Words  []string `name:"word" short:"w" required:"" help:"Word to look up, can be repeated"`
	Strict bool     `help:"Fail when any of the words is missing"`
}

// Run prints one "word<TAB>true|false" line per queried word.
func (cmd *ContainsCmd) Run(ctx *Context) error {
	t, _, err := loadTrie(ctx, cmd.Files)
	if err != nil {
		return err
	}

	missing := 0
	for _, word := range cmd.Words {
		found := t.Contains(word)
		if !found {
			missing++
		}
		if _, err := fmt.Fprintf(ctx.Stdout, "%s\t%t\n", word, found); err != nil {
			return err
		}
	}

	if cmd.Strict && missing > 0 {
		return fmt.Errorf("%w: %d of %d", ErrMissingWords, missing, len(cmd.Words))
	}
	return nil
}

// ExportCmd writes the distinct stored words.
type ExportCmd struct {
	Files        []string `arg:"" type:"existingfile" help:"Input files holding the words"`
	Output       string   `short:"o" help:"File to write the words to, - for stdout" default:"-"`
	OutputFormat string   `help:"Output format" enum:"txt,csv,tsv,json" default:"txt"`
}

// Run executes the export command.
func (cmd *ExportCmd) Run(ctx *Context) error {
	t, stats, err := loadTrie(ctx, cmd.Files)
	if err != nil {
		return err
	}

	writer := &sink.ListWriter{Format: cmd.OutputFormat, Key: ctx.Key}
	err = writeOutput(ctx, cmd.Output, t, func(out io.Writer) sink.Writer {
		writer.Out = out
		return writer
	})
	if err != nil {
		return fmt.Errorf("exporting words: %w", err)
	}

	stats.Output = writer.Count
	ctx.Logger.Info().Str("output", cmd.Output).Int("words", stats.Output).Msg("Words exported")
	return nil
}

// StatsCmd prints the size of the trie built from the files.
type StatsCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Input files holding the words"`
}

// Run executes the stats command.
func (cmd *StatsCmd) Run(ctx *Context) error {
	_, stats, err := loadTrie(ctx, cmd.Files)
	if err != nil {
		return err
	}
	stats.Render(ctx.Stdout)
	return nil
}
