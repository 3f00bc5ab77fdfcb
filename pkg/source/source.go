// Package source reads the word lists that feed a trie.
//
// Words are read one per line from text files, from one column of a CSV/TSV
// file, or from a JSON array of strings or records. Surrounding whitespace is
// trimmed and blank entries are skipped, nothing else is changed.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Format of an input file.
type Format string

const (
	FormatAuto Format = ""
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
)

// DefaultKey is the column (CSV) or field (JSON) holding the word.
const DefaultKey = "word"

var (
	ErrUnknownFormat = errors.New("unknown input format")
	ErrMissingKey    = errors.New("missing word key")
	ErrInvalidUTF8   = errors.New("word is not valid UTF-8")
)

// Options controls how a file is decoded.
type Options struct {
	Format Format // FormatAuto picks the format from the file extension
	Key    string // column or field name for CSV and JSON, DefaultKey when empty
}

func (o Options) key() string {
	if o.Key == "" {
		return DefaultKey
	}
	return o.Key
}

// File holds the words read from one path, in file order.
type File struct {
	Path  string
	Words []string
}

// DetectFormat returns the format matching the extension of path,
// anything unknown is read as plain text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".tsv":
		return FormatTSV
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatAuto, FormatText, FormatCSV, FormatTSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ReadAll reads every path concurrently and returns one File per path in the
// same order as paths. The first failure cancels the remaining reads.
func ReadAll(ctx context.Context, paths []string, opts Options) ([]File, error) {
	files := make([]File, len(paths))
	group, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			words, err := ReadWords(ctx, path, opts)
			if err != nil {
				return err
			}
			files[i] = File{Path: path, Words: words}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// ReadWords opens path and returns all the words it holds, it stops early
// when ctx is done.
func ReadWords(ctx context.Context, path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	format := opts.Format
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	words := []string{}
	err = Decode(file, format, opts.key(), func(word string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		words = append(words, word)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return words, nil
}

// Decode reads r in the given format and calls onEachWord for every word found.
// Decoding stops at the first error returned by onEachWord, and at the first
// word that is not valid UTF-8 (ErrInvalidUTF8), such input has to be
// converted before it is read.
func Decode(r io.Reader, format Format, key string, onEachWord func(word string) error) error {
	if key == "" {
		key = DefaultKey
	}
	onEachWord = validUTF8(onEachWord)
	switch format {
	case FormatText, FormatAuto:
		return decodeText(r, onEachWord)
	case FormatCSV:
		return decodeCsv(r, ',', key, onEachWord)
	case FormatTSV:
		return decodeCsv(r, '\t', key, onEachWord)
	case FormatJSON:
		return decodeJson(r, key, onEachWord)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// normalize trims the word and a leading byte order mark, an empty result
// means the entry is skipped.
func normalize(word string) string {
	return strings.TrimSpace(strings.TrimPrefix(word, "\uFEFF"))
}

func validUTF8(onEachWord func(word string) error) func(word string) error {
	return func(word string) error {
		if !utf8.ValidString(word) {
			return fmt.Errorf("%w: %q", ErrInvalidUTF8, word)
		}
		return onEachWord(word)
	}
}
