package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func collect(t *testing.T, content string, format Format, key string) ([]string, error) {
	t.Helper()
	words := []string{}
	err := Decode(strings.NewReader(content), format, key, func(word string) error {
		words = append(words, word)
		return nil
	})
	return words, err
}

func TestDetectFormat(t *testing.T) {
	testCases := []struct {
		path     string
		expected Format
	}{
		{"words.txt", FormatText},
		{"words", FormatText},
		{"WORDS.CSV", FormatCSV},
		{"dir/words.tsv", FormatTSV},
		{"words.json", FormatJSON},
		{"words.md", FormatText},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, DetectFormat(tc.path), tc.path)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("CSV")
	assert.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("")
	assert.NoError(t, err)
	assert.Equal(t, FormatAuto, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// TestDecodeText verifies trimming, blank lines and BOM handling without any case folding.
func TestDecodeText(t *testing.T) {
	words, err := collect(t, "\uFEFFhello\n  world \r\n\n\tHi\n", FormatText, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", "Hi"}, words)
}

func TestDecodeCsv(t *testing.T) {
	content := "id,word,lang\n1,hello,en\n2, bonjour ,fr\n3,,de\n4\n"
	words, err := collect(t, content, FormatCSV, "word")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "bonjour"}, words)
}

func TestDecodeTsvCustomKey(t *testing.T) {
	content := "term\tcount\napple\t3\napply\t1\n"
	words, err := collect(t, content, FormatTSV, "term")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "apply"}, words)
}

func TestDecodeCsvMissingColumn(t *testing.T) {
	_, err := collect(t, "id,name\n1,x\n", FormatCSV, "word")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestDecodeCsvEmpty(t *testing.T) {
	words, err := collect(t, "", FormatCSV, "word")
	require.NoError(t, err)
	assert.Empty(t, words)
}

// TestDecodeJson verifies strings and records can be mixed in one array.
func TestDecodeJson(t *testing.T) {
	content := `["hello", {"word": "world", "n": 1}, " hi ", ""]`
	words, err := collect(t, content, FormatJSON, "word")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", "hi"}, words)
}

func TestDecodeJsonErrors(t *testing.T) {
	_, err := collect(t, `[{"name": "x"}]`, FormatJSON, "word")
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = collect(t, `[{"word": 3}]`, FormatJSON, "word")
	assert.Error(t, err)

	_, err = collect(t, `[1]`, FormatJSON, "word")
	assert.Error(t, err)

	_, err = collect(t, `["a"`, FormatJSON, "word")
	assert.Error(t, err, "Unterminated array should fail")
}

// TestDecodeInvalidUTF8 verifies a Latin-1 entry is reported instead of being
// read as U+FFFD.
func TestDecodeInvalidUTF8(t *testing.T) {
	words, err := collect(t, "hello\ncaf\xe9\nworld\n", FormatText, "")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Equal(t, []string{"hello"}, words, "Words before the bad entry are kept")

	_, err = collect(t, "word\ncaf\xe9\n", FormatCSV, "word")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestReadWordsInvalidUTF8(t *testing.T) {
	path := writeFile(t, "latin1.txt", "caf\xe9\n")
	_, err := ReadWords(context.Background(), path, Options{})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), path)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := collect(t, "a", Format("xml"), "")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// TestDecodeStopsOnCallbackError verifies the callback error is returned as is.
func TestDecodeStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Decode(strings.NewReader("a\nb\nc\n"), FormatText, "", func(string) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestReadWords(t *testing.T) {
	path := writeFile(t, "words.csv", "word\nhello\nhelp\n")
	words, err := ReadWords(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "help"}, words)

	// an explicit format wins over the extension
	words, err = ReadWords(context.Background(), path, Options{Format: FormatText})
	require.NoError(t, err)
	assert.Equal(t, []string{"word", "hello", "help"}, words)
}

func TestReadWordsMissingFile(t *testing.T) {
	_, err := ReadWords(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestReadAllKeepsOrder verifies results come back in the order of the paths.
func TestReadAllKeepsOrder(t *testing.T) {
	paths := []string{
		writeFile(t, "a.txt", "apple\napp\n"),
		writeFile(t, "b.json", `["banana"]`),
		writeFile(t, "c.csv", "word\ncherry\n"),
	}

	files, err := ReadAll(context.Background(), paths, Options{})
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, paths[0], files[0].Path)
	assert.Equal(t, []string{"apple", "app"}, files[0].Words)
	assert.Equal(t, []string{"banana"}, files[1].Words)
	assert.Equal(t, []string{"cherry"}, files[2].Words)
}

func TestReadAllFails(t *testing.T) {
	paths := []string{
		writeFile(t, "a.txt", "apple\n"),
		filepath.Join(t.TempDir(), "missing.txt"),
	}
	_, err := ReadAll(context.Background(), paths, Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadAll(ctx, []string{writeFile(t, "a.txt", "apple\n")}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
