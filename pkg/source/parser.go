package source

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// longest line accepted from a text file
const maxLineSize = 1 << 20

func decodeText(r io.Reader, onEachWord func(word string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		word := normalize(scanner.Text())
		if word == "" {
			continue
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func decodeCsv(r io.Reader, separator rune, key string, onEachWord func(word string) error) error {
	reader := csv.NewReader(r)
	reader.Comma = separator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// the first line is the header, it tells where the word column is
	headers, err := reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	column := -1
	for i, header := range headers {
		if normalize(header) == key {
			column = i
			break
		}
	}
	if column < 0 {
		return fmt.Errorf("%w: no column %q in header %v", ErrMissingKey, key, headers)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if column >= len(record) {
			continue
		}

		word := normalize(record[column])
		if word == "" {
			continue
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}
}

// decodeJson reads an array whose elements are either strings or objects
// holding the word under key.
func decodeJson(r io.Reader, key string, onEachWord func(word string) error) error {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}

	for decoder.More() {
		var element json.RawMessage
		if err := decoder.Decode(&element); err != nil {
			return err
		}

		word, err := wordFromElement(element, key)
		if err != nil {
			return err
		}
		if word == "" {
			continue
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err := decoder.Token()
	return err
}

func wordFromElement(element json.RawMessage, key string) (string, error) {
	var word string
	if err := json.Unmarshal(element, &word); err == nil {
		return normalize(word), nil
	}

	record := map[string]interface{}{}
	if err := json.Unmarshal(element, &record); err != nil {
		return "", fmt.Errorf("unexpected element %s: %w", element, err)
	}
	value, found := record[key]
	if !found {
		return "", fmt.Errorf("%w: %q in record %s", ErrMissingKey, key, element)
	}
	word, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%q in record %s is not a string", key, element)
	}
	return normalize(word), nil
}
