package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultFilename is the fixed table name looked up in the working directory.
const DefaultFilename = "wordfreq-en-25000-log.json"

// ParseError reports input that is not a well-formed JSON array of
// [word, frequency] pairs. Check for it with errors.As in calling code.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the table at path. The file handle is held only for the
// duration of the decode. A missing or unreadable file surfaces as the
// wrapped open error (errors.Is with fs.ErrNotExist still works);
// anything wrong with the content surfaces as a *ParseError. There is no
// recovery and no partial result.
func Load(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)

	var c Corpus
	if err := dec.Decode(&c); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	// A null document decodes as a no-op and leaves c nil; the table
	// must be an actual array.
	if c == nil {
		return nil, &ParseError{Path: path, Err: errors.New("table is null, want array")}
	}

	// A valid table is a single JSON document, nothing after it.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: path, Err: errors.New("trailing data after table")}
	}

	return c, nil
}
