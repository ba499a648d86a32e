// Package corpus defines the word-frequency table and loads it from disk.
package corpus

import (
	"encoding/json"
	"fmt"
)

// Entry is a single (word, frequency) pair from the source table.
// Frequency is an opaque rank value (the source table is log-scaled);
// higher means more frequent. It is only ever compared, never used
// arithmetically.
type Entry struct {
	Word      string
	Frequency float64
}

// Corpus is the full ordered table as loaded from disk. Duplicate words
// are retained in load order; no uniqueness is enforced.
type Corpus []Entry

// UnmarshalJSON decodes the wire form of an entry, the two-element array
// [word, frequency]. Wrong arity or wrong element types fail the decode
// outright; malformed entries are never skipped.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("entry has %d elements, want 2", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Word); err != nil {
		return fmt.Errorf("entry word: %w", err)
	}
	if err := json.Unmarshal(pair[1], &e.Frequency); err != nil {
		return fmt.Errorf("entry frequency: %w", err)
	}
	return nil
}
