package wordlist

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/wordquiz/internal/word"
)

// ImportResult summarizes one upload.
type ImportResult struct {
	Parsed   int
	Inserted int
}

// Importer loads parsed word lists into the catalog.
type Importer struct {
	words word.WordRepository
}

// NewImporter creates an Importer.
func NewImporter(words word.WordRepository) *Importer {
	return &Importer{words: words}
}

// Import parses the word list and inserts its entries, skipping terms that
// already exist in the catalog. The Inserted count excludes those skips.
func (i *Importer) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	entries, err := Parse(r)
	if err != nil {
		return ImportResult{}, err
	}
	if len(entries) == 0 {
		return ImportResult{}, nil
	}

	inserted, err := i.words.BulkCreateIgnoreDuplicates(ctx, entries)
	if err != nil {
		return ImportResult{}, fmt.Errorf("import word list: %w", err)
	}
	return ImportResult{Parsed: len(entries), Inserted: inserted}, nil
}
