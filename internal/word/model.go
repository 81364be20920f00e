// Package word provides word catalog storage and statistics.
package word

import (
	"database/sql"
	"time"
)

// Word is a catalog entry with its accumulated quiz statistics.
type Word struct {
	ID           int64          `db:"id"`
	Word         string         `db:"word"`
	PartOfSpeech sql.NullString `db:"part_of_speech"`
	Translation  sql.NullString `db:"translation"`
	TestCount    int            `db:"test_count"`
	MistakeCount int            `db:"mistake_count"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// ErrorRate returns mistakes per test, or 0 for an untested word.
// An untested word carries no signal and must not rank as a known weak spot.
func (w Word) ErrorRate() float64 {
	if w.TestCount == 0 {
		return 0
	}
	return float64(w.MistakeCount) / float64(w.TestCount)
}

// TranslationPair is the catalog projection used to source quiz distractors.
type TranslationPair struct {
	Word        string `db:"word"`
	Translation string `db:"translation"`
}

// Entry is a new catalog row for bulk import.
type Entry struct {
	Word         string
	PartOfSpeech string
	Translation  string
}
