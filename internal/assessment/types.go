// Package assessment implements the adaptive quiz engine: word selection
// biased toward recorded mistakes, question synthesis with distractors, and
// outcome recording that feeds the statistics the selection reads.
package assessment

import (
	"fmt"
	"strings"
)

// Mode determines how a selected word becomes a question.
type Mode string

const (
	// ModeChoiceTermToMeaning shows the term and offers translations.
	ModeChoiceTermToMeaning Mode = "mc_eng_to_chi"
	// ModeChoiceMeaningToTerm shows the translation and offers terms.
	ModeChoiceMeaningToTerm Mode = "mc_chi_to_eng"
	// ModeSpelling shows the translation and expects the term typed in full.
	ModeSpelling Mode = "spelling"
)

// ParseMode converts a request string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeChoiceTermToMeaning, ModeChoiceMeaningToTerm, ModeSpelling:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: unknown quiz mode %q", ErrInvalidParameters, s)
}

// Question is one quiz item. Options is present only for choice modes and
// contains the answer at an unpredictable position.
type Question struct {
	WordID  int64    `json:"word_id"`
	Prompt  string   `json:"question"`
	Answer  string   `json:"answer"`
	Options []string `json:"options,omitempty"`
}

// Answer is one graded entry of a submitted answer sheet.
type Answer struct {
	WordID     int64  `json:"word_id"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
}

// Result is the outcome of recording a submission.
type Result struct {
	Score  int   `json:"score"`
	TestID int64 `json:"test_id"`
}

// GradeSpelling compares a typed answer against the expected term,
// ignoring case and surrounding whitespace.
func GradeSpelling(expected, given string) bool {
	return strings.EqualFold(strings.TrimSpace(expected), strings.TrimSpace(given))
}
