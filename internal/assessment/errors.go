package assessment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters reports a malformed range, count, or quiz mode.
	ErrInvalidParameters = errors.New("invalid quiz parameters")

	// ErrNoMistakes reports a review quiz request while no word has a recorded mistake.
	ErrNoMistakes = errors.New("no mistakes to test")

	// ErrMissingUser reports a submission without an identified user.
	ErrMissingUser = errors.New("user id is required")
)

// InsufficientWordsError reports that the catalog cannot satisfy a quiz
// request, with the shortfall numbers so the caller can adjust range or count.
type InsufficientWordsError struct {
	Available int
	Required  int
}

func (e *InsufficientWordsError) Error() string {
	return fmt.Sprintf("not enough words available: found %d, need %d", e.Available, e.Required)
}
