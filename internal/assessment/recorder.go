package assessment

import (
	"context"
	"math"

	"github.com/at-ishikawa/wordquiz/internal/record"
)

// Recorder scores a completed answer sheet and persists its outcome: the
// test record, a mistake link per wrong answer, and the word counters, all
// as one submission-scoped transaction.
type Recorder struct {
	records record.RecordRepository
}

// NewRecorder creates a Recorder.
func NewRecorder(records record.RecordRepository) *Recorder {
	return &Recorder{records: records}
}

// Record persists one submission and returns its score and test id.
// Submissions are not deduplicated; the same sheet recorded twice counts
// twice. An empty sheet records a test with score 0.
func (r *Recorder) Record(ctx context.Context, userID int64, answers []Answer) (Result, error) {
	if userID <= 0 {
		return Result{}, ErrMissingUser
	}

	var correct int
	wordIDs := make([]int64, 0, len(answers))
	var mistakeWordIDs []int64
	for _, a := range answers {
		wordIDs = append(wordIDs, a.WordID)
		if a.IsCorrect {
			correct++
		} else {
			mistakeWordIDs = append(mistakeWordIDs, a.WordID)
		}
	}

	var score int
	if len(answers) > 0 {
		score = int(math.Round(100 * float64(correct) / float64(len(answers))))
	}

	testID, err := r.records.CreateSubmission(ctx, record.Submission{
		UserID:         userID,
		Score:          score,
		WordIDs:        wordIDs,
		MistakeWordIDs: mistakeWordIDs,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Score: score, TestID: testID}, nil
}
