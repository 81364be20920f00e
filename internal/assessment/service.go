package assessment

import (
	"context"
	"math/rand"

	"github.com/at-ishikawa/wordquiz/internal/record"
	"github.com/at-ishikawa/wordquiz/internal/word"
)

// Service is the quiz engine façade the request layer talks to.
type Service struct {
	words     word.WordRepository
	selector  *Selector
	generator *Generator
	recorder  *Recorder
	rng       *rand.Rand
}

// NewService creates a Service. rng may be nil for the shared math/rand
// source; tests pass a seeded source for exact-output assertions.
func NewService(words word.WordRepository, records record.RecordRepository, rng *rand.Rand) *Service {
	return &Service{
		words:     words,
		selector:  NewSelector(words, rng),
		generator: NewGenerator(words, rng),
		recorder:  NewRecorder(records),
		rng:       rng,
	}
}

// StartQuiz selects count words from [from, to] and renders them as
// questions for the given mode.
func (s *Service) StartQuiz(ctx context.Context, from, to int64, mode Mode, count int) ([]Question, error) {
	selected, err := s.selector.Select(ctx, from, to, count)
	if err != nil {
		return nil, err
	}
	return s.generator.Generate(ctx, selected, mode)
}

// StartReviewQuiz builds a quiz out of every word with a recorded mistake,
// in random order. It fails with ErrNoMistakes when the mistake set is empty.
func (s *Service) StartReviewQuiz(ctx context.Context, mode Mode) ([]Question, error) {
	mistaken, err := s.words.FindMistaken(ctx)
	if err != nil {
		return nil, err
	}
	if len(mistaken) == 0 {
		return nil, ErrNoMistakes
	}

	s.shuffle(len(mistaken), func(i, j int) {
		mistaken[i], mistaken[j] = mistaken[j], mistaken[i]
	})
	return s.generator.Generate(ctx, mistaken, mode)
}

// SubmitQuiz records a completed answer sheet for the given user.
func (s *Service) SubmitQuiz(ctx context.Context, userID int64, answers []Answer) (Result, error) {
	return s.recorder.Record(ctx, userID, answers)
}

func (s *Service) shuffle(n int, swap func(i, j int)) {
	if s.rng != nil {
		s.rng.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}
