package assessment

import (
	"context"
	"math/rand"

	"github.com/at-ishikawa/wordquiz/internal/word"
)

// mistakeShare caps how much of a quiz is drawn from known-weak words.
// The rest of the quiz spreads coverage across the least-tested words.
const mistakeShare = 0.2

// Selector picks a quiz's word set from the catalog, blending words with the
// worst error rates and words with the least exposure inside the requested
// id range.
type Selector struct {
	words word.WordRepository
	rng   *rand.Rand
}

// NewSelector creates a Selector. rng may be nil, in which case the shared
// math/rand source is used; tests pass a seeded source to pin the order.
func NewSelector(words word.WordRepository, rng *rand.Rand) *Selector {
	return &Selector{words: words, rng: rng}
}

// Select returns exactly count quizzable words with ids in [from, to].
// At most floor(count*0.2) come from the mistake pool; the remainder is
// filled with the least-tested words outside that pool. The combined set is
// shuffled so question order does not reveal which words are reviews.
func (s *Selector) Select(ctx context.Context, from, to int64, count int) ([]word.Word, error) {
	if from > to || count <= 0 {
		return nil, ErrInvalidParameters
	}

	available, err := s.words.CountInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if available < count {
		return nil, &InsufficientWordsError{Available: available, Required: count}
	}

	var selected []word.Word
	mistakeSlots := int(float64(count) * mistakeShare)
	if mistakeSlots > 0 {
		// Fewer qualifying words than slots is the common case; take what exists.
		selected, err = s.words.FindTopMistakesInRange(ctx, from, to, mistakeSlots)
		if err != nil {
			return nil, err
		}
	}

	excludeIDs := make([]int64, 0, len(selected))
	for _, w := range selected {
		excludeIDs = append(excludeIDs, w.ID)
	}

	fresh, err := s.words.FindLeastTestedInRange(ctx, from, to, excludeIDs, count-len(selected))
	if err != nil {
		return nil, err
	}
	selected = append(selected, fresh...)

	// The fresh pool can starve when the exclusion set eats most of a tight
	// range. That is a hard failure; backfilling from the mistake pool would
	// silently break the 20% cap.
	if len(selected) < count {
		return nil, &InsufficientWordsError{Available: len(selected), Required: count}
	}

	s.shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected, nil
}

func (s *Selector) shuffle(n int, swap func(i, j int)) {
	if s.rng != nil {
		s.rng.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}
