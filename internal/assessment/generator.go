package assessment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/at-ishikawa/wordquiz/internal/word"
)

// distractorCount is how many wrong options accompany the answer in a
// choice question when the catalog is large enough.
const distractorCount = 3

// Generator turns selected words into question payloads. Distractors come
// from the whole catalog, not the selected set, so they stay plausible even
// for small quizzes.
type Generator struct {
	words word.WordRepository
	rng   *rand.Rand
}

// NewGenerator creates a Generator. rng may be nil to use the shared
// math/rand source.
func NewGenerator(words word.WordRepository, rng *rand.Rand) *Generator {
	return &Generator{words: words, rng: rng}
}

// Generate produces one question per selected word for the given mode.
func (g *Generator) Generate(ctx context.Context, selected []word.Word, mode Mode) ([]Question, error) {
	if mode == ModeSpelling {
		questions := make([]Question, 0, len(selected))
		for _, w := range selected {
			questions = append(questions, Question{
				WordID: w.ID,
				Prompt: w.Translation.String,
				Answer: w.Word,
			})
		}
		return questions, nil
	}
	if mode != ModeChoiceTermToMeaning && mode != ModeChoiceMeaningToTerm {
		return nil, fmt.Errorf("%w: unknown quiz mode %q", ErrInvalidParameters, mode)
	}

	pairs, err := g.words.ListTranslationPairs(ctx)
	if err != nil {
		return nil, err
	}

	questions := make([]Question, 0, len(selected))
	for _, w := range selected {
		var prompt, answer string
		var pool []string

		switch mode {
		case ModeChoiceTermToMeaning:
			prompt = fmt.Sprintf("%s (%s)", w.Word, w.PartOfSpeech.String)
			answer = w.Translation.String
			for _, p := range pairs {
				if p.Translation != answer {
					pool = append(pool, p.Translation)
				}
			}
		case ModeChoiceMeaningToTerm:
			prompt = w.Translation.String
			answer = w.Word
			for _, p := range pairs {
				if p.Word != answer {
					pool = append(pool, p.Word)
				}
			}
		}

		options := append(g.sampleDistractors(pool), answer)
		g.shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, Question{
			WordID:  w.ID,
			Prompt:  prompt,
			Answer:  answer,
			Options: options,
		})
	}
	return questions, nil
}

// sampleDistractors picks up to distractorCount values from the pool
// uniformly without replacement. A pool smaller than that is taken whole;
// a tiny catalog degrades the question rather than failing it.
func (g *Generator) sampleDistractors(pool []string) []string {
	n := distractorCount
	if len(pool) < n {
		n = len(pool)
	}

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	g.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n:n]
}

func (g *Generator) shuffle(n int, swap func(i, j int)) {
	if g.rng != nil {
		g.rng.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}
