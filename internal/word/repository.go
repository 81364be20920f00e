package word

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordquiz/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/word/repository.go -package=mock_word

const selectColumns = "id, word, part_of_speech, translation, test_count, mistake_count, created_at, updated_at"

// WordRepository defines operations for the word catalog and its statistics.
type WordRepository interface {
	Count(ctx context.Context) (int, error)
	CountInRange(ctx context.Context, from, to int64) (int, error)
	FindTopMistakesInRange(ctx context.Context, from, to int64, limit int) ([]Word, error)
	FindLeastTestedInRange(ctx context.Context, from, to int64, excludeIDs []int64, limit int) ([]Word, error)
	FindMistaken(ctx context.Context) ([]Word, error)
	FindTopMistaken(ctx context.Context, limit int) ([]Word, error)
	ListTranslationPairs(ctx context.Context) ([]TranslationPair, error)
	IncrementTestCount(ctx context.Context, wordID int64) error
	IncrementMistakeCount(ctx context.Context, wordID int64) error
	BulkCreateIgnoreDuplicates(ctx context.Context, entries []Entry) (int, error)
	DeleteAll(ctx context.Context) error
}

// DBWordRepository implements WordRepository using MySQL.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

// Count returns the number of words in the catalog, including rows
// without a translation.
func (r *DBWordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return count, nil
}

// CountInRange returns the number of quizzable words with an id in [from, to].
// Rows without a translation are not quizzable and excluded.
func (r *DBWordRepository) CountInRange(ctx context.Context, from, to int64) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM words WHERE id BETWEEN ? AND ? AND translation IS NOT NULL"
	if err := r.db.GetContext(ctx, &count, query, from, to); err != nil {
		return 0, fmt.Errorf("count words in range(%d, %d): %w", from, to, err)
	}
	return count, nil
}

// FindTopMistakesInRange returns up to limit mistaken words in [from, to],
// worst error rate first. Ties break by mistake count, then randomly so a
// flat catalog does not always surface the same rows.
func (r *DBWordRepository) FindTopMistakesInRange(ctx context.Context, from, to int64, limit int) ([]Word, error) {
	query := "SELECT " + selectColumns + " FROM words" +
		" WHERE id BETWEEN ? AND ? AND mistake_count > 0 AND translation IS NOT NULL" +
		" ORDER BY (CASE WHEN test_count > 0 THEN mistake_count / test_count ELSE 0 END) DESC, mistake_count DESC, RAND()" +
		" LIMIT ?"

	var words []Word
	if err := r.db.SelectContext(ctx, &words, query, from, to, limit); err != nil {
		return nil, fmt.Errorf("find top mistakes in range(%d, %d): %w", from, to, err)
	}
	return words, nil
}

// FindLeastTestedInRange returns up to limit quizzable words in [from, to]
// excluding excludeIDs, least tested first with random tie-breaks.
func (r *DBWordRepository) FindLeastTestedInRange(ctx context.Context, from, to int64, excludeIDs []int64, limit int) ([]Word, error) {
	query := "SELECT " + selectColumns + " FROM words" +
		" WHERE id BETWEEN ? AND ? AND translation IS NOT NULL"
	args := []interface{}{from, to}

	if len(excludeIDs) > 0 {
		inQuery, inArgs, err := sqlx.In(" AND id NOT IN (?)", excludeIDs)
		if err != nil {
			return nil, fmt.Errorf("build exclusion clause: %w", err)
		}
		query += inQuery
		args = append(args, inArgs...)
	}

	query += " ORDER BY test_count ASC, RAND() LIMIT ?"
	args = append(args, limit)

	var words []Word
	if err := r.db.SelectContext(ctx, &words, query, args...); err != nil {
		return nil, fmt.Errorf("find least tested in range(%d, %d): %w", from, to, err)
	}
	return words, nil
}

// FindMistaken returns every word with at least one recorded mistake.
func (r *DBWordRepository) FindMistaken(ctx context.Context) ([]Word, error) {
	query := "SELECT " + selectColumns + " FROM words WHERE mistake_count > 0"

	var words []Word
	if err := r.db.SelectContext(ctx, &words, query); err != nil {
		return nil, fmt.Errorf("find mistaken words: %w", err)
	}
	return words, nil
}

// FindTopMistaken returns up to limit mistaken words ordered by error rate
// for the statistics view, alphabetical for equal rates.
func (r *DBWordRepository) FindTopMistaken(ctx context.Context, limit int) ([]Word, error) {
	query := "SELECT " + selectColumns + " FROM words" +
		" WHERE mistake_count > 0" +
		" ORDER BY (CASE WHEN test_count > 0 THEN mistake_count / test_count ELSE 0 END) DESC, mistake_count DESC, word ASC" +
		" LIMIT ?"

	var words []Word
	if err := r.db.SelectContext(ctx, &words, query, limit); err != nil {
		return nil, fmt.Errorf("find top mistaken words: %w", err)
	}
	return words, nil
}

// ListTranslationPairs returns the word/translation projection of the whole
// catalog. Distractors are drawn from this, not from a quiz's selection.
func (r *DBWordRepository) ListTranslationPairs(ctx context.Context) ([]TranslationPair, error) {
	var pairs []TranslationPair
	query := "SELECT word, translation FROM words WHERE translation IS NOT NULL"
	if err := r.db.SelectContext(ctx, &pairs, query); err != nil {
		return nil, fmt.Errorf("list translation pairs: %w", err)
	}
	return pairs, nil
}

// IncrementTestCount bumps a word's test counter by one.
func (r *DBWordRepository) IncrementTestCount(ctx context.Context, wordID int64) error {
	return IncrementTestCounts(ctx, r.db, wordID)
}

// IncrementMistakeCount bumps a word's mistake counter by one.
func (r *DBWordRepository) IncrementMistakeCount(ctx context.Context, wordID int64) error {
	return IncrementMistakeCounts(ctx, r.db, wordID)
}

// IncrementTestCounts bumps the test counter of each given word by one.
// It takes an ExtContext so a submission can run it inside its own transaction.
func IncrementTestCounts(ctx context.Context, ext sqlx.ExtContext, wordIDs ...int64) error {
	if len(wordIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In("UPDATE words SET test_count = test_count + 1 WHERE id IN (?)", wordIDs)
	if err != nil {
		return fmt.Errorf("build test count update: %w", err)
	}
	if _, err := ext.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("increment test counts: %w", err)
	}
	return nil
}

// IncrementMistakeCounts bumps the mistake counter of each given word by one.
func IncrementMistakeCounts(ctx context.Context, ext sqlx.ExtContext, wordIDs ...int64) error {
	if len(wordIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In("UPDATE words SET mistake_count = mistake_count + 1 WHERE id IN (?)", wordIDs)
	if err != nil {
		return fmt.Errorf("build mistake count update: %w", err)
	}
	if _, err := ext.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("increment mistake counts: %w", err)
	}
	return nil
}

// BulkCreateIgnoreDuplicates inserts entries in one statement, skipping rows
// whose word already exists. Returns the number of rows actually inserted.
func (r *DBWordRepository) BulkCreateIgnoreDuplicates(ctx context.Context, entries []Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	columns := []string{"word", "part_of_speech", "translation"}
	query := strings.Replace(
		database.BuildMultiRowInsert("words", columns, len(entries)),
		"INSERT INTO", "INSERT IGNORE INTO", 1,
	)

	var args []interface{}
	for _, e := range entries {
		args = append(args, e.Word, e.PartOfSpeech, e.Translation)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert words: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count inserted words: %w", err)
	}
	return int(inserted), nil
}

// DeleteAll removes the whole catalog along with its mistake links and
// resets the id sequence so a re-imported catalog starts from id 1.
func (r *DBWordRepository) DeleteAll(ctx context.Context) error {
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM mistakes"); err != nil {
			return fmt.Errorf("delete mistakes: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM words"); err != nil {
			return fmt.Errorf("delete words: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// ALTER TABLE implicitly commits in MySQL, so it runs outside the transaction.
	if _, err := r.db.ExecContext(ctx, "ALTER TABLE words AUTO_INCREMENT = 1"); err != nil {
		return fmt.Errorf("reset words sequence: %w", err)
	}
	return nil
}
