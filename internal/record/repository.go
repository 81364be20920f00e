package record

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordquiz/internal/database"
	"github.com/at-ishikawa/wordquiz/internal/word"
)

//go:generate mockgen -source=repository.go -destination=../mocks/record/repository.go -package=mock_record

// RecordRepository defines operations for test records and their aggregates.
type RecordRepository interface {
	CreateSubmission(ctx context.Context, sub Submission) (int64, error)
	FindTestsByUser(ctx context.Context, userID int64) ([]TestRecord, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

// DBRecordRepository implements RecordRepository using MySQL.
type DBRecordRepository struct {
	db *sqlx.DB
}

// NewDBRecordRepository creates a new DBRecordRepository.
func NewDBRecordRepository(db *sqlx.DB) *DBRecordRepository {
	return &DBRecordRepository{db: db}
}

// CreateSubmission persists one quiz submission as a single transaction:
// the test row, one mistake link per wrong answer, and both word counters.
// A reader never sees a submission's mistake without its test-count bump.
// Row locks on the touched words serialize concurrent submissions per word.
func (r *DBRecordRepository) CreateSubmission(ctx context.Context, sub Submission) (int64, error) {
	var testID int64

	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, "INSERT INTO tests (user_id, score) VALUES (?, ?)", sub.UserID, sub.Score)
		if err != nil {
			return fmt.Errorf("insert test: %w", err)
		}
		testID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id for test: %w", err)
		}

		if len(sub.MistakeWordIDs) > 0 {
			query := database.BuildMultiRowInsert("mistakes", []string{"word_id", "test_id"}, len(sub.MistakeWordIDs))
			var args []interface{}
			for _, wordID := range sub.MistakeWordIDs {
				args = append(args, wordID, testID)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert mistakes: %w", err)
			}
			if err := word.IncrementMistakeCounts(ctx, tx, sub.MistakeWordIDs...); err != nil {
				return err
			}
		}

		return word.IncrementTestCounts(ctx, tx, sub.WordIDs...)
	})
	if err != nil {
		return 0, err
	}
	return testID, nil
}

// FindTestsByUser returns a user's test records, newest first.
func (r *DBRecordRepository) FindTestsByUser(ctx context.Context, userID int64) ([]TestRecord, error) {
	var records []TestRecord
	query := "SELECT id, user_id, score, test_date FROM tests WHERE user_id = ? ORDER BY test_date DESC"
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("find tests by user(%d): %w", userID, err)
	}
	return records, nil
}

// Leaderboard aggregates scores per user for everyone with at least one test,
// best average first. Ranks are assigned in result order.
func (r *DBRecordRepository) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	query := `SELECT u.username,
       COUNT(t.id) AS total_tests,
       AVG(t.score) AS avg_score,
       MAX(t.score) AS best_score,
       SUM(t.score) AS total_score
FROM users u
JOIN tests t ON u.id = t.user_id
GROUP BY u.id, u.username
ORDER BY avg_score DESC, best_score DESC, total_tests DESC
LIMIT ?`

	var entries []LeaderboardEntry
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
