package word

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*DBWordRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewDBWordRepository(sqlx.NewDb(db, "mysql")), mock
}

func wordRows(words ...Word) *sqlmock.Rows {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "word", "part_of_speech", "translation", "test_count", "mistake_count", "created_at", "updated_at",
	})
	for _, w := range words {
		rows.AddRow(w.ID, w.Word, w.PartOfSpeech, w.Translation, w.TestCount, w.MistakeCount, now, now)
	}
	return rows
}

func TestWord_ErrorRate(t *testing.T) {
	tests := []struct {
		name string
		word Word
		want float64
	}{
		{name: "untested word has no signal", word: Word{TestCount: 0, MistakeCount: 0}, want: 0},
		{name: "mistakes over tests", word: Word{TestCount: 4, MistakeCount: 3}, want: 0.75},
		{name: "perfect record", word: Word{TestCount: 5, MistakeCount: 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.word.ErrorRate())
		})
	}
}

func TestDBWordRepository_CountInRange(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      int
		wantErr   bool
	}{
		{
			name: "counts translated words only",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM words WHERE id BETWEEN \\? AND \\? AND translation IS NOT NULL").
					WithArgs(int64(1), int64(10)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
			},
			want: 7,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM words").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setupMock(mock)

			got, err := repo.CountInRange(context.Background(), 1, 10)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBWordRepository_FindTopMistakesInRange(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT .+ FROM words WHERE id BETWEEN \\? AND \\? AND mistake_count > 0 AND translation IS NOT NULL ORDER BY .+ DESC, mistake_count DESC, RAND\\(\\) LIMIT \\?").
		WithArgs(int64(1), int64(10), 2).
		WillReturnRows(wordRows(
			Word{ID: 7, Word: "arduous", TestCount: 4, MistakeCount: 3},
			Word{ID: 2, Word: "frugal", TestCount: 2, MistakeCount: 1},
		))

	got, err := repo.FindTopMistakesInRange(context.Background(), 1, 10, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, 0.75, got[0].ErrorRate())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBWordRepository_FindLeastTestedInRange(t *testing.T) {
	tests := []struct {
		name       string
		excludeIDs []int64
		setupMock  func(mock sqlmock.Sqlmock)
		wantLen    int
	}{
		{
			name:       "without exclusions",
			excludeIDs: nil,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM words WHERE id BETWEEN \\? AND \\? AND translation IS NOT NULL ORDER BY test_count ASC, RAND\\(\\) LIMIT \\?").
					WithArgs(int64(1), int64(10), 3).
					WillReturnRows(wordRows(
						Word{ID: 1, Word: "candid"},
						Word{ID: 3, Word: "futile"},
						Word{ID: 5, Word: "zealous"},
					))
			},
			wantLen: 3,
		},
		{
			name:       "exclusion ids are expanded into the query",
			excludeIDs: []int64{7, 9},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM words WHERE id BETWEEN \\? AND \\? AND translation IS NOT NULL AND id NOT IN \\(\\?, \\?\\) ORDER BY test_count ASC, RAND\\(\\) LIMIT \\?").
					WithArgs(int64(1), int64(10), int64(7), int64(9), 3).
					WillReturnRows(wordRows(Word{ID: 1, Word: "candid"}))
			},
			wantLen: 1,
		},
		{
			name:       "empty catalog returns no rows and no error",
			excludeIDs: nil,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM words WHERE id BETWEEN").
					WillReturnRows(wordRows())
			},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindLeastTestedInRange(context.Background(), 1, 10, tt.excludeIDs, 3)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBWordRepository_ListTranslationPairs(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT word, translation FROM words WHERE translation IS NOT NULL").
		WillReturnRows(sqlmock.NewRows([]string{"word", "translation"}).
			AddRow("candid", "坦率的").
			AddRow("frugal", "节俭的"))

	got, err := repo.ListTranslationPairs(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "candid", got[0].Word)
	assert.Equal(t, "坦率的", got[0].Translation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementCounts(t *testing.T) {
	tests := []struct {
		name      string
		run       func(ctx context.Context, ext sqlx.ExtContext) error
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "test counts for multiple words",
			run: func(ctx context.Context, ext sqlx.ExtContext) error {
				return IncrementTestCounts(ctx, ext, 3, 4)
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE words SET test_count = test_count \\+ 1 WHERE id IN \\(\\?, \\?\\)").
					WithArgs(int64(3), int64(4)).
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
		},
		{
			name: "mistake counts for one word",
			run: func(ctx context.Context, ext sqlx.ExtContext) error {
				return IncrementMistakeCounts(ctx, ext, 3)
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE words SET mistake_count = mistake_count \\+ 1 WHERE id IN \\(\\?\\)").
					WithArgs(int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no ids is a no-op",
			run: func(ctx context.Context, ext sqlx.ExtContext) error {
				return IncrementTestCounts(ctx, ext)
			},
			setupMock: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "db error propagates",
			run: func(ctx context.Context, ext sqlx.ExtContext) error {
				return IncrementTestCounts(ctx, ext, 3)
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE words SET test_count").
					WillReturnError(fmt.Errorf("lock wait timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setupMock(mock)

			err := tt.run(context.Background(), repo.db)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBWordRepository_BulkCreateIgnoreDuplicates(t *testing.T) {
	tests := []struct {
		name      string
		entries   []Entry
		setupMock func(mock sqlmock.Sqlmock)
		want      int
		wantErr   bool
	}{
		{
			name: "inserts new rows and skips duplicates",
			entries: []Entry{
				{Word: "candid", PartOfSpeech: "adj", Translation: "坦率的"},
				{Word: "frugal", PartOfSpeech: "adj", Translation: "节俭的"},
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT IGNORE INTO words \\(word, part_of_speech, translation\\) VALUES \\(\\?, \\?, \\?\\), \\(\\?, \\?, \\?\\)").
					WithArgs("candid", "adj", "坦率的", "frugal", "adj", "节俭的").
					WillReturnResult(sqlmock.NewResult(2, 1))
			},
			want: 1,
		},
		{
			name:      "empty slice returns zero without touching the database",
			entries:   nil,
			setupMock: func(mock sqlmock.Sqlmock) {},
			want:      0,
		},
		{
			name:    "db error propagates",
			entries: []Entry{{Word: "candid", PartOfSpeech: "adj", Translation: "坦率的"}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT IGNORE INTO words").
					WillReturnError(fmt.Errorf("table is full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setupMock(mock)

			got, err := repo.BulkCreateIgnoreDuplicates(context.Background(), tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBWordRepository_DeleteAll(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM mistakes").WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("DELETE FROM words").WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectCommit()
	mock.ExpectExec("ALTER TABLE words AUTO_INCREMENT = 1").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
