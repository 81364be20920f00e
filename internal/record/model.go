// Package record provides append-only test result storage and aggregation.
package record

import "time"

// TestRecord is one completed quiz submission.
type TestRecord struct {
	ID       int64     `db:"id"`
	UserID   int64     `db:"user_id"`
	Score    int       `db:"score"`
	TestDate time.Time `db:"test_date"`
}

// Submission is the write unit for one completed quiz: the test row plus
// the per-word statistics updates, committed together.
type Submission struct {
	UserID         int64
	Score          int
	WordIDs        []int64
	MistakeWordIDs []int64
}

// LeaderboardEntry is one row of the aggregated per-user score table.
type LeaderboardEntry struct {
	Rank       int     `db:"-"`
	Username   string  `db:"username"`
	TotalTests int     `db:"total_tests"`
	AvgScore   float64 `db:"avg_score"`
	BestScore  int     `db:"best_score"`
	TotalScore int     `db:"total_score"`
}
