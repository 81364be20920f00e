package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordquiz/internal/record"
	"github.com/at-ishikawa/wordquiz/internal/word"
)

// StatsCLI renders the catalog and leaderboard statistics on the terminal.
type StatsCLI struct {
	words   word.WordRepository
	records record.RecordRepository

	stdoutWriter io.Writer
	bold         *color.Color
}

// NewStatsCLI creates a StatsCLI writing to stdout.
func NewStatsCLI(words word.WordRepository, records record.RecordRepository) *StatsCLI {
	return &StatsCLI{
		words:        words,
		records:      records,
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
	}
}

// ShowMistakes prints up to limit words ordered by error rate.
func (cli *StatsCLI) ShowMistakes(ctx context.Context, limit int) error {
	words, err := cli.words.FindTopMistaken(ctx, limit)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		fmt.Fprintln(cli.stdoutWriter, "No mistakes recorded yet.")
		return nil
	}

	fmt.Fprintf(cli.stdoutWriter, "%s\n", cli.bold.Sprintf("%-20s %-20s %8s %8s %10s", "Word", "Translation", "Tests", "Wrong", "Error"))
	for _, w := range words {
		fmt.Fprintf(cli.stdoutWriter, "%-20s %-20s %8d %8d %9.0f%%\n",
			w.Word, w.Translation.String, w.TestCount, w.MistakeCount, w.ErrorRate()*100)
	}
	return nil
}

// ShowLeaderboard prints the per-user score table.
func (cli *StatsCLI) ShowLeaderboard(ctx context.Context, limit int) error {
	entries, err := cli.records.Leaderboard(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cli.stdoutWriter, "No tests taken yet.")
		return nil
	}

	fmt.Fprintf(cli.stdoutWriter, "%s\n", cli.bold.Sprintf("%4s %-20s %8s %8s %8s", "Rank", "User", "Tests", "Avg", "Best"))
	for _, entry := range entries {
		fmt.Fprintf(cli.stdoutWriter, "%4d %-20s %8d %8.0f %8d\n",
			entry.Rank, entry.Username, entry.TotalTests, entry.AvgScore, entry.BestScore)
	}
	return nil
}
