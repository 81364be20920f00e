package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/cli"
	"github.com/at-ishikawa/wordquiz/internal/record"
	"github.com/at-ishikawa/wordquiz/internal/word"
)

func newStatsCommand() *cobra.Command {
	var limit int

	command := &cobra.Command{
		Use:   "stats",
		Short: "Show the words with the worst error rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDatabase(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			statsCLI := cli.NewStatsCLI(word.NewDBWordRepository(db), record.NewDBRecordRepository(db))
			return statsCLI.ShowMistakes(ctx, limit)
		},
	}
	command.Flags().IntVar(&limit, "limit", 100, "maximum number of words to show")

	return command
}

func newLeaderboardCommand() *cobra.Command {
	var limit int

	command := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show per-user quiz scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDatabase(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			statsCLI := cli.NewStatsCLI(word.NewDBWordRepository(db), record.NewDBRecordRepository(db))
			return statsCLI.ShowLeaderboard(ctx, limit)
		},
	}
	command.Flags().IntVar(&limit, "limit", 20, "maximum number of users to show")

	return command
}
