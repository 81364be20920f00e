package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/assessment"
	"github.com/at-ishikawa/wordquiz/internal/cli"
	"github.com/at-ishikawa/wordquiz/internal/record"
	"github.com/at-ishikawa/wordquiz/internal/user"
	"github.com/at-ishikawa/wordquiz/internal/word"
)

func newQuizCommand() *cobra.Command {
	var (
		username string
		mode     string
		from     int64
		to       int64
		count    int
		review   bool
	)

	command := &cobra.Command{
		Use:   "quiz",
		Short: "Take an interactive quiz on the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			quizMode, err := assessment.ParseMode(mode)
			if err != nil {
				return err
			}

			db, err := openDatabase(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			words := word.NewDBWordRepository(db)
			records := record.NewDBRecordRepository(db)
			quizCLI := cli.NewQuizCLI(
				assessment.NewService(words, records, nil),
				user.NewDBUserRepository(db),
			)

			return quizCLI.Run(ctx, cli.QuizOptions{
				Username: username,
				Mode:     quizMode,
				From:     from,
				To:       to,
				Count:    count,
				Review:   review,
			})
		},
	}

	command.Flags().StringVar(&username, "user", "", "username to record results under")
	command.Flags().StringVar(&mode, "mode", string(assessment.ModeChoiceTermToMeaning), "quiz mode: mc_eng_to_chi, mc_chi_to_eng or spelling")
	command.Flags().Int64Var(&from, "from", 1, "first word id of the quiz range")
	command.Flags().Int64Var(&to, "to", 100, "last word id of the quiz range")
	command.Flags().IntVar(&count, "count", 10, "number of questions")
	command.Flags().BoolVar(&review, "review", false, "quiz every word with a recorded mistake instead of a range")
	cobra.CheckErr(command.MarkFlagRequired("user"))

	return command
}
