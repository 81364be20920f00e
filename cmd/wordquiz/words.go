package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/word"
	"github.com/at-ishikawa/wordquiz/internal/wordlist"
)

func newWordsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "words",
		Short: "Manage the word catalog",
	}
	command.AddCommand(
		newWordsImportCommand(),
		newWordsClearCommand(),
	)
	return command
}

func newWordsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a word list file into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open word list: %w", err)
			}
			defer file.Close()

			db, err := openDatabase(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			importer := wordlist.NewImporter(word.NewDBWordRepository(db))
			result, err := importer.Import(ctx, file)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d of %d words (%d duplicates skipped)\n",
				result.Inserted, result.Parsed, result.Parsed-result.Inserted)
			return nil
		},
	}
}

func newWordsClearCommand() *cobra.Command {
	var confirmed bool

	command := &cobra.Command{
		Use:   "clear",
		Short: "Delete every word and its quiz statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to clear the catalog without --yes")
			}

			ctx := cmd.Context()
			db, err := openDatabase(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := word.NewDBWordRepository(db).DeleteAll(ctx); err != nil {
				return err
			}
			fmt.Println("Word catalog cleared.")
			return nil
		},
	}
	command.Flags().BoolVar(&confirmed, "yes", false, "confirm deleting the whole catalog")

	return command
}
