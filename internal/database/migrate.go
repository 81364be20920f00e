package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordquiz/schemas"
)

// Migrate applies the embedded schema migrations in lexical file order.
// Statements are idempotent (CREATE TABLE IF NOT EXISTS), so re-running
// at every startup is safe. Requires a connection with MultiStatements.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	entries, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(entries)

	for _, entry := range entries {
		contents, err := fs.ReadFile(schemas.Migrations, entry)
		if err != nil {
			return fmt.Errorf("read migration(%s): %w", entry, err)
		}
		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("apply migration(%s): %w", entry, err)
		}
	}
	return nil
}
