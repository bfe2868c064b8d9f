package state

import (
	"context"
	"database/sql"
	"fmt"

	dbutil "github.com/llehouerou/tiles/internal/db"
)

const currentSchemaVersion = 1

// schemaStatements create the state tables. Every statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`,
	`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT,
		updated_at INTEGER NOT NULL
	)`,
}

func initSchema(db *sql.DB) error {
	return dbutil.WithTx(context.Background(), db, func(tx *sql.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("schema: %w", err)
			}
		}
		_, err := tx.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
		return err
	})
}
