package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS prompts (
		id               TEXT PRIMARY KEY,
		input_text       TEXT NOT NULL,
		category         TEXT NOT NULL,
		formality        TEXT NOT NULL DEFAULT 'neutral',
		tone             TEXT NOT NULL DEFAULT 'neutral',
		length           TEXT NOT NULL DEFAULT 'moderate',
		generated_prompt TEXT NOT NULL,
		feedback         TEXT NOT NULL DEFAULT ''
		                 CHECK(feedback IN ('', 'good', 'bad', 'neutral')),
		rating           REAL
		                 CHECK(rating IS NULL OR (rating >= 1.0 AND rating <= 5.0)),
		metadata_json    TEXT,
		created_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prompts_category ON prompts(category)`,
	`CREATE INDEX IF NOT EXISTS idx_prompts_created ON prompts(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_prompts_rating ON prompts(rating)`,
}
