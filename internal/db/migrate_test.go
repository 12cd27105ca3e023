package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'prompts'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "prompts", name)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prompts.db")

	database, err := OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	assert.FileExists(t, path)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated once.
	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}

func TestSchema_FeedbackCheckConstraint(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO prompts (id, input_text, category, generated_prompt, feedback, created_at)
		 VALUES ('x', 'text', 'textual', 'prompt', 'excellent', '2026-08-01T00:00:00Z')`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHECK")
}

func TestSchema_RatingRangeConstraint(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO prompts (id, input_text, category, generated_prompt, rating, created_at)
		 VALUES ('x', 'text', 'textual', 'prompt', 7.0, '2026-08-01T00:00:00Z')`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHECK")
}
