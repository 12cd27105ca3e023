package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// SQLitePromptRepo implements PromptRecordRepo using a SQLite database.
type SQLitePromptRepo struct {
	db *sql.DB
}

// NewSQLitePromptRepo creates a new SQLitePromptRepo.
func NewSQLitePromptRepo(db *sql.DB) *SQLitePromptRepo {
	return &SQLitePromptRepo{db: db}
}

const promptColumns = `id, input_text, category, formality, tone, length,
	generated_prompt, feedback, rating, metadata_json, created_at`

func (r *SQLitePromptRepo) Save(ctx context.Context, rec *domain.PromptRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO prompts (` + promptColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.InputText,
		string(rec.Category),
		string(rec.Style.Formality),
		string(rec.Style.Tone),
		string(rec.Style.Length),
		rec.Prompt,
		string(rec.Feedback),
		nullableFloat(rec.Rating),
		rec.MetadataJSON,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting prompt record: %w", err)
	}
	return nil
}

func (r *SQLitePromptRepo) GetByID(ctx context.Context, id string) (*domain.PromptRecord, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanPrompt(row)
}

func (r *SQLitePromptRepo) ResolveID(ctx context.Context, prefix string) (string, error) {
	query := `SELECT id FROM prompts WHERE id LIKE ? || '%' LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return "", fmt.Errorf("resolving id prefix: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scanning id row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating id rows: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("prompt record %s: %w", prefix, ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("prefix %s: %w", prefix, ErrAmbiguousID)
	}
}

func (r *SQLitePromptRepo) UpdateFeedback(ctx context.Context, id string, feedback domain.Feedback, rating *float64) error {
	if !domain.ValidFeedback[feedback] {
		return fmt.Errorf("invalid feedback %q", feedback)
	}

	query := `UPDATE prompts SET feedback = ?, rating = COALESCE(?, rating) WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(feedback), nullableFloat(rating), id)
	if err != nil {
		return fmt.Errorf("updating feedback: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating feedback: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("prompt record %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLitePromptRepo) History(ctx context.Context, limit int, category domain.Category) ([]*domain.PromptRecord, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, string(category))
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing prompt history: %w", err)
	}
	defer rows.Close()
	return r.scanPrompts(rows)
}

func (r *SQLitePromptRepo) Best(ctx context.Context, category domain.Category, minRating float64, limit int) ([]*domain.PromptRecord, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts
		WHERE category = ? AND rating IS NOT NULL AND rating >= ?
		ORDER BY rating DESC, created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, string(category), minRating, limit)
	if err != nil {
		return nil, fmt.Errorf("listing best prompts: %w", err)
	}
	defer rows.Close()
	return r.scanPrompts(rows)
}

func (r *SQLitePromptRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM prompts WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting prompt record: %w", err)
	}
	return nil
}

func (r *SQLitePromptRepo) Statistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{}

	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM prompts`)
	if err := row.Scan(&stats.TotalPrompts, &stats.AverageRating); err != nil {
		return nil, fmt.Errorf("aggregating prompt statistics: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM prompts ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("listing distinct categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		stats.Categories = append(stats.Categories, domain.Category(c))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return stats, nil
}

// scanPrompt scans a single record from a *sql.Row.
func (r *SQLitePromptRepo) scanPrompt(row *sql.Row) (*domain.PromptRecord, error) {
	var rec domain.PromptRecord
	var category, formality, tone, length, feedback, createdAtStr string
	var rating sql.NullFloat64
	var metadata sql.NullString

	err := row.Scan(
		&rec.ID, &rec.InputText, &category, &formality, &tone, &length,
		&rec.Prompt, &feedback, &rating, &metadata, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("prompt record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning prompt record: %w", err)
	}

	return r.populatePrompt(&rec, category, formality, tone, length, feedback, rating, metadata, createdAtStr)
}

// scanPrompts scans multiple records from *sql.Rows.
func (r *SQLitePromptRepo) scanPrompts(rows *sql.Rows) ([]*domain.PromptRecord, error) {
	var records []*domain.PromptRecord
	for rows.Next() {
		var rec domain.PromptRecord
		var category, formality, tone, length, feedback, createdAtStr string
		var rating sql.NullFloat64
		var metadata sql.NullString

		err := rows.Scan(
			&rec.ID, &rec.InputText, &category, &formality, &tone, &length,
			&rec.Prompt, &feedback, &rating, &metadata, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning prompt row: %w", err)
		}

		record, parseErr := r.populatePrompt(&rec, category, formality, tone, length, feedback, rating, metadata, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prompt records: %w", err)
	}
	return records, nil
}

// populatePrompt fills in parsed fields after scanning raw columns.
func (r *SQLitePromptRepo) populatePrompt(rec *domain.PromptRecord, category, formality, tone, length, feedback string, rating sql.NullFloat64, metadata sql.NullString, createdAtStr string) (*domain.PromptRecord, error) {
	rec.Category = domain.Category(category)
	rec.Style = domain.StyleAttributes{
		Formality: domain.Formality(formality),
		Tone:      domain.Tone(tone),
		Length:    domain.Length(length),
	}
	rec.Feedback = domain.Feedback(feedback)
	rec.Rating = floatFromNull(rating)
	rec.MetadataJSON = stringFromNull(metadata)

	var parseErr error
	rec.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return rec, nil
}
