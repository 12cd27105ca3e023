package repository

import (
	"context"
	"errors"

	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrAmbiguousID is returned when an ID prefix matches several records.
var ErrAmbiguousID = errors.New("ambiguous id prefix")

// PromptRecordRepo stores and queries generated prompt history.
type PromptRecordRepo interface {
	Save(ctx context.Context, r *domain.PromptRecord) error
	GetByID(ctx context.Context, id string) (*domain.PromptRecord, error)

	// ResolveID expands an ID prefix (as shown by the CLI) to the full
	// record ID. Fails with ErrNotFound or ErrAmbiguousID.
	ResolveID(ctx context.Context, prefix string) (string, error)

	// UpdateFeedback records the user's verdict and optional 1-5
	// rating on a stored prompt.
	UpdateFeedback(ctx context.Context, id string, feedback domain.Feedback, rating *float64) error

	// History lists records newest-first, optionally filtered by
	// category (empty category means all).
	History(ctx context.Context, limit int, category domain.Category) ([]*domain.PromptRecord, error)

	// Best lists a category's records with rating >= minRating,
	// highest-rated first.
	Best(ctx context.Context, category domain.Category, minRating float64, limit int) ([]*domain.PromptRecord, error)

	Delete(ctx context.Context, id string) error

	// Statistics aggregates the stored history: total count, average
	// rating over rated records, and the distinct categories seen.
	Statistics(ctx context.Context) (*domain.Statistics, error)
}
