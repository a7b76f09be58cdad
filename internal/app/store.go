package app

import (
	"context"

	"github.com/akarsten/feedbacklens/internal/domain"
	"github.com/google/uuid"
)

// DatasetStore abstracts dataset storage. The in-memory implementation
// serves single-instance mode; the Redis implementation lets multiple
// instances share uploaded datasets. Stored datasets are immutable:
// implementations only insert, fetch, list and delete whole values.
type DatasetStore interface {
	// Save stores a dataset under its ID, subject to the store's TTL.
	Save(ctx context.Context, ds *domain.Dataset) error

	// Get returns the dataset or domain.ErrDatasetNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)

	// List returns all live datasets, newest first.
	List(ctx context.Context) ([]*domain.Dataset, error)

	// Delete removes a dataset. Deleting an absent dataset is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
