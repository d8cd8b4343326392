package repository

import (
	"context"
	"time"

	"orator/internal/model"
)

// PageRepository defines data access for pages. The workflow layer owns the
// status lifecycle; this interface only persists it.
type PageRepository interface {
	// Create inserts a new page record and returns the stored row.
	Create(ctx context.Context, page *model.Page) (*model.Page, error)

	// FindByID returns a page by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Page, error)

	// ListByBook returns all pages for a book ordered by creation time then id.
	// A book with no pages yields an empty slice, not an error.
	ListByBook(ctx context.Context, bookID string) ([]model.Page, error)

	// UpdateResult records the terminal outcome of analysis. The write is
	// conditioned on the row still being in processing state so a stale
	// writer cannot overwrite a newer result; it returns false when the row
	// was missing or already terminal.
	UpdateResult(ctx context.Context, id string, status model.PageStatus, content *model.PageContent, updatedAt time.Time) (bool, error)

	// ListStaleProcessing returns ids of pages that have sat in processing
	// state since before the cutoff.
	ListStaleProcessing(ctx context.Context, cutoff time.Time) ([]string, error)
}
