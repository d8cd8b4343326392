package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"orator/internal/model"
	"orator/internal/repository"
)

// PagePostgres is a PostgreSQL implementation of repository.PageRepository.
// Page content is stored as JSONB; a NULL column maps to a nil PageContent.
type PagePostgres struct {
	db *sql.DB
}

// NewPagePostgres creates a new PagePostgres repository.
func NewPagePostgres(db *sql.DB) *PagePostgres {
	return &PagePostgres{db: db}
}

var _ repository.PageRepository = (*PagePostgres)(nil)

func encodeContent(c *model.PageContent) (any, error) {
	if c == nil {
		return nil, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode page content: %w", err)
	}
	return b, nil
}

func decodeContent(raw []byte) (*model.PageContent, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var c model.PageContent
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode page content: %w", err)
	}
	return &c, nil
}

func scanPage(row interface{ Scan(...any) error }) (*model.Page, error) {
	var (
		p      model.Page
		status string
		raw    []byte
	)
	if err := row.Scan(&p.ID, &p.BookID, &p.ImageURL, &raw, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	content, err := decodeContent(raw)
	if err != nil {
		return nil, err
	}
	p.PageContent = content
	p.Status = model.PageStatus(status)
	return &p, nil
}

// Create inserts a new page row and returns the stored record.
func (r *PagePostgres) Create(ctx context.Context, page *model.Page) (*model.Page, error) {
	const q = `
		INSERT INTO pages (id, book_id, image_url, page_content, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, book_id, image_url, page_content, status, created_at, updated_at
	`
	content, err := encodeContent(page.PageContent)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		page.ID,
		page.BookID,
		page.ImageURL,
		content,
		string(page.Status),
		page.CreatedAt,
		page.UpdatedAt,
	)
	return scanPage(row)
}

// FindByID fetches a single page by its ID.
func (r *PagePostgres) FindByID(ctx context.Context, id string) (*model.Page, error) {
	const q = `
		SELECT id, book_id, image_url, page_content, status, created_at, updated_at
		FROM pages
		WHERE id = $1
	`
	return scanPage(r.db.QueryRowContext(ctx, q, id))
}

// ListByBook returns every page of a book in creation order.
func (r *PagePostgres) ListByBook(ctx context.Context, bookID string) ([]model.Page, error) {
	const q = `
		SELECT id, book_id, image_url, page_content, status, created_at, updated_at
		FROM pages
		WHERE book_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := make([]model.Page, 0)
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

// UpdateResult moves a page out of processing state. The WHERE clause makes
// the transition single-shot: once a terminal status is written, later
// writers see zero rows affected.
func (r *PagePostgres) UpdateResult(ctx context.Context, id string, status model.PageStatus, content *model.PageContent, updatedAt time.Time) (bool, error) {
	const q = `
		UPDATE pages
		SET status = $2, page_content = $3, updated_at = $4
		WHERE id = $1 AND status = 'processing'
	`
	encoded, err := encodeContent(content)
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, q, id, string(status), encoded, updatedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListStaleProcessing returns ids of pages stuck in processing since before cutoff.
func (r *PagePostgres) ListStaleProcessing(ctx context.Context, cutoff time.Time) ([]string, error) {
	const q = `
		SELECT id
		FROM pages
		WHERE status = 'processing' AND updated_at < $1
	`
	rows, err := r.db.QueryContext(ctx, q, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
