package postgres

import (
	"context"
	"database/sql"

	"orator/internal/model"
	"orator/internal/repository"
)

// BookPostgres is a PostgreSQL implementation of repository.BookRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type BookPostgres struct {
	db *sql.DB
}

// NewBookPostgres creates a new BookPostgres repository.
func NewBookPostgres(db *sql.DB) *BookPostgres {
	return &BookPostgres{db: db}
}

var _ repository.BookRepository = (*BookPostgres)(nil)

// Create inserts a new book row and returns the stored record.
func (r *BookPostgres) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	const q = `
		INSERT INTO books (id, title, author, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, author, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		book.ID,
		book.Title,
		book.Author,
		book.CreatedAt,
	)
	var out model.Book
	if err := row.Scan(&out.ID, &out.Title, &out.Author, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single book by its ID.
func (r *BookPostgres) FindByID(ctx context.Context, id string) (*model.Book, error) {
	const q = `
		SELECT id, title, author, created_at
		FROM books
		WHERE id = $1
	`
	var b model.Book
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Title, &b.Author, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
