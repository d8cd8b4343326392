// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"

	"orator/internal/model"
)

// BookRepository defines data access for books using SQL queries only.
// No business logic here — strictly persistence operations.
type BookRepository interface {
	// Create inserts a new book record and returns the stored row.
	Create(ctx context.Context, book *model.Book) (*model.Book, error)

	// FindByID returns a book by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Book, error)
}
