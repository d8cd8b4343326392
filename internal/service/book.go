package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"orator/internal/model"
	"orator/internal/repository"
)

var (
	ErrIDRequired    = errors.New("id is required")
	ErrTitleRequired = errors.New("title is required")
	ErrBookNotFound  = errors.New("book not found")
)

// BookService defines the use cases for handling books.
type BookService interface {
	// Create saves a new book. Title is required; author may be empty.
	Create(ctx context.Context, title, author string) (*model.Book, error)

	// Get returns a single book by its ID.
	Get(ctx context.Context, id string) (*model.Book, error)
}

type bookService struct {
	repo repository.BookRepository
}

// NewBookService constructs a new BookService.
func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, title, author string) (*model.Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	book := &model.Book{
		ID:        uuid.New().String(),
		Title:     title,
		Author:    strings.TrimSpace(author),
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, book)
}

func (s *bookService) Get(ctx context.Context, id string) (*model.Book, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}
