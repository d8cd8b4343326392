package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"orator/internal/service"
)

// createBookRequest is the client payload for creating a book.
type createBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// createdResponse is the success shape for create endpoints.
type createdResponse struct {
	ID string `json:"id"`
}

// CreateBook handles POST /books.
func CreateBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// TODO: Validate the user is authenticated

		var req createBookRequest
		if err := c.BodyParser(&req); err != nil {
			return writeCreateError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		book, err := svc.Create(c.UserContext(), req.Title, req.Author)
		if err != nil {
			if errors.Is(err, service.ErrTitleRequired) {
				return writeCreateError(c, fiber.StatusBadRequest, "Title is required")
			}
			return writeCreateError(c, fiber.StatusInternalServerError, "An error occurred while creating the book")
		}

		return c.Status(fiber.StatusCreated).JSON(createdResponse{ID: book.ID})
	}
}

// GetBook handles GET /books/:bookId. The response covers the book's own
// details only, never its pages.
func GetBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// TODO: Validate the user is authenticated
		// TODO: Validate visibility of the book (users can only access their own books)

		book, err := svc.Get(c.UserContext(), c.Params("bookId"))
		if err != nil {
			if errors.Is(err, service.ErrBookNotFound) {
				return writeError(c, fiber.StatusNotFound, "Book not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "An error occurred while fetching the book")
		}

		return c.JSON(book)
	}
}
